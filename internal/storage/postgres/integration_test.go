//go:build integration

package postgres

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"hn_harvester/internal/domain"
	"hn_harvester/testdata/utils"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_stories.up.sql"),
			filepath.Join(migrationsPath, "002_create_comments.up.sql"),
			filepath.Join(migrationsPath, "003_create_scrape_jobs.up.sql"),
			filepath.Join(migrationsPath, "004_create_chunk_embeddings.up.sql"),
			filepath.Join(migrationsPath, "005_create_task_runs.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM chunk_embeddings")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM scrape_jobs")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM comments")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM stories")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM task_runs")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) newStory(hnID int64) *domain.Story {
	return &domain.Story{
		HNID:        hnID,
		Title:       "Test Story",
		URL:         utils.Ptr("https://example.com/article"),
		Author:      utils.Ptr("tester"),
		Score:       10,
		Descendants: 2,
		PostedAt:    time.Now().Truncate(time.Microsecond),
	}
}

func (s *PostgresIntegrationSuite) TestStoryStore_Upsert_Insert() {
	store := NewStoryStore(s.db)

	id, err := store.Upsert(s.ctx, s.newStory(123))
	s.NoError(err)
	s.Greater(id, int64(0))

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM stories WHERE hn_id = $1", 123)
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestStoryStore_Upsert_UpdatesInPlace() {
	store := NewStoryStore(s.db)

	story := s.newStory(123)
	firstID, err := store.Upsert(s.ctx, story)
	s.Require().NoError(err)

	story.Title = "Updated Title"
	story.Score = 99
	secondID, err := store.Upsert(s.ctx, story)
	s.NoError(err)
	s.Equal(firstID, secondID)

	var title string
	err = s.db.GetContext(s.ctx, &title, "SELECT title FROM stories WHERE hn_id = $1", 123)
	s.NoError(err)
	s.Equal("Updated Title", title)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM stories")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestStoryStore_Exists() {
	store := NewStoryStore(s.db)

	exists, err := store.Exists(s.ctx, 555)
	s.NoError(err)
	s.False(exists)

	_, err = store.Upsert(s.ctx, s.newStory(555))
	s.Require().NoError(err)

	exists, err = store.Exists(s.ctx, 555)
	s.NoError(err)
	s.True(exists)
}

func (s *PostgresIntegrationSuite) TestCommentStore_Upsert() {
	store := NewCommentStore(s.db)

	comment := &domain.Comment{
		HNID:       201,
		ParentHNID: 123,
		StoryHNID:  123,
		Body:       utils.Ptr("a reply"),
		Author:     utils.Ptr("commenter"),
		PostedAt:   time.Now().Truncate(time.Microsecond),
	}

	firstID, err := store.Upsert(s.ctx, comment)
	s.NoError(err)
	s.Greater(firstID, int64(0))

	comment.Body = utils.Ptr("edited reply")
	secondID, err := store.Upsert(s.ctx, comment)
	s.NoError(err)
	s.Equal(firstID, secondID)

	var body string
	err = s.db.GetContext(s.ctx, &body, "SELECT body FROM comments WHERE hn_id = $1", 201)
	s.NoError(err)
	s.Equal("edited reply", body)
}

func (s *PostgresIntegrationSuite) TestScrapeJobStore_CreateIfAbsent() {
	store := NewScrapeJobStore(s.db)

	created, err := store.CreateIfAbsent(s.ctx, "https://example.com/a")
	s.NoError(err)
	s.True(created)

	created, err = store.CreateIfAbsent(s.ctx, "https://example.com/a")
	s.NoError(err)
	s.False(created)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM scrape_jobs")
	s.NoError(err)
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestScrapeJobStore_Lifecycle() {
	store := NewScrapeJobStore(s.db)

	_, err := store.CreateIfAbsent(s.ctx, "https://example.com/a")
	s.Require().NoError(err)
	_, err = store.CreateIfAbsent(s.ctx, "https://example.com/b")
	s.Require().NoError(err)

	pending, err := store.ListPending(s.ctx, 10)
	s.NoError(err)
	s.Require().Len(pending, 2)
	s.Equal(domain.JobPending, pending[0].Status)

	err = store.MarkSuccess(s.ctx, pending[0].ID, "Title A", "Content A")
	s.NoError(err)
	err = store.MarkFailed(s.ctx, pending[1].ID, "status 404")
	s.NoError(err)

	pending, err = store.ListPending(s.ctx, 10)
	s.NoError(err)
	s.Empty(pending)

	unembedded, err := store.ListUnembedded(s.ctx, 10)
	s.NoError(err)
	s.Require().Len(unembedded, 1)
	s.Equal(domain.JobSuccess, unembedded[0].Status)
	s.Require().NotNil(unembedded[0].Content)
	s.Equal("Content A", *unembedded[0].Content)
	s.NotNil(unembedded[0].AttemptedAt)
}

func (s *PostgresIntegrationSuite) TestScrapeJobStore_ZeroLimitReturnsAll() {
	store := NewScrapeJobStore(s.db)

	for _, url := range []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	} {
		_, err := store.CreateIfAbsent(s.ctx, url)
		s.Require().NoError(err)
	}

	pending, err := store.ListPending(s.ctx, 0)
	s.NoError(err)
	s.Len(pending, 3)

	for _, job := range pending {
		err = store.MarkSuccess(s.ctx, job.ID, "Title", "Content")
		s.Require().NoError(err)
	}

	unembedded, err := store.ListUnembedded(s.ctx, 0)
	s.NoError(err)
	s.Len(unembedded, 3)
}

func (s *PostgresIntegrationSuite) TestScrapeJobStore_ListUnembedded_ExcludesEmbedded() {
	jobs := NewScrapeJobStore(s.db)
	embeddings := NewEmbeddingStore(s.db)

	_, err := jobs.CreateIfAbsent(s.ctx, "https://example.com/a")
	s.Require().NoError(err)
	pending, err := jobs.ListPending(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(pending, 1)

	err = jobs.MarkSuccess(s.ctx, pending[0].ID, "Title", "Content")
	s.Require().NoError(err)

	_, err = embeddings.Insert(s.ctx, &domain.ChunkEmbedding{
		JobID:       pending[0].ID,
		Content:     "Content",
		Granularity: domain.GranularityDocument,
		ChunkIndex:  0,
		ChunkTotal:  1,
		Vector:      []float32{0.1, 0.2, 0.3},
		Metadata:    map[string]any{"url": "https://example.com/a"},
	})
	s.Require().NoError(err)

	unembedded, err := jobs.ListUnembedded(s.ctx, 10)
	s.NoError(err)
	s.Empty(unembedded)
}

func (s *PostgresIntegrationSuite) TestEmbeddingStore_InsertAndCount() {
	jobs := NewScrapeJobStore(s.db)
	store := NewEmbeddingStore(s.db)

	_, err := jobs.CreateIfAbsent(s.ctx, "https://example.com/a")
	s.Require().NoError(err)
	pending, err := jobs.ListPending(s.ctx, 1)
	s.Require().NoError(err)
	jobID := pending[0].ID

	count, err := store.CountByJob(s.ctx, jobID)
	s.NoError(err)
	s.Equal(0, count)

	for i := 0; i < 3; i++ {
		_, err = store.Insert(s.ctx, &domain.ChunkEmbedding{
			JobID:       jobID,
			Content:     "chunk",
			Granularity: domain.GranularitySentence,
			ChunkIndex:  i,
			ChunkTotal:  3,
			Vector:      []float32{0.5, 0.5},
			Metadata:    map[string]any{"url": "https://example.com/a", "title": "T"},
		})
		s.NoError(err)
	}

	count, err = store.CountByJob(s.ctx, jobID)
	s.NoError(err)
	s.Equal(3, count)
}

func (s *PostgresIntegrationSuite) TestEmbeddingStore_DuplicateChunkRejected() {
	jobs := NewScrapeJobStore(s.db)
	store := NewEmbeddingStore(s.db)

	_, err := jobs.CreateIfAbsent(s.ctx, "https://example.com/a")
	s.Require().NoError(err)
	pending, err := jobs.ListPending(s.ctx, 1)
	s.Require().NoError(err)

	emb := &domain.ChunkEmbedding{
		JobID:       pending[0].ID,
		Content:     "chunk",
		Granularity: domain.GranularityDocument,
		ChunkIndex:  0,
		ChunkTotal:  1,
		Vector:      []float32{1},
	}

	_, err = store.Insert(s.ctx, emb)
	s.NoError(err)
	_, err = store.Insert(s.ctx, emb)
	s.Error(err)
}

func (s *PostgresIntegrationSuite) TestTaskRunStore_StartAndFinish() {
	store := NewTaskRunStore(s.db)

	id, err := store.Start(s.ctx, "fetch")
	s.NoError(err)
	s.Greater(id, int64(0))

	err = store.Finish(s.ctx, id, domain.TaskCompleted, "", map[string]any{"stories": 5})
	s.NoError(err)

	var status string
	err = s.db.GetContext(s.ctx, &status, "SELECT status FROM task_runs WHERE id = $1", id)
	s.NoError(err)
	s.Equal(string(domain.TaskCompleted), status)

	var errMsg *string
	err = s.db.GetContext(s.ctx, &errMsg, "SELECT error FROM task_runs WHERE id = $1", id)
	s.NoError(err)
	s.Nil(errMsg)
}

func (s *PostgresIntegrationSuite) TestTransactionManager_RollsBackOnError() {
	tm := NewTransactionManager(s.db)
	stories := NewStoryStore(s.db)
	jobs := NewScrapeJobStore(s.db)

	err := tm.WithTransaction(s.ctx, func(ctx context.Context) error {
		if _, err := stories.Upsert(ctx, s.newStory(900)); err != nil {
			return err
		}
		if _, err := jobs.CreateIfAbsent(ctx, "https://example.com/tx"); err != nil {
			return err
		}
		return errors.New("boom")
	})
	s.Error(err)

	exists, err := stories.Exists(s.ctx, 900)
	s.NoError(err)
	s.False(exists)

	var count int
	err = s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM scrape_jobs")
	s.NoError(err)
	s.Equal(0, count)
}
