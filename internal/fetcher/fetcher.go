package fetcher

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"hn_harvester/internal/domain"
	"hn_harvester/internal/hn"
)

// Source abstracts the forum API for traversal.
type Source interface {
	FetchItem(ctx context.Context, id int64) (*hn.Item, error)
	FetchNewIDs(ctx context.Context) ([]int64, error)
}

// ExistenceChecker answers whether a story has already been ingested.
type ExistenceChecker interface {
	Exists(ctx context.Context, hnID int64) (bool, error)
}

// Selection chooses which roots from the new-items feed to fetch.
// When Window > 0, every item posted at or after now-Window is selected;
// the feed is descending by time, so the scan stops at the first older item.
// Otherwise the first Limit ids are taken.
type Selection struct {
	Window time.Duration
	Limit  int
}

// Result is the outcome of one traversal run. Stories and Comments hold only
// items fetched in this run; errors on individual items are accumulated and
// never abort the run.
type Result struct {
	Stories  []domain.Story
	Comments []domain.Comment
	Selected int
	Skipped  int
	Errors   []domain.ItemError
}

type Fetcher struct {
	source   Source
	existing ExistenceChecker
	maxDepth int
	now      func() time.Time
	logger   *slog.Logger
}

func New(source Source, existing ExistenceChecker, maxDepth int, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		source:   source,
		existing: existing,
		maxDepth: maxDepth,
		now:      time.Now,
		logger:   logger.With("component", "fetcher"),
	}
}

// Run fetches all new roots matched by sel plus their full reply trees.
func (f *Fetcher) Run(ctx context.Context, sel Selection) (*Result, error) {
	ids, err := f.source.FetchNewIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch new ids: %w", err)
	}

	if sel.Window <= 0 && sel.Limit > 0 && len(ids) > sel.Limit {
		ids = ids[:sel.Limit]
	}

	cutoff := f.now().Add(-sel.Window)
	result := &Result{}
	visited := make(map[int64]bool)

	for _, id := range ids {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}

		exists, err := f.existing.Exists(ctx, id)
		if err != nil {
			return result, fmt.Errorf("existence check for %d: %w", id, err)
		}
		if exists {
			result.Skipped++
			continue
		}

		item, err := f.source.FetchItem(ctx, id)
		if err != nil {
			result.Errors = append(result.Errors, domain.ItemError{ID: id, Error: err.Error()})
			continue
		}
		if item == nil || item.Type != hn.TypeStory {
			result.Skipped++
			continue
		}

		postedAt := time.Unix(item.Time, 0).UTC()
		if sel.Window > 0 && postedAt.Before(cutoff) {
			// The feed is time-ordered descending, so everything after
			// this item is older still.
			break
		}

		result.Selected++
		result.Stories = append(result.Stories, toStory(item))
		visited[item.ID] = true

		f.walkReplies(ctx, item, visited, result)
	}

	f.logger.Info("traversal finished",
		"selected", result.Selected,
		"stories", len(result.Stories),
		"comments", len(result.Comments),
		"skipped", result.Skipped,
		"errors", len(result.Errors),
	)

	return result, nil
}

type frame struct {
	id    int64
	depth int
}

// walkReplies fetches the full reply tree under root depth-first, using an
// explicit stack so pathologically deep threads cannot blow the goroutine
// stack. Ids already seen in this run are not refetched.
func (f *Fetcher) walkReplies(ctx context.Context, root *hn.Item, visited map[int64]bool, result *Result) {
	stack := make([]frame, 0, len(root.Kids))
	for i := len(root.Kids) - 1; i >= 0; i-- {
		stack = append(stack, frame{id: root.Kids[i], depth: 1})
	}

	for len(stack) > 0 {
		if ctx.Err() != nil {
			return
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[top.id] {
			continue
		}
		visited[top.id] = true

		item, err := f.source.FetchItem(ctx, top.id)
		if err != nil {
			result.Errors = append(result.Errors, domain.ItemError{ID: top.id, Error: err.Error()})
			continue
		}
		if item == nil || item.Type != hn.TypeComment {
			continue
		}

		result.Comments = append(result.Comments, toComment(item, root.ID))

		if f.maxDepth > 0 && top.depth >= f.maxDepth {
			continue
		}
		for i := len(item.Kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: item.Kids[i], depth: top.depth + 1})
		}
	}
}

func toStory(it *hn.Item) domain.Story {
	s := domain.Story{
		HNID:        it.ID,
		Title:       it.Title,
		Score:       it.Score,
		Descendants: it.Descendants,
		PostedAt:    time.Unix(it.Time, 0).UTC(),
		Deleted:     it.Deleted,
		Dead:        it.Dead,
	}
	if it.URL != "" {
		s.URL = &it.URL
	}
	if it.Text != "" {
		s.Body = &it.Text
	}
	if it.By != "" {
		s.Author = &it.By
	}
	return s
}

func toComment(it *hn.Item, storyID int64) domain.Comment {
	c := domain.Comment{
		HNID:       it.ID,
		ParentHNID: it.Parent,
		StoryHNID:  storyID,
		PostedAt:   time.Unix(it.Time, 0).UTC(),
		Deleted:    it.Deleted,
		Dead:       it.Dead,
	}
	if it.Text != "" {
		c.Body = &it.Text
	}
	if it.By != "" {
		c.Author = &it.By
	}
	return c
}
