package scraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"time"
)

// Sentinel failures that callers may want to distinguish. All of them are
// permanent for the URL in question and must not be retried.
var (
	ErrRobotsDenied       = errors.New("blocked by robots.txt")
	ErrUnsupportedContent = errors.New("unsupported content type")
	ErrNoContent          = errors.New("no extractable text")
)

// Config holds article scraper configuration.
type Config struct {
	UserAgent      string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Article is the extracted result for one URL. Content is plain text with
// blank lines removed; it may be empty when the page had no extractable body.
type Article struct {
	Title   string
	Content string
}

// Scraper fetches external pages and extracts their readable content.
// Per call it runs check-permission, fetch (with bounded retry), extract.
type Scraper struct {
	httpClient     *http.Client
	robots         *robotsCache
	userAgent      string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Scraper {
	logger = logger.With("component", "scraper")
	client := &http.Client{Timeout: cfg.Timeout}
	return &Scraper{
		httpClient:     client,
		robots:         newRobotsCache(client, cfg.UserAgent, logger),
		userAgent:      cfg.UserAgent,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger,
	}
}

// Scrape extracts the article behind rawURL. A nil error with empty Content
// means the page fetched cleanly but had no extractable text; callers that
// need a body should treat that the same as failure.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*Article, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	if !s.robots.Allowed(ctx, u) {
		return nil, ErrRobotsDenied
	}

	body, err := s.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	article, err := extract(body, u)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("extracted article",
		"url", rawURL,
		"title", article.Title,
		"content_len", len(article.Content),
	)

	return article, nil
}

func (s *Scraper) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		var body []byte
		body, err = s.doFetch(ctx, rawURL)
		if err == nil {
			return body, nil
		}

		var se *statusError
		retryable := errors.As(err, &se) && se.code >= 500 || isNetworkError(err)
		if !retryable || attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("fetch failed, retrying",
			"url", rawURL,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, err
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.code)
}

type networkError struct {
	err error
}

func (e *networkError) Error() string { return e.err.Error() }
func (e *networkError) Unwrap() error { return e.err }

func isNetworkError(err error) bool {
	var ne *networkError
	return errors.As(err, &ne)
}

func (s *Scraper) doFetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &networkError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &statusError{code: resp.StatusCode}
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "text/html" && mediaType != "application/xhtml+xml" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContent, resp.Header.Get("Content-Type"))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10*1024*1024))
	if err != nil {
		return nil, &networkError{err: err}
	}

	return body, nil
}

func (s *Scraper) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}
