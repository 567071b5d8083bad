package hn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Config holds Hacker News API client configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client is a stateless client for the Hacker News Firebase API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// StatusError is returned for non-2xx API responses. Responses in the 5xx
// range are retried; everything else is a hard failure for that call.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.Code)
}

func (e *StatusError) Retryable() bool {
	return e.Code >= 500
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "hn_client"),
	}
}

// FetchItem retrieves a single item by id. The API returns a JSON null for
// unknown ids; that case yields (nil, nil).
func (c *Client) FetchItem(ctx context.Context, id int64) (*Item, error) {
	url := fmt.Sprintf("%s/item/%d.json", c.baseURL, id)

	var item *Item
	err := c.withRetry(ctx, url, func(dec *json.Decoder) error {
		return dec.Decode(&item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// FetchNewIDs retrieves the newest item ids, most recent first. The feed is
// bounded upstream (500 ids at the time of writing).
func (c *Client) FetchNewIDs(ctx context.Context) ([]int64, error) {
	url := fmt.Sprintf("%s/newstories.json", c.baseURL)

	var ids []int64
	err := c.withRetry(ctx, url, func(dec *json.Decoder) error {
		return dec.Decode(&ids)
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *Client) withRetry(ctx context.Context, url string, decode func(*json.Decoder) error) error {
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.doRequest(ctx, url, decode)
		if err == nil {
			return nil
		}

		if !isRetryable(err) || attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"url", url,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("fetch %s: %w", url, err)
}

func (c *Client) doRequest(ctx context.Context, url string, decode func(*json.Decoder) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "HNHarvester/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &transportError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Code: resp.StatusCode}
	}

	if err := decode(json.NewDecoder(resp.Body)); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// transportError marks network-level failures, which are always retryable.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

func isRetryable(err error) bool {
	var te *transportError
	if errors.As(err, &te) {
		return true
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Retryable()
	}
	return false
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
