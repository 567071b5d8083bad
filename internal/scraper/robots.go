package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"

	"github.com/temoto/robotstxt"
)

// robotsCache resolves and caches the robots policy per origin for the life
// of the process. Any failure to fetch or parse the policy is treated as
// allow-all, so an unreachable robots.txt never blocks extraction.
type robotsCache struct {
	client    *http.Client
	userAgent string
	logger    *slog.Logger

	mu     sync.Mutex
	groups map[string]*robotstxt.Group // keyed by origin; nil means allow all
}

func newRobotsCache(client *http.Client, userAgent string, logger *slog.Logger) *robotsCache {
	return &robotsCache{
		client:    client,
		userAgent: userAgent,
		logger:    logger,
		groups:    make(map[string]*robotstxt.Group),
	}
}

// Allowed reports whether the policy for u's origin permits fetching u.
func (rc *robotsCache) Allowed(ctx context.Context, u *url.URL) bool {
	origin := u.Scheme + "://" + u.Host

	rc.mu.Lock()
	group, ok := rc.groups[origin]
	rc.mu.Unlock()

	if !ok {
		group = rc.fetchGroup(ctx, origin)
		rc.mu.Lock()
		rc.groups[origin] = group
		rc.mu.Unlock()
	}

	if group == nil {
		return true
	}

	// Rules may match on the query string, so test the full request path.
	path := u.Path
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return group.Test(path)
}

func (rc *robotsCache) fetchGroup(ctx context.Context, origin string) *robotstxt.Group {
	robotsURL := fmt.Sprintf("%s/robots.txt", origin)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", rc.userAgent)

	resp, err := rc.client.Do(req)
	if err != nil {
		rc.logger.Debug("robots fetch failed, allowing all", "origin", origin, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return nil
	}

	data, err := robotstxt.FromBytes(body)
	if err != nil {
		rc.logger.Debug("robots parse failed, allowing all", "origin", origin, "error", err)
		return nil
	}

	return data.FindGroup(rc.userAgent)
}
