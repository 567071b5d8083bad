package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"hn_harvester/internal/fetcher"
)

// Pipeline strings the three stages into one cycle: mirror the feed,
// scrape the newly discovered URLs, embed the freshly scraped articles.
// A failed stage does not stop the later ones; scrape and embed work off
// the persisted backlog and can make progress even when the feed is down.
type Pipeline struct {
	fetch  *FetchService
	scrape *ScrapeService
	embed  *EmbedService
	sel    fetcher.Selection
	logger *slog.Logger
}

func NewPipeline(
	fetch *FetchService,
	scrape *ScrapeService,
	embed *EmbedService,
	sel fetcher.Selection,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		fetch:  fetch,
		scrape: scrape,
		embed:  embed,
		sel:    sel,
		logger: logger.With("service", "pipeline"),
	}
}

func (p *Pipeline) RunCycle(ctx context.Context) error {
	var errs []error

	if _, err := p.fetch.Fetch(ctx, p.sel); err != nil {
		p.logger.Error("fetch stage failed", "error", err)
		errs = append(errs, fmt.Errorf("fetch: %w", err))
	}
	if ctx.Err() != nil {
		return errors.Join(append(errs, ctx.Err())...)
	}

	if _, err := p.scrape.Scrape(ctx, 0); err != nil {
		p.logger.Error("scrape stage failed", "error", err)
		errs = append(errs, fmt.Errorf("scrape: %w", err))
	}
	if ctx.Err() != nil {
		return errors.Join(append(errs, ctx.Err())...)
	}

	if _, err := p.embed.Embed(ctx, 0); err != nil {
		p.logger.Error("embed stage failed", "error", err)
		errs = append(errs, fmt.Errorf("embed: %w", err))
	}

	return errors.Join(errs...)
}
