package usecase

import (
	"context"
	"log/slog"
	"time"

	"JaundiceRate/internal/domain"
	"JaundiceRate/internal/ports"
)

// FeedWatcher re-rates the articles of a feed on every scheduler tick.
type FeedWatcher struct {
	driver    ports.Scheduler
	links     ports.LinkSource
	processor ports.BatchProcessor
	feedURL   string
	report    func(time.Time, []domain.ArticleResult)
	logger    *slog.Logger
}

// NewFeedWatcher wires the scheduler driver with the batch pipeline.
func NewFeedWatcher(driver ports.Scheduler, links ports.LinkSource, processor ports.BatchProcessor, feedURL string, report func(time.Time, []domain.ArticleResult), logger *slog.Logger) *FeedWatcher {
	return &FeedWatcher{
		driver:    driver,
		links:     links,
		processor: processor,
		feedURL:   feedURL,
		report:    report,
		logger:    logger,
	}
}

// Start registers the feed round with the scheduler.
func (w *FeedWatcher) Start(ctx context.Context) error {
	if w.driver == nil || w.processor == nil || w.links == nil {
		return nil
	}

	return w.driver.Start(ctx, func(trigger time.Time) {
		w.round(ctx, trigger)
	})
}

// Stop tears down the underlying scheduler.
func (w *FeedWatcher) Stop(ctx context.Context) error {
	if w.driver == nil {
		return nil
	}

	return w.driver.Stop(ctx)
}

func (w *FeedWatcher) round(ctx context.Context, trigger time.Time) {
	urls, err := w.links.Links(ctx, w.feedURL)
	if err != nil {
		if w.logger != nil {
			w.logger.Warn("feed round skipped", "feed", w.feedURL, "error", err)
		}
		return
	}

	results := w.processor.ProcessAll(ctx, urls)
	if w.logger != nil {
		w.logger.Info("feed round finished", "feed", w.feedURL, "articles", len(results))
	}
	if w.report != nil {
		w.report(trigger, results)
	}
}
