package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"JaundiceRate/internal/analyzer"
	"JaundiceRate/internal/config"
	"JaundiceRate/internal/domain"
	"JaundiceRate/internal/infrastructure/feed"
	"JaundiceRate/internal/infrastructure/fetcher"
	"JaundiceRate/internal/infrastructure/scheduler"
	"JaundiceRate/internal/lexicon"
	"JaundiceRate/internal/logging"
	"JaundiceRate/internal/metrics"
	"JaundiceRate/internal/sanitizer"
	"JaundiceRate/internal/server"
	"JaundiceRate/internal/textproc"
	"JaundiceRate/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg      config.Config
	logger   *slog.Logger
	metrics  *metrics.Metrics
	fetcher  *fetcher.Client
	pipeline *usecase.Pipeline
}

// New loads the lexicon once and builds the shared pipeline.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	lex, err := lexicon.Load(cfg.Lexicon.Dir, textproc.Normalize)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	baseLogger.Debug("lexicon loaded", "dir", cfg.Lexicon.Dir, "words", lex.Len())

	return NewWithLexicon(cfg, lex, baseLogger), nil
}

// NewWithLexicon builds the application around an already loaded lexicon.
func NewWithLexicon(cfg config.Config, lex *lexicon.Lexicon, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	m := metrics.New()
	registry := sanitizer.NewDefaultRegistry(cfg.Hosts()...)
	client := fetcher.New(nil, fetcher.Options{
		UserAgent:    cfg.Fetch.UserAgent,
		MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
	})

	textAnalyzer := analyzer.New(analyzer.Config{
		LocalTimeout: cfg.Analysis.LocalTimeout.Std(),
		Workers:      cfg.Analysis.Workers,
	}, analyzer.Deps{
		Tokenizer: textproc.NewTokenizer(),
		Lexicon:   lex,
		Metrics:   m,
		Logger:    baseLogger.With("component", "analyzer"),
	})

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Registry:      registry,
		Fetcher:       client,
		Analyzer:      textAnalyzer,
		RemoteTimeout: cfg.Fetch.RemoteTimeout.Std(),
		Metrics:       m,
		Logger:        baseLogger.With("component", "pipeline"),
	})

	return &Application{
		cfg:      cfg,
		logger:   baseLogger,
		metrics:  m,
		fetcher:  client,
		pipeline: pipeline,
	}
}

// Rate processes one batch of URLs.
func (a *Application) Rate(ctx context.Context, urls []string) []domain.ArticleResult {
	return a.pipeline.ProcessAll(ctx, urls)
}

// FeedLinks expands an RSS/Atom feed into article URLs.
func (a *Application) FeedLinks(ctx context.Context, feedURL string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Fetch.RemoteTimeout.Std())
	defer cancel()
	return feed.NewReader(a.fetcher).Links(ctx, feedURL)
}

// Watch re-rates the feed every interval and hands each round to report
// until ctx is cancelled.
func (a *Application) Watch(ctx context.Context, feedURL string, interval time.Duration, report func(time.Time, []domain.ArticleResult)) error {
	if interval <= 0 {
		interval = a.cfg.Watch.Interval.Std()
	}

	watcher := usecase.NewFeedWatcher(
		scheduler.NewTickerScheduler(interval),
		feedLinks{app: a},
		a.pipeline,
		feedURL,
		report,
		a.logger.With("component", "watcher"),
	)
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return watcher.Stop(stopCtx)
}

type feedLinks struct {
	app *Application
}

func (f feedLinks) Links(ctx context.Context, feedURL string) ([]string, error) {
	return f.app.FeedLinks(ctx, feedURL)
}

// Serve runs the HTTP service until ctx is cancelled.
func (a *Application) Serve(ctx context.Context) error {
	srv := server.New(server.Config{
		Addr:    a.cfg.Server.Addr,
		MaxURLs: a.cfg.Server.MaxURLs,
	}, a.pipeline, a.metrics, a.logger.With("component", "server"))
	return srv.Run(ctx)
}
