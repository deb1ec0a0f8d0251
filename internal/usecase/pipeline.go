package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"golang.org/x/sync/errgroup"

	"JaundiceRate/internal/analyzer"
	"JaundiceRate/internal/domain"
	"JaundiceRate/internal/metrics"
	"JaundiceRate/internal/ports"
	"JaundiceRate/internal/sanitizer"
)

// DefaultRemoteTimeout bounds the download of one article.
const DefaultRemoteTimeout = 2 * time.Second

// PipelineDeps wires collaborators into the rating pipeline.
type PipelineDeps struct {
	Registry      *sanitizer.Registry
	Fetcher       ports.PageFetcher
	Analyzer      ports.Analyzer
	RemoteTimeout time.Duration
	Metrics       *metrics.Metrics
	Logger        *slog.Logger
}

// Pipeline rates articles: resolve host, fetch page, analyze text.
type Pipeline struct {
	registry      *sanitizer.Registry
	fetcher       ports.PageFetcher
	analyzer      ports.Analyzer
	remoteTimeout time.Duration
	metrics       *metrics.Metrics
	logger        *slog.Logger
}

var _ ports.BatchProcessor = (*Pipeline)(nil)

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	if deps.RemoteTimeout <= 0 {
		deps.RemoteTimeout = DefaultRemoteTimeout
	}
	return &Pipeline{
		registry:      deps.Registry,
		fetcher:       deps.Fetcher,
		analyzer:      deps.Analyzer,
		remoteTimeout: deps.RemoteTimeout,
		metrics:       deps.Metrics,
		logger:        deps.Logger,
	}
}

// ProcessAll rates every URL concurrently and returns one result per URL
// in input order. It returns once every article reached a terminal status.
func (p *Pipeline) ProcessAll(ctx context.Context, urls []string) []domain.ArticleResult {
	results := make([]domain.ArticleResult, len(urls))
	if len(urls) == 0 {
		return results
	}
	defer p.fetcher.CloseIdleConnections()

	started := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			results[i] = p.ProcessArticle(gctx, u)
			return nil
		})
	}
	_ = g.Wait()

	p.debug("batch finished", "urls", len(urls), "elapsed", time.Since(started))
	return results
}

// ProcessArticle runs a single URL to its terminal status. Failures never
// escape: each one is reported through the result status.
func (p *Pipeline) ProcessArticle(ctx context.Context, rawURL string) (result domain.ArticleResult) {
	defer func() {
		if r := recover(); r != nil {
			result = p.finish(rawURL, domain.StatusInternalError, fmt.Errorf("panic: %v", r))
		}
	}()

	host, err := ResolveHost(rawURL)
	if err != nil {
		return p.finish(rawURL, domain.StatusBadURL, err)
	}

	sanitize, ok := p.registry.Resolve(host)
	if !ok {
		return p.finish(rawURL, domain.StatusParsingError, fmt.Errorf("no sanitizer for host %s", host))
	}

	html, status, err := p.fetch(ctx, rawURL)
	if err != nil {
		return p.finish(rawURL, status, err)
	}

	analysis, err := p.analyzer.Analyze(ctx, html, sanitize)
	if err != nil {
		return p.finish(rawURL, analysisStatus(err), err)
	}

	res := domain.Succeeded(rawURL, analysis.Score, analysis.WordCount)
	p.metrics.ObserveResult(res.Status)
	p.info("article rated", "url", rawURL, "score", analysis.Score, "words", analysis.WordCount)
	return res
}

func (p *Pipeline) fetch(ctx context.Context, rawURL string) (string, domain.ProcessingStatus, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, p.remoteTimeout)
	defer cancel()

	started := time.Now()
	html, err := p.fetcher.Fetch(fetchCtx, rawURL)
	if err == nil {
		p.metrics.ObserveFetch("ok", time.Since(started))
		return html, domain.StatusOK, nil
	}

	status := domain.StatusFetchError
	if errors.Is(fetchCtx.Err(), context.DeadlineExceeded) || isTimeout(err) {
		status = domain.StatusRemoteTimeout
	}
	p.metrics.ObserveFetch(string(status), time.Since(started))
	return "", status, fmt.Errorf("fetch %s: %w", rawURL, err)
}

func (p *Pipeline) finish(rawURL string, status domain.ProcessingStatus, err error) domain.ArticleResult {
	p.metrics.ObserveResult(status)
	p.info("article not rated", "url", rawURL, "status", status, "error", err)
	return domain.Failed(rawURL, status)
}

func analysisStatus(err error) domain.ProcessingStatus {
	switch {
	case errors.Is(err, analyzer.ErrLocalTimeout):
		return domain.StatusLocalTimeout
	case errors.Is(err, analyzer.ErrParsing):
		return domain.StatusParsingError
	default:
		return domain.StatusInternalError
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) debug(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
