package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"JaundiceRate/internal/domain"
	"JaundiceRate/internal/metrics"
	"JaundiceRate/internal/ports"
	"JaundiceRate/internal/textproc"
)

// DefaultLocalTimeout bounds sanitize+tokenize+score for one article.
// Real tokenization of a long article takes hundreds of milliseconds.
const DefaultLocalTimeout = 3 * time.Second

var (
	// ErrLocalTimeout reports that analysis did not finish within the local budget.
	ErrLocalTimeout = errors.New("local analysis timeout")
	// ErrParsing reports that the sanitizer could not extract article text.
	ErrParsing = errors.New("article parsing failed")
	// ErrInternal reports an unexpected defect in the sanitizer or tokenizer.
	ErrInternal = errors.New("internal analysis error")
)

// Config tunes the analysis budget and parallelism.
type Config struct {
	LocalTimeout time.Duration
	Workers      int
}

// Deps wires collaborators into the analyzer.
type Deps struct {
	Tokenizer ports.Tokenizer
	Lexicon   textproc.WordSet
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
}

// Analyzer scores article HTML. Work runs on a bounded set of worker
// slots so CPU-heavy tokenization never blocks the calling pipeline
// past its local budget.
type Analyzer struct {
	tokenizer ports.Tokenizer
	lexicon   textproc.WordSet
	timeout   time.Duration
	slots     chan struct{}
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

var _ ports.Analyzer = (*Analyzer)(nil)

type outcome struct {
	analysis domain.Analysis
	err      error
}

// New builds an analyzer; zero config values fall back to defaults.
func New(cfg Config, deps Deps) *Analyzer {
	if cfg.LocalTimeout <= 0 {
		cfg.LocalTimeout = DefaultLocalTimeout
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Analyzer{
		tokenizer: deps.Tokenizer,
		lexicon:   deps.Lexicon,
		timeout:   cfg.LocalTimeout,
		slots:     make(chan struct{}, cfg.Workers),
		metrics:   deps.Metrics,
		logger:    deps.Logger,
	}
}

// Analyze sanitizes html, tokenizes the text and scores it against the lexicon.
func (a *Analyzer) Analyze(ctx context.Context, html string, sanitize func(string) (string, error)) (result domain.Analysis, err error) {
	start := time.Now()
	defer func() { a.record(time.Since(start), result, err) }()

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	select {
	case a.slots <- struct{}{}:
	case <-ctx.Done():
		return domain.Analysis{}, interrupted(ctx, "waiting for worker")
	}

	done := make(chan outcome, 1)
	go func() {
		defer func() { <-a.slots }()
		done <- a.run(ctx, html, sanitize)
	}()

	select {
	case out := <-done:
		return out.analysis, out.err
	case <-ctx.Done():
		return domain.Analysis{}, interrupted(ctx, "analysis")
	}
}

func (a *Analyzer) run(ctx context.Context, html string, sanitize func(string) (string, error)) (out outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = outcome{err: fmt.Errorf("%w: panic: %v", ErrInternal, r)}
		}
	}()

	text, err := sanitize(html)
	if err != nil {
		return outcome{err: fmt.Errorf("%w: %w", ErrParsing, err)}
	}

	words, err := a.tokenizer.SplitWords(ctx, text)
	if err != nil {
		if ctx.Err() != nil {
			return outcome{err: interrupted(ctx, "split words")}
		}
		return outcome{err: fmt.Errorf("%w: split words: %w", ErrInternal, err)}
	}

	return outcome{analysis: domain.Analysis{
		Score:     textproc.CalculateJaundiceRate(words, a.lexicon),
		WordCount: len(words),
	}}
}

func (a *Analyzer) record(elapsed time.Duration, result domain.Analysis, err error) {
	label := outcomeLabel(err)
	a.metrics.ObserveAnalysis(label, elapsed)
	if a.logger != nil {
		a.logger.Debug("analysis finished",
			"outcome", label,
			"elapsed", elapsed,
			"words", result.WordCount)
	}
}

// interrupted reports a done ctx: an expired budget is a local timeout,
// a cancelled caller is passed through as is.
func interrupted(ctx context.Context, stage string) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %w", ErrLocalTimeout, stage, ctx.Err())
	}
	return fmt.Errorf("%s: %w", stage, ctx.Err())
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrLocalTimeout):
		return "local_timeout"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.Is(err, ErrParsing):
		return "parsing_error"
	default:
		return "internal_error"
	}
}
