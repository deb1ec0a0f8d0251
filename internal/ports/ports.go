package ports

import (
	"context"
	"time"

	"JaundiceRate/internal/domain"
)

// PageFetcher downloads raw article HTML over a shared connection pool.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	CloseIdleConnections()
}

// Tokenizer splits plain text into normalized words. Implementations must
// be reentrant and return promptly once ctx is done.
type Tokenizer interface {
	SplitWords(ctx context.Context, text string) ([]string, error)
}

// Analyzer turns raw HTML into a jaundice score under a local time budget.
type Analyzer interface {
	Analyze(ctx context.Context, html string, sanitize func(string) (string, error)) (domain.Analysis, error)
}

// BatchProcessor rates a batch of URLs, one result per input URL.
type BatchProcessor interface {
	ProcessAll(ctx context.Context, urls []string) []domain.ArticleResult
}

// LinkSource expands a feed into article URLs.
type LinkSource interface {
	Links(ctx context.Context, feedURL string) ([]string, error)
}

// Scheduler triggers a job repeatedly until stopped or ctx is done.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
