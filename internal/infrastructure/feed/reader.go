package feed

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"JaundiceRate/internal/ports"
)

// Reader turns an RSS/Atom feed into article URLs.
type Reader struct {
	fetcher ports.PageFetcher
}

var _ ports.LinkSource = (*Reader)(nil)

// NewReader reuses the article fetcher for feed downloads.
func NewReader(fetcher ports.PageFetcher) *Reader {
	return &Reader{fetcher: fetcher}
}

// Links returns unique item links in feed order.
func (r *Reader) Links(ctx context.Context, feedURL string) ([]string, error) {
	body, err := r.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", feedURL, err)
	}

	parsed, err := gofeed.NewParser().ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	seen := map[string]struct{}{}
	links := make([]string, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		link := strings.TrimSpace(item.Link)
		if link == "" {
			continue
		}
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		links = append(links, link)
	}
	return links, nil
}
