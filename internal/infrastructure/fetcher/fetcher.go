package fetcher

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"JaundiceRate/internal/ports"
)

const (
	defaultUserAgent    = "JaundiceRate/1.0"
	defaultMaxBodyBytes = int64(5 << 20)
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %s", e.Status)
}

// Options tunes request headers and body limits.
type Options struct {
	UserAgent    string
	MaxBodyBytes int64
}

// Client downloads article pages over a shared connection pool.
type Client struct {
	http      *http.Client
	userAgent string
	maxBody   int64
}

var _ ports.PageFetcher = (*Client)(nil)

// NewHTTPClient builds the pooled client used for article downloads.
// Certificate verification is disabled: several covered sources serve
// broken chains. Deadlines come from the caller's context.
func NewHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
	transport.MaxIdleConnsPerHost = 16
	transport.IdleConnTimeout = 30 * time.Second
	return &http.Client{Transport: transport}
}

// New wires an HTTP client; a nil client gets NewHTTPClient.
func New(client *http.Client, opts Options) *Client {
	if client == nil {
		client = NewHTTPClient()
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	return &Client{http: client, userAgent: opts.UserAgent, maxBody: opts.MaxBodyBytes}
}

// Fetch performs a GET and returns the page decoded to UTF-8.
func (c *Client) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, c.maxBody), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("detect charset: %w", err)
	}

	page, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(page), nil
}

// CloseIdleConnections releases pooled connections once a batch is done.
func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}
