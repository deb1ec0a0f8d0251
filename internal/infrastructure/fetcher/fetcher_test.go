package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchReturnsBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<p>Привет</p>"))
	}))
	defer server.Close()

	c := New(nil, Options{UserAgent: "test-agent"})
	body, err := c.Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "<p>Привет</p>", body)
	c.CloseIdleConnections()
}

func TestFetchDecodesLegacyCharset(t *testing.T) {
	t.Parallel()

	// "Мир" in windows-1251.
	cp1251 := []byte{0xCC, 0xE8, 0xF0}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=windows-1251")
		_, _ = w.Write(cp1251)
	}))
	defer server.Close()

	body, err := New(nil, Options{}).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Мир", body)
}

func TestFetchNon2xxIsStatusError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := New(nil, Options{}).Fetch(context.Background(), server.URL)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestFetchAcceptsSelfSignedTLS(t *testing.T) {
	t.Parallel()

	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	body, err := New(nil, Options{}).Fetch(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", body)
}

func TestFetchHonorsDeadline(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := New(nil, Options{}).Fetch(ctx, server.URL)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFetchConnectionRefused(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	addr := server.URL
	server.Close()

	_, err := New(nil, Options{}).Fetch(context.Background(), addr)
	assert.Error(t, err)
}
