package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"JaundiceRate/internal/domain"
)

func TestCollectURLs(t *testing.T) {
	t.Parallel()

	urls := collectURLs([]string{"https://a.ru/1", " "}, "https://b.ru/2, ,https://c.ru/3")
	assert.Equal(t, []string{"https://a.ru/1", "https://b.ru/2", "https://c.ru/3"}, urls)

	assert.Empty(t, collectURLs(nil, ""))
}

func TestReadURLsSkipsBlankAndComments(t *testing.T) {
	t.Parallel()

	input := "https://a.ru/1\n\n# comment\n  https://b.ru/2  \n"
	urls, err := readURLs(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.ru/1", "https://b.ru/2"}, urls)
}

func TestWriteJSONKeepsNulls(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	results := []domain.ArticleResult{
		domain.Succeeded("https://inosmi.ru/a.html", 1.5, 200),
		domain.Failed("https://example.com/?a&b", domain.StatusParsingError),
	}
	require.NoError(t, writeJSON(&buf, results))

	assert.JSONEq(t, `[
		{"url":"https://inosmi.ru/a.html","status":"OK","score":1.5,"word count":200},
		{"url":"https://example.com/?a&b","status":"PARSING_ERROR","score":null,"word count":null}
	]`, buf.String())
	assert.Contains(t, buf.String(), "?a&b")
}
