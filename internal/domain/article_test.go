package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultInvariant(t *testing.T) {
	t.Parallel()

	ok := Succeeded("https://inosmi.ru/a.html", 12.5, 40)
	require.NotNil(t, ok.Score)
	require.NotNil(t, ok.WordCount)
	assert.Equal(t, 12.5, *ok.Score)
	assert.Equal(t, 40, *ok.WordCount)

	for _, status := range Statuses() {
		if status == StatusOK {
			continue
		}
		failed := Failed("test", status)
		assert.Nil(t, failed.Score, status)
		assert.Nil(t, failed.WordCount, status)
	}
}

func TestResultJSONUsesNulls(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(Failed("test", StatusBadURL))
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"test","status":"BAD_URL","score":null,"word count":null}`, string(raw))
}
