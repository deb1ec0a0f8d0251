package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSkipsBlanksAndLowercases(t *testing.T) {
	t.Parallel()

	lex := New(nil, "Плохой", "", "  ", "хороший")
	assert.Equal(t, 2, lex.Len())
	assert.True(t, lex.Contains("плохой"))
	assert.True(t, lex.Contains("хороший"))
	assert.False(t, lex.Contains("Плохой"))
}

func TestNewAppliesNormalizer(t *testing.T) {
	t.Parallel()

	lex := New(func(w string) string { return strings.TrimSuffix(w, "s") }, "words", "bad")
	assert.True(t, lex.Contains("word"))
	assert.True(t, lex.Contains("bad"))
}

func TestLoadMergesBothLists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, negativeFile), []byte("ужас\nкошмар\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, positiveFile), []byte("восторг\n\n"), 0o600))

	lex, err := Load(dir, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, lex.Len())
	assert.True(t, lex.Contains("кошмар"))
	assert.True(t, lex.Contains("восторг"))
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(t.TempDir(), nil)
	assert.Error(t, err)
}

func TestNilLexicon(t *testing.T) {
	t.Parallel()

	var lex *Lexicon
	assert.False(t, lex.Contains("x"))
	assert.Zero(t, lex.Len())
}
