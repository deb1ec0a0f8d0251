package lexicon

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	negativeFile = "negative_words.txt"
	positiveFile = "positive_words.txt"
)

// Normalizer maps a dictionary word to the form produced by the tokenizer.
type Normalizer func(word string) string

// Lexicon is an immutable set of charged words. It is safe for concurrent reads.
type Lexicon struct {
	words map[string]struct{}
}

// New builds a lexicon from the given words; normalize may be nil.
func New(normalize Normalizer, words ...string) *Lexicon {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if normalize != nil {
			w = normalize(w)
		}
		set[w] = struct{}{}
	}
	return &Lexicon{words: set}
}

// Load reads the negative and positive word lists from dir and merges them.
func Load(dir string, normalize Normalizer) (*Lexicon, error) {
	var words []string
	for _, name := range []string{negativeFile, positiveFile} {
		list, err := readWords(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		words = append(words, list...)
	}
	return New(normalize, words...), nil
}

// Contains reports whether word is a charged word.
func (l *Lexicon) Contains(word string) bool {
	if l == nil {
		return false
	}
	_, ok := l.words[word]
	return ok
}

// Len returns the number of distinct charged words.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

func readWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var words []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return words, nil
}
