package textproc

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/kljensen/snowball/russian"
)

const (
	asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	minWordLength    = 3
	negation         = "не"
	// checkEvery controls how often SplitWords polls its context.
	checkEvery = 64
)

var quoteCleaner = strings.NewReplacer("«", "", "»", "", "…", "")

// Tokenizer splits plain text into normalized words.
// It keeps no mutable state, so one instance may serve every pipeline.
type Tokenizer struct{}

// NewTokenizer returns the Russian snowball tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// SplitWords tokenizes text and aborts with ctx.Err() once ctx is done.
func (t *Tokenizer) SplitWords(ctx context.Context, text string) ([]string, error) {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for i, raw := range fields {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		word := strings.ToLower(cleanWord(raw))
		if utf8.RuneCountInString(word) >= minWordLength || word == negation {
			words = append(words, Normalize(word))
		}
	}
	return words, nil
}

// Normalize lower-cases a word and reduces it to its stem.
func Normalize(word string) string {
	word = strings.ToLower(word)
	if word == "" {
		return ""
	}
	return russian.Stem(word, false)
}

func cleanWord(word string) string {
	word = quoteCleaner.Replace(word)
	return strings.Trim(word, asciiPunctuation)
}
