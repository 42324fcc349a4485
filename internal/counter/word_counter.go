package counter

import (
	"log/slog"
	"strings"
)

// WordCounter implements word counting using whitespace splitting.
// Words are taken verbatim: no case folding and no punctuation stripping.
type WordCounter struct{}

// NewWordCounter creates a new WordCounter instance.
func NewWordCounter() Tallier {
	return &WordCounter{}
}

// Count returns the number of words in the given text using strings.Fields()
// This method splits on any Unicode whitespace and filters out empty strings.
func (wc *WordCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	// strings.Fields splits on whitespace and filters empty strings
	words := strings.Fields(text)
	wordCount := len(words)

	slog.Debug("Word count calculated", "textLength", len(text), "wordCount", wordCount)
	return wordCount
}

// Tally returns the occurrence count of each whitespace-separated word in the
// given text. Keys are never empty and never contain whitespace.
func (wc *WordCounter) Tally(text string) Frequency {
	freq := make(Frequency)
	for _, word := range strings.Fields(text) {
		freq.Add(word)
	}

	slog.Debug("Word frequencies tallied", "textLength", len(text), "distinctWords", len(freq))
	return freq
}

// Name returns the name of this counting method for logging and debugging.
func (wc *WordCounter) Name() string {
	return "words"
}
