package counter

import (
	"log/slog"
	"unicode/utf8"
)

// CharCounter implements character counting using UTF-8 rune handling.
// Every rune is a unit, including whitespace and line terminators; bytes that
// do not form valid UTF-8 fold into the replacement character instead of
// failing the count.
type CharCounter struct{}

// NewCharCounter creates a new CharCounter instance.
func NewCharCounter() Tallier {
	return &CharCounter{}
}

// Count returns the number of UTF-8 characters (runes) in the given text.
func (cc *CharCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	// use utf8.RuneCountInString for proper Unicode character counting
	charCount := utf8.RuneCountInString(text)

	slog.Debug("Character count calculated", "textLength", len(text), "charCount", charCount)
	return charCount
}

// Tally returns the occurrence count of each character in the given text.
func (cc *CharCounter) Tally(text string) Frequency {
	freq := make(Frequency)
	for _, r := range text {
		freq.Add(string(r))
	}

	slog.Debug("Character frequencies tallied", "textLength", len(text), "distinctChars", len(freq))
	return freq
}

// Name returns the name of this counting method for logging and debugging.
func (cc *CharCounter) Name() string {
	return "characters"
}
