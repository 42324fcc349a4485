package counter

import (
	"log/slog"
	"strings"
)

// LineCounter implements line counting over terminator-delimited segments.
// A line ends at "\n", with an immediately preceding "\r" stripped so that
// "\r\n" input tallies the same as "\n" input. Empty segments between
// consecutive terminators count as lines; a trailing terminator does not open
// a final empty line, and empty input has no lines at all.
type LineCounter struct{}

// NewLineCounter creates a new LineCounter instance.
func NewLineCounter() Tallier {
	return &LineCounter{}
}

// Count returns the number of line segments in the given text.
func (lc *LineCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	lineCount := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		// the final segment carries no terminator but still counts
		lineCount++
	}

	slog.Debug("Line count calculated", "textLength", len(text), "lineCount", lineCount)
	return lineCount
}

// Tally returns the occurrence count of each distinct line in the given text.
func (lc *LineCounter) Tally(text string) Frequency {
	freq := make(Frequency)
	for rest := text; rest != ""; {
		var line string
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line = strings.TrimSuffix(rest[:i], "\r")
			rest = rest[i+1:]
		} else {
			line = rest
			rest = ""
		}
		freq.Add(line)
	}

	slog.Debug("Line frequencies tallied", "textLength", len(text), "distinctLines", len(freq))
	return freq
}

// Name returns the name of this counting method for logging and debugging.
func (lc *LineCounter) Name() string {
	return "lines"
}
