// Package counter provides unit counting and frequency tallying for the tally CLI tool.
//
// This package implements the three unit-splitting policies the tool exposes:
// character counting (every rune, whitespace included), word counting
// (whitespace-separated tokens, taken verbatim), and line counting
// (terminator-delimited segments). Each policy reports a total through the
// Counter interface and a per-unit occurrence table through the Tallier
// interface.
//
// Usage Example:
//
//	tallier := counter.NewTallier(counter.Words)
//	freq := tallier.Tally("aa bb aa")
//	// freq["aa"] == 2, freq["bb"] == 1
//
// A token counter (using OpenAI's tiktoken with the cl100k_base encoding) is
// also provided for aggregate totals; tokens are not a frequency unit, so it
// implements only the Counter side.
package counter

// Counter defines the interface for text counting strategies that report totals.
type Counter interface {
	// Count returns the number of units (characters, words, lines, or tokens) in given text.
	Count(text string) int

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// Tallier extends Counter with per-unit occurrence counting.
type Tallier interface {
	Counter

	// Tally returns a fresh table mapping each distinct unit in the given
	// text to the number of times it occurs.
	Tally(text string) Frequency
}

// CountingMethod represents the different available counting strategies.
type CountingMethod int

const (
	// Words counts whitespace-separated words (default)
	Words CountingMethod = iota
	// Characters counts individual characters including whitespace
	Characters
	// Lines counts terminator-delimited line segments
	Lines
)

// String returns the string representation of the counting method.
func (cm CountingMethod) String() string {
	switch cm {
	case Words:
		return "words"
	case Characters:
		return "characters"
	case Lines:
		return "lines"
	default:
		return "unknown"
	}
}

// NewTallier creates a new Tallier instance based on the specified method.
// This functions as a factory; it returns concrete counter types, providing a
// single, simple entry point to get a frequency-capable counter. The three
// splitting policies cannot fail to initialize, so unlike token counting no
// error is involved; unrecognized methods fall back to word counting.
func NewTallier(method CountingMethod) Tallier {
	switch method {
	case Characters:
		return NewCharCounter()
	case Lines:
		return NewLineCounter()
	case Words:
		return NewWordCounter()
	default:
		return NewWordCounter() // fallback to default
	}
}
