package app

import (
	"log/slog"

	"github.com/chriscorrea/tally/internal/counter"
	"github.com/chriscorrea/tally/internal/render"
)

// statsAccumulator tracks per-run totals across every counting method for
// the --stats summary.
type statsAccumulator struct {
	chars  counter.Counter
	words  counter.Counter
	lines  counter.Counter
	tokens counter.Counter // nil when the encoding is unavailable

	sources    int
	charTotal  int
	wordTotal  int
	lineTotal  int
	tokenTotal int
}

func newStatsAccumulator() *statsAccumulator {
	s := &statsAccumulator{
		chars: counter.NewCharCounter(),
		words: counter.NewWordCounter(),
		lines: counter.NewLineCounter(),
	}

	// token counting is best effort; the cl100k_base tables may be unavailable offline
	tokens, err := counter.NewTokenCounter()
	if err != nil {
		slog.Debug("Token encoder unavailable, summary will omit tokens", "error", err)
	} else {
		s.tokens = tokens
	}

	return s
}

// observe folds one source's text into the running totals.
func (s *statsAccumulator) observe(text string) {
	s.sources++
	s.charTotal += s.chars.Count(text)
	s.wordTotal += s.words.Count(text)
	s.lineTotal += s.lines.Count(text)
	if s.tokens != nil {
		s.tokenTotal += s.tokens.Count(text)
	}
}

// summary assembles the totals report for the given combined table.
func (s *statsAccumulator) summary(method string, table counter.Frequency) render.Summary {
	return render.Summary{
		Sources:    s.sources,
		Characters: s.charTotal,
		Words:      s.wordTotal,
		Lines:      s.lineTotal,
		Tokens:     s.tokenTotal,
		HasTokens:  s.tokens != nil,
		Distinct:   len(table),
		Method:     method,
	}
}
