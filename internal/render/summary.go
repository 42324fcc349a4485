package render

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Summary aggregates the per-run totals reported by the --stats flag.
type Summary struct {
	Sources    int
	Characters int
	Words      int
	Lines      int
	Tokens     int
	HasTokens  bool // token encoding may be unavailable offline
	Distinct   int
	Method     string // name of the counting method behind Distinct
}

// WriteSummary writes the totals block as aligned label/value rows.
// Callers typically direct this to stderr so the frequency table on
// stdout stays pipeable.
func WriteSummary(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "sources\t%d\n", s.Sources)
	fmt.Fprintf(tw, "characters\t%d\n", s.Characters)
	fmt.Fprintf(tw, "words\t%d\n", s.Words)
	fmt.Fprintf(tw, "lines\t%d\n", s.Lines)
	if s.HasTokens {
		fmt.Fprintf(tw, "tokens (cl100k_base)\t%d\n", s.Tokens)
	}
	fmt.Fprintf(tw, "distinct %s\t%d\n", s.Method, s.Distinct)
	return tw.Flush()
}
