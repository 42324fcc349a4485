// Package render provides output formatting operations;
// handles plain text, Markdown, and JSON renderings of frequency tables.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode"

	"github.com/chriscorrea/tally/internal/counter"
)

// Sort selects the ordering of rendered table rows.
type Sort int

const (
	// ByCount orders rows by descending count, ties broken by unit.
	ByCount Sort = iota
	// ByUnit orders rows lexicographically by unit.
	ByUnit
)

// String returns a human-readable name for the sort order.
func (s Sort) String() string {
	switch s {
	case ByCount:
		return "count"
	case ByUnit:
		return "unit"
	default:
		return "unknown"
	}
}

// ParseSort maps a command-line sort value to a Sort order.
func ParseSort(value string) (Sort, error) {
	switch value {
	case "count":
		return ByCount, nil
	case "unit":
		return ByUnit, nil
	default:
		return ByCount, fmt.Errorf("unknown sort order %q (valid: count, unit)", value)
	}
}

// Options controls row ordering and truncation for all table formats.
type Options struct {
	Sort Sort
	Top  int // limit output to the first N rows; 0 means no limit
}

// orderedEntries returns the table rows in render order, truncated to Top
func orderedEntries(freq counter.Frequency, opts Options) []counter.Entry {
	entries := freq.Entries()

	switch opts.Sort {
	case ByUnit:
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Unit < entries[j].Unit
		})
	default:
		// sort by count (highest first); ties break on unit so output is deterministic
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Count != entries[j].Count {
				return entries[i].Count > entries[j].Count
			}
			return entries[i].Unit < entries[j].Unit
		})
	}

	if opts.Top > 0 && opts.Top < len(entries) {
		entries = entries[:opts.Top]
	}

	return entries
}

// quoteUnit makes whitespace and control characters visible in table cells;
// the empty line and the newline character would otherwise render as blanks
func quoteUnit(unit string) string {
	if unit == "" {
		return strconv.Quote(unit)
	}
	for _, r := range unit {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return strconv.Quote(unit)
		}
	}
	return unit
}

// Text writes the frequency table as two aligned columns of unit and count.
func Text(w io.Writer, freq counter.Frequency, opts Options) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, entry := range orderedEntries(freq, opts) {
		fmt.Fprintf(tw, "%s\t%d\n", quoteUnit(entry.Unit), entry.Count)
	}
	return tw.Flush()
}

// Markdown writes the frequency table as a pipe table with a header row.
func Markdown(w io.Writer, freq counter.Frequency, opts Options) error {
	var b strings.Builder
	b.WriteString("| unit | count |\n")
	b.WriteString("| --- | ---: |\n")
	for _, entry := range orderedEntries(freq, opts) {
		// escape pipes so units cannot break the table structure
		unit := strings.ReplaceAll(quoteUnit(entry.Unit), "|", "\\|")
		fmt.Fprintf(&b, "| %s | %d |\n", unit, entry.Count)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes the frequency table as a single object mapping units to counts.
// Sort and Top still control which entries are included; key order within the
// object follows encoding/json, which emits map keys sorted.
func JSON(w io.Writer, freq counter.Frequency, opts Options) error {
	selected := make(map[string]int, len(freq))
	for _, entry := range orderedEntries(freq, opts) {
		selected[entry.Unit] = entry.Count
	}

	return json.NewEncoder(w).Encode(selected)
}
