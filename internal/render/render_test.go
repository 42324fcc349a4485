package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chriscorrea/tally/internal/counter"
	"github.com/chriscorrea/tally/internal/render"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expected    render.Sort
		expectError bool
	}{
		{"count order", "count", render.ByCount, false},
		{"unit order", "unit", render.ByUnit, false},
		{"unknown order", "alphabetical", render.ByCount, true},
		{"empty order", "", render.ByCount, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := render.ParseSort(tt.value)

			if tt.expectError {
				if err == nil {
					t.Fatalf("ParseSort(%q) expected error but got none", tt.value)
				}
				if !strings.Contains(err.Error(), tt.value) {
					t.Errorf("ParseSort(%q) error = %v, expected the value in the message", tt.value, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseSort(%q) error = %v, expected no error", tt.value, err)
			}
			if result != tt.expected {
				t.Errorf("ParseSort(%q) = %v, want %v", tt.value, result, tt.expected)
			}
		})
	}
}

func TestSortString(t *testing.T) {
	tests := []struct {
		sort     render.Sort
		expected string
	}{
		{render.ByCount, "count"},
		{render.ByUnit, "unit"},
		{render.Sort(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.sort.String(); got != tt.expected {
				t.Errorf("Sort.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		freq     counter.Frequency
		opts     render.Options
		expected string
	}{
		{
			name:     "by count descending",
			freq:     counter.Frequency{"aa": 2, "bb": 1},
			opts:     render.Options{},
			expected: "aa  2\nbb  1\n",
		},
		{
			name:     "count ties break by unit",
			freq:     counter.Frequency{"b": 1, "a": 1},
			opts:     render.Options{},
			expected: "a  1\nb  1\n",
		},
		{
			name:     "by unit",
			freq:     counter.Frequency{"b": 2, "a": 1},
			opts:     render.Options{Sort: render.ByUnit},
			expected: "a  1\nb  2\n",
		},
		{
			name:     "top limits rows",
			freq:     counter.Frequency{"a": 3, "b": 2, "c": 1},
			opts:     render.Options{Top: 2},
			expected: "a  3\nb  2\n",
		},
		{
			name:     "top larger than table",
			freq:     counter.Frequency{"a": 1},
			opts:     render.Options{Top: 10},
			expected: "a  1\n",
		},
		{
			name:     "empty table",
			freq:     counter.Frequency{},
			opts:     render.Options{},
			expected: "",
		},
		{
			name:     "empty unit is quoted",
			freq:     counter.Frequency{"": 2},
			opts:     render.Options{},
			expected: "\"\"  2\n",
		},
		{
			name:     "whitespace unit is quoted",
			freq:     counter.Frequency{" ": 1, "a": 2},
			opts:     render.Options{},
			expected: "a    2\n\" \"  1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := render.Text(&buf, tt.freq, tt.opts); err != nil {
				t.Fatalf("Text() error = %v, expected no error", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("Text() = %q, want %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		freq     counter.Frequency
		opts     render.Options
		expected string
	}{
		{
			name: "basic table",
			freq: counter.Frequency{"aa": 2, "bb": 1},
			opts: render.Options{},
			expected: "| unit | count |\n" +
				"| --- | ---: |\n" +
				"| aa | 2 |\n" +
				"| bb | 1 |\n",
		},
		{
			name: "pipes are escaped",
			freq: counter.Frequency{"a|b": 1},
			opts: render.Options{},
			expected: "| unit | count |\n" +
				"| --- | ---: |\n" +
				"| a\\|b | 1 |\n",
		},
		{
			name: "empty table keeps header",
			freq: counter.Frequency{},
			opts: render.Options{},
			expected: "| unit | count |\n" +
				"| --- | ---: |\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := render.Markdown(&buf, tt.freq, tt.opts); err != nil {
				t.Fatalf("Markdown() error = %v, expected no error", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("Markdown() = %q, want %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name     string
		freq     counter.Frequency
		opts     render.Options
		expected string
	}{
		{
			name:     "basic object",
			freq:     counter.Frequency{"aa": 2, "bb": 1},
			opts:     render.Options{},
			expected: "{\"aa\":2,\"bb\":1}\n",
		},
		{
			name:     "empty object",
			freq:     counter.Frequency{},
			opts:     render.Options{},
			expected: "{}\n",
		},
		{
			name:     "top limits entries",
			freq:     counter.Frequency{"a": 3, "b": 2, "c": 1},
			opts:     render.Options{Top: 2},
			expected: "{\"a\":3,\"b\":2}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := render.JSON(&buf, tt.freq, tt.opts); err != nil {
				t.Fatalf("JSON() error = %v, expected no error", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("JSON() = %q, want %q", buf.String(), tt.expected)
			}
		})
	}
}

// summaryLines collapses the tabwriter padding so expectations do not
// depend on column widths
func summaryLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSuffix(raw, "\n"), "\n") {
		lines = append(lines, strings.Join(strings.Fields(line), " "))
	}
	return lines
}

func TestWriteSummary(t *testing.T) {
	tests := []struct {
		name     string
		summary  render.Summary
		expected []string
	}{
		{
			name: "without tokens",
			summary: render.Summary{
				Sources:    1,
				Characters: 11,
				Words:      3,
				Lines:      1,
				HasTokens:  false,
				Distinct:   2,
				Method:     "words",
			},
			expected: []string{
				"sources 1",
				"characters 11",
				"words 3",
				"lines 1",
				"distinct words 2",
			},
		},
		{
			name: "with tokens",
			summary: render.Summary{
				Sources:    2,
				Characters: 20,
				Words:      5,
				Lines:      2,
				Tokens:     7,
				HasTokens:  true,
				Distinct:   4,
				Method:     "lines",
			},
			expected: []string{
				"sources 2",
				"characters 20",
				"words 5",
				"lines 2",
				"tokens (cl100k_base) 7",
				"distinct lines 4",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := render.WriteSummary(&buf, tt.summary); err != nil {
				t.Fatalf("WriteSummary() error = %v, expected no error", err)
			}

			lines := summaryLines(buf.String())
			if len(lines) != len(tt.expected) {
				t.Fatalf("WriteSummary() produced %d lines, want %d: %q", len(lines), len(tt.expected), buf.String())
			}
			for i, want := range tt.expected {
				if lines[i] != want {
					t.Errorf("WriteSummary() line %d = %q, want %q", i, lines[i], want)
				}
			}
		})
	}
}
