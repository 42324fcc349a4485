// Package app contains the core application logic for the tally CLI tool.
// It handles the main business logic separated from CLI concerns.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chriscorrea/tally/internal/counter"
	"github.com/chriscorrea/tally/internal/input"
	"github.com/chriscorrea/tally/internal/render"
	"github.com/chriscorrea/tally/internal/spinner"
)

// OutputFormat defines the output format for results
type OutputFormat int

const (
	// plain text output format (default)
	Text OutputFormat = iota
	// Markdown output format
	Markdown
	// JSON output format
	JSON
)

// String returns the string representation of the output
func (f OutputFormat) String() string {
	switch f {
	case Text:
		return "Text"
	case Markdown:
		return "Markdown"
	case JSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// Config holds all configuration options for the tally application.
type Config struct {
	Sources        []string               // file paths, or "-" for stdin
	CountingMethod counter.CountingMethod // unit to tally (words/characters/lines)
	OutputFormat   OutputFormat           // output format (txt/md/json)
	Sort           render.Sort            // row order for the frequency table
	Top            int                    // limit the table to the first N rows; 0 shows all
	ShowStats      bool                   // write a totals summary to stderr
	Quiet          bool                   // suppress progress indicators
	Debug          bool
}

// Run executes the main tally application logic with the given configuration.
//
// Processing Pipeline:
// 1. Tally every source into one combined frequency table (tallySources)
// 2. Write the totals summary to stderr when requested
// 3. Render the frequency table in the configured format
//
// ctx allows for cancellation of runs over many sources.
func Run(ctx context.Context, cfg Config) (string, error) {
	if len(cfg.Sources) == 0 {
		return "", fmt.Errorf("no sources provided")
	}

	tallier := counter.NewTallier(cfg.CountingMethod)
	slog.Debug("Tallier selected", "method", cfg.CountingMethod.String(), "sources", len(cfg.Sources))

	var stats *statsAccumulator
	if cfg.ShowStats {
		stats = newStatsAccumulator()
	}

	combined, err := tallySources(ctx, cfg, tallier, stats)
	if err != nil {
		return "", err
	}

	if stats != nil {
		if err := render.WriteSummary(os.Stderr, stats.summary(tallier.Name(), combined)); err != nil {
			return "", fmt.Errorf("failed to write summary: %w", err)
		}
	}

	return renderTable(combined, cfg)
}

// tallySources reads each source and folds its tally into one combined table.
// Sources are tallied separately, so no artificial units appear at the seams
// between them.
func tallySources(ctx context.Context, cfg Config, tallier counter.Tallier, stats *statsAccumulator) (counter.Frequency, error) {
	// display spinner for longer operations
	var sp *spinner.Spinner
	if !cfg.Quiet {
		sp = spinner.New(ctx, os.Stderr, fmt.Sprintf("Counting %s...", tallier.Name()))
		sp.Start()
		defer sp.Stop()
	}

	combined := make(counter.Frequency)
	for i, source := range cfg.Sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if sp != nil && len(cfg.Sources) > 1 {
			sp.UpdateMessage(fmt.Sprintf("Counting %s (%d/%d)...", tallier.Name(), i+1, len(cfg.Sources)))
		}

		text, err := readSource(source)
		if err != nil {
			return nil, err
		}

		combined.Merge(tallier.Tally(text))
		if stats != nil {
			stats.observe(text)
		}

		slog.Debug("Source tallied", "source", source, "bytes", len(text), "distinctUnits", len(combined))
	}

	return combined, nil
}

// readSource loads the full content of one source into memory;
// sources are capped at input.MaxInputSizeBytes
func readSource(source string) (string, error) {
	reader, err := input.Open(source)
	if err != nil {
		return "", err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read source %q: %w", source, err)
	}

	return string(data), nil
}

// renderTable renders the combined table in the configured output format.
func renderTable(freq counter.Frequency, cfg Config) (string, error) {
	opts := render.Options{Sort: cfg.Sort, Top: cfg.Top}

	var b strings.Builder
	var err error
	switch cfg.OutputFormat {
	case Markdown:
		err = render.Markdown(&b, freq, opts)
	case JSON:
		err = render.JSON(&b, freq, opts)
	default:
		err = render.Text(&b, freq, opts)
	}
	if err != nil {
		return "", fmt.Errorf("failed to render %s table: %w", cfg.OutputFormat, err)
	}

	return b.String(), nil
}
