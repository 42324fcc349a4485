package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/chriscorrea/tally/internal/app"
	"github.com/chriscorrea/tally/internal/counter"
	"github.com/chriscorrea/tally/internal/render"

	"github.com/spf13/cobra"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) (app.Config, error) {
	// get flag values
	charsFlag, _ := cmd.Flags().GetBool("chars")
	wordsFlag, _ := cmd.Flags().GetBool("words")
	linesFlag, _ := cmd.Flags().GetBool("lines")
	textFlag, _ := cmd.Flags().GetBool("text")
	mdFlag, _ := cmd.Flags().GetBool("md")
	jsonFlag, _ := cmd.Flags().GetBool("json")
	top, _ := cmd.Flags().GetInt("top")
	sortValue, _ := cmd.Flags().GetString("sort")
	stats, _ := cmd.Flags().GetBool("stats")
	quiet, _ := cmd.Flags().GetBool("quiet")
	debug, _ := cmd.Flags().GetBool("debug")

	// determine counting method
	var countingMethod counter.CountingMethod
	switch {
	case charsFlag:
		countingMethod = counter.Characters
	case linesFlag:
		countingMethod = counter.Lines
	case wordsFlag:
		countingMethod = counter.Words
	default:
		countingMethod = counter.Words // default if no method flag
	}

	// determine output format
	var outputFormat app.OutputFormat
	switch {
	case mdFlag:
		outputFormat = app.Markdown
	case jsonFlag:
		outputFormat = app.JSON
	case textFlag:
		outputFormat = app.Text
	default:
		outputFormat = app.Text // default if no format flag
	}

	// determine row order
	sortOrder, err := render.ParseSort(sortValue)
	if err != nil {
		return app.Config{}, err
	}

	if top < 0 {
		return app.Config{}, fmt.Errorf("top must be non-negative (got %d)", top)
	}

	// use positional arguments as sources
	var sources []string
	if len(args) == 0 {
		// no arguments provided - use stdin
		sources = append(sources, "-")
	} else {
		sources = args
	}

	// return constructed config
	return app.Config{
		Sources:        sources,
		CountingMethod: countingMethod,
		OutputFormat:   outputFormat,
		Sort:           sortOrder,
		Top:            top,
		ShowStats:      stats,
		Quiet:          quiet,
		Debug:          debug,
	}, nil
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "tally [sources...]",
	Short: "A CLI tool for counting text frequencies",
	Long: `Tally is a command-line tool that counts how often each word, character, or line appears in text. Sources may include local files or standard input.

Examples:
  tally document.txt
  tally -l access.log
  cat notes.md | tally -c
  tally --json -n 10 chapter1.txt chapter2.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// build config from flags and arguments
		config, err := buildConfig(cmd, args)
		if err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}

		// configure logging pending debug flag
		setupLogger(config.Debug)

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		// run the app!
		result, err := app.Run(ctx, config)
		if err != nil {
			return fmt.Errorf("tally failed: %w", err)
		}

		// Output the result
		fmt.Print(result)

		return nil
	},
}

func init() {
	// counting method flags
	rootCmd.Flags().BoolP("words", "w", false, "Count word frequencies (default)")
	rootCmd.Flags().BoolP("chars", "c", false, "Count character frequencies")
	rootCmd.Flags().BoolP("lines", "l", false, "Count line frequencies")

	// counting method flags are mutually exclusive
	rootCmd.MarkFlagsMutuallyExclusive("words", "chars", "lines")

	// output format flags
	rootCmd.Flags().Bool("text", false, "Output as an aligned text table (default)")
	rootCmd.Flags().Bool("md", false, "Output as a Markdown table")
	rootCmd.Flags().Bool("json", false, "Output as a JSON object")

	// output format flags are mutually exclusive
	rootCmd.MarkFlagsMutuallyExclusive("text", "md", "json")

	// table shaping flags
	rootCmd.Flags().IntP("top", "n", 0, "Show only the N most frequent units (default: all)")
	rootCmd.Flags().String("sort", "count", "Row order: count or unit")

	// other flags
	rootCmd.Flags().Bool("stats", false, "Write a totals summary to stderr")
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress progress messages")
	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
