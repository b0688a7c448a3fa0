// Command wordlego recommends the next guess for a five-letter
// word-elimination game.
//
// Prior guesses and their feedback are passed as positional pairs:
//
//	wordlego --words wordle-answers-alphabetical.txt crane _yg__ moist __g_y
//
// Feedback symbols: '_' miss, 'y' present elsewhere, 'g' exact match.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/wordlego/table"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		wordsPath   string
		maxGuesses  int
		workers     int
		logPath     string
		logLevel    string
		snapshot    string
		compression string
	)

	cmd := &cobra.Command{
		Use:   "wordlego [guess pattern]...",
		Short: "Compute the guess that minimizes the expected number of further guesses",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args)%2 != 0 {
				return fmt.Errorf("prior guesses must come in (guess, pattern) pairs, got %d arguments", len(args))
			}
			return nil
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(logLevel)
			if err != nil {
				return err
			}
			comp, err := parseCompression(compression)
			if err != nil {
				return err
			}
			return run(cmd.Context(), runConfig{
				wordsPath:   wordsPath,
				maxGuesses:  maxGuesses,
				workers:     workers,
				logPath:     logPath,
				logLevel:    level,
				snapshot:    snapshot,
				compression: comp,
				pairs:       args,
			})
		},
	}

	cmd.Flags().StringVar(&wordsPath, "words", "wordle-answers-alphabetical.txt", "whitespace-separated vocabulary file")
	cmd.Flags().IntVar(&maxGuesses, "max-guesses", 6, "total guess budget, prior guesses included")
	cmd.Flags().IntVar(&workers, "workers", 0, "search workers (0 = all CPUs)")
	cmd.Flags().StringVar(&logPath, "log", "", "result log path (default result<N>.txt)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&snapshot, "snapshot", "", "compatibility table cache: local path, s3://bucket/key or minio://endpoint/bucket/key")
	cmd.Flags().StringVar(&compression, "snapshot-compression", "zstd", "snapshot compression: none, zstd or lz4")

	return cmd
}

func parseCompression(s string) (table.Compression, error) {
	switch s {
	case "none":
		return table.CompressionNone, nil
	case "zstd":
		return table.CompressionZstd, nil
	case "lz4":
		return table.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown snapshot compression %q", s)
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
