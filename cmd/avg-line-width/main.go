// Command avg-line-width prints the average width of the lines of its
// input: standard input, or the files named on the command line.
//
// Each line's width includes its terminator. With no input lines it
// prints 0.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/benhoyt/linejunk/internal/metrics"
	"github.com/benhoyt/linejunk/internal/term"
	"github.com/benhoyt/linejunk/linewidth"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if err != nil {
		newLogger(os.Stderr, false).Error("avg-line-width failed", "error", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "avg-line-width",
		Usage:     "print the average line width of the input",
		ArgsUsage: "[file ...]",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "bytes",
				Usage: "count bytes instead of characters",
			},
			&cli.BoolFlag{
				Name:  "universal",
				Usage: "also end lines at \\r and count \\r\\n as one character",
			},
			&cli.StringFlag{
				Name:  "match",
				Usage: "only count lines matching `REGEX`",
			},
			&cli.StringFlag{
				Name:  "skip",
				Usage: "don't count lines matching `REGEX`",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "also write the results as Prometheus metrics to `PATH`",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log per-input counts to stderr",
			},
		},
		HideHelpCommand: true,
		Action:          run,
	}
}

func run(c *cli.Context) error {
	logger := newLogger(c.App.ErrWriter, c.Bool("verbose"))

	config := &linewidth.Config{
		Match: c.String("match"),
		Skip:  c.String("skip"),
	}
	switch {
	case c.Bool("bytes") && c.Bool("universal"):
		return fmt.Errorf("--bytes and --universal can't be used together")
	case c.Bool("bytes"):
		config.Mode = linewidth.ByteMode
	case c.Bool("universal"):
		config.Mode = linewidth.UniversalMode
	}
	counter, err := linewidth.New(config)
	if err != nil {
		return err
	}

	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, name := range inputs {
		stats, err := measureInput(counter, name, c.App.Reader, logger)
		if err != nil {
			return err
		}
		logger.Debug("measured input", "input", name, "lines", stats.Lines, "width", stats.Width)
	}

	// Metrics are written first so a failure leaves stdout empty.
	total := counter.Stats()
	if path := c.String("metrics-file"); path != "" {
		m := metrics.NewLineWidth(config.Mode)
		m.Set(total)
		if err := m.WriteFile(path); err != nil {
			return err
		}
		logger.Debug("wrote metrics", "path", path)
	}

	_, err = fmt.Fprintln(c.App.Writer, linewidth.FormatMean(total))
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// measureInput measures the named input, where "-" means stdin.
func measureInput(counter *linewidth.Counter, name string, stdin io.Reader, logger *slog.Logger) (linewidth.Stats, error) {
	if name == "-" {
		if f, ok := stdin.(*os.File); ok && term.IsTerminalFile(f) {
			logger.Info("reading from terminal; press Ctrl-D to finish")
		}
		stats, err := counter.Measure(stdin)
		if err != nil {
			return stats, fmt.Errorf("stdin: %w", err)
		}
		return stats, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return linewidth.Stats{}, fmt.Errorf("can't open file %q: %w", name, err)
	}
	defer f.Close()
	stats, err := counter.Measure(f)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", name, err)
	}
	return stats, nil
}
