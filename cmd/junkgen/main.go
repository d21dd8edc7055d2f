// Command junkgen prints the junk table as an array declaration, by default
// the Rust `const JUNK: [&str; 81]` that the formatter embeds.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/benhoyt/linejunk/junk"
)

// Entry i is roughly i characters long, so output grows with the square
// of the size; 10000 entries is about 50MB.
const maxSize = 10000

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if err != nil {
		newLogger(os.Stderr, false).Error("junkgen failed", "error", err)
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

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "junkgen",
		Usage:     "print the junk table as an array declaration",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "size",
				Value: junk.DefaultSize,
				Usage: fmt.Sprintf("number of table entries (at most %d)", maxSize),
			},
			&cli.StringFlag{
				Name:  "lang",
				Value: "rust",
				Usage: "declaration syntax: rust or go",
			},
			&cli.StringFlag{
				Name:  "name",
				Value: junk.DefaultName,
				Usage: "name of the declared array",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "verify the table instead of printing it",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write to `PATH` instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log progress to stderr",
			},
		},
		HideHelpCommand: true,
		Action:          run,
	}
}

func run(c *cli.Context) error {
	logger := newLogger(c.App.ErrWriter, c.Bool("verbose"))

	if c.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", c.Args().Slice())
	}
	size := c.Int("size")
	if size < 0 || size > maxSize {
		return fmt.Errorf("invalid size %d: must be between 0 and %d", size, maxSize)
	}
	syntax, err := junk.ParseSyntax(c.String("lang"))
	if err != nil {
		return err
	}
	name := c.String("name")
	if !isIdent(name) {
		return fmt.Errorf("invalid array name %q", name)
	}

	table := junk.Generate(size)
	if c.Bool("check") {
		if err := table.Check(); err != nil {
			return err
		}
		logger.Info("junk table ok", "entries", len(table))
		return nil
	}

	config := &junk.EmitConfig{Syntax: syntax, Name: name}
	path := c.String("output")
	if path == "" {
		return junk.Write(c.App.Writer, table, config)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("can't create output file: %w", err)
	}
	err = junk.Write(f, table, config)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("closing output file: %w", closeErr)
	}
	if err != nil {
		return err
	}
	logger.Debug("wrote junk table", "path", path, "entries", len(table), "syntax", syntax)
	return nil
}

// isIdent reports whether name is an ASCII identifier, [A-Za-z_][A-Za-z0-9_]*,
// which both Go and Rust accept.
func isIdent(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
