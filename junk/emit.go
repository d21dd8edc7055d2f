package junk

import (
	"bufio"
	"fmt"
	"io"

	"github.com/benhoyt/linejunk/internal/strutil"
)

// Syntax is the language an array declaration is written in.
type Syntax int

const (
	// Rust writes `const NAME: [&str; N] = [ ... ];`.
	Rust Syntax = iota

	// Go writes `var NAME = [N]string{ ... }`.
	Go
)

// ParseSyntax returns the Syntax for a language name ("rust" or "go").
func ParseSyntax(name string) (Syntax, error) {
	switch name {
	case "rust", "rs":
		return Rust, nil
	case "go", "golang":
		return Go, nil
	default:
		return 0, fmt.Errorf("unknown syntax %q (must be rust or go)", name)
	}
}

func (s Syntax) String() string {
	switch s {
	case Rust:
		return "rust"
	case Go:
		return "go"
	default:
		return fmt.Sprintf("Syntax(%d)", int(s))
	}
}

// DefaultName is the name of the declared array.
const DefaultName = "JUNK"

// EmitConfig defines how Write declares the table. The zero value writes a
// Rust declaration named JUNK.
type EmitConfig struct {
	Syntax Syntax
	Name   string
}

// Write writes table to w as an array declaration: an opening line, one
// line per entry (four spaces, the quoted entry, and a comma), and a
// closing line. A nil config means defaults.
func Write(w io.Writer, table Table, config *EmitConfig) error {
	if config == nil {
		config = &EmitConfig{}
	}
	name := config.Name
	if name == "" {
		name = DefaultName
	}

	var opening, closing string
	var quote func(string) string
	switch config.Syntax {
	case Rust:
		opening = fmt.Sprintf("const %s: [&str; %d] = [", name, len(table))
		closing = "];"
		quote = strutil.QuoteRust
	case Go:
		opening = fmt.Sprintf("var %s = [%d]string{", name, len(table))
		closing = "}"
		quote = strutil.QuoteGo
	default:
		return fmt.Errorf("invalid syntax %d", int(config.Syntax))
	}

	writer := bufio.NewWriter(w)
	writer.WriteString(opening)
	writer.WriteByte('\n')
	for _, entry := range table {
		writer.WriteString("    ")
		writer.WriteString(quote(entry))
		writer.WriteString(",\n")
	}
	writer.WriteString(closing)
	writer.WriteByte('\n')
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("writing junk table: %w", err)
	}
	return nil
}
