package junk_test

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benhoyt/linejunk/junk"
)

var update = flag.Bool("update", false, "rewrite golden files in testdata")

func TestWriteGolden(t *testing.T) {
	var buf bytes.Buffer
	err := junk.Write(&buf, junk.Generate(junk.DefaultSize), nil)
	if err != nil {
		t.Fatal(err)
	}
	goldenPath := filepath.Join("testdata", "junk81.rs")
	if *update {
		if err := os.WriteFile(goldenPath, buf.Bytes(), 0644); err != nil {
			t.Fatalf("error writing golden file: %v", err)
		}
	}
	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("error reading golden file: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Fatalf("output differs from %s:\n%s", goldenPath, buf.String())
	}
}

func TestWriteRust(t *testing.T) {
	var buf bytes.Buffer
	err := junk.Write(&buf, junk.Generate(junk.DefaultSize), &junk.EmitConfig{Syntax: junk.Rust})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 83 {
		t.Fatalf("expected 83 lines, got %d", len(lines))
	}
	if lines[0] != "const JUNK: [&str; 81] = [" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[82] != "];" {
		t.Errorf("unexpected footer %q", lines[82])
	}
	if lines[1] != `    "",` || lines[16] != `    "*&*&();((),());",` {
		t.Errorf("unexpected entries %q, %q", lines[1], lines[16])
	}
	for i, line := range lines[1:82] {
		if !strings.HasPrefix(line, `    "`) || !strings.HasSuffix(line, `",`) {
			t.Errorf("entry line %d badly formatted: %q", i, line)
		}
	}
}

func TestWriteGo(t *testing.T) {
	var buf bytes.Buffer
	table := junk.Table{"", `a"b`, "{();};"}
	err := junk.Write(&buf, table, &junk.EmitConfig{Syntax: junk.Go, Name: "Junk"})
	if err != nil {
		t.Fatal(err)
	}
	expected := `var Junk = [3]string{
    "",
    "a\"b",
    "{();};",
}
`
	if buf.String() != expected {
		t.Fatalf("expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

func TestWriteEscapesRust(t *testing.T) {
	var buf bytes.Buffer
	err := junk.Write(&buf, junk.Table{`"\`}, &junk.EmitConfig{Name: "X"})
	if err != nil {
		t.Fatal(err)
	}
	expected := "const X: [&str; 1] = [\n    \"\\\"\\\\\",\n];\n"
	if buf.String() != expected {
		t.Fatalf("expected %q, got %q", expected, buf.String())
	}
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := junk.Write(&buf, junk.Generate(0), nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := "const JUNK: [&str; 0] = [\n];\n"
	if buf.String() != expected {
		t.Fatalf("expected %q, got %q", expected, buf.String())
	}
}

type errorWriter struct{ err error }

func (w errorWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestWriteError(t *testing.T) {
	writeErr := errors.New("pipe closed")
	err := junk.Write(errorWriter{writeErr}, junk.Generate(junk.DefaultSize), nil)
	if !errors.Is(err, writeErr) {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestWriteInvalidSyntax(t *testing.T) {
	err := junk.Write(&bytes.Buffer{}, junk.Generate(1), &junk.EmitConfig{Syntax: 7})
	if err == nil || !strings.Contains(err.Error(), "invalid syntax 7") {
		t.Fatalf("expected invalid syntax error, got %v", err)
	}
}

func TestParseSyntax(t *testing.T) {
	tests := []struct {
		name   string
		syntax junk.Syntax
		ok     bool
	}{
		{"rust", junk.Rust, true},
		{"rs", junk.Rust, true},
		{"go", junk.Go, true},
		{"golang", junk.Go, true},
		{"python", 0, false},
		{"", 0, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			syntax, err := junk.ParseSyntax(test.name)
			if (err == nil) != test.ok {
				t.Fatalf("expected ok=%v, got error %v", test.ok, err)
			}
			if test.ok && syntax != test.syntax {
				t.Fatalf("expected %s, got %s", test.syntax, syntax)
			}
		})
	}
}
