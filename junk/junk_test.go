// Tests for the junk package

package junk_test

import (
	"errors"
	"testing"

	"github.com/benhoyt/linejunk/junk"
)

func TestGenerateSeeds(t *testing.T) {
	table := junk.Generate(junk.DefaultSize)
	if len(table) != 81 {
		t.Fatalf("expected 81 entries, got %d", len(table))
	}
	for i, seed := range junk.Seeds {
		if table[i] != seed {
			t.Errorf("entry %d: expected seed %q, got %q", i, seed, table[i])
		}
	}
}

func TestGenerateRecurrence(t *testing.T) {
	table := junk.Generate(junk.DefaultSize)
	for i := len(junk.Seeds); i < len(table); i++ {
		expected := table[i/2] + table[i-i/2]
		if table[i] != expected {
			t.Errorf("entry %d: expected %q, got %q", i, expected, table[i])
		}
	}
}

func TestGenerateEntries(t *testing.T) {
	tests := []struct {
		index int
		entry string
	}{
		{0, ""},
		{1, ";"},
		{14, "if let _=(){};"},
		{15, "*&*&();((),());"},
		{16, "((),());((),());"},
		{17, "((),());let _=();"},
		{18, "let _=();let _=();"},
		{78, "let _=();if true{};if true{};if true{};let _=();if true{};if true{};if true{};"},
		{79, "let _=();if true{};if true{};if true{};if true{};if true{};if true{};if true{};"},
		{80, "if true{};if true{};if true{};if true{};if true{};if true{};if true{};if true{};"},
	}
	table := junk.Generate(junk.DefaultSize)
	for _, test := range tests {
		if table[test.index] != test.entry {
			t.Errorf("entry %d: expected %q, got %q", test.index, test.entry, table[test.index])
		}
	}
}

func TestGenerateSizes(t *testing.T) {
	for _, n := range []int{0, 1, 14, 15, 16, 81, 200} {
		table := junk.Generate(n)
		if len(table) != n {
			t.Fatalf("Generate(%d): got %d entries", n, len(table))
		}
		if err := table.Check(); err != nil {
			t.Fatalf("Generate(%d): %v", n, err)
		}
	}
	// Smaller tables are prefixes of bigger ones.
	small, big := junk.Generate(40), junk.Generate(81)
	for i := range small {
		if small[i] != big[i] {
			t.Fatalf("entry %d differs: %q vs %q", i, small[i], big[i])
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, b := junk.Generate(junk.DefaultSize), junk.Generate(junk.DefaultSize)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("entry %d differs between runs: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestGenerateNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for negative size")
		}
	}()
	junk.Generate(-1)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(junk.Table)
		index int
	}{
		{"BadSeed", func(t junk.Table) { t[3] = "(;" }, 3},
		{"BadDerived", func(t junk.Table) { t[40] = "nope" }, 40},
		{"BadLast", func(t junk.Table) { t[80] += ";" }, 80},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			table := junk.Generate(junk.DefaultSize)
			test.edit(table)
			err := table.Check()
			var checkErr *junk.CheckError
			if !errors.As(err, &checkErr) {
				t.Fatalf("expected *CheckError, got %v", err)
			}
			if checkErr.Index != test.index {
				t.Fatalf("expected error at index %d, got %d (%v)", test.index, checkErr.Index, err)
			}
		})
	}
}
