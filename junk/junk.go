// Package junk builds the junk table: short, syntactically minimal Rust
// statements that a formatter can splice into a line to pad it to a
// given width.
//
// The first entries are hand-written seeds; each later entry i is the
// concatenation of entries i/2 and i-i/2, so entry widths grow roughly
// linearly with the index. Downstream code depends on the exact strings,
// so the table must not change.
package junk

import "fmt"

// DefaultSize is the number of entries in the generated table.
const DefaultSize = 81

// Seeds are the hand-written junk entries, in table order.
var Seeds = [...]string{
	"",
	";",
	"3;",
	"();",
	"{;};",
	"({});",
	"{();};",
	"*&*&();",
	"((),());",
	"let _=();",
	"if true{};",
	"let _=||();",
	"loop{break};",
	"loop{break;};",
	"if let _=(){};",
}

// Table is a generated junk table.
type Table []string

// Generate builds a junk table with n entries. It panics if n is negative.
func Generate(n int) Table {
	if n < 0 {
		panic(fmt.Sprintf("junk: negative table size %d", n))
	}
	table := make(Table, 0, n)
	for i := 0; i < n; i++ {
		if i < len(Seeds) {
			table = append(table, Seeds[i])
			continue
		}
		half := i / 2
		rest := i - half
		table = append(table, table[half]+table[rest])
	}
	return table
}

// CheckError is returned by Table.Check when an entry isn't what the
// recurrence says it should be.
type CheckError struct {
	Index    int
	Expected string
	Got      string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("junk entry %d: expected %q, got %q", e.Index, e.Expected, e.Got)
}

// Check verifies that t starts with the seeds and that every later entry
// is the concatenation of its two halves. It returns a *CheckError for
// the first entry that isn't.
func (t Table) Check() error {
	for i, got := range t {
		var expected string
		if i < len(Seeds) {
			expected = Seeds[i]
		} else {
			half := i / 2
			expected = t[half] + t[i-half]
		}
		if got != expected {
			return &CheckError{Index: i, Expected: expected, Got: got}
		}
	}
	return nil
}
