// Package strutil has string helpers shared by the linejunk commands.
package strutil

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// QuoteRust returns s as a Rust string literal, including the surrounding
// double quotes. Only the escapes Rust requires (or that keep the literal on
// one line) are used; other characters are written as is. Invalid UTF-8 is
// replaced with U+FFFD, because a Rust &str can't hold it.
func QuoteRust(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u{%x}`, r)
				continue
			}
			sb.WriteRune(r) // RuneError for invalid bytes
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// QuoteGo returns s as an interpreted Go string literal.
func QuoteGo(s string) string {
	return strconv.Quote(s)
}
