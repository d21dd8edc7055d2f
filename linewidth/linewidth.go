// Package linewidth measures the average width of the lines in a text
// stream.
//
// A line is everything up to and including its terminator, so the width of
// "ab\n" is 3. The last line of a stream may be unterminated. For basic
// usage, call Measure and pass the result to FormatMean:
//
//	stats, err := linewidth.Measure(os.Stdin, nil)
//	if err != nil {
//	    ...
//	}
//	fmt.Println(linewidth.FormatMean(stats))
//
// To aggregate several inputs or filter lines by regex, create a Counter
// with New and call Counter.Measure once per input.
package linewidth

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/coregx/coregex"
)

const (
	inputBufSize  = 64 * 1024
	maxLineLength = 10 * 1024 * 1024
)

// Mode selects how line widths are counted.
type Mode int

const (
	// TextMode counts characters: each UTF-8 code point is one character
	// (each byte of an invalid sequence is one too). Lines end at "\n"
	// only; a "\r" is an ordinary character, so "ab\r\n" is 4 wide.
	TextMode Mode = iota

	// ByteMode counts raw bytes. Lines end at "\n" only.
	ByteMode

	// UniversalMode counts characters like TextMode, but "\n", "\r\n" and
	// a lone "\r" all terminate a line and count as a single character.
	UniversalMode
)

func (m Mode) String() string {
	switch m {
	case TextMode:
		return "text"
	case ByteMode:
		return "bytes"
	case UniversalMode:
		return "universal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Config defines the counting options for a Counter. The zero value counts
// every line in TextMode.
type Config struct {
	// Mode is TextMode (the default), ByteMode or UniversalMode.
	Mode Mode

	// Match, if non-empty, is a regex; only lines whose body (the line
	// without its terminator) matches it are counted.
	Match string

	// Skip, if non-empty, is a regex; lines whose body matches it are
	// not counted. Skip is applied after Match.
	Skip string
}

// Stats is the running accumulator: the number of lines seen and the sum of
// their widths.
type Stats struct {
	Lines int64
	Width int64
}

// Add records one line of the given width.
func (s *Stats) Add(width int) {
	s.Lines++
	s.Width += int64(width)
}

// Merge returns the totals of s and other combined.
func (s Stats) Merge(other Stats) Stats {
	return Stats{Lines: s.Lines + other.Lines, Width: s.Width + other.Width}
}

// Mean returns the average line width. The boolean is false (and the mean
// zero) if no lines were counted.
func (s Stats) Mean() (float64, bool) {
	if s.Lines == 0 {
		return 0, false
	}
	return float64(s.Width) / float64(s.Lines), true
}

// Counter accumulates line widths over one or more inputs. Create one with
// New; it's not safe for concurrent use.
type Counter struct {
	mode  Mode
	match *coregex.Regexp
	skip  *coregex.Regexp
	stats Stats
}

// New creates a Counter with the given configuration (nil means defaults).
// It returns an error if the mode is unknown or a regex doesn't compile.
func New(config *Config) (*Counter, error) {
	if config == nil {
		config = &Config{}
	}
	c := &Counter{mode: config.Mode}
	if c.mode != TextMode && c.mode != ByteMode && c.mode != UniversalMode {
		return nil, fmt.Errorf("invalid mode %d", int(c.mode))
	}
	var err error
	if config.Match != "" {
		c.match, err = coregex.Compile(config.Match)
		if err != nil {
			return nil, fmt.Errorf("compiling match regex %q: %w", config.Match, err)
		}
	}
	if config.Skip != "" {
		c.skip, err = coregex.Compile(config.Skip)
		if err != nil {
			return nil, fmt.Errorf("compiling skip regex %q: %w", config.Skip, err)
		}
	}
	return c, nil
}

// Measure reads input to EOF and adds each of its lines to the counter's
// stats. It returns the stats for this input alone; Stats returns the
// running total.
func (c *Counter) Measure(input io.Reader) (Stats, error) {
	scanner := bufio.NewScanner(input)
	if c.mode == UniversalMode {
		scanner.Split(scanLinesUniversal)
	} else {
		scanner.Split(scanLinesLF)
	}
	scanner.Buffer(make([]byte, inputBufSize), maxLineLength)

	var stats Stats
	for scanner.Scan() {
		line := scanner.Bytes()
		body := line[:len(line)-c.terminatorLen(line)]
		if !c.wanted(body) {
			continue
		}
		stats.Add(c.width(line, body))
	}
	c.stats = c.stats.Merge(stats)
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading lines: %w", err)
	}
	return stats, nil
}

// Stats returns the totals over every input measured so far.
func (c *Counter) Stats() Stats {
	return c.stats
}

func (c *Counter) wanted(body []byte) bool {
	if c.match != nil && !c.match.Match(body) {
		return false
	}
	if c.skip != nil && c.skip.Match(body) {
		return false
	}
	return true
}

func (c *Counter) terminatorLen(line []byte) int {
	if c.mode == UniversalMode {
		return lenTerminator(line)
	}
	if len(line) > 0 && line[len(line)-1] == '\n' {
		return 1
	}
	return 0
}

func (c *Counter) width(line, body []byte) int {
	switch c.mode {
	case ByteMode:
		return len(line)
	case TextMode:
		return utf8.RuneCount(line)
	}
	n := utf8.RuneCount(body)
	if len(body) < len(line) {
		n++ // any terminator is normalized to a single "\n"
	}
	return n
}

// Measure is a convenience function that counts the lines of a single input
// with the given configuration (nil means defaults).
func Measure(input io.Reader, config *Config) (Stats, error) {
	c, err := New(config)
	if err != nil {
		return Stats{}, err
	}
	return c.Measure(input)
}

// Splitter that splits lines on "\n" and keeps the terminator in the token.
func scanLinesLF(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		// We have a full newline-terminated line
		return i + 1, data[:i+1], nil
	}
	// If at EOF, we have a final, non-terminated line; return it
	if atEOF {
		return len(data), data, nil
	}
	// Request more data
	return 0, nil, nil
}

// Splitter that treats "\n", "\r\n" and "\r" as line terminators and keeps
// the terminator in the token.
func scanLinesUniversal(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i+1], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i+2], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i+1], nil
		}
		// A "\r" at the end of the buffer may be the start of "\r\n"
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// lenTerminator reports the number of bytes of the trailing "\n", "\r\n" or
// "\r" in b (0 if there is none).
func lenTerminator(b []byte) int {
	n := len(b)
	switch {
	case n >= 2 && b[n-2] == '\r' && b[n-1] == '\n':
		return 2
	case n >= 1 && (b[n-1] == '\n' || b[n-1] == '\r'):
		return 1
	default:
		return 0
	}
}
