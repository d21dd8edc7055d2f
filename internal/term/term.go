// Package term reports whether a file is an interactive terminal.
//
// The ioctl checks follow github.com/mattn/go-isatty and golang.org/x/term;
// only golang.org/x/sys/unix is needed for them.
package term

import "os"

// IsTerminal reports whether the given file descriptor is a terminal.
func IsTerminal(fd uintptr) bool {
	return isTerminal(fd)
}

// IsTerminalFile reports whether f is a terminal. A nil file is not.
func IsTerminalFile(f *os.File) bool {
	if f == nil {
		return false
	}
	return isTerminal(f.Fd())
}
