//go:build (!linux && !aix && !zos && !darwin && !freebsd && !openbsd && !netbsd && !dragonfly && !solaris && !plan9) || (appengine && !plan9)

package term

// Interactive input or output isn't detected on these platforms; callers
// get the same behaviour as for pipes and files.
func isTerminal(fd uintptr) bool {
	return false
}
