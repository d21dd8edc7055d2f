package linewidth

import (
	"math"
	"strconv"
	"strings"
)

// FormatMean formats the average line width of s for output: "0" if no
// lines were counted, otherwise the mean as formatted by FormatFloat.
func FormatMean(s Stats) string {
	mean, ok := s.Mean()
	if !ok {
		return "0"
	}
	return FormatFloat(mean)
}

// FormatFloat returns the shortest decimal string that round-trips to f.
// Integral values keep a ".0" suffix ("3.0"), and values whose magnitude
// is below 1e-4 or at least 1e16 use exponent form ("1e+16").
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
