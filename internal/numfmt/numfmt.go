// Package numfmt renders and parses numbers in the German notation the
// trainer shows to learners: thousands grouped with a period, comma as
// decimal separator ("1.453.557,0").
package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders v in German notation. Trailing fraction zeros are
// trimmed, but a whole-valued float keeps a single ",0" so learners can
// tell a rounded result from an integer one.
func Format(v float64) string {
	// Round to 5 places first to absorb float noise from the
	// generators' chained arithmetic.
	v = math.Round(v*1e5) / 1e5

	s := strconv.FormatFloat(v, 'f', -1, 64)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	out := group(intPart)
	if hasFrac {
		out += "," + fracPart
	} else {
		// A whole-valued float still shows one fraction digit, so a
		// rounded result is distinguishable from an integer one.
		out += ",0"
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatInt renders an integer with German thousands grouping.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + group(strconv.Itoa(-n))
	}
	return group(strconv.Itoa(n))
}

// group inserts a period every three digits from the right.
// The input must be an unsigned digit string.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ErrEmpty reports an empty input: "no answer" rather than a wrong one.
var ErrEmpty = fmt.Errorf("empty input")

// Parse reads a number in German notation. Grouping periods are
// stripped and the decimal comma converted before parsing, so
// "1.453.557,0" and "7,05" both parse. An empty (or all-whitespace)
// string returns ErrEmpty, which callers treat differently from
// invalid text.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}
	cleaned := strings.ReplaceAll(s, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
