package problemgen

import (
	"errors"
	"math"
	"strings"

	"github.com/rliegard/mathegenie/internal/numfmt"
)

// Tolerance is the absolute slack granted when comparing a submitted
// answer to the expected value. It absorbs honest rounding differences
// without accepting wrong results.
const Tolerance = 0.1

// AnswerStatus classifies a submitted answer string.
type AnswerStatus int

const (
	// Answered means the input parsed to a number.
	Answered AnswerStatus = iota
	// Empty means the input was blank after trimming.
	Empty
	// Invalid means the input was present but not a number.
	Invalid
)

// ParseAnswer interprets raw user input in German notation.
func ParseAnswer(raw string) (float64, AnswerStatus) {
	raw = strings.TrimSpace(raw)
	v, err := numfmt.Parse(raw)
	switch {
	case errors.Is(err, numfmt.ErrEmpty):
		return 0, Empty
	case err != nil:
		return 0, Invalid
	}
	return v, Answered
}

// CheckAnswer reports whether raw, parsed in German notation, matches
// the expected value within Tolerance. Blank or unparseable input
// never matches.
func CheckAnswer(raw string, correct float64) bool {
	v, status := ParseAnswer(raw)
	if status != Answered {
		return false
	}
	return math.Abs(v-correct) < Tolerance
}
