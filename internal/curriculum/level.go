package curriculum

import (
	"fmt"
	"strconv"
	"strings"
)

// Level is a position in the 13-year, two-semester school progression.
type Level struct {
	Year     int // 1..13
	Semester int // 1..2
}

// DefaultLevel is the safe fallback for malformed level labels.
var DefaultLevel = Level{Year: 1, Semester: 1}

// ParseLevel parses a "year.semester" label such as "5.2".
// Any malformed input (bad separator, non-numeric parts, values out of
// range) yields DefaultLevel so that gating always has a deterministic
// answer. It never returns an error.
func ParseLevel(label string) Level {
	parts := strings.Split(strings.TrimSpace(label), ".")
	if len(parts) != 2 {
		return DefaultLevel
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return DefaultLevel
	}
	semester, err := strconv.Atoi(parts[1])
	if err != nil {
		return DefaultLevel
	}
	if year < 1 || year > 13 || semester < 1 || semester > 2 {
		return DefaultLevel
	}
	return Level{Year: year, Semester: semester}
}

// TotalSemesterIndex maps the level onto a single ordered scale:
// 1.1 -> 1, 1.2 -> 2, 2.1 -> 3, ... Used for topic gating.
func (l Level) TotalSemesterIndex() int {
	return (l.Year-1)*2 + l.Semester
}

// String renders the level in the label form accepted by ParseLevel.
func (l Level) String() string {
	return fmt.Sprintf("%d.%d", l.Year, l.Semester)
}

// Difficulty is a magnitude/complexity bucket, independent of the level.
type Difficulty int

const (
	Easy   Difficulty = iota // single-digit operands
	Medium                   // double-digit operands
	Hard                     // triple-digit-plus operands
)

// AllDifficulties returns the tiers in ascending order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty recognizes the German tier names used across the app
// ("leicht", "mittel", "schwer") as well as the English ones.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leicht", "easy":
		return Easy, nil
	case "mittel", "medium":
		return Medium, nil
	case "schwer", "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("unknown difficulty %q", s)
	}
}

// Label returns the display name for a difficulty.
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "Leicht"
	case Medium:
		return "Mittel"
	case Hard:
		return "Schwer"
	default:
		return "Unbekannt"
	}
}
