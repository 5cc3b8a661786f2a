package curriculum

import (
	"fmt"
	"strings"
)

// Topic is a category of math problem. The set is closed: generation
// dispatches exhaustively over these values.
type Topic int

const (
	NumberOperations    Topic = iota // plain arithmetic in the current number range
	AlgebraicTerms                   // evaluate a term at fixed substitution points
	Geometry                         // perimeter/area, volume/surface of 2-D and 3-D shapes
	Statistics                       // mean and median of small samples
	Probability                      // Laplace probabilities (die, urn)
	PolynomialRemainder              // remainder of a quadratic divided by (x - v)
	VectorCalculus                   // magnitude and dot product
	WordProblems                     // year-indexed narrative templates
)

// AllTopics returns all topics in display order.
func AllTopics() []Topic {
	return []Topic{
		NumberOperations,
		AlgebraicTerms,
		Geometry,
		Statistics,
		Probability,
		PolynomialRemainder,
		VectorCalculus,
		WordProblems,
	}
}

// Label returns the German display name for a topic.
func (t Topic) Label() string {
	switch t {
	case NumberOperations:
		return "Zahlenraum-Training"
	case AlgebraicTerms:
		return "Terme & Gleichungen"
	case Geometry:
		return "Geometrie"
	case Statistics:
		return "Statistik"
	case Probability:
		return "Stochastik"
	case PolynomialRemainder:
		return "Polynomdivision"
	case VectorCalculus:
		return "Vektor-Berechnung"
	case WordProblems:
		return "Textaufgaben"
	default:
		return "Unbekannt"
	}
}

// ParseTopic resolves a topic from its label or a shorter slug like
// "zahlenraum", "geometrie", "vektoren". Matching is case-insensitive.
func ParseTopic(s string) (Topic, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(key, "zahlenraum"), key == "arithmetik":
		return NumberOperations, nil
	case strings.HasPrefix(key, "terme"), key == "algebra":
		return AlgebraicTerms, nil
	case strings.HasPrefix(key, "geometrie"):
		return Geometry, nil
	case strings.HasPrefix(key, "statistik"):
		return Statistics, nil
	case strings.HasPrefix(key, "stochastik"):
		return Probability, nil
	case strings.HasPrefix(key, "polynom"):
		return PolynomialRemainder, nil
	case strings.HasPrefix(key, "vektor"):
		return VectorCalculus, nil
	case strings.HasPrefix(key, "textaufgaben"):
		return WordProblems, nil
	default:
		return NumberOperations, fmt.Errorf("unknown topic %q", s)
	}
}

// MinSemesterIndex returns the total semester index from which a topic
// is part of the curriculum. Unknown topics default to 1.
func MinSemesterIndex(t Topic) int {
	switch t {
	case NumberOperations, WordProblems:
		return 1 // Klasse 1.1
	case AlgebraicTerms, Geometry:
		return 9 // Klasse 5.1
	case Statistics:
		return 13 // Klasse 7.1
	case Probability:
		return 15 // Klasse 8.1
	case PolynomialRemainder, VectorCalculus:
		return 19 // Klasse 10.1
	default:
		return 1
	}
}

// Available reports whether a topic is unlocked at the given level.
func Available(t Topic, level Level) bool {
	return level.TotalSemesterIndex() >= MinSemesterIndex(t)
}

// AvailableTopics returns the topics unlocked at the given level,
// in display order.
func AvailableTopics(level Level) []Topic {
	var out []Topic
	for _, t := range AllTopics() {
		if Available(t, level) {
			out = append(out, t)
		}
	}
	return out
}
