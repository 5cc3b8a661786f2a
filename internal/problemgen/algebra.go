package problemgen

import (
	"fmt"
	"strings"
)

// substitution points for term evaluation. a and b alias the x and y
// values so every variable has a fixed, well-known substitution.
var substitutions = map[string]int{"x": 2, "y": 3, "a": 2, "b": 3}

// term is one summand of an algebraic term: coefficient times variable,
// or a plain constant when Variable is empty.
type term struct {
	Coeff    int
	Variable string
}

func (t term) value() int {
	if t.Variable == "" {
		return t.Coeff
	}
	return t.Coeff * substitutions[t.Variable]
}

// algebraicTerms builds a sum of coefficient*variable and constant
// summands and asks for its value at the fixed substitution points.
// The answer is computed structurally over the (coefficient, variable)
// pairs, never by evaluating the rendered string.
func (g *Generator) algebraicTerms(p Params) Problem {
	varPool := []string{"x", "y", "a", "b"}
	varCount := 1
	if p.MaxTerms >= 4 {
		varCount = 2
	}
	vars := make([]string, varCount)
	for i, idx := range g.rng.Perm(len(varPool))[:varCount] {
		vars[i] = varPool[idx]
	}

	coeffLo := p.Lower
	if p.AllowNegatives {
		coeffLo = -p.Upper
	}

	terms := make([]term, p.MaxTerms)
	for i := range terms {
		t := term{Coeff: g.between(coeffLo, p.Upper)}
		if g.rng.Float64() < 0.7 {
			t.Variable = pick(g, vars)
		}
		terms[i] = t
	}

	value := 0
	for _, t := range terms {
		value += t.value()
	}

	termStr := renderTerm(terms)
	substituted := renderSubstituted(terms)

	question := fmt.Sprintf(
		"Setze x=2 (und y=3, falls vorhanden) ein und berechne den Termwert:\n%s",
		termStr,
	)

	answer := roundTo(float64(value), p.Decimals)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n"+
			"1. Schritt: Setze die Werte (x=2, y=3) in den Term ein.\n"+
			"   - Term: %s\n"+
			"   - Eingesetzt: %s\n\n"+
			"2. Schritt: Berechne den Wert (Punkt vor Strich beachten).\n"+
			"   - Gesamtwert = %d\n\n"+
			"Ergebnis: %d",
		question, termStr, substituted, value, value,
	)

	return Problem{
		Question: question,
		Answer:   answer,
		Decimals: p.Decimals,
		Solution: solution,
	}
}

// renderTerm formats the summands as "5x + 3 - 2y".
func renderTerm(terms []term) string {
	var b strings.Builder
	for i, t := range terms {
		coeff := t.Coeff
		switch {
		case i == 0:
			fmt.Fprintf(&b, "%d%s", coeff, t.Variable)
		case coeff < 0:
			fmt.Fprintf(&b, " - %d%s", -coeff, t.Variable)
		default:
			fmt.Fprintf(&b, " + %d%s", coeff, t.Variable)
		}
	}
	return b.String()
}

// renderSubstituted formats the summands with substituted values,
// "5 * (2) + 3 - 2 * (3)".
func renderSubstituted(terms []term) string {
	var b strings.Builder
	for i, t := range terms {
		coeff := t.Coeff
		sign := " + "
		if coeff < 0 {
			sign = " - "
			coeff = -coeff
		}
		if i == 0 {
			sign = ""
			coeff = t.Coeff
		}
		if t.Variable == "" {
			fmt.Fprintf(&b, "%s%d", sign, coeff)
		} else {
			fmt.Fprintf(&b, "%s%d * (%d)", sign, coeff, substitutions[t.Variable])
		}
	}
	return b.String()
}
