package problemgen

import (
	"fmt"
	"strings"
)

// polynomialRemainder asks for the remainder of a quadratic divided by
// a linear factor (x - v). The answer comes from the Remainder Theorem,
// P(v), not from carrying out the symbolic division.
func (g *Generator) polynomialRemainder(p Params) Problem {
	a := g.between(1, 5)
	b := g.between(-5, 5)
	c := g.between(-5, 5)
	v := g.between(1, 4)

	polynomial := renderQuadratic(a, b, c)
	remainder := a*v*v + b*v + c

	question := fmt.Sprintf(
		"Berechne den Rest der folgenden Polynomdivision:\n\n(%s) : (x - %d)",
		polynomial, v,
	)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n"+
			"1. Methode: Satz vom Rest.\n"+
			"   Der Rest der Division P(x) : (x - a) ist P(a).\n"+
			"2. Polynom P(x) = %s\n"+
			"3. Divisor (x - %d). Der Wert 'a' ist also %d.\n"+
			"4. Setze a = %d in P(x) ein:\n"+
			"   Rest = P(%d) = %d*(%d²) + %d*(%d) + %d\n"+
			"   Rest = %d + %d + %d = %d\n\n"+
			"Ergebnis (Rest): %d",
		question, polynomial, v, v, v, v, a, v, b, v, c,
		a*v*v, b*v, c, remainder, remainder,
	)

	return Problem{
		Question: question,
		Answer:   roundTo(float64(remainder), p.Decimals),
		Decimals: p.Decimals,
		Solution: solution,
	}
}

// renderQuadratic formats a·x² + b·x + c with proper signs,
// e.g. "3x² - 2x + 5".
func renderQuadratic(a, b, c int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx²", a)
	if b < 0 {
		fmt.Fprintf(&sb, " - %dx", -b)
	} else {
		fmt.Fprintf(&sb, " + %dx", b)
	}
	if c < 0 {
		fmt.Fprintf(&sb, " - %d", -c)
	} else {
		fmt.Fprintf(&sb, " + %d", c)
	}
	return sb.String()
}
