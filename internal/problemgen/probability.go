package problemgen

import (
	"fmt"

	"github.com/rliegard/mathegenie/internal/numfmt"
)

// probability builds a Laplace-probability problem over a finite sample
// space: a die threshold or a two-color urn draw.
func (g *Generator) probability(p Params) Problem {
	if g.rng.Intn(2) == 0 {
		return g.probDie(p)
	}
	return g.probUrn(p)
}

func (g *Generator) probDie(p Params) Problem {
	const sides = 6
	event := g.between(1, 5)

	answer := roundTo(float64(event)/float64(sides), p.Decimals)
	question := fmt.Sprintf(
		"Ein idealer 6-seitiger Würfel (W6) wird einmal geworfen.\n"+
			"Wie groß ist die Wahrscheinlichkeit P(Ergebnis <= %d)? (Runde auf %d Nachkommastellen)",
		event, p.Decimals,
	)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n"+
			"1. Formel (Laplace): P(E) = |E| / |Ω|\n"+
			"2. |Ω| (alle möglichen Ergebnisse): 6 (Zahlen 1-6)\n"+
			"3. |E| (günstige Ergebnisse <= %d): %d (Zahlen 1 bis %d)\n"+
			"4. P(E) = %d / 6\n\n"+
			"Ergebnis (gerundet): %s",
		question, event, event, event, event, numfmt.Format(answer),
	)

	return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution}
}

func (g *Generator) probUrn(p Params) Problem {
	red := g.between(1, 9)
	blue := g.between(1, 9)
	total := red + blue

	answer := roundTo(float64(red)/float64(total), p.Decimals)
	question := fmt.Sprintf(
		"In einer Urne befinden sich %d rote und %d blaue Kugeln. Es wird einmal gezogen.\n"+
			"Wie groß ist die Wahrscheinlichkeit P(rot)? (Runde auf %d Nachkommastellen)",
		red, blue, p.Decimals,
	)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n"+
			"1. Formel (Laplace): P(E) = |E| / |Ω|\n"+
			"2. |Ω| (alle Kugeln): %d (rot) + %d (blau) = %d\n"+
			"3. |E| (günstige Ergebnisse 'rot'): %d\n"+
			"4. P(E) = %d / %d\n\n"+
			"Ergebnis (gerundet): %s",
		question, red, blue, total, red, red, total, numfmt.Format(answer),
	)

	return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution}
}
