package problemgen

import (
	"fmt"
	"math"
	"strings"

	"github.com/rliegard/mathegenie/internal/curriculum"
	"github.com/rliegard/mathegenie/internal/numfmt"
)

// vectors builds a magnitude or dot-product problem over integer
// vectors: 2-D for Easy and Medium, 3-D for Hard.
func (g *Generator) vectors(p Params, difficulty curriculum.Difficulty) Problem {
	dim := 2
	if difficulty == curriculum.Hard {
		dim = 3
	}

	lo := p.Lower
	if p.AllowNegatives {
		lo = -p.Upper
	}

	v := make([]int, dim)
	for i := range v {
		v[i] = g.between(lo, p.Upper)
	}

	if g.rng.Intn(2) == 0 {
		return g.vectorMagnitude(p, v)
	}

	w := make([]int, dim)
	for i := range w {
		w[i] = g.between(lo, p.Upper)
	}
	return g.vectorDot(p, v, w)
}

func (g *Generator) vectorMagnitude(p Params, v []int) Problem {
	sumSq := 0
	squares := make([]string, len(v))
	for i, n := range v {
		sumSq += n * n
		squares[i] = fmt.Sprintf("%d", n*n)
	}
	answer := roundTo(math.Sqrt(float64(sumSq)), p.Decimals)

	question := fmt.Sprintf(
		"Berechne den Betrag (die Länge) |v| des Vektors v = (%s).\n(Runde auf %d Nachkommastellen)",
		joinInts(v, ", "), p.Decimals,
	)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n"+
			"1. Formel (Betrag): |v| = √(v₁² + v₂² + ...)\n"+
			"2. Quadrate: |v| = √(%s)\n"+
			"3. Summe: |v| = √(%d)\n\n"+
			"Ergebnis (gerundet): %s",
		question, strings.Join(squares, " + "), sumSq, numfmt.Format(answer),
	)

	return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution}
}

func (g *Generator) vectorDot(p Params, v, w []int) Problem {
	dot := 0
	factors := make([]string, len(v))
	products := make([]string, len(v))
	for i := range v {
		dot += v[i] * w[i]
		factors[i] = fmt.Sprintf("(%d*%d)", v[i], w[i])
		products[i] = fmt.Sprintf("%d", v[i]*w[i])
	}
	answer := roundTo(float64(dot), p.Decimals)

	question := fmt.Sprintf(
		"Berechne das Skalarprodukt v • w der Vektoren:\nv = (%s)\nw = (%s)\n(Runde auf %d Nachkommastellen)",
		joinInts(v, ", "), joinInts(w, ", "), p.Decimals,
	)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n"+
			"1. Formel (Skalarprodukt): v•w = v₁w₁ + v₂w₂ + ...\n"+
			"2. Einsetzen: v•w = %s\n"+
			"3. Produkte: v•w = %s\n"+
			"4. Summe: v•w = %d\n\n"+
			"Ergebnis: %d",
		question, strings.Join(factors, " + "), strings.Join(products, " + "), dot, dot,
	)

	return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution}
}
