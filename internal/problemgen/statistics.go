package problemgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rliegard/mathegenie/internal/numfmt"
)

// statistics builds a mean or median problem over 5-10 integer samples.
// The median is exact (possibly x,5) and intentionally not rounded to
// the tier precision; the mean is.
func (g *Generator) statistics(p Params) Problem {
	size := g.between(5, 10)
	maxVal := max(5, p.Upper/2)

	data := make([]int, size)
	for i := range data {
		data[i] = g.between(1, maxVal)
	}
	sketch := &Sketch{Kind: SketchBarChart, Values: append([]int(nil), data...)}

	if g.rng.Intn(2) == 0 {
		return g.statMean(p, data, sketch)
	}
	return g.statMedian(p, data, sketch)
}

func (g *Generator) statMean(p Params, data []int, sketch *Sketch) Problem {
	sum := 0
	for _, v := range data {
		sum += v
	}
	answer := roundTo(float64(sum)/float64(len(data)), p.Decimals)

	question := fmt.Sprintf(
		"Berechne den Mittelwert der folgenden Datenreihe: %s. Runde auf %d Nachkommastelle(n).",
		joinInts(data, ", "), p.Decimals,
	)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n"+
			"1. Schritt: Formel für den Mittelwert (MW) notieren.\n"+
			"   - MW = (Summe aller Werte) / (Anzahl der Werte)\n"+
			"2. Schritt: Alle Werte addieren.\n"+
			"   - Summe = %s = %d\n"+
			"3. Schritt: Anzahl der Werte zählen.\n"+
			"   - Anzahl = %d\n"+
			"4. Schritt: Dividieren.\n"+
			"   - MW = %d / %d\n\n"+
			"Ergebnis (gerundet): %s",
		question, joinInts(data, " + "), sum, len(data), sum, len(data), numfmt.Format(answer),
	)

	return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution, Sketch: sketch}
}

func (g *Generator) statMedian(p Params, data []int, sketch *Sketch) Problem {
	sorted := append([]int(nil), data...)
	sort.Ints(sorted)
	n := len(sorted)

	question := fmt.Sprintf("Berechne den Median der folgenden Datenreihe: %s.", joinInts(data, ", "))

	var answer float64
	var middle string
	if n%2 == 1 {
		answer = float64(sorted[n/2])
		middle = fmt.Sprintf(
			"3. Schritt (n ist ungerade): Der Wert in der Mitte ist der Median.\n"+
				"   - Position: (n+1)/2 = %d. Wert\n"+
				"   - Median = %d\n",
			(n+1)/2, sorted[n/2],
		)
	} else {
		lo, hi := sorted[n/2-1], sorted[n/2]
		answer = float64(lo+hi) / 2
		middle = fmt.Sprintf(
			"3. Schritt (n ist gerade): Der Durchschnitt der beiden mittleren Werte ist der Median.\n"+
				"   - Mittlere Werte (Position %d und %d): %d und %d\n"+
				"   - Median = (%d + %d) / 2 = %s\n",
			n/2, n/2+1, lo, hi, lo, hi, numfmt.Format(answer),
		)
	}

	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n"+
			"1. Schritt: Datenreihe der Größe nach ordnen.\n"+
			"   - Original: %s\n"+
			"   - Sortiert: %s\n"+
			"2. Schritt: Anzahl der Werte bestimmen: n = %d.\n"+
			"%s\nErgebnis: %s",
		question, joinInts(data, ", "), joinInts(sorted, ", "), n, middle, numfmt.Format(answer),
	)

	// The median is exact by construction and stays unrounded.
	return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution, Sketch: sketch}
}

func joinInts(vals []int, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, sep)
}
