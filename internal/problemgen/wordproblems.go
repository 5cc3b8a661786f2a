package problemgen

import (
	"fmt"
	"math"

	"github.com/rliegard/mathegenie/internal/curriculum"
	"github.com/rliegard/mathegenie/internal/numfmt"
)

// wordProblem dispatches to a narrative template suited to the school
// year: simple add/subtract stories in the first years, up to the
// Pythagorean theorem, compound interest, linear systems, Bernoulli
// chains and a one-variable optimization at the top of the progression.
// Every template derives its answer from first principles and carries
// its own rounding precision.
func (g *Generator) wordProblem(level curriculum.Level) Problem {
	type template func() Problem

	var pool []template
	switch year := level.Year; {
	case year <= 2:
		pool = []template{g.wordBasicArithmetic}
	case year == 3:
		pool = []template{g.wordMultiplication}
	case year <= 5:
		pool = []template{g.wordMultiStep}
	case year == 6:
		pool = []template{g.wordCompoundInterest}
	case year == 7:
		pool = []template{g.wordPythagoras}
	case year == 8:
		pool = []template{g.wordPythagoras, g.wordCompoundInterest}
	case year == 9:
		pool = []template{g.wordLinearSystem, g.wordBernoulli}
	default:
		pool = []template{g.wordLinearSystem, g.wordBernoulli, g.wordOptimization}
	}

	return pick(g, pool)()
}

// wordBasicArithmetic covers years 1-2: adding, taking away, or a
// lose-and-find two-step story.
func (g *Generator) wordBasicArithmetic() Problem {
	switch g.rng.Intn(3) {
	case 0: // dazubekommen
		item := pick(g, []string{"Äpfel", "Stifte", "Bonbons", "Bücher"})
		name := pick(g, []string{"Lena", "Tom", "Mia", "Max"})
		giver := pick(g, []string{"Opa", "Mama", "Ein Freund"})
		a := g.between(5, 15)
		b := g.between(3, 10)
		answer := a + b

		question := fmt.Sprintf(
			"%s hat %d %s. %s schenkt %s noch %d %s dazu.\nFrage: Wie viele %s hat %s jetzt insgesamt?",
			name, a, item, giver, name, b, item, item, name,
		)
		solution := fmt.Sprintf(
			"Du musst die beiden Zahlen zusammenzählen (addieren).\nRechnung: %d + %d = %d\nAntwort: %s hat jetzt %d %s.",
			a, b, answer, name, answer, item,
		)
		return Problem{Question: question, Answer: float64(answer), Solution: solution}

	case 1: // übrig bleiben
		item := pick(g, []string{"Stück Kuchen", "Kekse", "Ballons", "Fische"})
		verb := pick(g, []string{"werden gegessen", "fliegen weg", "werden verschenkt"})
		a := g.between(12, 20)
		b := g.between(3, a-1)
		answer := a - b

		question := fmt.Sprintf(
			"Es gibt %d %s. %d %s %s.\nFrage: Wie viele %s sind noch übrig?",
			a, item, b, item, verb, item,
		)
		solution := fmt.Sprintf(
			"Du musst die zweite Zahl von der ersten Zahl abziehen (subtrahieren).\nRechnung: %d - %d = %d\nAntwort: Es sind noch %d %s übrig.",
			a, b, answer, answer, item,
		)
		return Problem{Question: question, Answer: float64(answer), Solution: solution}

	default: // verlieren und wiederfinden
		item := pick(g, []string{"Buntstifte", "Murmeln", "Sticker"})
		name := pick(g, []string{"Tim", "Anna", "Leo"})
		a := g.between(20, 30)
		b := g.between(2, 8)
		c := g.between(3, 7)
		answer := a - b + c

		question := fmt.Sprintf(
			"%s hat %d %s. Er verliert %d %s. Später findet er %d %s wieder.\nFrage: Wie viele %s hat %s jetzt?",
			name, a, item, b, item, c, item, item, name,
		)
		solution := fmt.Sprintf(
			"Du musst in zwei Schritten rechnen.\n1. Schritt (verlieren): %d - %d = %d\n2. Schritt (finden): %d + %d = %d\nAntwort: %s hat jetzt %d %s.",
			a, b, a-b, a-b, c, answer, name, answer, item,
		)
		return Problem{Question: question, Answer: float64(answer), Solution: solution}
	}
}

// wordMultiplication covers year 3: sharing fairly, counting wheels and
// legs, or change at the checkout. The sharing story is built
// answer-first so the division is always exact.
func (g *Generator) wordMultiplication() Problem {
	switch g.rng.Intn(3) {
	case 0: // gerecht teilen
		item := pick(g, []string{"Murmeln", "Sticker", "Kekse"})
		kids := g.between(3, 5)
		answer := g.between(4, 8)
		total := kids * answer

		question := fmt.Sprintf(
			"%d Kinder wollen %d %s gerecht teilen.\nFrage: Wie viele %s bekommt jedes Kind?",
			kids, total, item, item,
		)
		solution := fmt.Sprintf(
			"Du musst die %s durch die Anzahl der Kinder teilen (dividieren).\nRechnung: %d : %d = %d\nAntwort: Jedes Kind bekommt %d %s.",
			item, total, kids, answer, answer, item,
		)
		return Problem{Question: question, Answer: float64(answer), Solution: solution}

	case 1: // Räder und Beine
		type counted struct {
			item string
			per  int
			prop string
		}
		c := pick(g, []counted{
			{"Fahrräder", 2, "Räder"},
			{"Stühle", 4, "Beine"},
			{"Hunde", 4, "Beine"},
		})
		count := g.between(5, 9)
		answer := count * c.per

		question := fmt.Sprintf(
			"Auf dem Hof stehen %d %s.\nFrage: Wie viele %s haben alle %s zusammen?",
			count, c.item, c.prop, c.item,
		)
		solution := fmt.Sprintf(
			"Du musst die Anzahl der %s mit der Anzahl der %s pro Stück malnehmen (multiplizieren).\nRechnung: %d * %d = %d\nAntwort: Sie haben zusammen %d %s.",
			c.item, c.prop, count, c.per, answer, answer, c.prop,
		)
		return Problem{Question: question, Answer: float64(answer), Solution: solution}

	default: // Wechselgeld
		item := pick(g, []string{"Tüten Milch", "Hefte", "Schokoriegel"})
		price := g.between(2, 3)
		count := g.between(3, 4)
		paid := pick(g, []int{10, 20})
		if count*price >= paid {
			price, count, paid = 2, 3, 10
		}
		cost := count * price
		answer := paid - cost

		question := fmt.Sprintf(
			"Papa kauft %d %s. Ein Stück kostet %d Euro. Er bezahlt mit einem %d-Euro-Schein.\nFrage: Wie viel Wechselgeld bekommt Papa zurück?",
			count, item, price, paid,
		)
		solution := fmt.Sprintf(
			"Du musst in zwei Schritten rechnen.\n1. Schritt (Kosten berechnen): %d * %d Euro = %d Euro\n2. Schritt (Wechselgeld): %d Euro - %d Euro = %d Euro\nAntwort: Papa bekommt %d Euro zurück.",
			count, price, cost, paid, cost, answer, answer,
		)
		return Problem{Question: question, Answer: float64(answer), Solution: solution}
	}
}

// wordMultiStep covers years 4-5: remaining book pages or saved
// allowance over several months.
func (g *Generator) wordMultiStep() Problem {
	if g.rng.Intn(2) == 0 { // Lese-Challenge
		pages := g.between(150, 300)
		day1 := g.between(30, 50)
		day2 := g.between(30, 50)
		answer := pages - day1 - day2

		question := fmt.Sprintf(
			"Ein Buch hat %d Seiten. Am Montag liest Emma %d Seiten. Am Dienstag liest sie %d Seiten.\nFrage: Wie viele Seiten muss Emma noch lesen?",
			pages, day1, day2,
		)
		solution := fmt.Sprintf(
			"Du musst die gelesenen Seiten von der Gesamtanzahl abziehen.\n1. Schritt (gelesene Seiten): %d + %d = %d\n2. Schritt (restliche Seiten): %d - %d = %d\nAntwort: Emma muss noch %d Seiten lesen.",
			day1, day2, day1+day2, pages, day1+day2, answer, answer,
		)
		return Problem{Question: question, Answer: float64(answer), Solution: solution}
	}

	// Taschengeld
	name := pick(g, []string{"Max", "Lena", "Tom"})
	allowance := g.between(15, 25)
	months := g.between(4, 6)
	duration := fmt.Sprintf("%d Monate", months)
	if months == 6 {
		duration = "ein halbes Jahr"
	}
	answer := allowance * months

	question := fmt.Sprintf(
		"%s bekommt %d Euro Taschengeld im Monat und spart %s lang das ganze Geld.\nFrage: Wie viel Geld hat %s danach gespart?",
		name, allowance, duration, name,
	)
	solution := fmt.Sprintf(
		"Du musst das monatliche Taschengeld mit der Anzahl der Monate malnehmen (multiplizieren).\nEin halbes Jahr sind 6 Monate.\nRechnung: %d Euro * %d = %d Euro\nAntwort: %s hat %d Euro gespart.",
		allowance, months, answer, name, answer,
	)
	return Problem{Question: question, Answer: float64(answer), Solution: solution}
}

// wordCompoundInterest covers years 6 and 8: balance after n years of
// compound interest, rounded to 2 decimals.
func (g *Generator) wordCompoundInterest() Problem {
	principal := g.between(10, 50) * 100
	percent := g.between(2, 5)
	years := g.between(3, 8)
	rate := float64(percent) / 100

	answer := roundTo(float64(principal)*math.Pow(1+rate, float64(years)), 2)

	question := fmt.Sprintf(
		"Herr Müller legt %d€ auf einem Konto an, das jährlich mit %d%% Zinsen verzinst wird (Zinseszins).\nFrage: Wie hoch ist sein Guthaben nach %d Jahren? (Runde auf 2 Dezimalstellen)",
		principal, percent, years,
	)
	solution := fmt.Sprintf(
		"Formel für Zinseszins: K_n = K_0 * (1 + p)^n\n"+
			"1. K_0 (Startkapital): %d€\n"+
			"2. p (Zinssatz): %d%% = %s\n"+
			"3. n (Jahre): %d\n"+
			"4. Einsetzen: K_%d = %d * (1 + %s)^%d\n"+
			"Antwort: Das Guthaben beträgt %s€.",
		principal, percent, numfmt.Format(rate), years, years, principal, numfmt.Format(rate), years,
		numfmt.Format(answer),
	)
	return Problem{Question: question, Answer: answer, Decimals: 2, Solution: solution}
}

// pythagoreanTriples are the "schöne Zahlen" used for half of the
// ladder problems, scaled by 1-3.
var pythagoreanTriples = [][3]float64{
	{3, 4, 5},
	{6, 8, 10},
	{5, 12, 13},
	{8, 15, 17},
}

// wordPythagoras covers years 7-8: the ladder against a wall, solving
// for either cathetus or the hypotenuse, rounded to 1 decimal.
func (g *Generator) wordPythagoras() Problem {
	var a, b, c float64
	if g.rng.Intn(2) == 0 {
		t := pick(g, pythagoreanTriples)
		scale := float64(g.between(1, 3))
		a, b, c = t[0]*scale, t[1]*scale, t[2]*scale
	} else {
		a = float64(g.between(3, 10))
		b = float64(g.between(int(a)+1, 15))
		c = math.Round(math.Sqrt(a*a + b*b))
		b = math.Sqrt(c*c - a*a)
	}
	a, b, c = roundTo(a, 1), roundTo(b, 1), roundTo(c, 1)

	var question, solution string
	var answer float64
	sketch := &Sketch{Kind: SketchRightTriangle}

	switch g.rng.Intn(3) {
	case 0: // Höhe a gesucht
		answer = roundTo(math.Sqrt(c*c-b*b), 1)
		sketch.B, sketch.C = b, c
		question = fmt.Sprintf(
			"Eine %sm lange Leiter lehnt an einer Wand. Der Fuß der Leiter steht %sm von der Wand entfernt.\nFrage: Wie hoch (a) reicht die Leiter an der Wand hinauf? (Runde auf 1 Dezimalstelle)",
			numfmt.Format(c), numfmt.Format(b),
		)
		solution = fmt.Sprintf(
			"Satz des Pythagoras: a² + b² = c² (c ist die Leiter)\n1. Umstellen nach a: a = √(c² - b²)\n2. Einsetzen: a = √(%s² - %s²)\n3. Rechnung: a = √(%s) ≈ %s\nAntwort: Die Leiter reicht %sm hoch.",
			numfmt.Format(c), numfmt.Format(b), numfmt.Format(roundTo(c*c-b*b, 2)), numfmt.Format(answer), numfmt.Format(answer),
		)
	case 1: // Abstand b gesucht
		answer = roundTo(math.Sqrt(c*c-a*a), 1)
		sketch.A, sketch.C = a, c
		question = fmt.Sprintf(
			"Eine %sm lange Leiter lehnt an einer Wand. Sie reicht %sm hoch.\nFrage: Wie weit (b) steht der Fuß der Leiter von der Wand entfernt? (Runde auf 1 Dezimalstelle)",
			numfmt.Format(c), numfmt.Format(a),
		)
		solution = fmt.Sprintf(
			"Satz des Pythagoras: a² + b² = c² (c ist die Leiter)\n1. Umstellen nach b: b = √(c² - a²)\n2. Einsetzen: b = √(%s² - %s²)\n3. Rechnung: b = √(%s) ≈ %s\nAntwort: Der Fuß steht %sm entfernt.",
			numfmt.Format(c), numfmt.Format(a), numfmt.Format(roundTo(c*c-a*a, 2)), numfmt.Format(answer), numfmt.Format(answer),
		)
	default: // Leiter c gesucht
		answer = roundTo(math.Sqrt(a*a+b*b), 1)
		sketch.A, sketch.B = a, b
		question = fmt.Sprintf(
			"Eine Leiter lehnt an einer Wand. Sie reicht %sm hoch und ihr Fuß steht %sm von der Wand entfernt.\nFrage: Wie lang (c) ist die Leiter? (Runde auf 1 Dezimalstelle)",
			numfmt.Format(a), numfmt.Format(b),
		)
		solution = fmt.Sprintf(
			"Satz des Pythagoras: a² + b² = c² (c ist die Leiter)\n1. Formel: c = √(a² + b²)\n2. Einsetzen: c = √(%s² + %s²)\n3. Rechnung: c = √(%s) ≈ %s\nAntwort: Die Leiter ist %sm lang.",
			numfmt.Format(a), numfmt.Format(b), numfmt.Format(roundTo(a*a+b*b, 2)), numfmt.Format(answer), numfmt.Format(answer),
		)
	}

	return Problem{Question: question, Answer: answer, Decimals: 1, Solution: solution, Sketch: sketch}
}

// wordLinearSystem covers years 9+: two purchases of two fruit sorts,
// asking for the unit price of the first sort. The prices are drawn
// first, the totals derived, so the system is solvable by construction.
func (g *Generator) wordLinearSystem() Problem {
	xPrice := roundTo(1.5+g.rng.Float64()*2, 2)
	yPrice := roundTo(1.0+g.rng.Float64()*1, 2)

	item1 := pick(g, []string{"Äpfel", "Birnen", "Orangen"})
	item2 := pick(g, []string{"Bananen", "Kiwis", "Mangos"})

	a1 := g.between(2, 5)
	b1 := g.between(2, 5)
	a2 := g.between(2, 5)
	b2 := g.between(2, 5)
	// Keep the two equations linearly independent.
	for a1*b2 == b1*a2 {
		a2 = g.between(2, 5)
	}

	c1 := roundTo(float64(a1)*xPrice+float64(b1)*yPrice, 2)
	c2 := roundTo(float64(a2)*xPrice+float64(b2)*yPrice, 2)

	question := fmt.Sprintf(
		"Eine Familie kauft %dkg %s und %dkg %s für %s€.\n"+
			"Ein Freund kauft %dkg %s und %dkg %s für %s€.\n"+
			"Frage: Wie viel kostet 1kg %s? (Runde auf 2 Dezimalstellen)",
		a1, item1, b1, item2, numfmt.Format(c1),
		a2, item1, b2, item2, numfmt.Format(c2),
		item1,
	)
	solution := fmt.Sprintf(
		"Stelle ein lineares Gleichungssystem auf (x = Preis %s, y = Preis %s):\n"+
			"I:  %dx + %dy = %s\n"+
			"II: %dx + %dy = %s\n\n"+
			"Lösung (z.B. durch Einsetzungs- oder Additionsverfahren):\n"+
			"x = %s\ny = %s\n\n"+
			"Antwort: 1kg %s kostet %s€.",
		item1, item2,
		a1, b1, numfmt.Format(c1),
		a2, b2, numfmt.Format(c2),
		numfmt.Format(xPrice), numfmt.Format(yPrice),
		item1, numfmt.Format(xPrice),
	)

	return Problem{Question: question, Answer: xPrice, Decimals: 2, Solution: solution}
}

// wordBernoulli covers years 9+: probability of exactly k successes in
// n throws of a die or coin, rounded to 4 decimals.
func (g *Generator) wordBernoulli() Problem {
	n := g.between(4, 6)
	k := g.between(2, n-1)

	var p float64
	var denom int
	var eventStr, itemStr string
	if g.rng.Intn(2) == 0 {
		denom, p = 6, 1.0/6.0
		eventStr = "eine Sechs"
		itemStr = "einem fairen 6-seitigen Würfel"
	} else {
		denom, p = 2, 0.5
		eventStr = "Kopf"
		itemStr = "einer fairen Münze"
	}
	q := 1 - p

	coeff := binomial(n, k)
	answer := roundTo(float64(coeff)*math.Pow(p, float64(k))*math.Pow(q, float64(n-k)), 4)

	question := fmt.Sprintf(
		"Es wird mit %s %d-mal hintereinander geworfen.\nFrage: Wie hoch ist die Wahrscheinlichkeit, dass GENAU %d-mal %s geworfen wird? (Runde auf 4 Dezimalstellen)",
		itemStr, n, k, eventStr,
	)
	solution := fmt.Sprintf(
		"Bernoulli-Kette: P(X=k) = (n über k) * p^k * (1-p)^(n-k)\n"+
			"1. n (Versuche): %d\n"+
			"2. k (Erfolge): %d\n"+
			"3. p (Erfolgswahrscheinlichkeit): 1/%d\n"+
			"4. (n über k): (%d über %d) = %d\n"+
			"5. Einsetzen: P(X=%d) = %d * (1/%d)^%d * (%s)^%d\n"+
			"Antwort: Die Wahrscheinlichkeit beträgt %s.",
		n, k, denom, n, k, coeff, k, coeff, denom, k, numfmt.Format(roundTo(q, 4)), n-k,
		numfmt.Format(answer),
	)

	return Problem{Question: question, Answer: answer, Decimals: 4, Solution: solution}
}

// wordOptimization covers years 10+: the classic fence-along-a-wall
// problem, maximizing a rectangular area with three fenced sides.
func (g *Generator) wordOptimization() Problem {
	fence := g.between(8, 20) * 10

	yMax := float64(fence) / 4
	xMax := float64(fence) / 2
	aMax := xMax * yMax

	var question string
	var answer float64
	intro := fmt.Sprintf(
		"Ein Landwirt hat %dm Zaun, um ein rechteckiges Gehege entlang einer Mauer zu bauen (3 Seiten).",
		fence,
	)
	switch g.rng.Intn(3) {
	case 0:
		question = intro + "\nFrage: Wie lang muss die Seite (x) parallel zur Mauer sein, um die Fläche zu maximieren?"
		answer = xMax
	case 1:
		question = intro + "\nFrage: Wie lang müssen die beiden Seiten (y) senkrecht zur Mauer sein, um die Fläche zu maximieren?"
		answer = yMax
	default:
		question = intro + "\nFrage: Wie groß ist die maximale Fläche (A), die er einzäunen kann?"
		answer = aMax
	}

	solution := fmt.Sprintf(
		"Zielfunktion (Fläche): A = x * y\n"+
			"Nebenbedingung (Zaun): L = x + 2y = %d\n\n"+
			"1. Nach x auflösen: x = %d - 2y\n"+
			"2. Einsetzen: A(y) = (%d - 2y) * y = %dy - 2y²\n"+
			"3. Ableiten: A'(y) = %d - 4y\n"+
			"4. Null setzen: %d - 4y = 0  =>  y = %s\n"+
			"5. x berechnen: x = %d - 2 * %s = %s\n"+
			"6. Maximale Fläche: A = %s * %s = %s\n\n"+
			"Antwort: Die gesuchte Größe ist %s.",
		fence, fence, fence, fence, fence, fence, numfmt.Format(yMax),
		fence, numfmt.Format(yMax), numfmt.Format(xMax),
		numfmt.Format(xMax), numfmt.Format(yMax), numfmt.Format(aMax),
		numfmt.Format(roundTo(answer, 2)),
	)

	return Problem{Question: question, Answer: roundTo(answer, 2), Decimals: 2, Solution: solution}
}

// binomial computes n over k for the small n used here.
func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}
