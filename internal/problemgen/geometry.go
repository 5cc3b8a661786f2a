package problemgen

import (
	"fmt"
	"math"

	"github.com/rliegard/mathegenie/internal/curriculum"
	"github.com/rliegard/mathegenie/internal/numfmt"
)

// geoPi is the rounded pi value shown in questions, so recomputing a
// trace with it reproduces the stored answer exactly.
const geoPi = 3.14159

type geoShape int

const (
	shapeRectangle geoShape = iota
	shapeCircle
	shapeTriangle
	shapeTrapezoid
	shapeCube
	shapeSphere
	shapeCuboid
	shapeCylinder
	shapeCone
)

// geometry builds a perimeter/area problem for a 2-D shape or, from
// year 7 on, a volume/surface problem for a 3-D solid. The trapezoid
// unlocks at year 6.
func (g *Generator) geometry(p Params, level curriculum.Level) Problem {
	shapes := []geoShape{shapeRectangle, shapeCircle, shapeTriangle}
	if level.Year >= 6 {
		shapes = append(shapes, shapeTrapezoid)
	}
	if level.Year >= 7 {
		shapes = append(shapes, shapeCube, shapeSphere, shapeCuboid, shapeCylinder, shapeCone)
	}

	maxDim := max(1, p.Upper)

	switch pick(g, shapes) {
	case shapeRectangle:
		return g.geoRectangle(p, maxDim)
	case shapeCircle:
		return g.geoCircle(p, maxDim)
	case shapeTriangle:
		return g.geoTriangle(p, maxDim)
	case shapeTrapezoid:
		return g.geoTrapezoid(p, maxDim)
	case shapeCube:
		return g.geoCube(p, maxDim)
	case shapeSphere:
		return g.geoSphere(p, maxDim)
	case shapeCuboid:
		return g.geoCuboid(p, maxDim)
	case shapeCylinder:
		return g.geoCylinder(p, maxDim)
	default:
		return g.geoCone(p, maxDim)
	}
}

func (g *Generator) geoRectangle(p Params, maxDim int) Problem {
	length := g.between(1, maxDim)
	width := g.between(1, length)
	sketch := &Sketch{Kind: SketchRectangle, Length: float64(length), Width: float64(width)}

	if g.rng.Intn(2) == 0 { // Umfang
		answer := 2 * (length + width)
		question := fmt.Sprintf("Berechne den Umfang eines Rechtecks mit Länge %dcm und Breite %dcm.", length, width)
		solution := fmt.Sprintf(
			"Aufgabe: %s\n\n1. Formel: U = 2 * (l + b)\n2. Einsetzen: U = 2 * (%d + %d) = %d\n\nErgebnis: %d cm",
			question, length, width, answer, answer,
		)
		return Problem{Question: question, Answer: roundTo(float64(answer), p.Decimals), Decimals: p.Decimals, Solution: solution, Sketch: sketch}
	}

	answer := length * width
	question := fmt.Sprintf("Berechne die Fläche eines Rechtecks mit Länge %dcm und Breite %dcm.", length, width)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n1. Formel: A = l * b\n2. Einsetzen: A = %d * %d = %d\n\nErgebnis: %d cm²",
		question, length, width, answer, answer,
	)
	return Problem{Question: question, Answer: roundTo(float64(answer), p.Decimals), Decimals: p.Decimals, Solution: solution, Sketch: sketch}
}

func (g *Generator) geoCircle(p Params, maxDim int) Problem {
	radius := g.between(1, max(2, maxDim/2))
	sketch := &Sketch{Kind: SketchCircle, Radius: float64(radius)}

	if g.rng.Intn(2) == 0 { // Umfang
		answer := roundTo(2*geoPi*float64(radius), p.Decimals)
		question := fmt.Sprintf(
			"Berechne den Umfang eines Kreises mit Radius %dcm. Runde auf %d Nachkommastellen (Pi = 3,14159).",
			radius, p.Decimals,
		)
		solution := fmt.Sprintf(
			"Aufgabe: %s\n\n1. Formel: U = 2 * Pi * r\n2. Einsetzen: U = 2 * 3,14159 * %d\n\nErgebnis (gerundet): %s cm",
			question, radius, numfmt.Format(answer),
		)
		return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution, Sketch: sketch}
	}

	answer := roundTo(geoPi*float64(radius*radius), p.Decimals)
	question := fmt.Sprintf(
		"Berechne die Fläche eines Kreises mit Radius %dcm. Runde auf %d Nachkommastellen (Pi = 3,14159).",
		radius, p.Decimals,
	)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n1. Formel: A = Pi * r²\n2. Einsetzen: A = 3,14159 * %d² = 3,14159 * %d\n\nErgebnis (gerundet): %s cm²",
		question, radius, radius*radius, numfmt.Format(answer),
	)
	return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution, Sketch: sketch}
}

func (g *Generator) geoTriangle(p Params, maxDim int) Problem {
	base := g.between(1, maxDim)
	height := g.between(1, max(2, base))
	sketch := &Sketch{Kind: SketchTriangle, Base: float64(base), Height: float64(height)}

	answer := roundTo(0.5*float64(base)*float64(height), p.Decimals)
	question := fmt.Sprintf("Berechne die Fläche eines Dreiecks mit Grundseite %dcm und Höhe %dcm.", base, height)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n1. Formel: A = 0,5 * g * h\n2. Einsetzen: A = 0,5 * %d * %d = %s\n\nErgebnis: %s cm²",
		question, base, height, numfmt.Format(answer), numfmt.Format(answer),
	)
	return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution, Sketch: sketch}
}

func (g *Generator) geoTrapezoid(p Params, maxDim int) Problem {
	a := g.between(1, maxDim)
	c := g.between(1, a)
	h := g.between(1, maxDim)
	sketch := &Sketch{Kind: SketchTrapezoid, A: float64(a), C: float64(c), Height: float64(h)}

	answer := roundTo(float64(a+c)/2*float64(h), p.Decimals)
	question := fmt.Sprintf("Berechne die Fläche eines Trapezes mit den Seiten a=%dcm, c=%dcm und Höhe h=%dcm.", a, c, h)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n1. Formel: A = ((a + c) / 2) * h\n2. Einsetzen: A = ((%d + %d) / 2) * %d = %s * %d\n\nErgebnis: %s cm²",
		question, a, c, h, numfmt.Format(float64(a+c)/2), h, numfmt.Format(answer),
	)
	return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution, Sketch: sketch}
}

func (g *Generator) geoCube(p Params, maxDim int) Problem {
	a := g.between(1, max(2, maxDim/4))
	sketch := &Sketch{Kind: SketchCube, Side: float64(a)}

	if g.rng.Intn(2) == 0 { // Volumen
		answer := a * a * a
		question := fmt.Sprintf("Berechne das Volumen (V) eines Würfels mit Seitenlänge a = %dcm.", a)
		solution := fmt.Sprintf(
			"Aufgabe: %s\n\n1. Formel: V = a³\n2. Einsetzen: V = %d³ = %d\n\nErgebnis: %d cm³",
			question, a, answer, answer,
		)
		return Problem{Question: question, Answer: roundTo(float64(answer), p.Decimals), Decimals: p.Decimals, Solution: solution, Sketch: sketch}
	}

	answer := 6 * a * a
	question := fmt.Sprintf("Berechne die Oberfläche (O) eines Würfels mit Seitenlänge a = %dcm.", a)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n1. Formel: O = 6 * a²\n2. Einsetzen: O = 6 * %d² = 6 * %d = %d\n\nErgebnis: %d cm²",
		question, a, a*a, answer, answer,
	)
	return Problem{Question: question, Answer: roundTo(float64(answer), p.Decimals), Decimals: p.Decimals, Solution: solution, Sketch: sketch}
}

func (g *Generator) geoSphere(p Params, maxDim int) Problem {
	r := g.between(1, max(2, maxDim/4))
	sketch := &Sketch{Kind: SketchSphere, Radius: float64(r)}

	if g.rng.Intn(2) == 0 { // Volumen
		answer := roundTo(4.0/3.0*geoPi*math.Pow(float64(r), 3), p.Decimals)
		question := fmt.Sprintf(
			"Berechne das Volumen (V) einer Kugel mit Radius r = %dcm. Runde auf %d Nachkommastellen (Pi = 3,14159).",
			r, p.Decimals,
		)
		solution := fmt.Sprintf(
			"Aufgabe: %s\n\n1. Formel: V = (4/3) * Pi * r³\n2. Einsetzen: V = (4/3) * 3,14159 * %d³\n\nErgebnis (gerundet): %s cm³",
			question, r, numfmt.Format(answer),
		)
		return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution, Sketch: sketch}
	}

	answer := roundTo(4*geoPi*float64(r*r), p.Decimals)
	question := fmt.Sprintf(
		"Berechne die Oberfläche (O) einer Kugel mit Radius r = %dcm. Runde auf %d Nachkommastellen (Pi = 3,14159).",
		r, p.Decimals,
	)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n1. Formel: O = 4 * Pi * r²\n2. Einsetzen: O = 4 * 3,14159 * %d²\n\nErgebnis (gerundet): %s cm²",
		question, r, numfmt.Format(answer),
	)
	return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution, Sketch: sketch}
}

func (g *Generator) geoCuboid(p Params, maxDim int) Problem {
	l := g.between(1, max(2, maxDim/3))
	w := g.between(1, max(2, maxDim/3))
	h := g.between(1, max(2, maxDim/3))
	sketch := &Sketch{Kind: SketchCuboid, Length: float64(l), Width: float64(w), Height: float64(h)}

	if g.rng.Intn(2) == 0 { // Volumen
		answer := l * w * h
		question := fmt.Sprintf("Berechne das Volumen (V) eines Quaders (l=%d, b=%d, h=%d) in cm.", l, w, h)
		solution := fmt.Sprintf(
			"Aufgabe: %s\n\n1. Formel: V = l * b * h\n2. Einsetzen: V = %d * %d * %d = %d\n\nErgebnis: %d cm³",
			question, l, w, h, answer, answer,
		)
		return Problem{Question: question, Answer: roundTo(float64(answer), p.Decimals), Decimals: p.Decimals, Solution: solution, Sketch: sketch}
	}

	answer := 2 * (l*w + l*h + w*h)
	question := fmt.Sprintf("Berechne die Oberfläche (O) eines Quaders (l=%d, b=%d, h=%d) in cm.", l, w, h)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n1. Formel: O = 2 * (lb + lh + bh)\n2. Einsetzen: O = 2 * (%d + %d + %d) = %d\n\nErgebnis: %d cm²",
		question, l*w, l*h, w*h, answer, answer,
	)
	return Problem{Question: question, Answer: roundTo(float64(answer), p.Decimals), Decimals: p.Decimals, Solution: solution, Sketch: sketch}
}

func (g *Generator) geoCylinder(p Params, maxDim int) Problem {
	r := g.between(1, max(2, maxDim/4))
	h := g.between(1, max(2, maxDim/2))
	sketch := &Sketch{Kind: SketchCylinder, Radius: float64(r), Height: float64(h)}

	if g.rng.Intn(2) == 0 { // Volumen
		answer := roundTo(geoPi*float64(r*r)*float64(h), p.Decimals)
		question := fmt.Sprintf(
			"Berechne das Volumen (V) eines Zylinders (r=%d, h=%d) in cm. Runde auf %d Nachkommastellen (Pi = 3,14159).",
			r, h, p.Decimals,
		)
		solution := fmt.Sprintf(
			"Aufgabe: %s\n\n1. Formel: V = Pi * r² * h\n2. Einsetzen: V = 3,14159 * %d² * %d\n\nErgebnis (gerundet): %s cm³",
			question, r, h, numfmt.Format(answer),
		)
		return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution, Sketch: sketch}
	}

	answer := roundTo(2*geoPi*float64(r)*float64(h)+2*geoPi*float64(r*r), p.Decimals)
	question := fmt.Sprintf(
		"Berechne die Oberfläche (O) eines Zylinders (r=%d, h=%d) in cm. Runde auf %d Nachkommastellen (Pi = 3,14159).",
		r, h, p.Decimals,
	)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n1. Formel: O = 2*Pi*r*h (Mantel) + 2*Pi*r² (Deckel und Boden)\n2. Einsetzen: O = (2 * 3,14159 * %d * %d) + (2 * 3,14159 * %d²)\n\nErgebnis (gerundet): %s cm²",
		question, r, h, r, numfmt.Format(answer),
	)
	return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution, Sketch: sketch}
}

func (g *Generator) geoCone(p Params, maxDim int) Problem {
	r := g.between(1, max(2, maxDim/4))
	h := g.between(1, max(2, maxDim/2))
	sketch := &Sketch{Kind: SketchCone, Radius: float64(r), Height: float64(h)}

	if g.rng.Intn(2) == 0 { // Volumen
		answer := roundTo(1.0/3.0*geoPi*float64(r*r)*float64(h), p.Decimals)
		question := fmt.Sprintf(
			"Berechne das Volumen (V) eines Kegels (r=%d, h=%d) in cm. Runde auf %d Nachkommastellen (Pi = 3,14159).",
			r, h, p.Decimals,
		)
		solution := fmt.Sprintf(
			"Aufgabe: %s\n\n1. Formel: V = (1/3) * Pi * r² * h\n2. Einsetzen: V = (1/3) * 3,14159 * %d² * %d\n\nErgebnis (gerundet): %s cm³",
			question, r, h, numfmt.Format(answer),
		)
		return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution, Sketch: sketch}
	}

	// Mantellinie s für die Oberfläche.
	s := math.Sqrt(float64(r*r + h*h))
	answer := roundTo(geoPi*float64(r*r)+geoPi*float64(r)*s, p.Decimals)
	question := fmt.Sprintf(
		"Berechne die Oberfläche (O) eines Kegels (r=%d, h=%d) in cm. Runde auf %d Nachkommastellen (Pi = 3,14159).",
		r, h, p.Decimals,
	)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n1. Formel: O = Pi*r² (Grundfläche) + Pi*r*s (Mantel)\n2. Mantellinie: s = √(r² + h²) = √(%d + %d) ≈ %s\n3. Einsetzen: O = (3,14159 * %d²) + (3,14159 * %d * %s)\n\nErgebnis (gerundet): %s cm²",
		question, r*r, h*h, numfmt.Format(roundTo(s, 2)), r, r, numfmt.Format(roundTo(s, 2)), numfmt.Format(answer),
	)
	return Problem{Question: question, Answer: answer, Decimals: p.Decimals, Solution: solution, Sketch: sketch}
}
