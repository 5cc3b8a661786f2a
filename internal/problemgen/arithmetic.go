package problemgen

import (
	"fmt"
	"math"
	"strings"
)

// opName maps an operator to the German operation name used in traces.
func opName(op Operator) string {
	switch op {
	case OpAdd:
		return "Addition"
	case OpSub:
		return "Subtraktion"
	case OpMul:
		return "Multiplikation"
	case OpDiv:
		return "Division"
	default:
		return "Rechnung"
	}
}

// roundTo rounds v to d fraction digits.
func roundTo(v float64, d int) float64 {
	scale := math.Pow(10, float64(d))
	return math.Round(v*scale) / scale
}

// numberOperations builds a plain arithmetic problem: either a left-to-
// right add/subtract chain (when MaxTerms > 2) or a two-term expression
// with a single operator.
func (g *Generator) numberOperations(p Params) Problem {
	if p.MaxTerms > 2 {
		return g.arithmeticChain(p)
	}
	return g.twoTermArithmetic(p)
}

// arithmeticChain produces an N-term chain evaluated strictly left to
// right. When negatives are disallowed, any subtraction that would dip
// below zero is flipped to an addition.
func (g *Generator) arithmeticChain(p Params) Problem {
	lo := p.Lower
	if p.AllowNegatives {
		lo = -p.Upper
	}

	nums := make([]int, p.MaxTerms)
	for i := range nums {
		nums[i] = g.between(lo, p.Upper)
	}

	var question strings.Builder
	fmt.Fprintf(&question, "%d", nums[0])

	var trace strings.Builder
	fmt.Fprintf(&trace, "1. Schritt: %d\n", nums[0])

	current := nums[0]
	for i := 0; i < p.MaxTerms-1; i++ {
		op := pick(g, []Operator{OpAdd, OpSub})
		next := nums[i+1]
		if op == OpSub && !p.AllowNegatives && current < next {
			op = OpAdd // keep intermediate results non-negative
		}

		fmt.Fprintf(&question, " %c %d", op, next)

		result := current + next
		if op == OpSub {
			result = current - next
		}
		fmt.Fprintf(&trace, "%d. Schritt: %d %c %d = %d\n", i+2, current, op, next, result)
		current = result
	}
	question.WriteString(" =")

	answer := roundTo(float64(current), p.Decimals)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\nBerechnung (von links nach rechts):\n%s\nErgebnis: %d",
		question.String(), trace.String(), current,
	)

	return Problem{
		Question: question.String(),
		Answer:   answer,
		Decimals: p.Decimals,
		Solution: solution,
	}
}

// twoTermArithmetic produces "a op b =" with one operator from the
// allowed set. Divisions are built quotient-first with a small divisor,
// so the dividend is always an exact multiple.
func (g *Generator) twoTermArithmetic(p Params) Problem {
	ops := p.Operators
	if p.Decimals == 0 {
		// Only exact divisions make sense without decimals; the exact
		// construction below covers the remaining tiers.
		filtered := ops[:0:0]
		for _, op := range ops {
			if op != OpDiv {
				filtered = append(filtered, op)
			}
		}
		ops = filtered
	}
	if len(ops) == 0 {
		ops = []Operator{OpAdd, OpSub}
	}

	op := pick(g, ops)

	if op == OpDiv {
		safeLower := max(2, p.Lower)
		safeUpper := max(safeLower+1, p.Upper/2)

		quotient := g.between(safeLower, safeUpper)
		divisor := g.between(2, 9)
		dividend := quotient * divisor

		question := fmt.Sprintf("%d / %d =", dividend, divisor)
		solution := fmt.Sprintf(
			"Aufgabe: %s\n\n1. Schritt: Führe die Division aus.\n   %d / %d = %d\n\nErgebnis: %d",
			question, dividend, divisor, quotient, quotient,
		)
		return Problem{
			Question: question,
			Answer:   roundTo(float64(quotient), p.Decimals),
			Decimals: p.Decimals,
			Solution: solution,
		}
	}

	lo := p.Lower
	if p.AllowNegatives {
		lo = -p.Upper
	}
	a := g.between(lo, p.Upper)
	b := g.between(lo, p.Upper)

	if op == OpSub && !p.AllowNegatives && a < b {
		a, b = b, a // avoid a negative result
	}

	var result int
	switch op {
	case OpAdd:
		result = a + b
	case OpSub:
		result = a - b
	case OpMul:
		result = a * b
	}

	question := fmt.Sprintf("%d %c %d =", a, op, b)
	solution := fmt.Sprintf(
		"Aufgabe: %s\n\n1. Schritt: Führe die %s aus.\n   %d %c %d = %d\n\nErgebnis: %d",
		question, opName(op), a, op, b, result, result,
	)

	return Problem{
		Question: question,
		Answer:   roundTo(float64(result), p.Decimals),
		Decimals: p.Decimals,
		Solution: solution,
	}
}
