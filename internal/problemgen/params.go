package problemgen

import (
	"github.com/rliegard/mathegenie/internal/curriculum"
)

// Operator is an arithmetic operator available to a generator.
type Operator byte

const (
	OpAdd Operator = '+'
	OpSub Operator = '-'
	OpMul Operator = '*'
	OpDiv Operator = '/'
)

// Params are the knobs a topic generator works within. They are derived
// fresh per call from (level, topic, difficulty) and never mutated by
// the caller afterwards; generators may narrow the numeric range
// locally but must keep Lower <= Upper.
type Params struct {
	Lower          int
	Upper          int
	Operators      []Operator
	MaxTerms       int
	Decimals       int
	AllowNegatives bool
}

// ResolveParams derives generation parameters from the curriculum
// position, the topic and the difficulty tier. The returned range
// always satisfies Lower <= Upper, so generators need no retries.
func ResolveParams(level curriculum.Level, topic curriculum.Topic, difficulty curriculum.Difficulty) Params {
	year := level.Year

	// Base magnitude ceiling and operator set by school year.
	var maxVal int
	var ops []Operator
	switch {
	case year <= 2:
		maxVal = 100
		ops = []Operator{OpAdd, OpSub}
	case year <= 4:
		maxVal = 1000
		ops = []Operator{OpAdd, OpSub, OpMul, OpDiv}
	case year <= 7:
		maxVal = 10000
		ops = []Operator{OpAdd, OpSub, OpMul, OpDiv}
	default:
		maxVal = 100000
		ops = []Operator{OpAdd, OpSub, OpMul, OpDiv}
	}

	p := Params{
		Lower:     1,
		Upper:     maxVal,
		Operators: ops,
		MaxTerms:  2,
		Decimals:  0,
	}

	// Difficulty overrides the magnitude bucket.
	switch difficulty {
	case curriculum.Easy:
		p.Lower, p.Upper = 1, 9
		p.MaxTerms = 2
		p.Decimals = 0
		p.AllowNegatives = false

	case curriculum.Medium:
		lower, upper := 10, 99
		if maxVal < 10 {
			lower = 1
			upper = max(1, maxVal)
		} else if maxVal < 99 {
			upper = maxVal
		}
		p.Lower, p.Upper = lower, upper
		p.MaxTerms = 3
		if year >= 5 {
			p.Decimals = 1
		}

	case curriculum.Hard:
		lower, upper := 100, maxVal
		if maxVal < 100 {
			lower = max(10, maxVal/2)
			upper = maxVal
			if lower > upper {
				lower = max(1, upper/2)
			}
		}
		p.Lower, p.Upper = lower, upper
		p.MaxTerms = 4
		if year >= 5 {
			p.Decimals = 2
		}
		if year >= 7 {
			p.AllowNegatives = true
		}
	}

	// Non-arithmetic topics work in smaller ranges: geometry dimensions,
	// sample values and coefficients stay manageable.
	if topic != curriculum.NumberOperations {
		upper := p.Upper
		if difficulty == curriculum.Hard {
			upper = min(150, upper)
		} else {
			upper = min(50, upper)
		}
		lower := min(p.Lower, upper)

		switch topic {
		case curriculum.PolynomialRemainder, curriculum.VectorCalculus, curriculum.Probability:
			if difficulty == curriculum.Easy {
				upper = min(9, p.Upper)
			} else {
				upper = min(25, p.Upper)
			}
			lower = 1
		}

		p.Lower, p.Upper = lower, upper

		if year >= 7 {
			p.AllowNegatives = true // negative vector coordinates etc.
		}
		if year >= 5 {
			p.Decimals = 1
		}
	}

	if difficulty == curriculum.Medium && topic == curriculum.NumberOperations {
		p.Decimals = 0
	}

	return p
}

func (p Params) hasOperator(op Operator) bool {
	for _, o := range p.Operators {
		if o == op {
			return true
		}
	}
	return false
}
