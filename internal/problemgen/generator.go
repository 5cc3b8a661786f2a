// Package problemgen creates math problems with worked solutions.
// Every generator is a pure function of the resolved parameters and the
// injected random source, so a seeded source reproduces exact batches.
package problemgen

import (
	"math/rand"

	"github.com/rliegard/mathegenie/internal/curriculum"
)

// Generator produces problems for every topic. The zero value is not
// usable; construct one with New.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator drawing from the given random source.
// Tests pass a seeded source for deterministic output.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Rand exposes the generator's random source for callers that need to
// shuffle consistently with generation (the exam composer).
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

// Generate creates a single problem for the given topic. An unknown
// topic yields a sentinel zero-answer problem rather than an error, so
// a misconfigured batch never aborts.
func (g *Generator) Generate(level curriculum.Level, topic curriculum.Topic, difficulty curriculum.Difficulty) Problem {
	params := ResolveParams(level, topic, difficulty)

	var p Problem
	switch topic {
	case curriculum.NumberOperations:
		p = g.numberOperations(params)
	case curriculum.AlgebraicTerms:
		p = g.algebraicTerms(params)
	case curriculum.Geometry:
		p = g.geometry(params, level)
	case curriculum.Statistics:
		p = g.statistics(params)
	case curriculum.Probability:
		p = g.probability(params)
	case curriculum.PolynomialRemainder:
		p = g.polynomialRemainder(params)
	case curriculum.VectorCalculus:
		p = g.vectors(params, difficulty)
	case curriculum.WordProblems:
		p = g.wordProblem(level)
	default:
		p = Problem{
			Question: "Fehler: Unbekanntes Thema.",
			Answer:   0,
			Solution: "Fehler bei der Generierung.",
		}
	}
	p.Seq = 1
	return p
}

// GenerateBatch creates count problems, numbered 1..count.
func (g *Generator) GenerateBatch(level curriculum.Level, topic curriculum.Topic, difficulty curriculum.Difficulty, count int) []Problem {
	problems := make([]Problem, 0, count)
	for i := 0; i < count; i++ {
		p := g.Generate(level, topic, difficulty)
		p.Seq = i + 1
		problems = append(problems, p)
	}
	return problems
}

// between returns a uniform integer in [lo, hi]. A degenerate range
// collapses to lo.
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// pick returns a uniformly chosen element of opts.
func pick[T any](g *Generator, opts []T) T {
	return opts[g.rng.Intn(len(opts))]
}
