// Package exam composes the Halbjahrestest: a fixed-size mixed test
// drawn from every topic the student's class level has unlocked.
package exam

import (
	"github.com/rliegard/mathegenie/internal/curriculum"
	"github.com/rliegard/mathegenie/internal/problemgen"
)

// Mix is the difficulty composition of a test. The bulk is easy,
// topped with a medium band and a hard tail.
var Mix = []struct {
	Difficulty curriculum.Difficulty
	Count      int
}{
	{curriculum.Easy, 15},
	{curriculum.Medium, 5},
	{curriculum.Hard, 3},
}

// Size is the total number of problems in a composed test.
const Size = 23

// Exam is a composed test ready to be walked by a session.
type Exam struct {
	Level    curriculum.Level
	Problems []problemgen.Problem
}

// Compose builds a full test for the given level. The topic for each
// slot is drawn uniformly from the level's unlocked topics; the
// finished set is shuffled once so difficulties interleave, then
// renumbered 1..Size.
func Compose(gen *problemgen.Generator, level curriculum.Level) *Exam {
	topics := curriculum.AvailableTopics(level)
	if len(topics) == 0 {
		topics = []curriculum.Topic{curriculum.NumberOperations}
	}

	rng := gen.Rand()
	problems := make([]problemgen.Problem, 0, Size)
	for _, band := range Mix {
		for i := 0; i < band.Count; i++ {
			topic := topics[rng.Intn(len(topics))]
			problems = append(problems, gen.Generate(level, topic, band.Difficulty))
		}
	}

	rng.Shuffle(len(problems), func(i, j int) {
		problems[i], problems[j] = problems[j], problems[i]
	})
	for i := range problems {
		problems[i].Seq = i + 1
	}

	return &Exam{Level: level, Problems: problems}
}
