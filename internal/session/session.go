// Package session walks a student through a set of problems, checks
// the answers and keeps the running tally together with the time
// budget of the chosen tier.
package session

import (
	"time"

	"github.com/rliegard/mathegenie/internal/curriculum"
	"github.com/rliegard/mathegenie/internal/problemgen"
)

// Time budgets per difficulty tier, and the fixed budget for the
// half-year test.
const (
	EasyLimit   = 600 * time.Second
	MediumLimit = 900 * time.Second
	HardLimit   = 1200 * time.Second
	ExamLimit   = 1800 * time.Second
)

// TimeLimit returns the practice budget for a tier.
func TimeLimit(d curriculum.Difficulty) time.Duration {
	switch d {
	case curriculum.Medium:
		return MediumLimit
	case curriculum.Hard:
		return HardLimit
	default:
		return EasyLimit
	}
}

// Outcome classifies one answered problem.
type Outcome int

const (
	Correct Outcome = iota
	Wrong
	Skipped
)

// Record is the per-problem log entry of a session.
type Record struct {
	Problem problemgen.Problem
	Given   string
	Outcome Outcome
}

// Session tracks progress through a list of problems. It is not safe
// for concurrent use; the CLI drives it from a single goroutine.
type Session struct {
	Label   string
	Level   curriculum.Level
	records []Record
	pending []problemgen.Problem

	started time.Time
	limit   time.Duration
	now     func() time.Time
}

// New starts a session over the given problems with the given time
// budget. The Label describes what is being practiced and ends up in
// the result log (for example "Geometrie (Mittel)").
func New(label string, level curriculum.Level, problems []problemgen.Problem, limit time.Duration) *Session {
	s := &Session{
		Label:   label,
		Level:   level,
		pending: problems,
		limit:   limit,
		now:     time.Now,
	}
	s.started = s.now()
	return s
}

// Next returns the next unanswered problem, or false when the session
// is finished or the time budget is used up.
func (s *Session) Next() (problemgen.Problem, bool) {
	if len(s.pending) == 0 || s.Expired() {
		return problemgen.Problem{}, false
	}
	return s.pending[0], true
}

// Submit scores raw input against the current problem and advances.
// Blank input counts as skipped, everything else as correct or wrong
// within the answer tolerance.
func (s *Session) Submit(raw string) Outcome {
	p := s.pending[0]
	s.pending = s.pending[1:]

	outcome := Wrong
	if _, status := problemgen.ParseAnswer(raw); status == problemgen.Empty {
		outcome = Skipped
	} else if problemgen.CheckAnswer(raw, p.Answer) {
		outcome = Correct
	}

	s.records = append(s.records, Record{Problem: p, Given: raw, Outcome: outcome})
	return outcome
}

// Records returns the log so far.
func (s *Session) Records() []Record {
	return s.records
}

// Remaining reports how much of the time budget is left.
func (s *Session) Remaining() time.Duration {
	left := s.limit - s.now().Sub(s.started)
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether the time budget is used up.
func (s *Session) Expired() bool {
	return s.now().Sub(s.started) >= s.limit
}

// Summary condenses the session for display and for the result log.
type Summary struct {
	Label    string
	Level    curriculum.Level
	Correct  int
	Wrong    int
	Skipped  int
	Total    int
	Duration time.Duration
}

// Summarize closes the books on the session. Problems never reached
// (time ran out) count into Total as skipped.
func (s *Session) Summarize() Summary {
	sum := Summary{
		Label:    s.Label,
		Level:    s.Level,
		Total:    len(s.records) + len(s.pending),
		Skipped:  len(s.pending),
		Duration: s.now().Sub(s.started),
	}
	for _, r := range s.records {
		switch r.Outcome {
		case Correct:
			sum.Correct++
		case Wrong:
			sum.Wrong++
		case Skipped:
			sum.Skipped++
		}
	}
	return sum
}
