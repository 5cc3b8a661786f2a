package session

import (
	"testing"
	"time"

	"github.com/rliegard/mathegenie/internal/curriculum"
	"github.com/rliegard/mathegenie/internal/problemgen"
)

func testProblems() []problemgen.Problem {
	return []problemgen.Problem{
		{Seq: 1, Question: "3 + 4 =", Answer: 7},
		{Seq: 2, Question: "10 - 2 =", Answer: 8},
		{Seq: 3, Question: "5 * 5 =", Answer: 25},
	}
}

func newTestSession(problems []problemgen.Problem, limit time.Duration) (*Session, *time.Time) {
	s := New("Zahlenraum-Training (Leicht)", curriculum.DefaultLevel, problems, limit)
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return clock }
	s.started = clock
	return s, &clock
}

func TestSession_Walk(t *testing.T) {
	s, _ := newTestSession(testProblems(), EasyLimit)

	p, ok := s.Next()
	if !ok || p.Seq != 1 {
		t.Fatalf("Next() = %v, %v; want problem 1", p.Seq, ok)
	}
	if got := s.Submit("7"); got != Correct {
		t.Errorf("correct answer scored %v", got)
	}
	if got := s.Submit("9"); got != Wrong {
		t.Errorf("wrong answer scored %v", got)
	}
	if got := s.Submit(""); got != Skipped {
		t.Errorf("blank answer scored %v", got)
	}

	if _, ok := s.Next(); ok {
		t.Error("Next() should report done after all problems")
	}

	sum := s.Summarize()
	if sum.Correct != 1 || sum.Wrong != 1 || sum.Skipped != 1 || sum.Total != 3 {
		t.Errorf("summary = %+v, want 1/1/1 of 3", sum)
	}
}

func TestSession_Tolerance(t *testing.T) {
	s, _ := newTestSession([]problemgen.Problem{{Seq: 1, Question: "q", Answer: 7.5}}, EasyLimit)
	if got := s.Submit("7,45"); got != Correct {
		t.Errorf("answer within tolerance scored %v", got)
	}
}

func TestSession_TimeLimit(t *testing.T) {
	s, clock := newTestSession(testProblems(), EasyLimit)

	if s.Expired() {
		t.Fatal("fresh session should not be expired")
	}
	if s.Remaining() != EasyLimit {
		t.Errorf("Remaining() = %v, want %v", s.Remaining(), EasyLimit)
	}

	*clock = clock.Add(EasyLimit)
	if !s.Expired() {
		t.Error("session should expire at the budget")
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %v after expiry, want 0", s.Remaining())
	}
	if _, ok := s.Next(); ok {
		t.Error("Next() should stop handing out problems after expiry")
	}

	// Unreached problems count as skipped.
	sum := s.Summarize()
	if sum.Total != 3 || sum.Skipped != 3 {
		t.Errorf("summary = %+v, want all 3 skipped", sum)
	}
	if sum.Duration != EasyLimit {
		t.Errorf("Duration = %v, want %v", sum.Duration, EasyLimit)
	}
}

func TestTimeLimit_Tiers(t *testing.T) {
	tests := []struct {
		difficulty curriculum.Difficulty
		want       time.Duration
	}{
		{curriculum.Easy, 600 * time.Second},
		{curriculum.Medium, 900 * time.Second},
		{curriculum.Hard, 1200 * time.Second},
	}
	for _, tt := range tests {
		if got := TimeLimit(tt.difficulty); got != tt.want {
			t.Errorf("TimeLimit(%v) = %v, want %v", tt.difficulty, got, tt.want)
		}
	}
	if ExamLimit != 1800*time.Second {
		t.Errorf("ExamLimit = %v, want 1800s", ExamLimit)
	}
}
