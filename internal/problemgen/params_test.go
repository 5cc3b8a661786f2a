package problemgen

import (
	"testing"

	"github.com/rliegard/mathegenie/internal/curriculum"
)

func TestResolveParams_Difficulty(t *testing.T) {
	tests := []struct {
		name       string
		level      curriculum.Level
		topic      curriculum.Topic
		difficulty curriculum.Difficulty
		lower      int
		upper      int
		maxTerms   int
		decimals   int
		negatives  bool
	}{
		{"easy year 1", curriculum.Level{Year: 1, Semester: 1}, curriculum.NumberOperations, curriculum.Easy, 1, 9, 2, 0, false},
		{"easy year 10", curriculum.Level{Year: 10, Semester: 1}, curriculum.NumberOperations, curriculum.Easy, 1, 9, 2, 0, false},
		{"medium year 6", curriculum.Level{Year: 6, Semester: 1}, curriculum.NumberOperations, curriculum.Medium, 10, 99, 3, 0, false},
		{"medium year 3", curriculum.Level{Year: 3, Semester: 2}, curriculum.NumberOperations, curriculum.Medium, 10, 99, 3, 0, false},
		{"hard year 3", curriculum.Level{Year: 3, Semester: 1}, curriculum.NumberOperations, curriculum.Hard, 100, 1000, 4, 0, false},
		{"hard year 8", curriculum.Level{Year: 8, Semester: 1}, curriculum.NumberOperations, curriculum.Hard, 100, 100000, 4, 2, true},
	}

	for _, tt := range tests {
		p := ResolveParams(tt.level, tt.topic, tt.difficulty)
		if p.Lower != tt.lower || p.Upper != tt.upper {
			t.Errorf("%s: range = [%d, %d], want [%d, %d]", tt.name, p.Lower, p.Upper, tt.lower, tt.upper)
		}
		if p.MaxTerms != tt.maxTerms {
			t.Errorf("%s: MaxTerms = %d, want %d", tt.name, p.MaxTerms, tt.maxTerms)
		}
		if p.Decimals != tt.decimals {
			t.Errorf("%s: Decimals = %d, want %d", tt.name, p.Decimals, tt.decimals)
		}
		if p.AllowNegatives != tt.negatives {
			t.Errorf("%s: AllowNegatives = %v, want %v", tt.name, p.AllowNegatives, tt.negatives)
		}
	}
}

func TestResolveParams_Operators(t *testing.T) {
	p := ResolveParams(curriculum.Level{Year: 1, Semester: 1}, curriculum.NumberOperations, curriculum.Easy)
	if p.hasOperator(OpMul) || p.hasOperator(OpDiv) {
		t.Errorf("year 1 should only add and subtract, got %v", p.Operators)
	}

	p = ResolveParams(curriculum.Level{Year: 3, Semester: 1}, curriculum.NumberOperations, curriculum.Easy)
	if !p.hasOperator(OpMul) || !p.hasOperator(OpDiv) {
		t.Errorf("year 3 should have all four operators, got %v", p.Operators)
	}
}

func TestResolveParams_NonArithmeticShrink(t *testing.T) {
	// Geometry dimensions stay small even when the year bucket is huge.
	p := ResolveParams(curriculum.Level{Year: 8, Semester: 1}, curriculum.Geometry, curriculum.Hard)
	if p.Upper > 150 {
		t.Errorf("geometry hard Upper = %d, want <= 150", p.Upper)
	}
	if !p.AllowNegatives {
		t.Error("year 8 non-arithmetic should allow negatives")
	}
	if p.Decimals != 1 {
		t.Errorf("year 8 non-arithmetic Decimals = %d, want 1", p.Decimals)
	}

	p = ResolveParams(curriculum.Level{Year: 6, Semester: 1}, curriculum.AlgebraicTerms, curriculum.Medium)
	if p.Upper > 50 {
		t.Errorf("algebra medium Upper = %d, want <= 50", p.Upper)
	}

	// Coefficient topics are capped tighter still.
	p = ResolveParams(curriculum.Level{Year: 10, Semester: 1}, curriculum.Probability, curriculum.Easy)
	if p.Lower != 1 || p.Upper > 9 {
		t.Errorf("probability easy range = [%d, %d], want [1, <=9]", p.Lower, p.Upper)
	}
	p = ResolveParams(curriculum.Level{Year: 10, Semester: 1}, curriculum.VectorCalculus, curriculum.Hard)
	if p.Lower != 1 || p.Upper > 25 {
		t.Errorf("vector hard range = [%d, %d], want [1, <=25]", p.Lower, p.Upper)
	}
}

func TestResolveParams_RangeInvariant(t *testing.T) {
	for year := 1; year <= 13; year++ {
		for semester := 1; semester <= 2; semester++ {
			level := curriculum.Level{Year: year, Semester: semester}
			for _, topic := range curriculum.AllTopics() {
				for _, difficulty := range curriculum.AllDifficulties() {
					p := ResolveParams(level, topic, difficulty)
					if p.Lower > p.Upper {
						t.Errorf("ResolveParams(%v, %v, %v): Lower %d > Upper %d",
							level, topic, difficulty, p.Lower, p.Upper)
					}
				}
			}
		}
	}
}
