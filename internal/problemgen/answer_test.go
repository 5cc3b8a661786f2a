package problemgen

import "testing"

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		raw     string
		correct float64
		want    bool
	}{
		{"7", 7, true},
		{"7,05", 7, true},  // within tolerance
		{"7,2", 7, false},  // outside tolerance
		{"6,95", 7, true},
		{"-3,5", -3.5, true},
		{"1.453.557,0", 1453557, true},
		{"1453557", 1453557, true},
		{"0,1667", 0.1667, true},
		{"", 5, false},
		{"   ", 5, false},
		{"abc", 5, false},
		{"3x", 3, false},
	}

	for _, tt := range tests {
		if got := CheckAnswer(tt.raw, tt.correct); got != tt.want {
			t.Errorf("CheckAnswer(%q, %v) = %v, want %v", tt.raw, tt.correct, got, tt.want)
		}
	}
}

func TestParseAnswer_Status(t *testing.T) {
	tests := []struct {
		raw  string
		want AnswerStatus
	}{
		{"42", Answered},
		{"  12,5 ", Answered},
		{"", Empty},
		{"\t", Empty},
		{"zwölf", Invalid},
	}

	for _, tt := range tests {
		if _, got := ParseAnswer(tt.raw); got != tt.want {
			t.Errorf("ParseAnswer(%q) status = %v, want %v", tt.raw, got, tt.want)
		}
	}
}
