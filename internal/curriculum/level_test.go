package curriculum

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		label string
		want  Level
	}{
		{"1.1", Level{1, 1}},
		{"5.2", Level{5, 2}},
		{"13.2", Level{13, 2}},
		{" 7.1 ", Level{7, 1}},
		{"", DefaultLevel},
		{"5", DefaultLevel},
		{"5.3", DefaultLevel},
		{"0.1", DefaultLevel},
		{"14.1", DefaultLevel},
		{"a.b", DefaultLevel},
		{"5,1", DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.label); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}

func TestTotalSemesterIndex(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{Level{1, 1}, 1},
		{Level{1, 2}, 2},
		{Level{2, 1}, 3},
		{Level{5, 1}, 9},
		{Level{7, 1}, 13},
		{Level{10, 1}, 19},
		{Level{13, 2}, 26},
	}

	for _, tt := range tests {
		if got := tt.level.TotalSemesterIndex(); got != tt.want {
			t.Errorf("%v.TotalSemesterIndex() = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelString_RoundTrip(t *testing.T) {
	for year := 1; year <= 13; year++ {
		for semester := 1; semester <= 2; semester++ {
			l := Level{year, semester}
			if got := ParseLevel(l.String()); got != l {
				t.Errorf("ParseLevel(%q) = %v, want %v", l.String(), got, l)
			}
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"leicht", Easy, false},
		{"Mittel", Medium, false},
		{"SCHWER", Hard, false},
		{"easy", Easy, false},
		{"medium", Medium, false},
		{"hard", Hard, false},
		{" schwer ", Hard, false},
		{"extrem", Easy, true},
		{"", Easy, true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDifficultyLabel(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want string
	}{
		{Easy, "Leicht"},
		{Medium, "Mittel"},
		{Hard, "Schwer"},
	}
	for _, tt := range tests {
		if got := tt.d.Label(); got != tt.want {
			t.Errorf("Label() = %q, want %q", got, tt.want)
		}
	}
}
