package curriculum

import "testing"

func TestAvailable(t *testing.T) {
	tests := []struct {
		topic Topic
		level Level
		want  bool
	}{
		{NumberOperations, Level{1, 1}, true},
		{WordProblems, Level{1, 1}, true},
		{Geometry, Level{4, 2}, false},
		{Geometry, Level{5, 1}, true},
		{AlgebraicTerms, Level{5, 1}, true},
		{Statistics, Level{6, 2}, false},
		{Statistics, Level{7, 1}, true},
		{Probability, Level{7, 2}, false},
		{Probability, Level{8, 1}, true},
		{VectorCalculus, Level{5, 1}, false},
		{VectorCalculus, Level{9, 2}, false},
		{VectorCalculus, Level{10, 1}, true},
		{PolynomialRemainder, Level{10, 1}, true},
	}

	for _, tt := range tests {
		if got := Available(tt.topic, tt.level); got != tt.want {
			t.Errorf("Available(%s, %v) = %v, want %v", tt.topic.Label(), tt.level, got, tt.want)
		}
	}
}

func TestAvailableTopics_Progression(t *testing.T) {
	// The unlocked set only ever grows along the progression.
	prev := 0
	for year := 1; year <= 13; year++ {
		for semester := 1; semester <= 2; semester++ {
			n := len(AvailableTopics(Level{year, semester}))
			if n < prev {
				t.Fatalf("topic set shrank at %d.%d: %d < %d", year, semester, n, prev)
			}
			prev = n
		}
	}

	if got := len(AvailableTopics(Level{1, 1})); got != 2 {
		t.Errorf("year 1.1 unlocks %d topics, want 2", got)
	}
	if got := len(AvailableTopics(Level{13, 2})); got != len(AllTopics()) {
		t.Errorf("year 13.2 unlocks %d topics, want all %d", got, len(AllTopics()))
	}
}

func TestParseTopic(t *testing.T) {
	tests := []struct {
		in      string
		want    Topic
		wantErr bool
	}{
		{"Zahlenraum-Training", NumberOperations, false},
		{"zahlenraum", NumberOperations, false},
		{"arithmetik", NumberOperations, false},
		{"Terme & Gleichungen", AlgebraicTerms, false},
		{"algebra", AlgebraicTerms, false},
		{"Geometrie", Geometry, false},
		{"statistik", Statistics, false},
		{"Stochastik", Probability, false},
		{"polynomdivision", PolynomialRemainder, false},
		{"Vektor-Berechnung", VectorCalculus, false},
		{"vektoren", VectorCalculus, false},
		{"Textaufgaben", WordProblems, false},
		{"chemie", NumberOperations, true},
		{"", NumberOperations, true},
	}

	for _, tt := range tests {
		got, err := ParseTopic(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTopic(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseTopic(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTopicLabels_Unique(t *testing.T) {
	seen := map[string]bool{}
	for _, topic := range AllTopics() {
		label := topic.Label()
		if label == "" || label == "Unbekannt" {
			t.Errorf("topic %d has no label", topic)
		}
		if seen[label] {
			t.Errorf("duplicate label %q", label)
		}
		seen[label] = true
	}
}
