package problemgen

import (
	"strings"
	"testing"
)

func TestStatMedian(t *testing.T) {
	g := newTestGenerator(1)
	sketch := &Sketch{Kind: SketchBarChart}

	tests := []struct {
		data []int
		want float64
	}{
		{[]int{2, 5, 8}, 5},
		{[]int{8, 2, 5}, 5},
		{[]int{1, 3, 6, 8}, 4.5},
		{[]int{7, 7, 7, 7}, 7},
		{[]int{10, 1}, 5.5},
	}
	for _, tt := range tests {
		p := g.statMedian(Params{Decimals: 0}, tt.data, sketch)
		if p.Answer != tt.want {
			t.Errorf("median(%v) = %v, want %v", tt.data, p.Answer, tt.want)
		}
	}
}

func TestStatMean(t *testing.T) {
	g := newTestGenerator(1)
	sketch := &Sketch{Kind: SketchBarChart}

	tests := []struct {
		data     []int
		decimals int
		want     float64
	}{
		{[]int{2, 4, 6}, 0, 4},
		{[]int{1, 2}, 1, 1.5},
		{[]int{1, 1, 1, 2}, 2, 1.25},
		{[]int{1, 2, 2}, 1, 1.7}, // 1.666... rounded to tier precision
	}
	for _, tt := range tests {
		p := g.statMean(Params{Decimals: tt.decimals}, tt.data, sketch)
		if p.Answer != tt.want {
			t.Errorf("mean(%v, %d decimals) = %v, want %v", tt.data, tt.decimals, p.Answer, tt.want)
		}
	}
}

func TestStatistics_SketchValues(t *testing.T) {
	g := newTestGenerator(4)
	p := g.statistics(Params{Lower: 1, Upper: 50, Decimals: 1})

	if p.Sketch == nil || p.Sketch.Kind != SketchBarChart {
		t.Fatal("statistics problem should carry a bar chart sketch")
	}
	if n := len(p.Sketch.Values); n < 5 || n > 10 {
		t.Errorf("sample size = %d, want 5..10", n)
	}
	if !strings.Contains(p.Question, "Datenreihe") {
		t.Fatalf("question %q should name the data series", p.Question)
	}
	for _, v := range p.Sketch.Values {
		if v < 1 {
			t.Errorf("sample value %d, want >= 1", v)
		}
	}
}
