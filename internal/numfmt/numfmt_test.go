package numfmt

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{5.0, "5,0"},
		{-12.34, "-12,34"},
		{0.5, "0,5"},
		{1453557.0, "1.453.557,0"},
		{1000.25, "1.000,25"},
		{-1000000.0, "-1.000.000,0"},
		{0.0, "0,0"},
		{3.14159, "3,14159"},
		{0.1666666666, "0,16667"}, // noise absorbed at 5 places
		{7.999999999, "8,0"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatInt(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{5, "5"},
		{-7, "-7"},
		{999, "999"},
		{1000, "1.000"},
		{1453557, "1.453.557"},
		{-25000, "-25.000"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := FormatInt(tt.in); got != tt.want {
			t.Errorf("FormatInt(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{"5,0", 5},
		{"-12,34", -12.34},
		{"1.453.557,0", 1453557},
		{"1453557", 1453557},
		{"7,05", 7.05},
		{" 42 ", 42},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "   ", "\t"} {
		if _, err := Parse(in); !errors.Is(err, ErrEmpty) {
			t.Errorf("Parse(%q) error = %v, want ErrEmpty", in, err)
		}
	}
	for _, in := range []string{"abc", "3x", "1,2,3"} {
		_, err := Parse(in)
		if err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
		if errors.Is(err, ErrEmpty) {
			t.Errorf("Parse(%q) error should not be ErrEmpty", in)
		}
	}
}

func TestFormat_ParseRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 5, -12.34, 1453557, 0.16667, 1000.25, -99999.5} {
		got, err := Parse(Format(v))
		if err != nil {
			t.Fatalf("round trip %v: %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %v = %v", v, got)
		}
	}
}
