package funnel

import (
	"testing"
)

func TestRound1(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{19.99999999998, 20},
		{14.88, 14.9},
		{26.088, 26.1},
		{0.05, 0.1},
		{-0.05, -0.1},
		{0, 0},
		{42, 42},
	}
	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12500, "12,500"},
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{100000, "100,000"},
		{1234.5678, "1,234.5678"},
		{-12500, "-12,500"},
		{12.5, "12.5"},
	}
	for _, tt := range tests {
		if got := FormatThousands(tt.in); got != tt.want {
			t.Errorf("FormatThousands(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
