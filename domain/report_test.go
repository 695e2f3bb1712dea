package domain

import "testing"

func TestPredicate(t *testing.T) {
	tests := []struct {
		name  string
		score *float64
		want  string
	}{
		{name: "nil score", score: nil, want: "-"},
		{name: "exactly 90", score: fp(90), want: "A"},
		{name: "above 90", score: fp(97.5), want: "A"},
		{name: "exactly 80", score: fp(80), want: "B"},
		{name: "just below 90", score: fp(89.99), want: "B"},
		{name: "exactly 70", score: fp(70), want: "C"},
		{name: "just below 80", score: fp(79.5), want: "C"},
		{name: "just below 70", score: fp(69.99), want: "D"},
		{name: "zero", score: fp(0), want: "D"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Predicate(tc.score); got != tc.want {
				t.Errorf("Predicate(%v) = %q, want %q", tc.score, got, tc.want)
			}
		})
	}
}
