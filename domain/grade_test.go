package domain

import (
	"math"
	"testing"
)

func fp(v float64) *float64 { return &v }

func TestComputeFinalScore(t *testing.T) {
	tests := []struct {
		name      string
		task      *float64
		midterm   *float64
		finalExam *float64
		want      float64
	}{
		{
			name:      "all components present",
			task:      fp(80),
			midterm:   fp(70),
			finalExam: fp(90),
			want:      81,
		},
		{
			name:      "all perfect",
			task:      fp(100),
			midterm:   fp(100),
			finalExam: fp(100),
			want:      100,
		},
		{
			name: "all missing",
			want: 0,
		},
		{
			name:      "missing task counts as zero",
			midterm:   fp(80),
			finalExam: fp(80),
			want:      56,
		},
		{
			name:      "only final exam",
			finalExam: fp(50),
			want:      20,
		},
		{
			name:      "all zero",
			task:      fp(0),
			midterm:   fp(0),
			finalExam: fp(0),
			want:      0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeFinalScore(tc.task, tc.midterm, tc.finalExam)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("ComputeFinalScore() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWeightsSumToOne(t *testing.T) {
	if sum := WeightTask + WeightMidterm + WeightFinalExam; sum != 1.0 {
		t.Errorf("component weights sum to %v, want 1.0", sum)
	}
}
