package domain

import (
	"testing"
	"time"
)

func TestParseSemester(t *testing.T) {
	tests := []struct {
		in      string
		want    Semester
		wantErr bool
	}{
		{in: "Ganjil", want: SemesterGanjil},
		{in: "ganjil", want: SemesterGanjil},
		{in: "GENAP", want: SemesterGenap},
		{in: "  genap ", want: SemesterGenap},
		{in: "odd", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSemester(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseSemester(%q) expected error, got %q", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSemester(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseSemester(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSemesterWindow(t *testing.T) {
	ganjilFrom, ganjilTo := SemesterWindow(2024, SemesterGanjil)
	if want := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC); !ganjilFrom.Equal(want) {
		t.Errorf("Ganjil from = %v, want %v", ganjilFrom, want)
	}
	if want := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC); !ganjilTo.Equal(want) {
		t.Errorf("Ganjil to = %v, want %v", ganjilTo, want)
	}

	genapFrom, genapTo := SemesterWindow(2024, SemesterGenap)
	if !genapFrom.Equal(ganjilTo) {
		t.Errorf("Genap must start where Ganjil ends, got %v and %v", genapFrom, ganjilTo)
	}
	if want := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC); !genapTo.Equal(want) {
		t.Errorf("Genap to = %v, want %v", genapTo, want)
	}

	// A date in August of the academic year falls in Ganjil only.
	aug := time.Date(2024, time.August, 15, 0, 0, 0, 0, time.UTC)
	if aug.Before(ganjilFrom) || !aug.Before(ganjilTo) {
		t.Errorf("August %v should fall inside the Ganjil window", aug)
	}
	if !aug.Before(genapFrom) {
		t.Errorf("August %v should fall before the Genap window", aug)
	}

	// A date in March falls in Genap of the previous academic year.
	mar := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	if mar.Before(genapFrom) || !mar.Before(genapTo) {
		t.Errorf("March %v should fall inside the Genap window", mar)
	}
}
