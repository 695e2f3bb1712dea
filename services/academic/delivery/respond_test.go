package delivery

import (
	"errors"
	"fmt"
	"testing"

	"hikmah/domain"

	"github.com/gofiber/fiber/v2"
)

func TestStatusForError(t *testing.T) {
	_, semesterErr := domain.ParseSemester("summer")
	if semesterErr == nil {
		t.Fatal("expected ParseSemester to fail for an unknown label")
	}
	_, statusErr := domain.ParseAttendanceStatus("late")
	if statusErr == nil {
		t.Fatal("expected ParseAttendanceStatus to fail for an unknown label")
	}

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unknown semester", semesterErr, fiber.StatusBadRequest},
		{"unknown attendance status", statusErr, fiber.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("nothing to update: %w", domain.ErrValidation), fiber.StatusBadRequest},
		{"not found", domain.ErrNotFound, fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("no grades recorded: %w", domain.ErrNotFound), fiber.StatusNotFound},
		{"conflict", domain.ErrConflict, fiber.StatusConflict},
		{"in use", domain.ErrInUse, fiber.StatusConflict},
		{"unknown failure", errors.New("connection reset"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusForError(tc.err); got != tc.want {
				t.Errorf("statusForError(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
