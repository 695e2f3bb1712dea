package delivery

import (
	"errors"
	"hikmah/domain"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps domain sentinels onto HTTP statuses. Anything not
// recognised is a server fault.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrInUse):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
