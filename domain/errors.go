package domain

import "errors"

// Outcomes the delivery layer must tell apart. Repositories translate driver
// errors into the persistence sentinels before returning; usecases wrap bad
// input in ErrValidation. Anything else is an internal failure.
var (
	ErrNotFound   = errors.New("record not found")
	ErrConflict   = errors.New("record already exists")
	ErrInUse      = errors.New("record is still referenced")
	ErrValidation = errors.New("invalid input")
)
