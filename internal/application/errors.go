package application

import "errors"

// Sentinel errors surfaced to the HTTP boundary. Handlers map these to
// statuses; anything else is reported as an internal error.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("forbidden")
	ErrAlreadyReviewed    = errors.New("medicine already reviewed")
	ErrMedicineExists     = errors.New("medicine already exists")
)
