package handlers

import (
	"errors"
	"net/http"

	"github.com/carepoint-dev/carepoint-api/internal/application"
)

// errStatus maps application sentinel errors to HTTP status and a
// caller-facing message. Unknown errors become opaque 500s so no
// internal detail leaks.
func errStatus(err error) (int, string) {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		return http.StatusBadRequest, "invalid credentials"
	case errors.Is(err, application.ErrEmailTaken):
		return http.StatusBadRequest, "email already registered"
	case errors.Is(err, application.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, application.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, application.ErrAlreadyReviewed):
		return http.StatusBadRequest, "medicine already reviewed"
	case errors.Is(err, application.ErrMedicineExists):
		return http.StatusBadRequest, "medicine already exists"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
