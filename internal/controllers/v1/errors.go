package v1

import (
	"errors"
	"net/http"

	"github.com/condoboard/backend/internal/models"
)

// httpError is used for error responses that contain a body.
type httpError struct {
	Error string `json:"error" example:"the share table code must be one of A, B, C, D, E, F, G, H, I, L"`
}

// status returns the appropriate status code for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Authentication errors
var (
	errLoginFailed     = errors.New("the username or password is incorrect")
	errNoAuthorization = errors.New("the request needs a bearer token in the Authorization header")
	errInvalidToken    = errors.New("the bearer token is invalid or expired")
)
