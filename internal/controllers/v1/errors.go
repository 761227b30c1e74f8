package v1

import (
	"errors"
	"net/http"

	"github.com/finance-control/backend/internal/models"
)

type httpError struct {
	Error  string            `json:"error" example:"there is no transaction matching your query"`
	Fields map[string]string `json:"fields,omitempty"` // Field level details for validation failures
}

// status returns the appropriate HTTP status for an error.
//
// Everything that is not a missing resource or a server fault is an input
// problem and reported as unprocessable, matching the validation error
// contract of the API.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusUnprocessableEntity
}

// fields returns the field level details of validation errors, nil for
// every other error.
func fields(err error) map[string]string {
	var validationError models.ValidationError
	if errors.As(err, &validationError) {
		return validationError.Fields
	}

	return nil
}
