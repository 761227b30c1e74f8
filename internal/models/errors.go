package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// ValidationError reports input that fails a declared constraint.
// It carries the offending fields together with the reason for each.
type ValidationError struct {
	Fields map[string]string
}

func (e ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Fields))
	for field, reason := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, reason))
	}
	sort.Strings(parts)

	return strings.Join(parts, "; ")
}

// Field reasons reused by the validation rules and the database callbacks.
const (
	reasonAmountNotPositive = "must be greater than zero"
	reasonAmountPrecision   = "must not have more than 2 decimal places"
	reasonDescriptionEmpty  = "must not be empty"
	reasonDescriptionLong   = "must not be longer than 255 characters"
	reasonTypeInvalid       = `must be one of "income", "expense"`
	reasonDateRequired      = "must be a valid calendar date"
)
