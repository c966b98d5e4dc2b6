package domain

import (
	"errors"
	"strings"
)

// ErrInvalidInput is matched by every *ValidationError
var ErrInvalidInput = errors.New("invalid input")

// Admin errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminAlreadyExists = errors.New("admin already exists")
)

// Lead errors
var (
	ErrDuplicateLead    = errors.New("lead already exists")
	ErrLeadNotFound     = errors.New("lead not found")
	ErrInvalidBillValue = errors.New("monthly bill value must be a positive number")
)

// TagRequired is the FieldError tag of an absent or blank field
const TagRequired = "required"

// FieldError describes one rejected input field.
// Tag names the failed rule (validator tag).
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationError carries every field that failed validation.
// It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// IsMissing reports whether any field failed because it was absent
func (e *ValidationError) IsMissing() bool {
	for _, f := range e.Fields {
		if f.Tag == TagRequired {
			return true
		}
	}
	return false
}
