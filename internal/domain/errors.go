package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrUnauthorized   = errors.New("unauthorized")
)

// ValidationError carries the ordered list of per-field messages produced
// by input validation. All failures for a request are collected before
// returning, so clients see every problem at once.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Messages, "; ")
}
