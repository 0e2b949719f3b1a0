package domain

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when caller-supplied fields are missing or malformed.
// Wrap it with a field message, e.g. fmt.Errorf("%w: title is required", ErrValidation).
var ErrValidation = errors.New("invalid input")
