// Package domain holds the error vocabulary shared by the domain packages.
package domain

import "errors"

var (
	// ErrNotFound indicates a requested element was not found.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a request that cannot be applied as given.
	ErrValidation = errors.New("validation error")

	// ErrConflict indicates a conflict with existing data.
	ErrConflict = errors.New("conflict")
)
