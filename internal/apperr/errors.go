// Package apperr defines the error taxonomy shared by services and handlers.
// Services wrap these sentinels with fmt.Errorf("%w: ...") so handlers can
// map them to HTTP statuses with errors.Is.
package apperr

import "errors"

var (
	ErrValidation         = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrNotFound           = errors.New("not found")
	ErrUpstream           = errors.New("upstream AI service failure")
)
