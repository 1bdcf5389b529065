package service

import "errors"

// Abstract error kinds returned by the services. Handlers map these to
// wire-level status codes; the services themselves never decide codes.
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
