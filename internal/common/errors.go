package common

import "errors"

// Callers match these with errors.Is.
var (
	// repository specific errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// service specific errors
	ErrorForbidden          = errors.New("forbidden")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidToken = errors.New("invalid token")
)
