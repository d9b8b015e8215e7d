package services

import "errors"

// Sentinel errors returned by the services layer. Handlers map them onto
// flash messages or HTTP status codes; services never decide presentation.
var (
	ErrNotFound           = errors.New("requested resource not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
