package domain

import "errors"

// Errors shared by every store. Handlers map them to http status codes, so
// repositories and usecases return them unwrapped.
var (
	ErrInternalServerError = errors.New("internal server error")
	ErrNotFound            = errors.New("item not found")
	ErrConflict            = errors.New("item already exists")
	ErrBadParamInput       = errors.New("invalid param")

	ErrInvalidAddress   = errors.New("invalid address")
	ErrInvalidSignature = errors.New("invalid signature")
	ErrUnauthorized     = errors.New("unauthorized")
)
