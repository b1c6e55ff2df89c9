package utils

import "errors"

// Error kinds surfaced by the service layer. Handlers classify with
// errors.Is; the wrapped cause stays in the message.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrStorage      = errors.New("storage backend failure")
	ErrPersistence  = errors.New("persistence failure")
)
