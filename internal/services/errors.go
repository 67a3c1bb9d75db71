package services

import "errors"

var (
	// ErrValidation marks malformed caller input; no transaction is opened.
	ErrValidation = errors.New("invalid input")
	// ErrInvalidReference marks an answer pointing at a question or option
	// that does not exist; the whole submission rolls back.
	ErrInvalidReference = errors.New("referenced record not found")
	ErrNotFound         = errors.New("record not found")
	ErrUnauthorized     = errors.New("unauthorized")
)
