package handler

import "errors"

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrInvalidRequestType indicates a request struct whose `in` tags cannot be bound.
	ErrInvalidRequestType = errors.New("invalid request type")
)
