package core

import "net/http"

// HTTPError is a client-facing error with a status code.
// Key is a stable machine-readable identifier; Message is safe to show to
// clients. Err keeps the underlying cause for errors.Is/As and logs, it is
// never rendered.
type HTTPError struct {
	Code    int    // HTTP status code
	Key     string // e.g. "bad_request"
	Message string
	Err     error
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Key
}

func (e HTTPError) Unwrap() error {
	return e.Err
}

// Is matches HTTPError targets by status code and key, ignoring message and cause.
func (e HTTPError) Is(target error) bool {
	t, ok := target.(HTTPError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Key == t.Key
}

// WithMessage returns a copy with a client-facing message.
func (e HTTPError) WithMessage(msg string) HTTPError {
	e.Message = msg
	return e
}

// Wrap returns a copy carrying err as its cause.
func (e HTTPError) Wrap(err error) HTTPError {
	e.Err = err
	return e
}

// Errors raised by request binding.
var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrUnprocessableEntity   = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrInternalServerError   = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)

// NewHTTPError creates a custom HTTP error with the given status code and key.
//
// Example:
//
//	err := core.NewHTTPError(http.StatusForbidden, "insufficient_permissions")
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}
