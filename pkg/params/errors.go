package params

import "errors"

var (
	// ErrInvalidModel is returned by Declare for inconsistent parameter metadata.
	ErrInvalidModel = errors.New("invalid parameter model")

	// ErrUnknownLocation is returned by Declare for a location outside the supported set.
	ErrUnknownLocation = errors.New("unknown parameter location")

	// ErrMalformedBody is the cause of the 400 error returned when a body cannot be decoded.
	ErrMalformedBody = errors.New("malformed request body")

	// ErrBodyTooLarge is the cause of the 413 error returned when a body exceeds the size limit.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrMalformedForm is the cause of the 400 error returned when a form cannot be parsed.
	ErrMalformedForm = errors.New("malformed form data")
)
