package validator

import "errors"

// Common validation errors that can be used across the application.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")
)

// Machine-readable error codes.
const (
	CodeMissing    = "value_error.missing"
	CodeInvalid    = "value_error"
	CodeMinLength  = "value_error.any_str.min_length"
	CodeMaxLength  = "value_error.any_str.max_length"
	CodeNotGE      = "value_error.number.not_ge"
	CodeNotLE      = "value_error.number.not_le"
	CodeMinItems   = "value_error.list.min_items"
	CodeMaxItems   = "value_error.list.max_items"
	CodeUnique     = "value_error.list.unique_items"
	CodeChoice     = "value_error.const"
	CodeString     = "type_error.str"
	CodeInteger    = "type_error.integer"
	CodeFloat      = "type_error.float"
	CodeBool       = "type_error.bool"
	CodeList       = "type_error.list"
	CodeObject     = "type_error.object"
	CodeFile       = "type_error.file"
	CodeBytes      = "type_error.bytes"
	CodeUnexpected = "type_error"
	CodeEmail      = "value_error.email"
	CodeURL        = "value_error.url"
	CodeIP         = "value_error.ipvanyaddress"
	CodeRegex      = "value_error.str.regex"
	CodeUUID       = "type_error.uuid"
)
