package validator

import (
	"errors"
	"fmt"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single field failure.
type ValidationError struct {
	// Field is the wire name of the field, dotted for nested fields.
	Field string
	// Location is the request location the field was read from.
	Location string
	// Code is a machine-readable error code, see the Code* constants.
	Code    string
	Message string
	// Values carries rule parameters (min, max, ...) for message templating.
	Values map[string]any
}

// Loc returns the location path of the error: the request location followed
// by the field path segments.
func (e ValidationError) Loc() []string {
	loc := make([]string, 0, 2)
	if e.Location != "" {
		loc = append(loc, e.Location)
	}
	if e.Field != "" {
		loc = append(loc, strings.Split(e.Field, ".")...)
	}
	return loc
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(err.Loc(), "."), err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// WithLocation returns a copy where errors without a location get loc.
func (ve ValidationErrors) WithLocation(loc string) ValidationErrors {
	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		if err.Location == "" {
			err.Location = loc
		}
		out[i] = err
	}
	return out
}

// WithPrefix returns a copy with every field path prefixed by prefix.
func (ve ValidationErrors) WithPrefix(prefix string) ValidationErrors {
	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		if err.Field == "" {
			err.Field = prefix
		} else {
			err.Field = prefix + "." + err.Field
		}
		out[i] = err
	}
	return out
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
