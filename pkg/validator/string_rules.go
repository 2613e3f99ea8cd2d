package validator

import (
	"fmt"
	"strings"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMissing,
			Message: "field required",
		},
	}
}

func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMinLength,
			Message: fmt.Sprintf("ensure this value has at least %d characters", min),
			Values:  map[string]any{"limit_value": min},
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMaxLength,
			Message: fmt.Sprintf("ensure this value has at most %d characters", max),
			Values:  map[string]any{"limit_value": max},
		},
	}
}
