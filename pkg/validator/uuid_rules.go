package validator

import (
	"fmt"

	"github.com/google/uuid"
)

// UUID validates a textual UUID, optionally of a specific version (1-8).
// A version of 0 accepts any.
func UUID(field, value string, version int) Rule {
	msg := "value is not a valid uuid"
	if version > 0 {
		msg = fmt.Sprintf("uuid version %d expected", version)
	}
	return Rule{
		Check: func() bool {
			if value == "" {
				return true
			}
			id, err := uuid.Parse(value)
			if err != nil {
				return false
			}
			return version == 0 || int(id.Version()) == version
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeUUID,
			Message: msg,
			Values:  map[string]any{"required_version": version},
		},
	}
}

// NonNilUUID validates that a decoded UUID is not uuid.Nil.
func NonNilUUID(field string, value uuid.UUID) Rule {
	return Rule{
		Check: func() bool {
			return value != uuid.Nil
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMissing,
			Message: "field required",
		},
	}
}
