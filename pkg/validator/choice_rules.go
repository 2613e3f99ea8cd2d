package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf validates that value is one of the allowed choices.
func OneOf[T comparable](field string, value T, choices ...T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(choices, value)
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeChoice,
			Message: "unexpected value; permitted: " + joinChoices(choices),
			Values:  map[string]any{"permitted": choices},
		},
	}
}

func joinChoices[T any](choices []T) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		parts[i] = fmt.Sprintf("%v", c)
	}
	return strings.Join(parts, ", ")
}
