package validator

import "fmt"

func MinItems[T any](field string, value []T, min int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMinItems,
			Message: fmt.Sprintf("ensure this value has at least %d items", min),
			Values:  map[string]any{"limit_value": min},
		},
	}
}

func MaxItems[T any](field string, value []T, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMaxItems,
			Message: fmt.Sprintf("ensure this value has at most %d items", max),
			Values:  map[string]any{"limit_value": max},
		},
	}
}

// UniqueItems validates that a slice holds no duplicates.
func UniqueItems[T comparable](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			seen := make(map[T]struct{}, len(value))
			for _, v := range value {
				if _, ok := seen[v]; ok {
					return false
				}
				seen[v] = struct{}{}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeUnique,
			Message: "the list has duplicated items",
		},
	}
}
