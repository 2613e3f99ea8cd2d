package validator

// NotZero validates that a comparable value is not its zero value.
func NotZero[T comparable](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool {
			return value != zero
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeMissing,
			Message: "field required",
		},
	}
}
