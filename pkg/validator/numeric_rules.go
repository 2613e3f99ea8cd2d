package validator

import "fmt"

// Min validates that a numeric value is greater than or equal to the minimum.
func Min[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeNotGE,
			Message: fmt.Sprintf("ensure this value is greater than or equal to %v", min),
			Values:  map[string]any{"limit_value": min},
		},
	}
}

// Max validates that a numeric value is less than or equal to the maximum.
func Max[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:   field,
			Code:    CodeNotLE,
			Message: fmt.Sprintf("ensure this value is less than or equal to %v", max),
			Values:  map[string]any{"limit_value": max},
		},
	}
}

// Range reports the first bound the value violates, min before max.
func Range[T Numeric](field string, value T, min, max T) Rule {
	lower, upper := Min(field, value, min), Max(field, value, max)
	rule := Rule{Check: func() bool { return lower.Check() && upper.Check() }}
	if !lower.Check() {
		rule.Error = lower.Error
	} else {
		rule.Error = upper.Error
	}
	return rule
}
