package validator

import "slices"

// AnySelected validates that at least one option in a group is selected.
func AnySelected(field string, selected []bool) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(selected, true)
		},
		Error: ValidationError{
			Field:   field,
			Message: "an option must be selected",
			Code:    CodeSelected,
			Values: map[string]any{
				"field":   field,
				"options": len(selected),
			},
		},
	}
}

// Accepted validates that a checkbox-like value is checked.
func Accepted(field string, value bool) Rule {
	return Rule{
		Check: func() bool {
			return value
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be accepted",
			Code:    CodeAccepted,
			Values: map[string]any{
				"field": field,
			},
		},
	}
}
