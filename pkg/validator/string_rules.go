package validator

import (
	"fmt"
	"unicode/utf8"
)

// Required validates that a string is not empty.
// Whitespace counts as content: a field holding only spaces is left to the
// pattern rules, which is how browser form values are checked.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return value != ""
		},
		Error: ValidationError{
			Field:   field,
			Message: "field is required",
			Code:    CodeRequired,
			Values: map[string]any{
				"field": field,
			},
		},
	}
}

// MinRunes validates the length of a string in characters, not bytes,
// so accented letters count once.
func MinRunes(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at least %d characters long", min),
			Code:    CodeMinLength,
			Values: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}
