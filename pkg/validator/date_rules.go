package validator

import (
	"fmt"
	"time"
)

// DateLayout is the value format of an HTML date input.
const DateLayout = "2006-01-02"

// ValidDate validates that value parses with layout.
func ValidDate(field, value, layout string) Rule {
	return Rule{
		Check: func() bool {
			_, err := time.Parse(layout, value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid date",
			Code:    CodeDate,
			Values: map[string]any{
				"field":  field,
				"layout": layout,
			},
		},
	}
}

// YearAge returns the difference between the calendar years of now and
// birthdate. Month and day are ignored: someone born on 31 December is
// counted a year older from 1 January.
func YearAge(birthdate, now time.Time) int {
	return now.Year() - birthdate.Year()
}

// MinYearAge validates a minimum age computed with YearAge.
func MinYearAge(field string, birthdate, now time.Time, minAge int) Rule {
	return Rule{
		Check: func() bool {
			return YearAge(birthdate, now) >= minAge
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("minimum age of %d years required", minAge),
			Code:    CodeMinAge,
			Values: map[string]any{
				"field":   field,
				"min_age": minAge,
			},
		},
	}
}

// MaxYearAge validates a maximum age computed with YearAge.
func MaxYearAge(field string, birthdate, now time.Time, maxAge int) Rule {
	return Rule{
		Check: func() bool {
			return YearAge(birthdate, now) <= maxAge
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("maximum age of %d years exceeded", maxAge),
			Code:    CodeMaxAge,
			Values: map[string]any{
				"field":   field,
				"max_age": maxAge,
			},
		},
	}
}
