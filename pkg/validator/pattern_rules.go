package validator

import (
	"fmt"
	"regexp"
)

// MatchesRegex validates against custom patterns. Compiles regex on each call - cache externally for performance.
func MatchesRegex(field, value string, pattern string, description string) Rule {
	return Matches(field, value, regexp.MustCompile(pattern), description)
}

// Matches validates value against a precompiled pattern.
// Unlike MatchesRegex an empty value is not rejected up front: it fails only
// if the pattern does not accept it.
func Matches(field, value string, re *regexp.Regexp, description string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must match %s pattern", description),
			Code:    CodePattern,
			Values: map[string]any{
				"field":       field,
				"pattern":     re.String(),
				"description": description,
			},
		},
	}
}
