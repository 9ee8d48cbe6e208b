// Package validator provides small, composable validation rules.
//
// Each exported function returns a Rule: a boolean Check closure paired with
// ValidationError metadata (field, default message, rule code and values).
// Rules are evaluated either all at once with Apply, which aggregates every
// failure into ValidationErrors, or in order with First, which stops at the
// first failure. First is what form validators use when exactly one message
// per field is shown.
//
// # Usage
//
//	verr, failed := validator.First(
//	    validator.Required("first", v).WithMessage("cannot be empty"),
//	    validator.Matches("first", v, nameRe, "name"),
//	    validator.MinRunes("first", v, 2),
//	)
//	if failed {
//	    // verr.Code tells which rule family failed
//	}
//
// # Rule families
//
//   - string_rules.go  Required, MinRunes
//   - pattern_rules.go MatchesRegex, Matches
//   - date_rules.go    ValidDate, YearAge, MinYearAge, MaxYearAge
//   - choice_rules.go  AnySelected, Accepted
//
// The package keeps no global state and is safe for concurrent use.
package validator
