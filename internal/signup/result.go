package signup

import "github.com/dmitrymomot/gameon/pkg/validator"

// Kind classifies a validation failure.
type Kind int

const (
	KindNone Kind = iota
	KindEmpty
	KindPatternMismatch
	KindTooShort
	KindTooYoung
	KindTooOld
	KindNoSelection
	KindNotAccepted
)

var kindNames = map[Kind]string{
	KindNone:            "none",
	KindEmpty:           "empty",
	KindPatternMismatch: "pattern_mismatch",
	KindTooShort:        "too_short",
	KindTooYoung:        "too_young",
	KindTooOld:          "too_old",
	KindNoSelection:     "no_selection",
	KindNotAccepted:     "not_accepted",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// OutOfRange reports whether the kind is one of the age bounds.
func (k Kind) OutOfRange() bool {
	return k == KindTooYoung || k == KindTooOld
}

// Result is the outcome of one field check.
// Message is set iff Valid is false.
type Result struct {
	Valid   bool
	Kind    Kind
	Message string
}

var valid = Result{Valid: true}

var codeKinds = map[string]Kind{
	validator.CodeRequired:  KindEmpty,
	validator.CodePattern:   KindPatternMismatch,
	validator.CodeDate:      KindPatternMismatch,
	validator.CodeMinLength: KindTooShort,
	validator.CodeMinAge:    KindTooYoung,
	validator.CodeMaxAge:    KindTooOld,
	validator.CodeSelected:  KindNoSelection,
	validator.CodeAccepted:  KindNotAccepted,
}

// resultOf turns the outcome of validator.First into a Result.
func resultOf(verr validator.ValidationError, failed bool) Result {
	if !failed {
		return valid
	}
	return Result{
		Kind:    codeKinds[verr.Code],
		Message: verr.Message,
	}
}
