package signup

import (
	"regexp"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/gameon/pkg/validator"
)

const (
	nameMinLength = 2
	ageMin        = 18
	ageMax        = 99
)

const (
	lettersUpper = "A-ZÀÂÄÆÇÉÈÊËÎÏÔŒÖÙÛÜŸ"
	lettersLower = "a-zàâäæçéèêëîïôœöùûüÿ"
)

var (
	// One word of letters, optionally followed by a separator and a second
	// word of at least two letters, the tail lowercase.
	namePattern = regexp.MustCompile(
		`^[` + lettersLower + lettersUpper + `]+` +
			`([-'\s][` + lettersLower + lettersUpper + `][` + lettersLower + `]+)?$`,
	)

	// Lowercase only; uppercase input is rejected.
	emailPattern = regexp.MustCompile(`^[a-z0-9._-]+@[a-z0-9.-]{2,}\.[a-z]{2,24}$`)

	// Non-negative integer without leading zeros.
	quantityPattern = regexp.MustCompile(`^(0|[1-9]\d*)$`)
)

// CheckName validates a first or last name.
// A second word shorter than two letters fails the pattern and reports the
// invalid characters message; there is no dedicated message for it.
func CheckName(role NameRole, value string) Result {
	field := string(role.Field())
	prefix := role.prefix()
	value = norm.NFC.String(value)

	return resultOf(validator.First(
		validator.Required(field, value).WithMessage(prefix+msgNameEmpty),
		validator.Matches(field, value, namePattern, "name").WithMessage(prefix+msgNameInvalid),
		validator.MinRunes(field, value, nameMinLength).WithMessage(prefix+msgNameTooShort),
	))
}

// CheckEmail validates an email address. Matching is case-sensitive.
func CheckEmail(value string) Result {
	field := string(FieldEmail)

	return resultOf(validator.First(
		validator.Required(field, value).WithMessage(msgEmailEmpty),
		validator.Matches(field, value, emailPattern, "email").WithMessage(msgEmailInvalid),
	))
}

// CheckAge validates a YYYY-MM-DD birthdate against the 18..99 range.
// Age is the difference of calendar years between now and the birthdate.
func CheckAge(value string, now time.Time) Result {
	field := string(FieldBirthdate)

	if r := resultOf(validator.First(
		validator.Required(field, value).WithMessage(msgBirthdateEmpty),
		validator.ValidDate(field, value, validator.DateLayout).WithMessage(msgBirthdateCheck),
	)); !r.Valid {
		return r
	}

	birth, _ := time.Parse(validator.DateLayout, value)

	return resultOf(validator.First(
		validator.MinYearAge(field, birth, now, ageMin).WithMessage(msgBirthdateTooYoung),
		validator.MaxYearAge(field, birth, now, ageMax).WithMessage(msgBirthdateCheck),
	))
}

// CheckQuantity validates the number of past tournaments.
// An empty value fails like any other non-integer.
func CheckQuantity(value string) Result {
	return resultOf(validator.First(
		validator.Matches(string(FieldQuantity), value, quantityPattern, "integer").WithMessage(msgQuantityInvalid),
	))
}

// CheckCity validates that one location is selected.
func CheckCity(choices []Choice) Result {
	selected := make([]bool, len(choices))
	for i, c := range choices {
		selected[i] = c.Checked
	}

	return resultOf(validator.First(
		validator.AnySelected(string(FieldLocation), selected).WithMessage(msgCityEmpty),
	))
}

// CheckCondition validates that the terms checkbox is checked.
func CheckCondition(accepted bool) Result {
	return resultOf(validator.First(
		validator.Accepted(string(FieldConditions), accepted).WithMessage(msgConditionEmpty),
	))
}
