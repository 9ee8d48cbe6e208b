package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/gameon/pkg/validator"
)

func TestMatchesRegex(t *testing.T) {
	t.Run("valid pattern match", func(t *testing.T) {
		rule := validator.MatchesRegex("code", "ABC123", `^[A-Z]{3}\d{3}$`, "product code")
		assert.True(t, rule.Check())
		assert.Equal(t, "must match product code pattern", rule.Error.Message)
		assert.Equal(t, validator.CodePattern, rule.Error.Code)
	})

	t.Run("invalid pattern match", func(t *testing.T) {
		rule := validator.MatchesRegex("code", "abc123", `^[A-Z]{3}\d{3}$`, "product code")
		assert.False(t, rule.Check())
	})
}

func TestMatches(t *testing.T) {
	integer := regexp.MustCompile(`^(0|[1-9]\d*)$`)

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "zero", value: "0", want: true},
		{name: "plain number", value: "42", want: true},
		{name: "leading zero", value: "007", want: false},
		{name: "negative", value: "-1", want: false},
		{name: "empty", value: "", want: false},
		{name: "decimal", value: "1.5", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validator.Matches("quantity", tt.value, integer, "integer")
			assert.Equal(t, tt.want, rule.Check())
		})
	}

	t.Run("empty value accepted when the pattern allows it", func(t *testing.T) {
		optional := regexp.MustCompile(`^\d*$`)
		rule := validator.Matches("quantity", "", optional, "digits")
		assert.True(t, rule.Check())
	})

	t.Run("error values carry the pattern", func(t *testing.T) {
		rule := validator.Matches("quantity", "x", integer, "integer")
		assert.Equal(t, integer.String(), rule.Error.Values["pattern"])
		assert.Equal(t, "integer", rule.Error.Values["description"])
	})
}
