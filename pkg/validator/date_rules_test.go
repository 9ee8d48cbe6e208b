package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/gameon/pkg/validator"
)

func TestValidDate(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1996-04-12", true},
		{"2000-02-29", true},
		{"2001-02-29", false},
		{"12/04/1996", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			rule := validator.ValidDate("birthdate", tt.value, validator.DateLayout)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, validator.CodeDate, rule.Error.Code)
		})
	}
}

func TestYearAge(t *testing.T) {
	now := time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC)

	t.Run("ignores month and day", func(t *testing.T) {
		birth := time.Date(2008, time.December, 31, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 18, validator.YearAge(birth, now))
	})

	t.Run("same year", func(t *testing.T) {
		birth := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 0, validator.YearAge(birth, now))
	})
}

func TestMinYearAge(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("boundary year passes", func(t *testing.T) {
		birth := time.Date(2008, time.December, 31, 0, 0, 0, 0, time.UTC)
		rule := validator.MinYearAge("birthdate", birth, now, 18)
		assert.True(t, rule.Check())
		assert.Equal(t, validator.CodeMinAge, rule.Error.Code)
		assert.Equal(t, 18, rule.Error.Values["min_age"])
	})

	t.Run("one year short fails", func(t *testing.T) {
		birth := time.Date(2009, time.January, 1, 0, 0, 0, 0, time.UTC)
		rule := validator.MinYearAge("birthdate", birth, now, 18)
		assert.False(t, rule.Check())
	})
}

func TestMaxYearAge(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	t.Run("boundary year passes", func(t *testing.T) {
		birth := time.Date(1927, time.January, 1, 0, 0, 0, 0, time.UTC)
		rule := validator.MaxYearAge("birthdate", birth, now, 99)
		assert.True(t, rule.Check())
		assert.Equal(t, validator.CodeMaxAge, rule.Error.Code)
	})

	t.Run("one year over fails", func(t *testing.T) {
		birth := time.Date(1926, time.December, 31, 0, 0, 0, 0, time.UTC)
		rule := validator.MaxYearAge("birthdate", birth, now, 99)
		assert.False(t, rule.Check())
	})
}
