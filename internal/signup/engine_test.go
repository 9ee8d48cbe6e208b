package signup_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gameon/internal/signup"
)

func clock() func() time.Time {
	return func() time.Time { return fixedNow }
}

func validForm() signup.Form {
	return signup.Form{
		First:      "Marie",
		Last:       "Dupont",
		Email:      "marie@dupont.fr",
		Birthdate:  "1996-04-12",
		Quantity:   "2",
		Location:   "Seattle",
		Conditions: true,
	}
}

func TestNewEngine_NilDisplay(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { signup.NewEngine(nil) })
}

func TestEngine_FieldValidators(t *testing.T) {
	t.Parallel()

	t.Run("each validator touches the display exactly once", func(t *testing.T) {
		t.Parallel()

		display := signup.NewMemoryDisplay()
		engine := signup.NewEngine(display, signup.WithClock(clock()))

		calls := []func() bool{
			func() bool { return engine.ValidateName(signup.RoleFirst, "") },
			func() bool { return engine.ValidateName(signup.RoleLast, "Dupont") },
			func() bool { return engine.ValidateEmail("Test@Example.com") },
			func() bool { return engine.ValidateAge("2009-01-01") },
			func() bool { return engine.ValidateQuantity("007") },
			func() bool { return engine.ValidateCity(signup.Form{}.Choices()) },
			func() bool { return engine.ValidateCondition(true) },
		}
		for i, call := range calls {
			display.ResetCalls()
			call()
			assert.Len(t, display.Calls(), 1, "validator %d", i)
		}
	})

	t.Run("error state reflects the last outcome", func(t *testing.T) {
		t.Parallel()

		display := signup.NewMemoryDisplay()
		engine := signup.NewEngine(display)

		assert.False(t, engine.ValidateName(signup.RoleFirst, "M"))
		assert.Equal(t, signup.ErrorState{
			Visible: true,
			Text:    "Votre prénom doit contenir au moins 2 caractères",
		}, display.State(signup.FieldFirst))

		assert.True(t, engine.ValidateName(signup.RoleFirst, "Marie"))
		assert.True(t, display.State(signup.FieldFirst).Cleared())
	})

	t.Run("city error attaches to the first option", func(t *testing.T) {
		t.Parallel()

		display := signup.NewMemoryDisplay()
		engine := signup.NewEngine(display)

		assert.False(t, engine.ValidateCity(signup.Form{}.Choices()))
		assert.Equal(t, "Veuillez choisir une ville", display.State("location1").Text)
		assert.True(t, display.State(signup.FieldLocation).Cleared())
	})

	t.Run("age uses the configured clock", func(t *testing.T) {
		t.Parallel()

		display := signup.NewMemoryDisplay()
		later := signup.NewEngine(display, signup.WithClock(func() time.Time {
			return fixedNow.AddDate(1, 0, 0)
		}))
		assert.True(t, later.ValidateAge("2009-01-01"))
	})
}

func TestEngine_Evaluate(t *testing.T) {
	t.Parallel()

	t.Run("valid form runs every check in order", func(t *testing.T) {
		t.Parallel()

		display := signup.NewMemoryDisplay()
		engine := signup.NewEngine(display, signup.WithClock(clock()))

		out := engine.Evaluate(validForm())
		assert.True(t, out.Valid)
		assert.Equal(t, []signup.FieldID{
			signup.FieldFirst,
			signup.FieldLast,
			signup.FieldEmail,
			signup.FieldBirthdate,
			signup.FieldQuantity,
			"location1",
			signup.FieldConditions,
		}, out.Ran)
		assert.Empty(t, display.States())
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		t.Parallel()

		display := signup.NewMemoryDisplay()
		engine := signup.NewEngine(display, signup.WithClock(clock()))

		form := validForm()
		form.Quantity = "-1"
		form.Conditions = false

		out := engine.Evaluate(form)
		assert.False(t, out.Valid)
		assert.Equal(t, signup.FieldQuantity, out.Failed)
		assert.Equal(t, signup.KindPatternMismatch, out.Result.Kind)
		assert.Len(t, out.Ran, 5)

		want := map[signup.FieldID]signup.ErrorState{
			signup.FieldQuantity: {Visible: true, Text: "Veuillez entrer un nombre valide"},
		}
		if diff := cmp.Diff(want, display.States()); diff != "" {
			t.Errorf("display states mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("short-circuit leaves later fields untouched", func(t *testing.T) {
		t.Parallel()

		display := signup.NewMemoryDisplay()
		engine := signup.NewEngine(display, signup.WithClock(clock()))

		// Round one: everything up to the birthdate passes, so email is cleared.
		first := validForm()
		first.Birthdate = ""
		require.False(t, engine.Validate(first))
		require.True(t, display.State(signup.FieldEmail).Cleared())
		require.True(t, display.State(signup.FieldBirthdate).Visible)

		// Round two: first name breaks and email becomes invalid too.
		display.ResetCalls()
		second := first
		second.First = ""
		second.Email = "not-an-email"
		assert.False(t, engine.Validate(second))

		assert.Equal(t, []signup.DisplayCall{{
			Field:   signup.FieldFirst,
			Show:    true,
			Message: "Votre prénom ne peut pas être vide.",
		}}, display.Calls())
		assert.True(t, display.State(signup.FieldEmail).Cleared())
		assert.True(t, display.State(signup.FieldBirthdate).Visible, "stale state is kept")
	})
}

func TestEngine_ValidateField(t *testing.T) {
	t.Parallel()

	t.Run("runs only the named field", func(t *testing.T) {
		t.Parallel()

		display := signup.NewMemoryDisplay()
		engine := signup.NewEngine(display, signup.WithClock(clock()))

		form := signup.Form{Email: "marie@dupont.fr"}
		ok, err := engine.ValidateField(form, signup.FieldEmail)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []signup.DisplayCall{{Field: signup.FieldEmail}}, display.Calls())
	})

	t.Run("any city option selects the city check", func(t *testing.T) {
		t.Parallel()

		display := signup.NewMemoryDisplay()
		engine := signup.NewEngine(display)

		ok, err := engine.ValidateField(signup.Form{}, "location4")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, display.State("location1").Visible)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		display := signup.NewMemoryDisplay()
		engine := signup.NewEngine(display)

		ok, err := engine.ValidateField(signup.Form{}, "nickname")
		assert.False(t, ok)
		assert.ErrorIs(t, err, signup.ErrUnknownField)
		assert.Empty(t, display.Calls())
	})
}

func TestMemoryDisplay(t *testing.T) {
	t.Parallel()

	display := signup.NewMemoryDisplay()
	display.Show(signup.FieldEmail, "")
	assert.True(t, display.State(signup.FieldEmail).Cleared(), "visible state always has text")

	display.Show(signup.FieldEmail, "boom")
	states := display.States()
	states[signup.FieldEmail] = signup.ErrorState{}
	assert.Equal(t, "boom", display.State(signup.FieldEmail).Text, "States returns a copy")

	display.Clear(signup.FieldEmail)
	assert.Equal(t, signup.ErrorState{}, display.State(signup.FieldEmail))
	assert.Len(t, display.Calls(), 3)
}
