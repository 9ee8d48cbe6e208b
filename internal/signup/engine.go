package signup

import (
	"fmt"
	"time"
)

// Engine runs field checks and reports each outcome to a DisplayPort.
// An Engine is meant to live for one event; it holds no field state.
type Engine struct {
	display DisplayPort
	now     func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source used by the age check.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine returns an Engine writing to display.
// Panics on a nil display: there would be nowhere to report errors.
func NewEngine(display DisplayPort, opts ...Option) *Engine {
	if display == nil {
		panic("signup: nil display port")
	}
	e := &Engine{display: display, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) apply(field FieldID, r Result) bool {
	if r.Valid {
		e.display.Clear(field)
	} else {
		e.display.Show(field, r.Message)
	}
	return r.Valid
}

func (e *Engine) ValidateName(role NameRole, value string) bool {
	return e.apply(role.Field(), CheckName(role, value))
}

func (e *Engine) ValidateEmail(value string) bool {
	return e.apply(FieldEmail, CheckEmail(value))
}

func (e *Engine) ValidateAge(value string) bool {
	return e.apply(FieldBirthdate, CheckAge(value, e.now()))
}

func (e *Engine) ValidateQuantity(value string) bool {
	return e.apply(FieldQuantity, CheckQuantity(value))
}

// ValidateCity reports the outcome on the first option of the group.
func (e *Engine) ValidateCity(choices []Choice) bool {
	return e.apply(cityTarget(choices), CheckCity(choices))
}

func (e *Engine) ValidateCondition(accepted bool) bool {
	return e.apply(FieldConditions, CheckCondition(accepted))
}

// step binds a field to its check over the whole form.
type step struct {
	field FieldID
	check func(e *Engine, f Form) (FieldID, Result)
}

// gateOrder is the order of the aggregate check.
var gateOrder = []step{
	{FieldFirst, func(_ *Engine, f Form) (FieldID, Result) {
		return FieldFirst, CheckName(RoleFirst, f.First)
	}},
	{FieldLast, func(_ *Engine, f Form) (FieldID, Result) {
		return FieldLast, CheckName(RoleLast, f.Last)
	}},
	{FieldEmail, func(_ *Engine, f Form) (FieldID, Result) {
		return FieldEmail, CheckEmail(f.Email)
	}},
	{FieldBirthdate, func(e *Engine, f Form) (FieldID, Result) {
		return FieldBirthdate, CheckAge(f.Birthdate, e.now())
	}},
	{FieldQuantity, func(_ *Engine, f Form) (FieldID, Result) {
		return FieldQuantity, CheckQuantity(f.Quantity)
	}},
	{FieldLocation, func(_ *Engine, f Form) (FieldID, Result) {
		choices := f.Choices()
		return cityTarget(choices), CheckCity(choices)
	}},
	{FieldConditions, func(_ *Engine, f Form) (FieldID, Result) {
		return FieldConditions, CheckCondition(f.Conditions)
	}},
}

// Outcome describes one aggregate round.
type Outcome struct {
	Valid bool
	// Ran lists the display fields touched this round, in order.
	Ran []FieldID
	// Failed and Result describe the check that stopped the round.
	Failed FieldID
	Result Result
}

// Evaluate runs the checks in gate order and stops at the first failure.
// Fields after the failing one are not checked and their display is not touched.
func (e *Engine) Evaluate(f Form) Outcome {
	out := Outcome{Valid: true, Ran: make([]FieldID, 0, len(gateOrder))}
	for _, s := range gateOrder {
		target, r := s.check(e, f)
		out.Ran = append(out.Ran, target)
		if !e.apply(target, r) {
			out.Valid = false
			out.Failed = target
			out.Result = r
			return out
		}
	}
	return out
}

// Validate is the aggregate check: true only if every field is valid.
func (e *Engine) Validate(f Form) bool {
	return e.Evaluate(f).Valid
}

// ValidateField runs the single check bound to field. Any option id of the
// location group selects the city check.
func (e *Engine) ValidateField(f Form, field FieldID) (bool, error) {
	if isCityOption(field) {
		field = FieldLocation
	}
	for _, s := range gateOrder {
		if s.field == field {
			target, r := s.check(e, f)
			return e.apply(target, r), nil
		}
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownField, field)
}
