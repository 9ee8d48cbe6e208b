// Package signup validates the event signup form.
//
// Each field has a pure check (CheckName, CheckEmail, CheckAge,
// CheckQuantity, CheckCity, CheckCondition) returning a Result. The Engine
// runs those checks and writes the outcome to a DisplayPort: exactly one Show
// or Clear per check. Engine.Validate is the aggregate used on submission.
// It runs the fields in a fixed order and stops at the first failure, so the
// display state of later fields is left as it was.
//
// Gate wraps the aggregate with the submission side effects: on success the
// form panel is hidden, the confirmation panel shown and the form reset.
//
//	display := signup.NewMemoryDisplay()
//	panels := signup.NewMemoryPanels()
//	gate := signup.NewGate(signup.NewEngine(display), panels, log)
//	if gate.Submit(ctx, &form) {
//	    // panels.Visible(signup.PanelThanks) == true
//	}
//
// Error messages are French and fixed.
package signup
