package signup

// ErrorState is the error display of one field.
// The zero value is the cleared state.
type ErrorState struct {
	Visible bool
	Text    string
}

// Cleared reports whether no error is displayed.
func (s ErrorState) Cleared() bool {
	return !s.Visible && s.Text == ""
}

// DisplayPort receives the outcome of each field check.
// Validators call exactly one of Show or Clear per invocation.
type DisplayPort interface {
	Show(field FieldID, message string)
	Clear(field FieldID)
}

// DisplayCall records one call made on a MemoryDisplay.
type DisplayCall struct {
	Field   FieldID
	Show    bool
	Message string
}

// MemoryDisplay keeps error display state in memory.
// State survives across validation rounds, like attributes on a page.
type MemoryDisplay struct {
	states map[FieldID]ErrorState
	calls  []DisplayCall
}

// NewMemoryDisplay returns an empty display with every field cleared.
func NewMemoryDisplay() *MemoryDisplay {
	return &MemoryDisplay{states: make(map[FieldID]ErrorState)}
}

// Show makes message visible on field. An empty message clears the field so
// a visible state always has text.
func (d *MemoryDisplay) Show(field FieldID, message string) {
	d.calls = append(d.calls, DisplayCall{Field: field, Show: true, Message: message})
	if message == "" {
		delete(d.states, field)
		return
	}
	d.states[field] = ErrorState{Visible: true, Text: message}
}

func (d *MemoryDisplay) Clear(field FieldID) {
	d.calls = append(d.calls, DisplayCall{Field: field})
	delete(d.states, field)
}

// State returns the current display state of field.
func (d *MemoryDisplay) State(field FieldID) ErrorState {
	return d.states[field]
}

// States returns a copy of every field currently showing an error.
func (d *MemoryDisplay) States() map[FieldID]ErrorState {
	out := make(map[FieldID]ErrorState, len(d.states))
	for k, v := range d.states {
		out[k] = v
	}
	return out
}

// Calls returns the calls recorded since creation or the last ResetCalls.
func (d *MemoryDisplay) Calls() []DisplayCall {
	return append([]DisplayCall(nil), d.calls...)
}

// ResetCalls forgets recorded calls and keeps display state.
func (d *MemoryDisplay) ResetCalls() {
	d.calls = nil
}
