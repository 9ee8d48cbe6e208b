package signup

// Form holds the values of the signup form at the moment of an event.
type Form struct {
	First      string `form:"first"`
	Last       string `form:"last"`
	Email      string `form:"email"`
	Birthdate  string `form:"birthdate"`
	Quantity   string `form:"quantity"`
	Location   string `form:"location"`
	Conditions bool   `form:"checkbox1"`
	Newsletter bool   `form:"checkbox2"`
}

// Choices returns the location radio group with the selected city checked.
func (f Form) Choices() []Choice {
	choices := make([]Choice, len(Cities))
	for i, c := range Cities {
		choices[i] = Choice{ID: c.ID, Value: c.Value, Checked: f.Location != "" && f.Location == c.Value}
	}
	return choices
}

// Reset empties every field.
func (f *Form) Reset() {
	*f = Form{}
}
