package signup

import (
	"fmt"
	"strings"
)

// FieldID identifies a form control and its error display context.
type FieldID string

const (
	FieldFirst      FieldID = "first"
	FieldLast       FieldID = "last"
	FieldEmail      FieldID = "email"
	FieldBirthdate  FieldID = "birthdate"
	FieldQuantity   FieldID = "quantity"
	FieldLocation   FieldID = "location"
	FieldConditions FieldID = "checkbox1"
)

// NameRole selects the message prefix of the name validator.
type NameRole string

const (
	RoleFirst NameRole = "first"
	RoleLast  NameRole = "last"
)

// Field returns the field the role validates.
func (r NameRole) Field() FieldID {
	return FieldID(r)
}

func (r NameRole) prefix() string {
	switch r {
	case RoleFirst:
		return prefixFirstName
	case RoleLast:
		return prefixLastName
	default:
		return ""
	}
}

// City is one entry of the location radio group.
type City struct {
	ID    string
	Value string
}

// Cities lists the tournament locations in display order.
var Cities = []City{
	{ID: "location1", Value: "New York"},
	{ID: "location2", Value: "San Francisco"},
	{ID: "location3", Value: "Seattle"},
	{ID: "location4", Value: "Chicago"},
	{ID: "location5", Value: "Boston"},
	{ID: "location6", Value: "Portland"},
}

// Choice is one option of a mutually exclusive group as seen at validation time.
type Choice struct {
	ID      string
	Value   string
	Checked bool
}

// cityTarget is the field that carries the city group's error: its first option.
func cityTarget(choices []Choice) FieldID {
	if len(choices) == 0 {
		return FieldLocation
	}
	return FieldID(choices[0].ID)
}

func isCityOption(field FieldID) bool {
	for _, c := range Cities {
		if string(field) == c.ID {
			return true
		}
	}
	return false
}

// Panel is one of the modal windows.
type Panel string

const (
	PanelForm   Panel = "form"
	PanelThanks Panel = "thanks"
)

// ParsePanel converts a panel name to a Panel.
func ParsePanel(name string) (Panel, error) {
	switch p := Panel(strings.ToLower(name)); p {
	case PanelForm, PanelThanks:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPanel, name)
	}
}
