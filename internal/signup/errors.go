package signup

import "errors"

var (
	// ErrUnknownField is returned when a field id has no validator bound to it.
	ErrUnknownField = errors.New("unknown signup field")
	// ErrUnknownPanel is returned when a panel name is not one of the modal panels.
	ErrUnknownPanel = errors.New("unknown panel")
)
