package widget

import "errors"

var (
	// ErrUnknownField is returned for change events naming a key the form does
	// not track.
	ErrUnknownField = errors.New("widget: unknown field")
	// ErrKindMismatch is returned when a checkbox event targets a text field or
	// a text event targets the checkbox.
	ErrKindMismatch = errors.New("widget: control kind does not match field")
	// ErrInvalidOption is returned when a radio event carries a value outside
	// the rendered choices.
	ErrInvalidOption = errors.New("widget: invalid option")
)
