package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoWidget is returned when a session is built without a widget.
	ErrNoWidget = errors.New("tui: widget is required")
)
