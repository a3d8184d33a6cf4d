package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrNoSelection is returned when every attempt ended without a commit.
	ErrNoSelection = errors.New("tui: no option selected")
)
