package control

import (
	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/state"
)

// Key names a keyboard key using DOM key values.
type Key string

const (
	KeyArrowDown Key = "ArrowDown"
	KeyArrowUp   Key = "ArrowUp"
	KeyHome      Key = "Home"
	KeyEnd       Key = "End"
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
	KeyTab       Key = "Tab"
)

// Type handles a change of the input text.
func (c *Control) Type(text string) error {
	if c.closed {
		return ErrClosed
	}
	return c.machine.SetInputValue(text)
}

// PressButton toggles the popup from the trigger button. Opening this way
// lists every option regardless of the typed text.
func (c *Control) PressButton() error {
	if c.closed {
		return ErrClosed
	}
	return c.machine.Toggle(state.TriggerManual, state.FocusNone)
}

// KeyDown handles a key press on the input. Unhandled keys are ignored.
func (c *Control) KeyDown(key Key) error {
	if c.closed {
		return ErrClosed
	}
	open := c.machine.Snapshot().IsOpen
	switch key {
	case KeyArrowDown:
		if !open {
			return c.machine.Open(state.TriggerManual, state.FocusFirst)
		}
		return c.machine.MoveHighlight(state.DirectionNext)
	case KeyArrowUp:
		if !open {
			return c.machine.Open(state.TriggerManual, state.FocusLast)
		}
		return c.machine.MoveHighlight(state.DirectionPrevious)
	case KeyHome:
		if open {
			return c.machine.MoveHighlight(state.DirectionFirst)
		}
	case KeyEnd:
		if open {
			return c.machine.MoveHighlight(state.DirectionLast)
		}
	case KeyEnter:
		if open {
			return c.machine.CommitHighlighted()
		}
	case KeyEscape:
		if open {
			return c.machine.Close()
		}
	case KeyTab:
		return c.machine.Blur()
	}
	return nil
}

// ClickOption commits the clicked option and syncs the input to its text.
func (c *Control) ClickOption(key collection.Key) error {
	if c.closed {
		return ErrClosed
	}
	return c.machine.Commit(key)
}

// HoverOption highlights the option under the pointer.
func (c *Control) HoverOption(key collection.Key) error {
	if c.closed {
		return ErrClosed
	}
	return c.machine.Highlight(key)
}

// FocusInput marks the input focused.
func (c *Control) FocusInput() error {
	if c.closed {
		return ErrClosed
	}
	return c.machine.Focus()
}

// BlurInput handles focus leaving the control.
func (c *Control) BlurInput() error {
	if c.closed {
		return ErrClosed
	}
	return c.machine.Blur()
}
