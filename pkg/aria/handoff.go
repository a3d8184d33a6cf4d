package aria

import (
	"github.com/goliatone/go-combobox/pkg/layout"
	"github.com/goliatone/go-combobox/pkg/state"
)

const (
	// Placement anchors the popover below the input, aligned to its start.
	Placement = "bottom start"
	// DefaultClassName is the container class marker.
	DefaultClassName = "combobox"
	// WidthVariable carries the measured width on the popover.
	WidthVariable = "--combobox-width"
)

// PopoverHandoff is what the positioning layer receives.
type PopoverHandoff struct {
	State            state.Snapshot
	TriggerRef       layout.Element
	Placement        string
	IsNonModal       bool
	PreserveChildren bool
	Width            layout.MenuWidth
}

// Style returns the inline style declaring the width variable, or "" when
// the width is unset.
func (h PopoverHandoff) Style() string {
	return WidthStyle(h.Width)
}

// WidthStyle renders w as a style declaration.
func WidthStyle(w layout.MenuWidth) string {
	if w == layout.Unset {
		return ""
	}
	return WidthVariable + ": " + string(w)
}

// RenderProps is handed to the container render callback.
type RenderProps struct {
	State     state.Snapshot
	ClassName string
}
