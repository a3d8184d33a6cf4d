package aria

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/state"
)

// Context is the input an Interaction sees for one revision.
type Context struct {
	State       state.Snapshot
	IDs         IDs
	Composition Composition
	Invalid     bool
}

// Interaction produces the accessibility attributes of every slot. It is the
// seam for swapping in a different accessibility primitive.
type Interaction interface {
	Slot(ctx Context, slot Slot) Attributes
	Option(ctx Context, opt collection.Option) Attributes
}

// DefaultInteraction implements the ARIA 1.2 combobox pattern with a listbox
// popup and list autocomplete.
type DefaultInteraction struct{}

var _ Interaction = DefaultInteraction{}

// Slot implements Interaction.
func (DefaultInteraction) Slot(ctx Context, slot Slot) Attributes {
	ids, snap := ctx.IDs, ctx.State
	attrs := Attributes{"id": ids.Slot(slot)}

	switch slot {
	case SlotLabel:
		if ctx.Composition.Input {
			attrs["for"] = ids.Input
		}
	case SlotInput:
		attrs["type"] = "text"
		attrs["role"] = "combobox"
		attrs["aria-autocomplete"] = "list"
		attrs["aria-expanded"] = strconv.FormatBool(snap.IsOpen)
		attrs["autocomplete"] = "off"
		attrs["autocorrect"] = "off"
		attrs["spellcheck"] = "false"
		attrs["value"] = snap.InputValue
		if snap.IsOpen && ctx.Composition.ListBox {
			attrs["aria-controls"] = ids.ListBox
		}
		if snap.IsOpen && snap.FocusedKey != collection.NoKey {
			attrs["aria-activedescendant"] = ids.Option(snap.FocusedKey)
		}
		if ctx.Composition.Label {
			attrs["aria-labelledby"] = ids.Label
		}
		if described := describedBy(ctx); described != "" {
			attrs["aria-describedby"] = described
		}
		if ctx.Invalid {
			attrs["aria-invalid"] = "true"
		}
	case SlotButton:
		attrs["type"] = "button"
		attrs["tabindex"] = "-1"
		attrs["aria-haspopup"] = "listbox"
		attrs["aria-expanded"] = strconv.FormatBool(snap.IsOpen)
		if ctx.Composition.Label {
			attrs["aria-labelledby"] = ids.Button + " " + ids.Label
		}
		if snap.IsOpen && ctx.Composition.ListBox {
			attrs["aria-controls"] = ids.ListBox
		}
	case SlotPopover:
		attrs["data-placement"] = Placement
		if !snap.IsOpen {
			attrs["hidden"] = ""
		}
	case SlotListBox:
		attrs["role"] = "listbox"
		if ctx.Composition.Label {
			attrs["aria-labelledby"] = ids.Label
		}
	case SlotDescription, SlotErrorMessage:
	}
	return attrs
}

// Option implements Interaction.
func (DefaultInteraction) Option(ctx Context, opt collection.Option) Attributes {
	attrs := Attributes{
		"id":            ctx.IDs.Option(opt.Key),
		"role":          "option",
		"aria-selected": strconv.FormatBool(opt.Key == ctx.State.SelectedKey),
		"data-key":      string(opt.Key),
	}
	if opt.Disabled {
		attrs["aria-disabled"] = "true"
	}
	if opt.Key == ctx.State.FocusedKey {
		attrs["data-focused"] = "true"
	}
	return attrs
}

func describedBy(ctx Context) string {
	var ids []string
	if ctx.Composition.Description {
		ids = append(ids, ctx.IDs.Description)
	}
	if ctx.Composition.ErrorMessage {
		ids = append(ids, ctx.IDs.ErrorMessage)
	}
	return strings.Join(ids, " ")
}
