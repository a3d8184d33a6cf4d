package aria

import (
	"maps"
	"net/url"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/layout"
)

// Slot names a composed element.
type Slot string

const (
	SlotLabel        Slot = "label"
	SlotInput        Slot = "input"
	SlotButton       Slot = "button"
	SlotPopover      Slot = "popover"
	SlotListBox      Slot = "listbox"
	SlotDescription  Slot = "description"
	SlotErrorMessage Slot = "errorMessage"
)

// Slots lists every slot in composition order.
var Slots = []Slot{SlotLabel, SlotInput, SlotButton, SlotPopover, SlotListBox, SlotDescription, SlotErrorMessage}

// Attributes maps attribute names to values.
type Attributes map[string]string

// Clone returns a copy.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return Attributes{}
	}
	return maps.Clone(a)
}

// Names returns attribute names sorted, for deterministic output.
func (a Attributes) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IDList splits a space separated id reference attribute.
func (a Attributes) IDList(name string) []string {
	return strings.Fields(a[name])
}

// RefFunc receives the rendered element, or nil when it unmounts.
type RefFunc func(layout.Element)

// Bundle is what one render site needs: its id, attributes and ref callback.
type Bundle struct {
	Slot  Slot       `json:"slot"`
	ID    string     `json:"id"`
	Attrs Attributes `json:"attrs"`
	Ref   RefFunc    `json:"-"`
}

// Bundles is the per-revision distribution keyed by slot. Only composed
// slots are present.
type Bundles map[Slot]Bundle

// Composition declares which slots the embedding tree renders.
type Composition struct {
	Label        bool `json:"label" yaml:"label"`
	Input        bool `json:"input" yaml:"input"`
	Button       bool `json:"button" yaml:"button"`
	Popover      bool `json:"popover" yaml:"popover"`
	ListBox      bool `json:"listbox" yaml:"listbox"`
	Description  bool `json:"description" yaml:"description"`
	ErrorMessage bool `json:"errorMessage" yaml:"errorMessage"`
}

// FullComposition renders every slot.
func FullComposition() Composition {
	return Composition{
		Label: true, Input: true, Button: true, Popover: true,
		ListBox: true, Description: true, ErrorMessage: true,
	}
}

// Has reports whether slot is composed.
func (c Composition) Has(slot Slot) bool {
	switch slot {
	case SlotLabel:
		return c.Label
	case SlotInput:
		return c.Input
	case SlotButton:
		return c.Button
	case SlotPopover:
		return c.Popover
	case SlotListBox:
		return c.ListBox
	case SlotDescription:
		return c.Description
	case SlotErrorMessage:
		return c.ErrorMessage
	default:
		return false
	}
}

// IDs holds the stable element ids of one control instance.
type IDs struct {
	Base         string `json:"base"`
	Label        string `json:"label"`
	Input        string `json:"input"`
	Button       string `json:"button"`
	Popover      string `json:"popover"`
	ListBox      string `json:"listbox"`
	Description  string `json:"description"`
	ErrorMessage string `json:"errorMessage"`
}

// NewIDs derives slot ids from base; an empty base gets a generated one.
func NewIDs(base string) IDs {
	base = strings.TrimSpace(base)
	if base == "" {
		base = "combobox-" + uuid.NewString()
	}
	return IDs{
		Base:         base,
		Label:        base + "-label",
		Input:        base + "-input",
		Button:       base + "-button",
		Popover:      base + "-popover",
		ListBox:      base + "-listbox",
		Description:  base + "-description",
		ErrorMessage: base + "-error",
	}
}

// Slot returns the id for slot.
func (ids IDs) Slot(slot Slot) string {
	switch slot {
	case SlotLabel:
		return ids.Label
	case SlotInput:
		return ids.Input
	case SlotButton:
		return ids.Button
	case SlotPopover:
		return ids.Popover
	case SlotListBox:
		return ids.ListBox
	case SlotDescription:
		return ids.Description
	case SlotErrorMessage:
		return ids.ErrorMessage
	default:
		return ""
	}
}

// Option returns the element id of the option row for key.
func (ids IDs) Option(key collection.Key) string {
	if key == collection.NoKey {
		return ""
	}
	return ids.ListBox + "-option-" + url.PathEscape(string(key))
}
