package render

import (
	"sort"
	"strings"

	"github.com/goliatone/go-combobox/pkg/aria"
	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/control"
	"github.com/goliatone/go-combobox/pkg/state"
)

// Text is the author-supplied copy of a control.
type Text struct {
	Label        string `json:"label,omitempty"`
	Description  string `json:"description,omitempty"`
	ErrorMessage string `json:"errorMessage,omitempty"`
	Placeholder  string `json:"placeholder,omitempty"`
}

// View is one control revision prepared for rendering.
type View struct {
	ID        string       `json:"id"`
	ClassName string       `json:"className"`
	Text      Text         `json:"text"`
	Bundles   aria.Bundles `json:"bundles"`

	Revision    uint64         `json:"revision"`
	Open        bool           `json:"open"`
	InputValue  string         `json:"inputValue"`
	SelectedKey collection.Key `json:"selectedKey,omitempty"`
	FocusedKey  collection.Key `json:"focusedKey,omitempty"`
	Empty       bool           `json:"empty"`

	Width    string        `json:"width,omitempty"`
	Sections []SectionView `json:"sections"`

	State   state.Snapshot      `json:"-"`
	Popover aria.PopoverHandoff `json:"-"`
}

// SectionView groups consecutive visible options sharing a section. Options
// outside any section form a group with an empty key.
type SectionView struct {
	Key     collection.Key `json:"key,omitempty"`
	Title   string         `json:"title,omitempty"`
	Options []OptionView   `json:"options"`
}

// OptionView is one visible option row.
type OptionView struct {
	Key      collection.Key  `json:"key"`
	Text     string          `json:"text"`
	Disabled bool            `json:"disabled,omitempty"`
	Selected bool            `json:"selected,omitempty"`
	Focused  bool            `json:"focused,omitempty"`
	Attrs    aria.Attributes `json:"attrs"`
}

// NewView snapshots c. Display text comes from the last published node
// description; options without one fall back to their text value.
func NewView(c *control.Control, text Text) View {
	coord := c.Coordinator()
	snap := c.Snapshot()
	props := coord.RenderProps()
	popover := coord.Popover()

	view := View{
		ID:          coord.IDs().Base,
		ClassName:   props.ClassName,
		Text:        text,
		Bundles:     coord.Bundles(),
		Revision:    snap.Revision,
		Open:        snap.IsOpen,
		InputValue:  snap.InputValue,
		SelectedKey: snap.SelectedKey,
		FocusedKey:  snap.FocusedKey,
		Empty:       snap.Empty(),
		Width:       string(popover.Width),
		State:       snap,
		Popover:     popover,
	}

	texts := collection.Texts(c.Portal().Description())
	for _, opt := range snap.FilteredCollection.Options() {
		row := OptionView{
			Key:      opt.Key,
			Text:     texts[opt.Key],
			Disabled: opt.Disabled,
			Selected: opt.Key == snap.SelectedKey,
			Focused:  opt.Key == snap.FocusedKey,
			Attrs:    coord.OptionAttributes(opt),
		}
		if row.Text == "" {
			row.Text = opt.TextValue
		}
		n := len(view.Sections)
		if n == 0 || view.Sections[n-1].Key != opt.Section {
			view.Sections = append(view.Sections, SectionView{Key: opt.Section, Title: texts[opt.Section]})
			n++
		}
		view.Sections[n-1].Options = append(view.Sections[n-1].Options, row)
	}
	return view
}

// OptionCount returns the number of visible rows.
func (v View) OptionCount() int {
	total := 0
	for _, section := range v.Sections {
		total += len(section.Options)
	}
	return total
}

// CSSVarsStyle renders vars as a style rule scoped to selector, in sorted
// order. Empty vars render as "".
func CSSVarsStyle(selector string, vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func copyStringMap(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
