package state

import "github.com/goliatone/go-combobox/pkg/collection"

// Trigger records what opened the popup.
type Trigger string

const (
	TriggerInput  Trigger = "input"
	TriggerFocus  Trigger = "focus"
	TriggerManual Trigger = "manual"
)

// FocusStrategy picks the highlighted option when opening.
type FocusStrategy string

const (
	// FocusNone keeps the selected option highlighted when it is visible.
	FocusNone  FocusStrategy = ""
	FocusFirst FocusStrategy = "first"
	FocusLast  FocusStrategy = "last"
)

// Direction moves the highlight.
type Direction string

const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
	DirectionFirst    Direction = "first"
	DirectionLast     Direction = "last"
)

// Snapshot is a read-only view of the machine after a transition.
type Snapshot struct {
	Revision           uint64
	IsOpen             bool
	IsFocused          bool
	InputValue         string
	SelectedKey        collection.Key
	FocusedKey         collection.Key
	OpenTrigger        Trigger
	Collection         *collection.Collection
	FilteredCollection *collection.Collection
}

// SelectedOption resolves SelectedKey.
func (s Snapshot) SelectedOption() (collection.Option, bool) {
	return s.Collection.Get(s.SelectedKey)
}

// FocusedOption resolves FocusedKey.
func (s Snapshot) FocusedOption() (collection.Option, bool) {
	return s.FilteredCollection.Get(s.FocusedKey)
}

// Empty reports whether the popup has nothing to show.
func (s Snapshot) Empty() bool {
	return s.FilteredCollection.Len() == 0
}
