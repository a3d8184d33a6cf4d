package state

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/filter"
	"github.com/goliatone/go-combobox/pkg/logging"
)

var (
	// ErrUnknownKey is returned when a transition names a key outside the
	// collection it applies to.
	ErrUnknownKey = errors.New("state: unknown key")
	// ErrDisabledKey is returned when a transition targets a disabled option.
	ErrDisabledKey = errors.New("state: option is disabled")
	// ErrNotOpen is returned by transitions that need an open popup.
	ErrNotOpen = errors.New("state: popup is not open")
)

const component = "state"

type data struct {
	isOpen         bool
	isFocused      bool
	inputValue     string
	committedInput string
	selectedKey    collection.Key
	focusedKey     collection.Key
	trigger        Trigger
	showAll        bool
	collection     *collection.Collection
	filtered       *collection.Collection
}

func (d data) equal(o data) bool {
	return d.isOpen == o.isOpen &&
		d.isFocused == o.isFocused &&
		d.inputValue == o.inputValue &&
		d.committedInput == o.committedInput &&
		d.selectedKey == o.selectedKey &&
		d.focusedKey == o.focusedKey &&
		d.trigger == o.trigger &&
		d.showAll == o.showAll &&
		d.collection == o.collection &&
		d.filtered.Equal(o.filtered)
}

// Machine owns the combo box state. Use New to construct one.
type Machine struct {
	opts     Options
	cur      data
	revision uint64

	subscribers map[int]func(Snapshot)
	order       []int
	nextSubID   int
	pending     []Snapshot
	dispatching bool
}

// New builds a closed machine over c. The initial filtered set is c filtered
// by the initial input text.
func New(c *collection.Collection, fns ...OptionFn) *Machine {
	if c == nil {
		c = collection.Empty
	}
	opts := NewOptions(fns...)
	m := &Machine{
		opts:        opts,
		subscribers: make(map[int]func(Snapshot)),
	}

	d := data{collection: c}
	if opts.DefaultSelectedKey != collection.NoKey {
		if opt, ok := c.Get(opts.DefaultSelectedKey); ok {
			d.selectedKey = opt.Key
			d.inputValue = opt.TextValue
		} else {
			logging.Warn(opts.Logger, component, "default selected key not in collection", "key", opts.DefaultSelectedKey)
		}
	}
	if opts.hasDefaultInput {
		d.inputValue = opts.DefaultInputValue
	}
	d.committedInput = d.inputValue
	d.filtered = m.visible(d)
	m.cur = d
	return m
}

// Options returns the resolved configuration.
func (m *Machine) Options() Options {
	return m.opts
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	return m.snapshot(m.cur)
}

func (m *Machine) snapshot(d data) Snapshot {
	return Snapshot{
		Revision:           m.revision,
		IsOpen:             d.isOpen,
		IsFocused:          d.isFocused,
		InputValue:         d.inputValue,
		SelectedKey:        d.selectedKey,
		FocusedKey:         d.focusedKey,
		OpenTrigger:        d.trigger,
		Collection:         d.collection,
		FilteredCollection: d.filtered,
	}
}

// Subscribe registers fn to run after every effective transition.
func (m *Machine) Subscribe(fn func(Snapshot)) func() {
	if fn == nil {
		return func() {}
	}
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn
	m.order = append(m.order, id)
	return func() {
		if _, ok := m.subscribers[id]; !ok {
			return
		}
		delete(m.subscribers, id)
		for i, candidate := range m.order {
			if candidate == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
}

// SetInputValue updates the typed text and re-filters.
func (m *Machine) SetInputValue(text string) error {
	d := m.cur
	if text == d.inputValue && !d.showAll {
		return nil
	}
	d.inputValue = text
	d.showAll = false
	if text == "" && !m.opts.AllowsCustomValue {
		d.selectedKey = collection.NoKey
	}
	d.filtered = m.visible(d)

	if !d.isOpen && m.opensOnType(text) {
		d.isOpen = true
		d.trigger = TriggerInput
		d.focusedKey = collection.NoKey
	}
	m.settleOpen(&d)
	m.commit(d)
	return nil
}

func (m *Machine) opensOnType(text string) bool {
	switch m.opts.OpenPolicy {
	case OpenOnType:
		return true
	case OpenManual:
		return false
	default:
		return text != ""
	}
}

// Open shows the popup. TriggerManual shows every option until the next
// keystroke. Opening onto an empty set is refused unless empty collections
// are allowed.
func (m *Machine) Open(trigger Trigger, focus FocusStrategy) error {
	d := m.cur
	if trigger == "" {
		trigger = TriggerInput
	}
	if trigger == TriggerManual {
		d.showAll = true
	}
	d.filtered = m.visible(d)
	if d.filtered.Len() == 0 && !m.opts.AllowsEmptyCollection {
		return nil
	}
	if !d.isOpen {
		d.isOpen = true
		d.trigger = trigger
	}
	switch focus {
	case FocusFirst:
		d.focusedKey = d.filtered.First()
	case FocusLast:
		d.focusedKey = d.filtered.Last()
	default:
		if !d.filtered.Has(d.focusedKey) {
			d.focusedKey = collection.NoKey
			if opt, ok := d.filtered.Get(d.selectedKey); ok && !opt.Disabled {
				d.focusedKey = opt.Key
			}
		}
	}
	m.commit(d)
	return nil
}

// Close hides the popup. With revert-on-close the input returns to the last
// committed text and the filtered set to the full collection.
func (m *Machine) Close() error {
	d := m.cur
	if !d.isOpen {
		return nil
	}
	m.closeInto(&d)
	m.commit(d)
	return nil
}

func (m *Machine) closeInto(d *data) {
	d.isOpen = false
	d.trigger = ""
	d.focusedKey = collection.NoKey
	if m.opts.RevertOnClose {
		d.inputValue = d.committedInput
		d.showAll = true
		d.filtered = d.collection
	}
}

// Toggle opens a closed popup or closes an open one.
func (m *Machine) Toggle(trigger Trigger, focus FocusStrategy) error {
	if m.cur.isOpen {
		return m.Close()
	}
	return m.Open(trigger, focus)
}

// Commit selects key, syncs the input to its text and closes. NoKey clears
// the selection; the input is cleared unless custom values are allowed.
func (m *Machine) Commit(key collection.Key) error {
	d := m.cur
	if key == collection.NoKey {
		d.selectedKey = collection.NoKey
		if !m.opts.AllowsCustomValue {
			d.inputValue = ""
		}
	} else {
		opt, ok := d.collection.Get(key)
		if !ok {
			return m.reject(fmt.Errorf("%w: commit %q", ErrUnknownKey, key))
		}
		if opt.Disabled {
			return m.reject(fmt.Errorf("%w: commit %q", ErrDisabledKey, key))
		}
		d.selectedKey = opt.Key
		d.inputValue = opt.TextValue
	}
	d.committedInput = d.inputValue
	d.isOpen = false
	d.trigger = ""
	d.focusedKey = collection.NoKey
	d.showAll = false
	d.filtered = m.visible(d)
	m.commit(d)
	return nil
}

// CommitHighlighted commits the highlighted option, as pressing Enter does.
// Without a highlight, custom text is committed when allowed; otherwise the
// popup closes and the input reverts to the selected option's text.
func (m *Machine) CommitHighlighted() error {
	d := m.cur
	if d.isOpen && d.focusedKey != collection.NoKey {
		return m.Commit(d.focusedKey)
	}
	if m.opts.AllowsCustomValue {
		return m.commitCustom()
	}
	m.revertInput(&d)
	m.commit(d)
	return nil
}

// MoveHighlight moves the highlight within the filtered set, skipping
// disabled options. It is a no-op when nothing is visible.
func (m *Machine) MoveHighlight(dir Direction) error {
	d := m.cur
	if !d.isOpen {
		return m.reject(fmt.Errorf("%w: move %s", ErrNotOpen, dir))
	}
	if d.filtered.Len() == 0 {
		return nil
	}
	from := d.focusedKey
	if !d.filtered.Has(from) {
		from = collection.NoKey
	}
	wrap := m.opts.WrapHighlight
	switch dir {
	case DirectionNext:
		d.focusedKey = d.filtered.Next(from, wrap)
	case DirectionPrevious:
		d.focusedKey = d.filtered.Prev(from, wrap)
	case DirectionFirst:
		d.focusedKey = d.filtered.First()
	case DirectionLast:
		d.focusedKey = d.filtered.Last()
	default:
		return m.reject(fmt.Errorf("state: unknown direction %q", dir))
	}
	m.commit(d)
	return nil
}

// Highlight moves the highlight to key, as pointer hover does.
func (m *Machine) Highlight(key collection.Key) error {
	d := m.cur
	if !d.isOpen {
		return m.reject(fmt.Errorf("%w: highlight %q", ErrNotOpen, key))
	}
	opt, ok := d.filtered.Get(key)
	if !ok {
		return m.reject(fmt.Errorf("%w: highlight %q", ErrUnknownKey, key))
	}
	if opt.Disabled {
		return m.reject(fmt.Errorf("%w: highlight %q", ErrDisabledKey, key))
	}
	d.focusedKey = key
	m.commit(d)
	return nil
}

// Focus marks the input focused and opens when open-on-focus is set.
func (m *Machine) Focus() error {
	d := m.cur
	d.isFocused = true
	m.commit(d)
	if m.opts.OpenOnFocus && !m.cur.isOpen {
		return m.Open(TriggerFocus, FocusNone)
	}
	return nil
}

// Blur closes the popup. Custom text is committed when allowed; otherwise
// the input reverts to the selected option's text.
func (m *Machine) Blur() error {
	if m.opts.AllowsCustomValue {
		if err := m.commitCustom(); err != nil {
			return err
		}
		d := m.cur
		d.isFocused = false
		m.commit(d)
		return nil
	}
	d := m.cur
	d.isFocused = false
	m.revertInput(&d)
	m.commit(d)
	return nil
}

func (m *Machine) commitCustom() error {
	d := m.cur
	if opt, ok := d.collection.Get(d.selectedKey); !ok || opt.TextValue != d.inputValue {
		d.selectedKey = collection.NoKey
	}
	d.committedInput = d.inputValue
	d.isOpen = false
	d.trigger = ""
	d.focusedKey = collection.NoKey
	m.commit(d)
	return nil
}

func (m *Machine) revertInput(d *data) {
	text := ""
	if opt, ok := d.collection.Get(d.selectedKey); ok {
		text = opt.TextValue
	}
	d.inputValue = text
	d.committedInput = text
	d.isOpen = false
	d.trigger = ""
	d.focusedKey = collection.NoKey
	d.showAll = false
	d.filtered = m.visible(*d)
}

// SetCollection swaps in a re-materialized collection. A value-equal
// collection is ignored. A selection missing from the new collection is
// cleared.
func (m *Machine) SetCollection(c *collection.Collection) error {
	if c == nil {
		c = collection.Empty
	}
	d := m.cur
	if d.collection.Equal(c) {
		return nil
	}
	d.collection = c
	if !c.Has(d.selectedKey) {
		d.selectedKey = collection.NoKey
	}
	d.filtered = m.visible(d)
	m.settleOpen(&d)
	m.commit(d)
	return nil
}

// visible derives the filtered set for d.
func (m *Machine) visible(d data) *collection.Collection {
	if d.showAll {
		return d.collection
	}
	return filter.Apply(d.collection, m.opts.Filter, d.inputValue)
}

// settleOpen keeps the highlight inside the filtered set and closes an empty
// popup when empty collections are not allowed.
func (m *Machine) settleOpen(d *data) {
	if !d.isOpen {
		return
	}
	if d.filtered.Len() == 0 {
		d.focusedKey = collection.NoKey
		if !m.opts.AllowsEmptyCollection {
			d.isOpen = false
			d.trigger = ""
		}
		return
	}
	if d.filtered.Has(d.focusedKey) {
		if opt, _ := d.filtered.Get(d.focusedKey); !opt.Disabled {
			return
		}
	}
	d.focusedKey = collection.NoKey
	if m.opts.AutoHighlight == HighlightFirst {
		d.focusedKey = d.filtered.First()
	}
}

// commit installs d and notifies subscribers when anything changed.
func (m *Machine) commit(d data) {
	if d.equal(m.cur) {
		return
	}
	m.cur = d
	m.revision++
	m.pending = append(m.pending, m.snapshot(d))
	if m.dispatching {
		return
	}
	m.dispatching = true
	defer func() { m.dispatching = false }()
	for len(m.pending) > 0 {
		snap := m.pending[0]
		m.pending = m.pending[1:]
		for _, id := range append([]int(nil), m.order...) {
			if fn, ok := m.subscribers[id]; ok {
				fn(snap)
			}
		}
	}
}

// reject reports an invariant violation. State is left untouched.
func (m *Machine) reject(err error) error {
	logging.Warn(m.opts.Logger, component, "transition rejected", "error", err)
	if m.opts.Development {
		panic(err)
	}
	return err
}
