package aria

import (
	"sync"

	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/layout"
	"github.com/goliatone/go-combobox/pkg/logging"
	"github.com/goliatone/go-combobox/pkg/state"
)

const component = "aria"

// Coordinator republishes slot bundles whenever the machine emits a revision
// or the measured width changes.
type Coordinator struct {
	machine *state.Machine
	opts    Options
	ids     IDs
	tracker *layout.WidthTracker

	inputRef  RefFunc
	buttonRef RefFunc

	mu          sync.Mutex
	snap        state.Snapshot
	width       layout.MenuWidth
	invalid     bool
	inputMount  layout.Element
	bundles     Bundles
	subscribers map[int]func(Bundles)
	order       []int
	nextSubID   int
	pending     []Bundles
	dispatching bool
	closed      bool
	unsubscribe func()
}

// NewCoordinator attaches to m. Missing label or input slots are reported
// through the logger; the control still works without them.
func NewCoordinator(m *state.Machine, fns ...OptionFn) *Coordinator {
	opts := NewOptions(fns...)
	c := &Coordinator{
		machine:     m,
		opts:        opts,
		ids:         NewIDs(opts.ID),
		invalid:     opts.Invalid,
		subscribers: make(map[int]func(Bundles)),
	}
	c.tracker = layout.NewWidthTracker(opts.Notifier, opts.Scheduler,
		layout.WithLogger(opts.Logger),
		layout.WithOnChange(c.onWidth),
	)
	c.inputRef = c.mountInput
	c.buttonRef = c.mountButton

	if !opts.Composition.Label {
		logging.Warn(opts.Logger, component, "combobox has no label; assistive technology cannot name it", "id", c.ids.Base)
	}
	if !opts.Composition.Input {
		logging.Warn(opts.Logger, component, "combobox has no input slot", "id", c.ids.Base)
	}

	c.snap = m.Snapshot()
	c.bundles = c.build()
	c.unsubscribe = m.Subscribe(c.onState)
	return c
}

// IDs returns the instance ids.
func (c *Coordinator) IDs() IDs {
	return c.ids
}

// Machine returns the attached state machine.
func (c *Coordinator) Machine() *state.Machine {
	return c.machine
}

// Bundles returns the current distribution. Callers must not mutate it.
func (c *Coordinator) Bundles() Bundles {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bundles
}

// Bundle returns the bundle for slot when it is composed.
func (c *Coordinator) Bundle(slot Slot) (Bundle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.bundles[slot]
	return b, ok
}

// Context returns what the interaction saw for the current revision.
func (c *Coordinator) Context() Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.contextLocked()
}

// OptionAttributes returns the attributes of one option row.
func (c *Coordinator) OptionAttributes(opt collection.Option) Attributes {
	return c.opts.Interaction.Option(c.Context(), opt)
}

// Width returns the last measured popover width.
func (c *Coordinator) Width() layout.MenuWidth {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.width
}

// Popover returns the positioning hand-off for the current revision.
func (c *Coordinator) Popover() PopoverHandoff {
	c.mu.Lock()
	defer c.mu.Unlock()
	return PopoverHandoff{
		State:            c.snap,
		TriggerRef:       c.inputMount,
		Placement:        Placement,
		IsNonModal:       true,
		PreserveChildren: true,
		Width:            c.width,
	}
}

// RenderProps returns the container render callback argument.
func (c *Coordinator) RenderProps() RenderProps {
	c.mu.Lock()
	defer c.mu.Unlock()
	return RenderProps{State: c.snap, ClassName: c.opts.ClassName}
}

// SetInvalid toggles aria-invalid on the input.
func (c *Coordinator) SetInvalid(invalid bool) {
	c.mu.Lock()
	if c.closed || c.invalid == invalid {
		c.mu.Unlock()
		return
	}
	c.invalid = invalid
	next := c.build()
	c.bundles = next
	c.mu.Unlock()
	c.publish(next)
}

// Subscribe registers fn to receive every republished distribution.
func (c *Coordinator) Subscribe(fn func(Bundles)) func() {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subscribers[id] = fn
	c.order = append(c.order, id)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if _, ok := c.subscribers[id]; !ok {
			return
		}
		delete(c.subscribers, id)
		for i, candidate := range c.order {
			if candidate == id {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

// Close detaches from the machine and stops width tracking. It is safe to
// call more than once.
func (c *Coordinator) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.subscribers = make(map[int]func(Bundles))
	c.order = nil
	c.pending = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	c.tracker.Stop()
}

func (c *Coordinator) mountInput(el layout.Element) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.inputMount = el
	c.mu.Unlock()

	if el == nil {
		c.tracker.Stop()
		return
	}
	c.tracker.Start(el)
}

func (c *Coordinator) mountButton(el layout.Element) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	c.tracker.SetTrigger(el)
	c.tracker.Remeasure()
}

func (c *Coordinator) onState(snap state.Snapshot) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.snap = snap
	next := c.build()
	c.bundles = next
	c.mu.Unlock()
	c.publish(next)
}

func (c *Coordinator) onWidth(width layout.MenuWidth) {
	c.mu.Lock()
	if c.closed || c.width == width {
		c.mu.Unlock()
		return
	}
	c.width = width
	next := c.build()
	c.bundles = next
	c.mu.Unlock()
	c.publish(next)
}

func (c *Coordinator) contextLocked() Context {
	return Context{
		State:       c.snap,
		IDs:         c.ids,
		Composition: c.opts.Composition,
		Invalid:     c.invalid,
	}
}

// build must run with mu held.
func (c *Coordinator) build() Bundles {
	ctx := c.contextLocked()
	out := make(Bundles, len(Slots))
	for _, slot := range Slots {
		if !ctx.Composition.Has(slot) {
			continue
		}
		attrs := c.opts.Interaction.Slot(ctx, slot).Clone()
		attrs["id"] = c.ids.Slot(slot)
		b := Bundle{Slot: slot, ID: c.ids.Slot(slot), Attrs: attrs}
		switch slot {
		case SlotInput:
			b.Ref = c.inputRef
		case SlotButton:
			b.Ref = c.buttonRef
		case SlotPopover:
			if style := WidthStyle(c.width); style != "" {
				attrs["style"] = style
			}
		}
		out[slot] = b
	}
	return out
}

func (c *Coordinator) publish(b Bundles) {
	c.mu.Lock()
	c.pending = append(c.pending, b)
	if c.dispatching {
		c.mu.Unlock()
		return
	}
	c.dispatching = true
	for len(c.pending) > 0 {
		next := c.pending[0]
		c.pending = c.pending[1:]
		fns := make([]func(Bundles), 0, len(c.order))
		for _, id := range c.order {
			fns = append(fns, c.subscribers[id])
		}
		c.mu.Unlock()
		for _, fn := range fns {
			fn(next)
		}
		c.mu.Lock()
	}
	c.dispatching = false
	c.mu.Unlock()
}
