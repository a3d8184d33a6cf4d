package control

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-combobox/pkg/aria"
	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/logging"
	"github.com/goliatone/go-combobox/pkg/state"
)

// ErrClosed is returned by events sent to a closed control.
var ErrClosed = errors.New("control: closed")

// Option customises a Control.
type Option func(*Control)

// WithStateOptions forwards options to the state machine.
func WithStateOptions(fns ...state.OptionFn) Option {
	return func(c *Control) {
		c.stateOpts = append(c.stateOpts, fns...)
	}
}

// WithAriaOptions forwards options to the relationship coordinator.
func WithAriaOptions(fns ...aria.OptionFn) Option {
	return func(c *Control) {
		c.ariaOpts = append(c.ariaOpts, fns...)
	}
}

// WithLogger routes diagnostics of every component.
func WithLogger(logger logging.Logger) Option {
	return func(c *Control) {
		c.logger = logger
	}
}

// WithCollection starts from an already materialized collection instead of a
// node description.
func WithCollection(col *collection.Collection) Option {
	return func(c *Control) {
		c.initial = col
	}
}

// Control is one combo box instance. It is not safe for concurrent use;
// forward events from a single goroutine.
type Control struct {
	portal      *collection.Portal
	machine     *state.Machine
	coordinator *aria.Coordinator
	logger      logging.Logger

	stateOpts []state.OptionFn
	ariaOpts  []aria.OptionFn
	initial   *collection.Collection

	unsubscribe func()
	closed      bool
}

// New materializes nodes and wires a control over them.
func New(nodes []collection.Node, options ...Option) (*Control, error) {
	c := &Control{portal: collection.NewPortal()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.logger = logging.OrNop(c.logger)

	if c.initial != nil {
		c.portal.PublishCollection(c.initial)
	} else if _, err := c.portal.Publish(nodes); err != nil {
		return nil, fmt.Errorf("control: materialize options: %w", err)
	}

	stateOpts := append([]state.OptionFn{state.WithLogger(c.logger)}, c.stateOpts...)
	c.machine = state.New(c.portal.Collection(), stateOpts...)

	ariaOpts := append([]aria.OptionFn{aria.WithLogger(c.logger)}, c.ariaOpts...)
	c.coordinator = aria.NewCoordinator(c.machine, ariaOpts...)

	c.unsubscribe = c.portal.Subscribe(func(col *collection.Collection) {
		if err := c.machine.SetCollection(col); err != nil {
			logging.Warn(c.logger, "control", "collection update rejected", "error", err)
		}
	})
	return c, nil
}

// Machine exposes the state machine.
func (c *Control) Machine() *state.Machine {
	return c.machine
}

// Coordinator exposes the relationship coordinator.
func (c *Control) Coordinator() *aria.Coordinator {
	return c.coordinator
}

// Portal exposes the collection hand-off.
func (c *Control) Portal() *collection.Portal {
	return c.portal
}

// Snapshot returns the current state.
func (c *Control) Snapshot() state.Snapshot {
	return c.machine.Snapshot()
}

// Bundles returns the current slot distribution.
func (c *Control) Bundles() aria.Bundles {
	return c.coordinator.Bundles()
}

// Publish re-materializes the options from a new description. Value-equal
// collections leave the state untouched; display text changes still reach
// the next rendered view.
func (c *Control) Publish(nodes []collection.Node) error {
	if c.closed {
		return ErrClosed
	}
	if _, err := c.portal.Publish(nodes); err != nil {
		return fmt.Errorf("control: publish options: %w", err)
	}
	return nil
}

// Close tears down subscriptions and width tracking.
func (c *Control) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
	c.coordinator.Close()
}
