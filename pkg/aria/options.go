package aria

import (
	"strings"

	"github.com/goliatone/go-combobox/pkg/layout"
	"github.com/goliatone/go-combobox/pkg/logging"
)

// Options configures a Coordinator.
type Options struct {
	// ID is the base id; empty generates one.
	ID          string
	Composition Composition
	Interaction Interaction
	Notifier    layout.ResizeNotifier
	Scheduler   layout.FrameScheduler
	Logger      logging.Logger
	Invalid     bool
	ClassName   string
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions composes every slot with the default ARIA interaction.
func DefaultOptions() Options {
	return Options{
		Composition: FullComposition(),
		Interaction: DefaultInteraction{},
		ClassName:   DefaultClassName,
	}
}

// NewOptions applies fns over DefaultOptions.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.Interaction == nil {
		opts.Interaction = DefaultInteraction{}
	}
	opts.ClassName = strings.TrimSpace(opts.ClassName)
	if opts.ClassName == "" {
		opts.ClassName = DefaultClassName
	}
	opts.Logger = logging.OrNop(opts.Logger)
	return opts
}

// WithID fixes the base id.
func WithID(id string) OptionFn {
	return func(o *Options) {
		o.ID = id
	}
}

// WithComposition declares the rendered slots.
func WithComposition(c Composition) OptionFn {
	return func(o *Options) {
		o.Composition = c
	}
}

// WithInteraction swaps the accessibility primitive.
func WithInteraction(i Interaction) OptionFn {
	return func(o *Options) {
		o.Interaction = i
	}
}

// WithLayout wires width tracking to a resize notifier and frame scheduler.
func WithLayout(notifier layout.ResizeNotifier, scheduler layout.FrameScheduler) OptionFn {
	return func(o *Options) {
		o.Notifier = notifier
		o.Scheduler = scheduler
	}
}

// WithLogger routes authoring diagnostics.
func WithLogger(logger logging.Logger) OptionFn {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithInvalid marks the input invalid.
func WithInvalid(invalid bool) OptionFn {
	return func(o *Options) {
		o.Invalid = invalid
	}
}

// WithClassName overrides the container class marker.
func WithClassName(name string) OptionFn {
	return func(o *Options) {
		o.ClassName = name
	}
}
