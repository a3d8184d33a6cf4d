package state

import (
	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/filter"
	"github.com/goliatone/go-combobox/pkg/logging"
)

// OpenPolicy decides whether typing opens a closed popup.
type OpenPolicy string

const (
	// OpenOnInput opens when the typed text is non-empty.
	OpenOnInput OpenPolicy = "input"
	// OpenOnType opens on any keystroke, including clearing the input.
	OpenOnType OpenPolicy = "type"
	// OpenManual never opens from typing; only Open/Toggle do.
	OpenManual OpenPolicy = "manual"
)

// AutoHighlight decides what gets highlighted when the filtered set changes
// and the previous highlight is gone.
type AutoHighlight string

const (
	HighlightFirst AutoHighlight = "first"
	HighlightNone  AutoHighlight = "none"
)

// Options configures a Machine. Every policy is per instance.
type Options struct {
	DefaultInputValue  string
	DefaultSelectedKey collection.Key
	Filter             filter.Predicate

	OpenPolicy            OpenPolicy
	OpenOnFocus           bool
	RevertOnClose         bool
	AutoHighlight         AutoHighlight
	WrapHighlight         bool
	AllowsCustomValue     bool
	AllowsEmptyCollection bool

	// Development turns rejected transitions into panics.
	Development bool
	Logger      logging.Logger

	hasDefaultInput bool
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions returns the stock policies.
func DefaultOptions() Options {
	return Options{
		OpenPolicy:    OpenOnInput,
		AutoHighlight: HighlightFirst,
		WrapHighlight: true,
	}
}

// NewOptions applies fns over DefaultOptions and fills unset fields.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Filter == nil {
		opts.Filter = filter.Contains()
	}
	if opts.OpenPolicy == "" {
		opts.OpenPolicy = OpenOnInput
	}
	if opts.AutoHighlight == "" {
		opts.AutoHighlight = HighlightFirst
	}
	opts.Logger = logging.OrNop(opts.Logger)
	return opts
}

// WithDefaultInputValue seeds the input text.
func WithDefaultInputValue(text string) OptionFn {
	return func(o *Options) {
		o.DefaultInputValue = text
		o.hasDefaultInput = true
	}
}

// WithDefaultSelectedKey seeds the committed selection.
func WithDefaultSelectedKey(key collection.Key) OptionFn {
	return func(o *Options) {
		o.DefaultSelectedKey = key
	}
}

// WithFilter overrides the filter predicate.
func WithFilter(pred filter.Predicate) OptionFn {
	return func(o *Options) {
		o.Filter = pred
	}
}

// WithOpenPolicy sets the open-on-typing policy.
func WithOpenPolicy(policy OpenPolicy) OptionFn {
	return func(o *Options) {
		o.OpenPolicy = policy
	}
}

// WithOpenOnFocus opens the popup when the input gains focus.
func WithOpenOnFocus(enabled bool) OptionFn {
	return func(o *Options) {
		o.OpenOnFocus = enabled
	}
}

// WithRevertOnClose restores the committed text and the full option set on
// close.
func WithRevertOnClose(enabled bool) OptionFn {
	return func(o *Options) {
		o.RevertOnClose = enabled
	}
}

// WithAutoHighlight sets the highlight fallback.
func WithAutoHighlight(mode AutoHighlight) OptionFn {
	return func(o *Options) {
		o.AutoHighlight = mode
	}
}

// WithWrapHighlight toggles cyclic highlight movement.
func WithWrapHighlight(enabled bool) OptionFn {
	return func(o *Options) {
		o.WrapHighlight = enabled
	}
}

// WithAllowsCustomValue lets free text stand as the value.
func WithAllowsCustomValue(enabled bool) OptionFn {
	return func(o *Options) {
		o.AllowsCustomValue = enabled
	}
}

// WithAllowsEmptyCollection keeps the popup open with no matches.
func WithAllowsEmptyCollection(enabled bool) OptionFn {
	return func(o *Options) {
		o.AllowsEmptyCollection = enabled
	}
}

// WithDevelopment makes rejected transitions panic.
func WithDevelopment(enabled bool) OptionFn {
	return func(o *Options) {
		o.Development = enabled
	}
}

// WithLogger routes diagnostics.
func WithLogger(logger logging.Logger) OptionFn {
	return func(o *Options) {
		o.Logger = logger
	}
}
