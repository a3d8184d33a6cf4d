package timezones

import (
	"net/http"

	"github.com/goliatone/go-combobox/pkg/filter"
	"github.com/goliatone/go-combobox/pkg/logging"
)

// EmptySearchMode decides what an empty query returns.
type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchTop  EmptySearchMode = "top"
)

// GuardFunc authorises handler requests.
type GuardFunc func(r *http.Request) error

// Options configures search, node building and the handler.
type Options struct {
	RoutePath       string
	SearchParam     string
	RegionParam     string
	LimitParam      string
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode
	Guard           GuardFunc

	// Region restricts every result to one area, e.g. "Europe".
	Region string
	// Filter matches queries against zone labels. Defaults to filter.Contains.
	Filter filter.Predicate
	Logger logging.Logger

	Zones []string
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions returns the stock configuration.
func DefaultOptions() Options {
	return Options{
		RoutePath:       "/api/timezones",
		SearchParam:     "q",
		RegionParam:     "region",
		LimitParam:      "limit",
		DefaultLimit:    50,
		MaxLimit:        200,
		EmptySearchMode: EmptySearchNone,
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
	defaults := DefaultOptions()
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = defaults.DefaultLimit
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = defaults.MaxLimit
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = defaults.EmptySearchMode
	}
	if opts.RoutePath == "" {
		opts.RoutePath = defaults.RoutePath
	}
	if opts.SearchParam == "" {
		opts.SearchParam = defaults.SearchParam
	}
	if opts.RegionParam == "" {
		opts.RegionParam = defaults.RegionParam
	}
	if opts.LimitParam == "" {
		opts.LimitParam = defaults.LimitParam
	}
	if opts.Filter == nil {
		opts.Filter = filter.Contains()
	}
	opts.Logger = logging.OrNop(opts.Logger)
	if opts.Zones != nil {
		opts.Zones = append([]string{}, opts.Zones...)
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		o.RoutePath = path
	}
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) {
		o.SearchParam = name
	}
}

func WithRegionParam(name string) OptionFn {
	return func(o *Options) {
		o.RegionParam = name
	}
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) {
		o.LimitParam = name
	}
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		o.MaxLimit = limit
	}
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) {
		o.EmptySearchMode = mode
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		o.Guard = guard
	}
}

// WithRegion restricts results to one area.
func WithRegion(region string) OptionFn {
	return func(o *Options) {
		o.Region = region
	}
}

// WithFilter swaps the query predicate.
func WithFilter(pred filter.Predicate) OptionFn {
	return func(o *Options) {
		o.Filter = pred
	}
}

// WithLogger routes diagnostics.
func WithLogger(logger logging.Logger) OptionFn {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithZones replaces the embedded list.
func WithZones(zones []string) OptionFn {
	return func(o *Options) {
		if zones == nil {
			o.Zones = nil
			return
		}
		o.Zones = append([]string{}, zones...)
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}

// zones resolves the configured list, falling back to the embedded one.
func (o Options) zones() ([]string, error) {
	zones := o.Zones
	if zones == nil {
		loaded, err := DefaultZones()
		if err != nil {
			return nil, err
		}
		zones = loaded
	}
	return InRegion(zones, o.Region), nil
}
