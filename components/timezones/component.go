package timezones

import (
	"net/http"

	"github.com/goliatone/go-combobox/pkg/collection"
)

// Component bundles the timezone options, their search handler and routing
// helpers behind one configuration.
type Component struct {
	opts Options
}

// New constructs a new component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	opts := NewOptions(fns...)
	return &Component{opts: opts}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return NewOptions()
	}
	return NewOptions(func(o *Options) { *o = c.opts })
}

// Nodes describes the configured zones as combo box options.
func (c *Component) Nodes() ([]collection.Node, error) {
	opts := c.Options()
	return BuildNodes(func(o *Options) { *o = opts })
}

// Handler returns a net/http handler for timezone queries.
func (c *Component) Handler() http.Handler {
	return HandlerWithOptions(c.Options())
}

// RegisterRoutes registers the component handler under basePath on mux.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (string, error) {
	return RegisterRoutesWithOptions(mux, basePath, c.Options())
}
