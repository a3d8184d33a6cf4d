package collection

import "errors"

// Key identifies an option. The zero value means "no option".
type Key string

// NoKey is the absent key.
const NoKey Key = ""

var (
	// ErrEmptyKey is returned when an option resolves to an empty key.
	ErrEmptyKey = errors.New("collection: option key is empty")
	// ErrDuplicateKey is returned when two options share a key.
	ErrDuplicateKey = errors.New("collection: duplicate option key")
)

// Option is a single selectable entry.
type Option struct {
	Key       Key    `json:"key"`
	TextValue string `json:"textValue"`
	Disabled  bool   `json:"disabled,omitempty"`
	// Section is the key of the enclosing section node, if any.
	Section Key `json:"section,omitempty"`
}

// Collection is an immutable ordered set of options with unique keys.
type Collection struct {
	options []Option
	index   map[Key]int
}

// Empty is a shared zero-length collection.
var Empty = &Collection{index: map[Key]int{}}

func newCollection(options []Option) *Collection {
	c := &Collection{
		options: options,
		index:   make(map[Key]int, len(options)),
	}
	for i, opt := range options {
		c.index[opt.Key] = i
	}
	return c
}

// Len returns the number of options; nil collections are empty.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.options)
}

// At returns the option at position i, or the zero Option when i is out of
// range or c is nil.
func (c *Collection) At(i int) Option {
	if c == nil || i < 0 || i >= len(c.options) {
		return Option{}
	}
	return c.options[i]
}

// Get looks up an option by key.
func (c *Collection) Get(key Key) (Option, bool) {
	if c == nil || key == NoKey {
		return Option{}, false
	}
	i, ok := c.index[key]
	if !ok {
		return Option{}, false
	}
	return c.options[i], true
}

// Has reports whether key belongs to the collection.
func (c *Collection) Has(key Key) bool {
	_, ok := c.Get(key)
	return ok
}

// IndexOf returns the position of key or -1.
func (c *Collection) IndexOf(key Key) int {
	if c == nil {
		return -1
	}
	if i, ok := c.index[key]; ok {
		return i
	}
	return -1
}

// Keys returns the keys in display order.
func (c *Collection) Keys() []Key {
	if c.Len() == 0 {
		return nil
	}
	keys := make([]Key, len(c.options))
	for i, opt := range c.options {
		keys[i] = opt.Key
	}
	return keys
}

// Options returns a copy of the options in display order.
func (c *Collection) Options() []Option {
	if c.Len() == 0 {
		return nil
	}
	return append([]Option(nil), c.options...)
}

// Subset returns the options accepted by keep, preserving relative order.
// When every option is kept the receiver itself is returned.
func (c *Collection) Subset(keep func(Option) bool) *Collection {
	if c.Len() == 0 {
		return Empty
	}
	out := make([]Option, 0, len(c.options))
	for _, opt := range c.options {
		if keep(opt) {
			out = append(out, opt)
		}
	}
	if len(out) == len(c.options) {
		return c
	}
	if len(out) == 0 {
		return Empty
	}
	return newCollection(out)
}

// Equal reports value equality: same options in the same order.
func (c *Collection) Equal(other *Collection) bool {
	if c == other {
		return true
	}
	if c.Len() != other.Len() {
		return false
	}
	for i := 0; i < c.Len(); i++ {
		if c.options[i] != other.options[i] {
			return false
		}
	}
	return true
}

// First returns the first enabled key.
func (c *Collection) First() Key {
	return c.scan(-1, 1, false)
}

// Last returns the last enabled key.
func (c *Collection) Last() Key {
	return c.scan(c.Len(), -1, false)
}

// Next returns the enabled key after from. Without wrap it stops at the end
// and returns from unchanged. A key outside the collection behaves like the
// position before the first option.
func (c *Collection) Next(from Key, wrap bool) Key {
	start := c.IndexOf(from)
	next := c.scan(start, 1, wrap)
	if next == NoKey {
		return from
	}
	return next
}

// Prev mirrors Next in the opposite direction. A key outside the collection
// behaves like the position after the last option.
func (c *Collection) Prev(from Key, wrap bool) Key {
	start := c.IndexOf(from)
	if start < 0 {
		start = c.Len()
	}
	prev := c.scan(start, -1, wrap)
	if prev == NoKey {
		return from
	}
	return prev
}

func (c *Collection) scan(start, step int, wrap bool) Key {
	n := c.Len()
	if n == 0 {
		return NoKey
	}
	i := start
	for visited := 0; visited < n; visited++ {
		i += step
		if i < 0 || i >= n {
			if !wrap {
				return NoKey
			}
			i = (i + n) % n
		}
		if i == start {
			return NoKey
		}
		if !c.options[i].Disabled {
			return c.options[i].Key
		}
	}
	return NoKey
}
