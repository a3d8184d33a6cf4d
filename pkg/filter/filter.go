// Package filter provides the text predicates a combo box uses to narrow its
// options while the user types.
package filter

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/goliatone/go-combobox/pkg/collection"
)

// Predicate reports whether an option's text matches the query. An empty
// query must match everything.
type Predicate func(text, query string) bool

// Sensitivity selects which differences between characters matter.
type Sensitivity string

const (
	// SensitivityBase ignores case, accents and width.
	SensitivityBase Sensitivity = "base"
	// SensitivityAccent ignores case and width but not accents.
	SensitivityAccent Sensitivity = "accent"
	// SensitivityCase ignores accents and width but not case.
	SensitivityCase Sensitivity = "case"
	// SensitivityVariant compares exactly.
	SensitivityVariant Sensitivity = "variant"
)

// Options configures the locale-aware predicates.
type Options struct {
	Language    language.Tag
	Sensitivity Sensitivity
}

// OptionFn mutates Options.
type OptionFn func(*Options)

// DefaultOptions returns base sensitivity for the root locale.
func DefaultOptions() Options {
	return Options{
		Language:    language.Und,
		Sensitivity: SensitivityBase,
	}
}

// NewOptions applies fns over the defaults.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Sensitivity == "" {
		opts.Sensitivity = SensitivityBase
	}
	return opts
}

// WithLanguage sets the locale used for matching.
func WithLanguage(tag language.Tag) OptionFn {
	return func(o *Options) {
		o.Language = tag
	}
}

// WithSensitivity sets the comparison strength.
func WithSensitivity(s Sensitivity) OptionFn {
	return func(o *Options) {
		o.Sensitivity = s
	}
}

// Contains matches when query occurs anywhere in text.
func Contains(fns ...OptionFn) Predicate {
	m := newMatcher(NewOptions(fns...))
	return func(text, query string) bool {
		if query == "" {
			return true
		}
		start, _ := m.index(text, query)
		return start >= 0
	}
}

// StartsWith matches when text begins with query.
func StartsWith(fns ...OptionFn) Predicate {
	m := newMatcher(NewOptions(fns...))
	return func(text, query string) bool {
		if query == "" {
			return true
		}
		for _, cut := range boundaries(text) {
			if m.equal(text[:cut], query) {
				return true
			}
		}
		return false
	}
}

// EndsWith matches when text ends with query.
func EndsWith(fns ...OptionFn) Predicate {
	m := newMatcher(NewOptions(fns...))
	return func(text, query string) bool {
		if query == "" {
			return true
		}
		for start := range text {
			if m.equal(text[start:], query) {
				return true
			}
		}
		return false
	}
}

// boundaries returns the byte lengths of every non-empty rune prefix of s.
// Collation can fold several runes into one, so prefix checks try each cut
// instead of slicing by the query length.
func boundaries(s string) []int {
	cuts := make([]int, 0, len(s))
	for i := range s {
		if i > 0 {
			cuts = append(cuts, i)
		}
	}
	return append(cuts, len(s))
}

// Apply returns the options of c whose text matches query, in order.
func Apply(c *collection.Collection, pred Predicate, query string) *collection.Collection {
	if pred == nil || query == "" {
		return c
	}
	return c.Subset(func(o collection.Option) bool {
		return pred(o.TextValue, query)
	})
}

type matcher struct {
	mu sync.Mutex
	m  *search.Matcher
}

func newMatcher(opts Options) *matcher {
	return &matcher{m: search.New(opts.Language, searchOptions(opts.Sensitivity)...)}
}

func (m *matcher) index(text, query string) (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.m.IndexString(text, query)
}

func (m *matcher) equal(a, b string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.m.EqualString(a, b)
}

func searchOptions(s Sensitivity) []search.Option {
	switch Sensitivity(strings.ToLower(string(s))) {
	case SensitivityAccent:
		return []search.Option{search.IgnoreCase, search.IgnoreWidth}
	case SensitivityCase:
		return []search.Option{search.IgnoreDiacritics, search.IgnoreWidth}
	case SensitivityVariant:
		return []search.Option{search.Exact}
	default:
		return []search.Option{search.Loose}
	}
}
