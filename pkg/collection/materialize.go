package collection

import (
	"fmt"
	"strconv"
)

// Extractor maps caller items into options.
type Extractor[T any] struct {
	Key      func(T) Key
	Text     func(T) string
	Disabled func(T) bool
}

// Materialize resolves the option set. A non-nil items slice is the source of
// truth and description is ignored; otherwise the description is walked.
func Materialize[T any](items []T, extract Extractor[T], description []Node) (*Collection, error) {
	if items != nil {
		return FromItems(items, extract)
	}
	return FromNodes(description)
}

// FromItems maps items element-wise through extract. A missing Key extractor
// falls back to the item text.
func FromItems[T any](items []T, extract Extractor[T]) (*Collection, error) {
	if extract.Text == nil {
		return nil, fmt.Errorf("collection: text extractor is required")
	}
	options := make([]Option, 0, len(items))
	for _, item := range items {
		opt := Option{TextValue: extract.Text(item)}
		if extract.Key != nil {
			opt.Key = extract.Key(item)
		} else {
			opt.Key = Key(opt.TextValue)
		}
		if extract.Disabled != nil {
			opt.Disabled = extract.Disabled(item)
		}
		options = append(options, opt)
	}
	return build(options)
}

// FromStrings is FromItems for plain string lists.
func FromStrings(values []string) (*Collection, error) {
	return FromItems(values, Extractor[string]{
		Text: func(s string) string { return s },
	})
}

// FromNodes walks a declarative description into a flat collection.
func FromNodes(nodes []Node) (*Collection, error) {
	var options []Option
	visit(nodes, "$", NoKey, func(node Node, key, section Key) {
		if node.kind() == KindSection {
			return
		}
		options = append(options, Option{
			Key:       key,
			TextValue: node.textValue(),
			Disabled:  node.Disabled,
			Section:   section,
		})
	})
	return build(options)
}

// Texts maps every item and section key of a description to its rendered
// text, using the same key derivation as FromNodes.
func Texts(nodes []Node) map[Key]string {
	out := make(map[Key]string)
	visit(nodes, "$", NoKey, func(node Node, key, _ Key) {
		out[key] = node.Text
	})
	return out
}

func visit(nodes []Node, path string, section Key, fn func(node Node, key, section Key)) {
	for i, node := range nodes {
		nodePath := path + "." + strconv.Itoa(i)
		key := node.Key
		if key == NoKey {
			key = Key(nodePath)
		}
		fn(node, key, section)
		if node.kind() == KindSection {
			visit(node.Children, nodePath, key, fn)
		}
	}
}

func build(options []Option) (*Collection, error) {
	if len(options) == 0 {
		return Empty, nil
	}
	seen := make(map[Key]struct{}, len(options))
	for i, opt := range options {
		if opt.Key == NoKey {
			return nil, fmt.Errorf("%w (position %d)", ErrEmptyKey, i)
		}
		if _, dup := seen[opt.Key]; dup {
			return nil, fmt.Errorf("%w %q", ErrDuplicateKey, opt.Key)
		}
		seen[opt.Key] = struct{}{}
	}
	return newCollection(options), nil
}
