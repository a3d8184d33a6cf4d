// Package openapi turns enum values declared in an OpenAPI document into combo
// box option descriptions.
//
// Labels come from the x-enum-labels extension (a list aligned with the enum
// or a map keyed by value), falling back to x-enumNames and then to the value
// itself. Values listed in x-enum-disabled become disabled options.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-combobox/pkg/collection"
)

const (
	labelsExtension   = "x-enum-labels"
	namesExtension    = "x-enumNames"
	disabledExtension = "x-enum-disabled"
)

var (
	// ErrSchemaNotFound is returned when the named component schema is absent.
	ErrSchemaNotFound = errors.New("openapi source: schema not found")
	// ErrPropertyNotFound is returned when the property path does not resolve.
	ErrPropertyNotFound = errors.New("openapi source: property not found")
	// ErrNoEnum is returned when the property declares no enum values.
	ErrNoEnum = errors.New("openapi source: property has no enum")
)

// Load parses raw and returns the options for the enum at
// components.schemas[schema] / property. property may be a dotted path through
// nested object properties; array properties use their item enum.
func Load(ctx context.Context, raw []byte, schema, property string) ([]collection.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi source: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi source: load document: %w", err)
	}
	return FromDocument(doc, schema, property)
}

// FromDocument resolves the enum from an already loaded document.
func FromDocument(doc *openapi3.T, schema, property string) ([]collection.Node, error) {
	if doc == nil || doc.Components == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, schema)
	}
	ref, ok := doc.Components.Schemas[schema]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, schema)
	}

	target := ref.Value
	for _, segment := range strings.Split(property, ".") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		next, ok := target.Properties[segment]
		if !ok || next == nil || next.Value == nil {
			return nil, fmt.Errorf("%w: %s.%s", ErrPropertyNotFound, schema, property)
		}
		target = next.Value
	}
	return FromSchema(target)
}

// FromSchema converts the enum of s (or of its items) into option nodes.
func FromSchema(s *openapi3.Schema) ([]collection.Node, error) {
	if s == nil {
		return nil, ErrNoEnum
	}
	values := s.Enum
	ext := s.Extensions
	if len(values) == 0 && s.Items != nil && s.Items.Value != nil {
		values = s.Items.Value.Enum
		if len(ext) == 0 {
			ext = s.Items.Value.Extensions
		}
	}
	if len(values) == 0 {
		return nil, ErrNoEnum
	}

	labels := enumLabels(ext, values)
	disabled := enumSet(ext[disabledExtension])

	nodes := make([]collection.Node, 0, len(values))
	for i, value := range values {
		if value == nil {
			continue
		}
		key := fmt.Sprint(value)
		text := labels[i]
		if text == "" {
			text = key
		}
		node := collection.Item(text, collection.WithKey(collection.Key(key)))
		if _, off := disabled[key]; off {
			node.Disabled = true
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func enumLabels(ext map[string]any, values []any) []string {
	labels := make([]string, len(values))
	raw, ok := ext[labelsExtension]
	if !ok {
		raw = ext[namesExtension]
	}
	switch typed := raw.(type) {
	case []any:
		for i := range values {
			if i < len(typed) && typed[i] != nil {
				labels[i] = fmt.Sprint(typed[i])
			}
		}
	case map[string]any:
		for i, value := range values {
			if label, ok := typed[fmt.Sprint(value)]; ok && label != nil {
				labels[i] = fmt.Sprint(label)
			}
		}
	}
	return labels
}

func enumSet(raw any) map[string]struct{} {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	set := make(map[string]struct{}, len(list))
	for _, value := range list {
		set[fmt.Sprint(value)] = struct{}{}
	}
	return set
}
