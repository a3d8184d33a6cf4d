// Package jsonpath maps option lists embedded in JSON payloads (API responses,
// fixture files) onto combo box option descriptions using gjson paths.
package jsonpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/goliatone/go-combobox/pkg/collection"
)

// ErrInvalidJSON is returned for payloads gjson cannot parse.
var ErrInvalidJSON = errors.New("jsonpath source: invalid JSON")

// Mapping describes where options live inside a payload. Field paths are
// evaluated relative to each result element.
type Mapping struct {
	// ResultsPath selects the array of results; empty means the payload root.
	ResultsPath   string
	KeyField      string
	TextField     string
	DisabledField string
	// SectionField groups consecutive results sharing the same value into a
	// section titled by it.
	SectionField string
}

// DefaultMapping reads id/name records from the payload root.
func DefaultMapping() Mapping {
	return Mapping{KeyField: "id", TextField: "name"}
}

// Extract maps payload into option nodes.
func Extract(payload []byte, m Mapping) ([]collection.Node, error) {
	if !gjson.ValidBytes(payload) {
		return nil, ErrInvalidJSON
	}
	if m.KeyField == "" && m.TextField == "" {
		defaults := DefaultMapping()
		m.KeyField, m.TextField = defaults.KeyField, defaults.TextField
	}

	results := gjson.ParseBytes(payload)
	if path := strings.TrimSpace(m.ResultsPath); path != "" {
		results = results.Get(path)
	}
	if !results.Exists() {
		return nil, fmt.Errorf("jsonpath source: results path %q not found", m.ResultsPath)
	}
	if !results.IsArray() {
		return nil, fmt.Errorf("jsonpath source: results path %q is not an array", m.ResultsPath)
	}

	var (
		nodes   []collection.Node
		current *collection.Node
		title   string
	)
	var walkErr error
	results.ForEach(func(idx, entry gjson.Result) bool {
		node, err := m.node(entry)
		if err != nil {
			walkErr = fmt.Errorf("jsonpath source: result %d: %w", idx.Int(), err)
			return false
		}
		if m.SectionField == "" {
			nodes = append(nodes, node)
			return true
		}
		section := entry.Get(m.SectionField).String()
		if current == nil || section != title {
			nodes = append(nodes, collection.Section(section))
			current = &nodes[len(nodes)-1]
			title = section
		}
		current.Children = append(current.Children, node)
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return nodes, nil
}

func (m Mapping) node(entry gjson.Result) (collection.Node, error) {
	if entry.Type == gjson.String || entry.Type == gjson.Number {
		value := entry.String()
		return collection.Item(value, collection.WithKey(collection.Key(value))), nil
	}

	text := entry.Get(m.TextField).String()
	key := text
	if m.KeyField != "" {
		if k := entry.Get(m.KeyField); k.Exists() {
			key = k.String()
		}
	}
	if key == "" {
		return collection.Node{}, collection.ErrEmptyKey
	}
	if text == "" {
		text = key
	}

	node := collection.Item(text, collection.WithKey(collection.Key(key)))
	if m.DisabledField != "" {
		node.Disabled = entry.Get(m.DisabledField).Bool()
	}
	return node, nil
}
