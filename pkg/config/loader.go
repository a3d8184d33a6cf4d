package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-combobox/pkg/state"
)

// LoadFS walks fsys and parses every JSON/YAML control document. A nil fsys
// yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{controls: make(map[string]Definition)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		if len(doc.Controls) == 0 {
			return nil
		}

		for rawID, def := range doc.Controls {
			id := strings.TrimSpace(rawID)
			if id == "" {
				return fmt.Errorf("config: file %s defines an empty control id", path)
			}
			if existing, exists := store.controls[id]; exists {
				return fmt.Errorf("config: duplicate control %q (files %s and %s)", id, existing.File, path)
			}
			normalised, err := normalise(def, id, path)
			if err != nil {
				return err
			}
			store.controls[id] = normalised
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Parse reads a single document.
func Parse(data []byte, source string) (*Store, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}
	store := &Store{controls: make(map[string]Definition, len(doc.Controls))}
	for rawID, def := range doc.Controls {
		id := strings.TrimSpace(rawID)
		if id == "" {
			return nil, fmt.Errorf("config: file %s defines an empty control id", source)
		}
		normalised, err := normalise(def, id, source)
		if err != nil {
			return nil, err
		}
		store.controls[id] = normalised
	}
	return store, nil
}

// Control returns the definition for id.
func (s *Store) Control(id string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	def, ok := s.controls[id]
	return def, ok
}

// IDs lists the control ids in sorted order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.controls))
	for id := range s.controls {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Empty reports whether the store holds any controls.
func (s *Store) Empty() bool {
	return s == nil || len(s.controls) == 0
}

type documentFile struct {
	Controls map[string]Definition `json:"controls" yaml:"controls"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	trimmed := strings.TrimSpace(string(data))
	if len(trimmed) == 0 {
		return documentFile{}, fmt.Errorf("config: file %s is empty", source)
	}
	// Top-level arrays are option payloads living next to the definitions.
	if strings.HasPrefix(trimmed, "[") {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
}

func normalise(def Definition, id, source string) (Definition, error) {
	def.ID = id
	def.File = source
	def.Filter = strings.TrimSpace(def.Filter)
	def.Renderer = strings.TrimSpace(def.Renderer)

	switch state.OpenPolicy(def.Policy.Open) {
	case "", state.OpenOnInput, state.OpenOnType, state.OpenManual:
	default:
		return Definition{}, fmt.Errorf("config: control %q (file %s) has unknown open policy %q", id, source, def.Policy.Open)
	}
	switch state.AutoHighlight(def.Policy.AutoHighlight) {
	case "", state.HighlightFirst, state.HighlightNone:
	default:
		return Definition{}, fmt.Errorf("config: control %q (file %s) has unknown autoHighlight %q", id, source, def.Policy.AutoHighlight)
	}

	if def.Source != nil {
		if len(def.Options) > 0 {
			return Definition{}, fmt.Errorf("config: control %q (file %s) sets both options and source", id, source)
		}
		src := *def.Source
		src.Type = strings.ToLower(strings.TrimSpace(src.Type))
		switch src.Type {
		case SourceOpenAPI:
			if src.Path == "" || src.Schema == "" || src.Property == "" {
				return Definition{}, fmt.Errorf("config: control %q (file %s) openapi source needs path, schema and property", id, source)
			}
		case SourceJSON:
			if src.Path == "" {
				return Definition{}, fmt.Errorf("config: control %q (file %s) json source needs a path", id, source)
			}
		case SourceTimezones:
		default:
			return Definition{}, fmt.Errorf("config: control %q (file %s) has unknown source type %q", id, source, def.Source.Type)
		}
		def.Source = &src
	}
	return def, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
