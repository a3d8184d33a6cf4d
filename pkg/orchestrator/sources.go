package orchestrator

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-combobox/components/timezones"
	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/config"
	"github.com/goliatone/go-combobox/pkg/sources/jsonpath"
	"github.com/goliatone/go-combobox/pkg/sources/openapi"
)

// SourceResolver produces the option description for a source declaration.
// fsys is the filesystem the definitions were loaded from; paths in cfg are
// relative to it.
type SourceResolver func(ctx context.Context, fsys fs.FS, cfg config.SourceConfig) ([]collection.Node, error)

// SourceRegistry stores resolvers by source type.
type SourceRegistry struct {
	mu        sync.RWMutex
	resolvers map[string]SourceResolver
}

// NewSourceRegistry creates an empty registry.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{
		resolvers: make(map[string]SourceResolver),
	}
}

// DefaultSources returns a registry holding the openapi, json and timezones
// resolvers.
func DefaultSources() *SourceRegistry {
	r := NewSourceRegistry()
	r.MustRegister(config.SourceOpenAPI, resolveOpenAPI)
	r.MustRegister(config.SourceJSON, resolveJSON)
	r.MustRegister(config.SourceTimezones, resolveTimezones)
	return r
}

// Register adds resolver under name. Duplicate names return an error.
func (r *SourceRegistry) Register(name string, resolver SourceResolver) error {
	if resolver == nil {
		return fmt.Errorf("orchestrator: source resolver is required")
	}
	key := normalizeSourceName(name)
	if key == "" {
		return fmt.Errorf("orchestrator: source name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.resolvers[key]; exists {
		return fmt.Errorf("orchestrator: source %q already registered", key)
	}
	r.resolvers[key] = resolver
	return nil
}

// MustRegister panics on registration failure.
func (r *SourceRegistry) MustRegister(name string, resolver SourceResolver) {
	if err := r.Register(name, resolver); err != nil {
		panic(err)
	}
}

// Get retrieves a resolver by name.
func (r *SourceRegistry) Get(name string) (SourceResolver, error) {
	key := normalizeSourceName(name)
	if key == "" {
		return nil, fmt.Errorf("orchestrator: source name is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	resolver, ok := r.resolvers[key]
	if !ok {
		return nil, fmt.Errorf("orchestrator: source %q not found", key)
	}
	return resolver, nil
}

// List returns the sorted source names.
func (r *SourceRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.resolvers))
	for name := range r.resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a resolver is registered.
func (r *SourceRegistry) Has(name string) bool {
	key := normalizeSourceName(name)
	if key == "" {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.resolvers[key]
	return ok
}

func normalizeSourceName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func readSource(fsys fs.FS, path string) ([]byte, error) {
	if fsys == nil {
		return nil, fmt.Errorf("orchestrator: no filesystem to read %q from", path)
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: read source %q: %w", path, err)
	}
	return data, nil
}

func resolveOpenAPI(ctx context.Context, fsys fs.FS, cfg config.SourceConfig) ([]collection.Node, error) {
	raw, err := readSource(fsys, cfg.Path)
	if err != nil {
		return nil, err
	}
	return openapi.Load(ctx, raw, cfg.Schema, cfg.Property)
}

func resolveJSON(_ context.Context, fsys fs.FS, cfg config.SourceConfig) ([]collection.Node, error) {
	raw, err := readSource(fsys, cfg.Path)
	if err != nil {
		return nil, err
	}
	return jsonpath.Extract(raw, jsonpath.Mapping{
		ResultsPath:   cfg.ResultsPath,
		KeyField:      cfg.KeyField,
		TextField:     cfg.TextField,
		DisabledField: cfg.DisabledField,
		SectionField:  cfg.SectionField,
	})
}

func resolveTimezones(_ context.Context, fsys fs.FS, cfg config.SourceConfig) ([]collection.Node, error) {
	fns := []timezones.OptionFn{timezones.WithRegion(cfg.Region)}
	if cfg.Path != "" {
		raw, err := readSource(fsys, cfg.Path)
		if err != nil {
			return nil, err
		}
		zones, err := timezones.LoadZones(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		fns = append(fns, timezones.WithZones(zones))
	}
	return timezones.BuildNodes(fns...)
}
