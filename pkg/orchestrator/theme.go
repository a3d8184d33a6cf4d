package orchestrator

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	theme "github.com/goliatone/go-theme"
)

var (
	// ErrThemeNotFound is returned for unknown theme names.
	ErrThemeNotFound = errors.New("orchestrator: theme not found")
	// ErrVariantNotFound is returned for variants the manifest lacks.
	ErrVariantNotFound = errors.New("orchestrator: theme variant not found")
)

// ManifestSelector is a theme.ThemeSelector over an in-memory manifest set.
type ManifestSelector struct {
	defaultTheme   string
	defaultVariant string
	manifests      map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector indexes manifests by name. Empty names passed to
// Select fall back to the defaults.
func NewManifestSelector(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) *ManifestSelector {
	s := &ManifestSelector{
		defaultTheme:   defaultTheme,
		defaultVariant: defaultVariant,
		manifests:      make(map[string]*theme.Manifest, len(manifests)),
	}
	for _, m := range manifests {
		if m == nil || m.Name == "" {
			continue
		}
		s.manifests[m.Name] = m
	}
	return s
}

// Select resolves name and variant.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	if name == "" {
		name = s.defaultTheme
	}
	if variant == "" && name == s.defaultTheme {
		variant = s.defaultVariant
	}
	m, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	if variant != "" {
		if _, ok := m.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q/%q", ErrVariantNotFound, name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: m}, nil
}

func (o *Orchestrator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	if selection == nil {
		return nil, nil
	}
	return RendererConfig(selection), nil
}

// RendererConfig flattens a selection: variant tokens, templates and asset
// files override the manifest's, tokens are mirrored as --name CSS
// variables and AssetURL joins the asset prefix with the file for a key.
func RendererConfig(selection *theme.Selection) *theme.RendererConfig {
	cfg := &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: map[string]string{},
		Tokens:   map[string]string{},
		CSSVars:  map[string]string{},
	}

	var (
		prefix string
		files  = map[string]string{}
	)
	if m := selection.Manifest; m != nil {
		maps.Copy(cfg.Tokens, m.Tokens)
		maps.Copy(cfg.Partials, m.Templates)
		maps.Copy(files, m.Assets.Files)
		prefix = m.Assets.Prefix

		if v, ok := m.Variants[selection.Variant]; ok {
			maps.Copy(cfg.Tokens, v.Tokens)
			maps.Copy(cfg.Partials, v.Templates)
			maps.Copy(files, v.Assets.Files)
			if v.Assets.Prefix != "" {
				prefix = v.Assets.Prefix
			}
		}
	}
	for name, value := range cfg.Tokens {
		cfg.CSSVars["--"+name] = value
	}

	cfg.AssetURL = func(key string) string {
		file, ok := files[key]
		if !ok {
			return ""
		}
		if prefix == "" || strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + file
	}
	return cfg
}
