// Package combobox is the top-level entry point: it loads control definitions,
// builds accessible combo box controls over their options and renders them
// to HTML, hydration props or a terminal session.
package combobox

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/control"
	"github.com/goliatone/go-combobox/pkg/orchestrator"
	"github.com/goliatone/go-combobox/pkg/render"
	"github.com/goliatone/go-combobox/pkg/renderers/vanilla"
	theme "github.com/goliatone/go-theme"
)

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// RenderOptions describes per-request presentation overrides.
type RenderOptions = render.RenderOptions

// Text is the author copy rendered around a control.
type Text = render.Text

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// New wires a control over nodes.
func New(nodes []collection.Node, options ...control.Option) (*control.Control, error) {
	return control.New(nodes, options...)
}

// GenerateHTML loads the definitions in fsys and renders the initial state of
// controlID with the vanilla renderer. It is the simplest entry point for
// callers that just want markup.
func GenerateHTML(ctx context.Context, fsys fs.FS, controlID string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(append([]orchestrator.Option{orchestrator.WithDefinitionsFS(fsys)}, options...)...)
	return gen.Generate(ctx, orchestrator.Request{
		Control:  controlID,
		Renderer: "vanilla",
	})
}

// RenderHTML renders the current revision of c with the embedded templates.
func RenderHTML(ctx context.Context, c *control.Control, text Text, opts RenderOptions) ([]byte, error) {
	if c == nil {
		return nil, errors.New("combobox: control is required")
	}
	renderer, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("combobox: %w", err)
	}
	return renderer.Render(ctx, render.NewView(c, text), opts)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices are resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeManifests registers manifests with the orchestrator and selects
// defaultTheme/defaultVariant when a request names none.
func WithThemeManifests(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) orchestrator.Option {
	return orchestrator.WithThemeManifests(defaultTheme, defaultVariant, manifests...)
}
