package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-combobox/pkg/render"
	rendertemplate "github.com/goliatone/go-combobox/pkg/render/template"
	gotemplate "github.com/goliatone/go-combobox/pkg/render/template/gotemplate"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// TemplateName.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template engine.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer draws a control revision as server-side HTML.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer over the embedded templates unless overridden.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws view. Description and error copy are sanitised; everything
// else is escaped by the template engine.
func (r *Renderer) Render(ctx context.Context, view render.View, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	themeCtx := render.BuildThemeContext(options.Theme)
	if options.OmitStyles {
		themeCtx.CSSVarsStyle = ""
	}
	stylesheets := append([]string(nil), options.Stylesheets...)
	if themeCtx.Stylesheet != "" {
		stylesheets = append(stylesheets, themeCtx.Stylesheet)
	}

	name := TemplateName
	if options.Theme != nil {
		if partial := strings.TrimSpace(options.Theme.Partials[ThemePartial]); partial != "" {
			name = partial
		}
	}

	result, err := r.templates.RenderTemplate(name, map[string]any{
		"view":         view,
		"theme":        themeCtx,
		"classes":      classMap(themeCtx.Tokens),
		"stylesheets":  stylesheets,
		"description":  sanitizeCopy(view.Text.Description),
		"errorMessage": sanitizeCopy(view.Text.ErrorMessage),
		"hiddenFields": render.SubmissionFields(view, options),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}
