package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-combobox/pkg/config"
	"github.com/goliatone/go-combobox/pkg/control"
	"github.com/goliatone/go-combobox/pkg/filter"
	"github.com/goliatone/go-combobox/pkg/logging"
	"github.com/goliatone/go-combobox/pkg/render"
	"github.com/goliatone/go-combobox/pkg/renderers/props"
	"github.com/goliatone/go-combobox/pkg/renderers/vanilla"
	theme "github.com/goliatone/go-theme"
)

const (
	defaultRendererName = "vanilla"
	component           = "orchestrator"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithDefinitionsFS loads control definitions from fsys. Source paths in the
// definitions are resolved against the same filesystem.
func WithDefinitionsFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.definitionsFS = fsys
	}
}

// WithStore injects already loaded definitions.
func WithStore(store *config.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithSourceFS overrides the filesystem source paths are resolved against.
func WithSourceFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.sourceFS = fsys
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when neither the request
// nor the definition names one.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithFilters injects the registry definition filter names resolve against.
func WithFilters(filters *filter.Registry) Option {
	return func(o *Orchestrator) {
		o.filters = filters
	}
}

// WithSources injects the source resolvers.
func WithSources(sources *SourceRegistry) Option {
	return func(o *Orchestrator) {
		o.sources = sources
	}
}

// WithThemeSelector resolves request themes through selector.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeManifests builds a selector over manifests with the given
// defaults.
func WithThemeManifests(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) Option {
	return func(o *Orchestrator) {
		o.themeSelector = NewManifestSelector(defaultTheme, defaultVariant, manifests...)
	}
}

// WithLogger routes diagnostics from every built control.
func WithLogger(logger logging.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithControlOptions appends options to every control built.
func WithControlOptions(options ...control.Option) Option {
	return func(o *Orchestrator) {
		o.controlOptions = append(o.controlOptions, options...)
	}
}

// Orchestrator turns control definitions into rendered output. It applies
// sensible defaults (vanilla and props renderers, built-in sources and
// filters) while remaining open to dependency injection.
type Orchestrator struct {
	definitionsFS   fs.FS
	sourceFS        fs.FS
	store           *config.Store
	registry        *render.Registry
	defaultRenderer string
	filters         *filter.Registry
	sources         *SourceRegistry
	themeSelector   theme.ThemeSelector
	logger          logging.Logger
	controlOptions  []control.Option
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render.
type Request struct {
	// Control names a definition from the loaded store. Optional when
	// Definition is supplied.
	Control string

	// Definition bypasses the store.
	Definition *config.Definition

	// Renderer names the renderer to use. If empty, the definition's renderer
	// and then the configured default apply.
	Renderer string

	// RenderOptions are passed to the renderer. A Theme set here wins over
	// ThemeName/ThemeVariant.
	RenderOptions render.RenderOptions

	ThemeName    string
	ThemeVariant string
}

// Store returns the loaded definitions.
func (o *Orchestrator) Store() (*config.Store, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	return o.store, nil
}

// Definition resolves the definition a request targets.
func (o *Orchestrator) Definition(req Request) (config.Definition, error) {
	if err := o.initialiseErr; err != nil {
		return config.Definition{}, err
	}
	if req.Definition != nil {
		return *req.Definition, nil
	}
	if req.Control == "" {
		return config.Definition{}, errors.New("orchestrator: control id or definition is required")
	}
	def, ok := o.store.Control(req.Control)
	if !ok {
		return config.Definition{}, fmt.Errorf("orchestrator: control %q not found", req.Control)
	}
	return def, nil
}

// Build resolves def's options and wires a live control over them. Callers
// own the control and must Close it.
func (o *Orchestrator) Build(ctx context.Context, def config.Definition) (*control.Control, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	nodes := def.Options
	if def.Source != nil {
		resolver, err := o.sources.Get(def.Source.Type)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: control %q: %w", def.ID, err)
		}
		nodes, err = resolver(ctx, o.sourceFS, *def.Source)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: control %q: resolve %s source: %w", def.ID, def.Source.Type, err)
		}
		logging.Debug(o.logger, component, "source resolved", "control", def.ID, "type", def.Source.Type, "nodes", len(nodes))
	}

	stateOpts, err := def.StateOptions(o.filters)
	if err != nil {
		return nil, err
	}

	options := []control.Option{
		control.WithLogger(o.logger),
		control.WithStateOptions(stateOpts...),
		control.WithAriaOptions(def.AriaOptions()...),
	}
	options = append(options, o.controlOptions...)

	c, err := control.New(nodes, options...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: control %q: %w", def.ID, err)
	}
	return c, nil
}

// Generate builds the requested control, renders its initial revision and
// tears it down.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	def, err := o.Definition(req)
	if err != nil {
		return nil, err
	}
	c, err := o.Build(ctx, def)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	return o.Render(ctx, c, def, req)
}

// Render renders the current revision of c, which was built from def.
func (o *Orchestrator) Render(ctx context.Context, c *control.Control, def config.Definition, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := req.Renderer
	if name == "" {
		name = def.Renderer
	}
	renderer, err := o.rendererFor(name)
	if err != nil {
		return nil, err
	}

	opts := req.RenderOptions
	if opts.Name == "" {
		opts.Name = def.Name
	}
	if opts.Theme == nil {
		cfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		opts.Theme = cfg
	}

	output, err := renderer.Render(ctx, render.NewView(c, TextOf(def)), opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// TextOf extracts the author copy of def.
func TextOf(def config.Definition) render.Text {
	return render.Text{
		Label:        def.Label,
		Description:  def.Description,
		ErrorMessage: def.ErrorMessage,
		Placeholder:  def.Placeholder,
	}
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	renderer, err := o.registry.Get("")
	if err != nil {
		return nil, fmt.Errorf("orchestrator: default renderer: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	o.logger = logging.OrNop(o.logger)

	if o.store == nil {
		store, err := config.LoadFS(o.definitionsFS)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load definitions: %w", err)
			return
		}
		o.store = store
	}
	if o.sourceFS == nil {
		o.sourceFS = o.definitionsFS
	}
	if o.sources == nil {
		o.sources = DefaultSources()
	}
	if o.filters == nil {
		o.filters = filter.NewRegistry()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
			return
		}
		o.registry.MustRegister(renderer)
		o.registry.MustRegister(props.New())
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
