package tui

// OutputFormat controls how the outcome is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits the selection as application/json.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText draws the control as plain text.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// DefaultAttempts bounds how many times a session re-prompts after a query
// matched nothing or a disabled option was picked.
const DefaultAttempts = 5

// Theme captures optional formatting hints. Keep minimal to avoid coupling
// renderer logic to ANSI specifics.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithPageSize limits how many options the picker shows at once.
func WithPageSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.pageSize = size
		}
	}
}

// WithAttempts overrides DefaultAttempts.
func WithAttempts(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.attempts = n
		}
	}
}
