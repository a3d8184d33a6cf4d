// Package props renders a control revision as JSON for client-side hydration:
// the slot bundles, visible option rows and theme settings a browser component
// needs to take over from the server-rendered markup.
package props

import (
	"context"
	"encoding/json"
	"fmt"
	"html"

	"github.com/goliatone/go-combobox/pkg/render"
)

// Option customises the renderer.
type Option func(*Renderer)

// WithIsland wraps the payload in a <script type="application/json"> element
// so it can be embedded next to the HTML markup.
func WithIsland(enabled bool) Option {
	return func(r *Renderer) {
		r.island = enabled
	}
}

// WithIndent pretty-prints the JSON.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer emits the hydration payload.
type Renderer struct {
	island bool
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Payload is the document the renderer emits.
type Payload struct {
	Version int                  `json:"version"`
	Control render.View          `json:"control"`
	Theme   *render.ThemeContext `json:"theme,omitempty"`
	Hidden  []render.HiddenField `json:"hidden,omitempty"`
}

// PayloadVersion changes when the payload shape does.
const PayloadVersion = 1

func (r *Renderer) Name() string {
	return "props"
}

func (r *Renderer) ContentType() string {
	if r.island {
		return "text/html; charset=utf-8"
	}
	return "application/json"
}

func (r *Renderer) Render(ctx context.Context, view render.View, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	payload := Payload{
		Version: PayloadVersion,
		Control: view,
		Hidden:  render.SubmissionFields(view, options),
	}
	if options.Theme != nil {
		themeCtx := render.BuildThemeContext(options.Theme)
		if options.OmitStyles {
			themeCtx.CSSVarsStyle = ""
		}
		payload.Theme = &themeCtx
	}

	var (
		data []byte
		err  error
	)
	if r.indent != "" {
		data, err = json.MarshalIndent(payload, "", r.indent)
	} else {
		data, err = json.Marshal(payload)
	}
	if err != nil {
		return nil, fmt.Errorf("props renderer: encode payload: %w", err)
	}
	if !r.island {
		return data, nil
	}

	id := html.EscapeString(view.ID + "-props")
	out := make([]byte, 0, len(data)+64)
	out = append(out, `<script type="application/json" id="`...)
	out = append(out, id...)
	out = append(out, `">`...)
	out = append(out, data...)
	out = append(out, `</script>`...)
	return out, nil
}
