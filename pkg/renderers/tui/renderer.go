package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/render"
)

// Renderer implements render.Renderer for terminals. Render prints a control
// revision; Run drives a live control through prompts.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	pageSize     int
	attempts     int
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver:       driver,
		outputFormat: OutputFormatJSON,
		attempts:     DefaultAttempts,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

// Render serializes view without prompting.
func (r *Renderer) Render(ctx context.Context, view render.View, _ render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.serialize(view)
}

// Result is the outcome of a session.
type Result struct {
	ID         string         `json:"id"`
	Key        collection.Key `json:"key,omitempty"`
	Text       string         `json:"text,omitempty"`
	InputValue string         `json:"inputValue"`
	Custom     bool           `json:"custom,omitempty"`
}

// ResultFromView reads the committed selection out of view.
func ResultFromView(view render.View) Result {
	res := Result{
		ID:         view.ID,
		Key:        view.SelectedKey,
		InputValue: view.InputValue,
	}
	if opt, ok := view.State.SelectedOption(); ok {
		res.Text = opt.TextValue
	}
	res.Custom = res.Key == collection.NoKey && res.InputValue != ""
	return res
}

func (r *Renderer) serialize(view render.View) ([]byte, error) {
	if r.outputFormat == OutputFormatPrettyText {
		return []byte(r.draw(view)), nil
	}
	out, err := json.Marshal(ResultFromView(view))
	if err != nil {
		return nil, fmt.Errorf("tui: encode result: %w", err)
	}
	return out, nil
}

// draw prints the label and input, then the listbox when the popup is open.
func (r *Renderer) draw(view render.View) string {
	var b strings.Builder
	label := view.Text.Label
	if label == "" {
		label = view.ID
	}
	fmt.Fprintf(&b, "%s%s: %s\n", r.theme.PromptPrefix, label, view.InputValue)
	if view.Text.Description != "" {
		fmt.Fprintf(&b, "  %s%s\n", r.theme.InfoPrefix, view.Text.Description)
	}
	if view.Text.ErrorMessage != "" {
		fmt.Fprintf(&b, "  %s%s\n", r.errorPrefix(), view.Text.ErrorMessage)
	}
	if !view.Open {
		return b.String()
	}
	if view.Empty {
		b.WriteString("  (no options)\n")
		return b.String()
	}
	for _, section := range view.Sections {
		indent := "  "
		if section.Title != "" {
			fmt.Fprintf(&b, "  %s\n", section.Title)
			indent = "    "
		}
		for _, opt := range section.Options {
			marker := " "
			switch {
			case opt.Focused:
				marker = ">"
			case opt.Selected:
				marker = "*"
			}
			line := opt.Text
			if opt.Disabled {
				line += " (disabled)"
			}
			fmt.Fprintf(&b, "%s%s %s\n", indent, marker, line)
		}
	}
	return b.String()
}

func (r *Renderer) errorPrefix() string {
	if r.theme.ErrorPrefix != "" {
		return r.theme.ErrorPrefix
	}
	return "! "
}
