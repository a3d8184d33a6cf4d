package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request presentation choices that do not belong
// to the control state.
type RenderOptions struct {
	// Theme supplies CSS variables, tokens and asset URLs resolved by go-theme.
	// Renderers emit the variables next to the control and resolve the
	// stylesheet asset through Theme.AssetURL.
	Theme *theme.RendererConfig
	// Stylesheets are linked ahead of the control markup.
	Stylesheets []string
	// OmitStyles skips the inline style block carrying theme variables.
	OmitStyles bool
	// Name is the form field carrying the submitted value. Empty renders no
	// value input.
	Name string
	// HiddenFields are extra hidden inputs posted with the control, such as
	// CSRF tokens.
	HiddenFields map[string]string
}

// ThemeStylesheetAsset is the asset key renderers resolve through the theme.
const ThemeStylesheetAsset = "combobox.stylesheet"

// ThemeContext is the template-friendly projection of a theme config.
type ThemeContext struct {
	Name         string            `json:"name,omitempty"`
	Variant      string            `json:"variant,omitempty"`
	Tokens       map[string]string `json:"tokens,omitempty"`
	CSSVars      map[string]string `json:"cssVars,omitempty"`
	CSSVarsStyle string            `json:"cssVarsStyle,omitempty"`
	Stylesheet   string            `json:"stylesheet,omitempty"`
}

// BuildThemeContext flattens cfg; a nil cfg yields the zero context.
func BuildThemeContext(cfg *theme.RendererConfig) ThemeContext {
	if cfg == nil {
		return ThemeContext{}
	}
	ctx := ThemeContext{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Tokens:  copyStringMap(cfg.Tokens),
		CSSVars: copyStringMap(cfg.CSSVars),
	}
	ctx.CSSVarsStyle = CSSVarsStyle(".combobox", ctx.CSSVars)
	if cfg.AssetURL != nil {
		ctx.Stylesheet = cfg.AssetURL(ThemeStylesheetAsset)
	}
	return ctx
}
