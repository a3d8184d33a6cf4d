package vanilla

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplateName is the entry template rendered for each control.
const TemplateName = "templates/combobox.tmpl"

// ThemePartial is the go-theme partial key that swaps TemplateName for a
// theme-provided template inside the configured bundle.
const ThemePartial = "combobox"

// TemplatesFS exposes the embedded template bundle so callers can copy or
// override it.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
