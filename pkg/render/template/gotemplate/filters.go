package gotemplate

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/flosch/pongo2/v6"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("attrs") {
		_ = pongo2.RegisterFilter("attrs", filterAttrs)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterAttrs renders an attribute map as ` name="value"` pairs in sorted
// order. Empty values render as bare boolean attributes.
func filterAttrs(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	attrs, ok := in.Interface().(map[string]any)
	if !ok || len(attrs) == 0 {
		return pongo2.AsSafeValue(""), nil
	}
	return pongo2.AsSafeValue(FormatAttrs(attrs)), nil
}

// FormatAttrs renders attrs as escaped HTML attributes with a leading space.
func FormatAttrs(attrs map[string]any) string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		if strings.TrimSpace(name) != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteByte(' ')
		b.WriteString(html.EscapeString(name))
		value := ""
		if raw := attrs[name]; raw != nil {
			value = fmt.Sprint(raw)
		}
		if value == "" {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(value))
		b.WriteByte('"')
	}
	return b.String()
}
