package render

import (
	"fmt"
	"sort"
	"strings"
)

// HiddenField is a hidden form input emitted next to the control so it can
// take part in a plain form post.
type HiddenField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken carries a request forgery token under the backend's field name,
// e.g. "_csrf".
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// MergeHiddenFields returns a copy of base with fields applied. Empty names
// are ignored and later fields win.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		if name := strings.TrimSpace(field.Name); name != "" {
			out[name] = field.Value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields orders fields by name. Empty names are dropped.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	clean := MergeHiddenFields(fields)
	if len(clean) == 0 {
		return nil
	}
	names := make([]string, 0, len(clean))
	for name := range clean {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]HiddenField, 0, len(names))
	for _, name := range names {
		result = append(result, HiddenField{Name: name, Value: clean[name]})
	}
	return result
}

// SubmissionFields lists the hidden inputs for view: the caller's extra
// fields plus, when options.Name is set, the value the control submits.
// That is the selected key, or the typed text when nothing is selected.
func SubmissionFields(view View, options RenderOptions) []HiddenField {
	var fields []HiddenField
	if name := strings.TrimSpace(options.Name); name != "" {
		value := string(view.SelectedKey)
		if value == "" {
			value = view.InputValue
		}
		fields = append(fields, Hidden(name, value))
	}
	return SortedHiddenFields(MergeHiddenFields(options.HiddenFields, fields...))
}
