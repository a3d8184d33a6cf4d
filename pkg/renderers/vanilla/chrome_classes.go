package vanilla

import (
	"strings"
)

// ChromeClass is a typed identifier for the structural class markers.
type ChromeClass string

const (
	ClassLabel       ChromeClass = "combobox-label"
	ClassField       ChromeClass = "combobox-field"
	ClassInput       ChromeClass = "combobox-input"
	ClassButton      ChromeClass = "combobox-button"
	ClassDescription ChromeClass = "combobox-description"
	ClassError       ChromeClass = "combobox-error"
	ClassPopover     ChromeClass = "combobox-popover"
	ClassListBox     ChromeClass = "combobox-listbox"
	ClassSection     ChromeClass = "combobox-section"
	ClassOption      ChromeClass = "combobox-option"
)

var chromeClasses = []ChromeClass{
	ClassLabel, ClassField, ClassInput, ClassButton, ClassDescription,
	ClassError, ClassPopover, ClassListBox, ClassSection, ClassOption,
}

// ThemeClassToken is the theme token prefix that appends classes to a
// marker, e.g. "class.combobox-input": "input input-bordered".
const ThemeClassToken = "class."

// classMap resolves every marker plus the extra classes theme tokens add.
// Keys use the marker name with the "combobox-" prefix removed.
func classMap(tokens map[string]string) map[string]string {
	out := make(map[string]string, len(chromeClasses))
	for _, class := range chromeClasses {
		value := string(class)
		if extra := sanitizeClassList(tokens[ThemeClassToken+string(class)]); extra != "" {
			value += " " + extra
		}
		out[strings.TrimPrefix(string(class), "combobox-")] = value
	}
	return out
}

// sanitizeClassList drops tokens that would collide with the structural
// markers.
func sanitizeClassList(value string) string {
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.HasPrefix(token, "combobox-") {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}
