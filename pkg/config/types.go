package config

import (
	"github.com/goliatone/go-combobox/pkg/aria"
	"github.com/goliatone/go-combobox/pkg/collection"
)

// Source types understood by the facade.
const (
	SourceOpenAPI   = "openapi"
	SourceJSON      = "json"
	SourceTimezones = "timezones"
)

// Definition describes one control.
type Definition struct {
	ID string `json:"-" yaml:"-"`
	// File is the document the definition was read from.
	File string `json:"-" yaml:"-"`

	Label        string `json:"label" yaml:"label"`
	Description  string `json:"description" yaml:"description"`
	ErrorMessage string `json:"errorMessage" yaml:"errorMessage"`
	Invalid      bool   `json:"invalid" yaml:"invalid"`
	Placeholder  string `json:"placeholder" yaml:"placeholder"`
	ClassName    string `json:"className" yaml:"className"`
	Renderer     string `json:"renderer" yaml:"renderer"`
	// Name is the form field the control submits under.
	Name string `json:"name" yaml:"name"`

	Options []collection.Node `json:"options" yaml:"options"`
	Source  *SourceConfig     `json:"source" yaml:"source"`

	Filter             string       `json:"filter" yaml:"filter"`
	Policy             PolicyConfig `json:"policy" yaml:"policy"`
	DefaultInputValue  *string      `json:"defaultInputValue" yaml:"defaultInputValue"`
	DefaultSelectedKey string       `json:"defaultSelectedKey" yaml:"defaultSelectedKey"`

	// Composition overrides the slots derived from the text fields.
	Composition *aria.Composition `json:"composition" yaml:"composition"`
}

// SourceConfig points at an external option source.
type SourceConfig struct {
	Type string `json:"type" yaml:"type"`
	// Path is resolved against the filesystem the definitions came from.
	Path string `json:"path" yaml:"path"`

	// openapi
	Schema   string `json:"schema" yaml:"schema"`
	Property string `json:"property" yaml:"property"`

	// json
	ResultsPath   string `json:"resultsPath" yaml:"resultsPath"`
	KeyField      string `json:"keyField" yaml:"keyField"`
	TextField     string `json:"textField" yaml:"textField"`
	DisabledField string `json:"disabledField" yaml:"disabledField"`
	SectionField  string `json:"sectionField" yaml:"sectionField"`

	// timezones
	Region string `json:"region" yaml:"region"`
}

// PolicyConfig mirrors the state machine policies.
type PolicyConfig struct {
	Open                  string `json:"open" yaml:"open"`
	OpenOnFocus           bool   `json:"openOnFocus" yaml:"openOnFocus"`
	RevertOnClose         bool   `json:"revertOnClose" yaml:"revertOnClose"`
	AutoHighlight         string `json:"autoHighlight" yaml:"autoHighlight"`
	WrapHighlight         *bool  `json:"wrapHighlight" yaml:"wrapHighlight"`
	AllowsCustomValue     bool   `json:"allowsCustomValue" yaml:"allowsCustomValue"`
	AllowsEmptyCollection bool   `json:"allowsEmptyCollection" yaml:"allowsEmptyCollection"`
	Development           bool   `json:"development" yaml:"development"`
}

// Store holds definitions keyed by id.
type Store struct {
	controls map[string]Definition
}
