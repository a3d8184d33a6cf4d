package config

import (
	"fmt"

	"github.com/goliatone/go-combobox/pkg/aria"
	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/filter"
	"github.com/goliatone/go-combobox/pkg/state"
)

// StateOptions converts the definition policies into machine options. The
// filter name is resolved through registry; nil uses the default registry.
func (d Definition) StateOptions(registry *filter.Registry) ([]state.OptionFn, error) {
	var (
		pred filter.Predicate
		err  error
	)
	if registry != nil {
		pred, err = registry.Lookup(d.Filter)
	} else {
		pred, err = filter.Lookup(d.Filter)
	}
	if err != nil {
		return nil, fmt.Errorf("config: control %q: %w", d.ID, err)
	}

	p := d.Policy
	fns := []state.OptionFn{
		state.WithFilter(pred),
		state.WithOpenOnFocus(p.OpenOnFocus),
		state.WithRevertOnClose(p.RevertOnClose),
		state.WithAllowsCustomValue(p.AllowsCustomValue),
		state.WithAllowsEmptyCollection(p.AllowsEmptyCollection),
		state.WithDevelopment(p.Development),
	}
	if p.Open != "" {
		fns = append(fns, state.WithOpenPolicy(state.OpenPolicy(p.Open)))
	}
	if p.AutoHighlight != "" {
		fns = append(fns, state.WithAutoHighlight(state.AutoHighlight(p.AutoHighlight)))
	}
	if p.WrapHighlight != nil {
		fns = append(fns, state.WithWrapHighlight(*p.WrapHighlight))
	}
	if d.DefaultInputValue != nil {
		fns = append(fns, state.WithDefaultInputValue(*d.DefaultInputValue))
	}
	if d.DefaultSelectedKey != "" {
		fns = append(fns, state.WithDefaultSelectedKey(collection.Key(d.DefaultSelectedKey)))
	}
	return fns, nil
}

// Slots returns the composition: the explicit override, or the slots implied
// by the text fields on top of input, button, popover and listbox.
func (d Definition) Slots() aria.Composition {
	if d.Composition != nil {
		return *d.Composition
	}
	return aria.Composition{
		Label:        d.Label != "",
		Input:        true,
		Button:       true,
		Popover:      true,
		ListBox:      true,
		Description:  d.Description != "",
		ErrorMessage: d.ErrorMessage != "",
	}
}

// AriaOptions converts the definition into coordinator options.
func (d Definition) AriaOptions() []aria.OptionFn {
	fns := []aria.OptionFn{
		aria.WithID(d.ID),
		aria.WithComposition(d.Slots()),
		aria.WithInvalid(d.Invalid || d.ErrorMessage != ""),
	}
	if d.ClassName != "" {
		fns = append(fns, aria.WithClassName(d.ClassName))
	}
	return fns
}
