package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-combobox/pkg/collection"
	"github.com/goliatone/go-combobox/pkg/control"
	"github.com/goliatone/go-combobox/pkg/render"
	"github.com/goliatone/go-combobox/pkg/state"
)

// Run prompts until an option is committed and returns the serialized
// outcome.
func (r *Renderer) Run(ctx context.Context, c *control.Control, text render.Text) ([]byte, error) {
	if _, err := r.Prompt(ctx, c, text); err != nil {
		return nil, err
	}
	return r.serialize(render.NewView(c, text))
}

// Prompt drives c from the terminal. Each attempt asks for a query, types it
// into the control and offers the filtered options. An empty query lists
// every option, as pressing the trigger button does.
func (r *Renderer) Prompt(ctx context.Context, c *control.Control, text render.Text) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("tui: context is required")
	}
	if c == nil {
		return Result{}, errors.New("tui: control is required")
	}
	if r.driver == nil {
		return Result{}, errors.New("tui: prompt driver is nil")
	}
	if err := c.FocusInput(); err != nil {
		return Result{}, err
	}

	for attempt := 0; attempt < r.attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		snap := c.Snapshot()
		query, err := r.driver.Input(ctx, InputConfig{
			Message: r.theme.PromptPrefix + r.message(c, text),
			Default: snap.InputValue,
			Help:    text.Description,
		})
		if err != nil {
			return Result{}, err
		}
		if err := r.search(c, query); err != nil {
			return Result{}, err
		}

		snap = c.Snapshot()
		if !snap.IsOpen || snap.Empty() {
			if query != "" && c.Machine().Options().AllowsCustomValue {
				if err := c.BlurInput(); err != nil {
					return Result{}, err
				}
				return ResultFromView(render.NewView(c, text)), nil
			}
			if err := r.info(ctx, fmt.Sprintf("no options match %q", query)); err != nil {
				return Result{}, err
			}
			continue
		}

		picked, ok, err := r.pick(ctx, c, snap, text)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			continue
		}
		if err := c.HoverOption(picked.Key); err != nil {
			return Result{}, err
		}
		if err := c.KeyDown(control.KeyEnter); err != nil {
			return Result{}, err
		}
		return ResultFromView(render.NewView(c, text)), nil
	}
	return Result{}, ErrNoSelection
}

// search types query and opens the popup over the result.
func (r *Renderer) search(c *control.Control, query string) error {
	if query == "" {
		if err := c.Type(""); err != nil {
			return err
		}
		if !c.Snapshot().IsOpen {
			return c.PressButton()
		}
		return nil
	}
	if err := c.Type(query); err != nil {
		return err
	}
	if c.Snapshot().IsOpen {
		return nil
	}
	return c.Machine().Open(state.TriggerInput, state.FocusNone)
}

// pick offers the visible options. ok is false when the choice cannot be
// committed and the session should ask again.
func (r *Renderer) pick(ctx context.Context, c *control.Control, snap state.Snapshot, text render.Text) (collection.Option, bool, error) {
	visible := snap.FilteredCollection.Options()
	texts := collection.Texts(c.Portal().Description())
	labels := make([]string, len(visible))
	for i, opt := range visible {
		label := texts[opt.Key]
		if label == "" {
			label = opt.TextValue
		}
		if opt.Disabled {
			label += " (disabled)"
		}
		labels[i] = label
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      r.theme.PromptPrefix + r.message(c, text),
		Options:      labels,
		DefaultIndex: snap.FilteredCollection.IndexOf(snap.FocusedKey),
		Help:         text.Description,
		PageSize:     r.pageSize,
		Filter:       r.selectFilter(c, visible),
	})
	if err != nil {
		return collection.Option{}, false, err
	}
	if idx < 0 || idx >= len(visible) {
		return collection.Option{}, false, nil
	}
	opt := visible[idx]
	if opt.Disabled {
		err := r.info(ctx, fmt.Sprintf("%s%s is not available", r.errorPrefix(), labels[idx]))
		return collection.Option{}, false, err
	}
	return opt, true, nil
}

// selectFilter narrows the picker with the control's own predicate so typing
// inside the list matches the same way typing in the input does.
func (r *Renderer) selectFilter(c *control.Control, visible []collection.Option) func(string, string, int) bool {
	pred := c.Machine().Options().Filter
	if pred == nil {
		return nil
	}
	return func(query, _ string, index int) bool {
		if index < 0 || index >= len(visible) {
			return false
		}
		return pred(visible[index].TextValue, query)
	}
}

func (r *Renderer) message(c *control.Control, text render.Text) string {
	if text.Label != "" {
		return text.Label
	}
	return c.Coordinator().IDs().Base
}

func (r *Renderer) info(ctx context.Context, msg string) error {
	return r.driver.Info(ctx, r.theme.InfoPrefix+msg)
}
