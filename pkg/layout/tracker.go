package layout

import (
	"sync"

	"github.com/goliatone/go-combobox/pkg/logging"
)

const component = "layout"

// WidthTracker keeps a MenuWidth in sync with the input and trigger boxes.
// Resize notifications are coalesced to one measurement per frame, unchanged
// widths are not republished, and Stop tears down the observer along with
// any frame still pending.
type WidthTracker struct {
	mu        sync.Mutex
	notifier  ResizeNotifier
	scheduler FrameScheduler
	logger    logging.Logger

	input   Element
	trigger Element
	width   MenuWidth

	stopObserve  func()
	cancelFrame  func()
	framePending bool
	generation   int

	onChange func(MenuWidth)
}

// TrackerOption configures a WidthTracker.
type TrackerOption func(*WidthTracker)

// WithLogger routes measurement diagnostics.
func WithLogger(logger logging.Logger) TrackerOption {
	return func(t *WidthTracker) {
		t.logger = logger
	}
}

// WithOnChange registers the callback that receives each new width.
func WithOnChange(fn func(MenuWidth)) TrackerOption {
	return func(t *WidthTracker) {
		t.onChange = fn
	}
}

// NewWidthTracker wires a tracker to its notifier and frame scheduler.
func NewWidthTracker(notifier ResizeNotifier, scheduler FrameScheduler, opts ...TrackerOption) *WidthTracker {
	t := &WidthTracker{
		notifier:  notifier,
		scheduler: scheduler,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	t.logger = logging.OrNop(t.logger)
	return t
}

// Width returns the last published width.
func (t *WidthTracker) Width() MenuWidth {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width
}

// SetTrigger records the trigger button element; nil means none is composed.
func (t *WidthTracker) SetTrigger(el Element) {
	t.mu.Lock()
	t.trigger = el
	t.mu.Unlock()
}

// Start observes input and measures immediately. Starting again replaces the
// previous observation.
func (t *WidthTracker) Start(input Element) {
	t.Stop()
	if input == nil {
		return
	}

	t.mu.Lock()
	t.input = input
	t.generation++
	gen := t.generation
	t.mu.Unlock()

	t.measure(gen)

	if t.notifier == nil {
		return
	}
	stop := t.notifier.Observe(input, func() { t.schedule(gen) })

	t.mu.Lock()
	if t.generation != gen {
		t.mu.Unlock()
		stop()
		return
	}
	t.stopObserve = stop
	t.mu.Unlock()
}

// Stop unregisters the observer and cancels a pending frame. The last width
// is kept.
func (t *WidthTracker) Stop() {
	t.mu.Lock()
	stop := t.stopObserve
	cancel := t.cancelFrame
	t.stopObserve = nil
	t.cancelFrame = nil
	t.framePending = false
	t.input = nil
	t.generation++
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if stop != nil {
		stop()
	}
}

// Remeasure measures right away, outside the frame cadence.
func (t *WidthTracker) Remeasure() {
	t.mu.Lock()
	gen := t.generation
	t.mu.Unlock()
	t.measure(gen)
}

func (t *WidthTracker) schedule(gen int) {
	t.mu.Lock()
	if gen != t.generation || t.framePending {
		t.mu.Unlock()
		return
	}
	t.framePending = true
	scheduler := t.scheduler
	t.mu.Unlock()

	run := func() {
		t.mu.Lock()
		if gen != t.generation {
			t.mu.Unlock()
			return
		}
		t.framePending = false
		t.cancelFrame = nil
		t.mu.Unlock()
		t.measure(gen)
	}

	if scheduler == nil {
		run()
		return
	}
	cancel := scheduler.RequestFrame(run)

	t.mu.Lock()
	if t.framePending && gen == t.generation {
		t.cancelFrame = cancel
	}
	t.mu.Unlock()
}

func (t *WidthTracker) measure(gen int) {
	t.mu.Lock()
	if gen != t.generation {
		t.mu.Unlock()
		return
	}
	input, trigger := t.input, t.trigger
	t.mu.Unlock()

	width, ok := MeasureMenuWidth(input, trigger)
	if !ok {
		logging.Debug(t.logger, component, "measurement skipped: input not mounted")
		return
	}

	t.mu.Lock()
	if gen != t.generation || width == t.width {
		t.mu.Unlock()
		return
	}
	t.width = width
	onChange := t.onChange
	t.mu.Unlock()

	if onChange != nil {
		onChange(width)
	}
}
