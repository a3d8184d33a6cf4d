// Package layout measures the input and trigger geometry of a combo box and
// publishes the popup width derived from it.
package layout

import (
	"math"
	"strconv"
)

// Rect is a bounding box in CSS pixels.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Width returns Right-Left.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Element is anything that can report its bounding box. ok is false while the
// element is not mounted.
type Element interface {
	BoundingRect() (rect Rect, ok bool)
}

// ResizeNotifier invokes fn whenever el's box changes. The returned func
// unregisters the observer.
type ResizeNotifier interface {
	Observe(el Element, fn func()) (stop func())
}

// FrameScheduler runs fn on the next rendering frame. The returned func
// cancels a frame that has not run yet.
type FrameScheduler interface {
	RequestFrame(fn func()) (cancel func())
}

// MenuWidth is a CSS length, or Unset before the first measurement.
type MenuWidth string

// Unset is the width before anything has been measured.
const Unset MenuWidth = ""

// String renders the width for a style attribute; Unset renders as "unset".
func (w MenuWidth) String() string {
	if w == Unset {
		return "unset"
	}
	return string(w)
}

// Pixels formats v as a CSS pixel length.
func Pixels(v float64) MenuWidth {
	return MenuWidth(strconv.FormatFloat(v, 'f', -1, 64) + "px")
}

// MeasureMenuWidth spans the union of the input and trigger boxes. trigger
// may be nil. ok is false when the input is not mounted.
func MeasureMenuWidth(input, trigger Element) (MenuWidth, bool) {
	if input == nil {
		return Unset, false
	}
	inputRect, ok := input.BoundingRect()
	if !ok {
		return Unset, false
	}
	minX, maxX := inputRect.Left, inputRect.Right
	if trigger != nil {
		if triggerRect, ok := trigger.BoundingRect(); ok {
			minX = math.Min(minX, triggerRect.Left)
			maxX = math.Max(maxX, triggerRect.Right)
		}
	}
	return Pixels(maxX - minX), true
}
