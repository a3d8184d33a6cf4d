package testsupport

import (
	"sync"

	"github.com/goliatone/go-combobox/pkg/layout"
)

// Element is a mutable layout.Element. A zero Element is unmounted.
type Element struct {
	mu      sync.Mutex
	rect    layout.Rect
	mounted bool
}

// NewElement returns a mounted element spanning [left, right].
func NewElement(left, right float64) *Element {
	return &Element{rect: layout.Rect{Left: left, Right: right, Bottom: 32}, mounted: true}
}

// BoundingRect implements layout.Element.
func (e *Element) BoundingRect() (layout.Rect, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rect, e.mounted
}

// SetRect replaces the box and marks the element mounted.
func (e *Element) SetRect(r layout.Rect) {
	e.mu.Lock()
	e.rect = r
	e.mounted = true
	e.mu.Unlock()
}

// Unmount makes BoundingRect report no geometry.
func (e *Element) Unmount() {
	e.mu.Lock()
	e.mounted = false
	e.mu.Unlock()
}

// Notifier is a layout.ResizeNotifier driven by the test.
type Notifier struct {
	mu        sync.Mutex
	nextID    int
	observers map[int]observer
}

type observer struct {
	el layout.Element
	fn func()
}

// NewNotifier returns a notifier with no observers.
func NewNotifier() *Notifier {
	return &Notifier{observers: make(map[int]observer)}
}

// Observe implements layout.ResizeNotifier.
func (n *Notifier) Observe(el layout.Element, fn func()) func() {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.observers[id] = observer{el: el, fn: fn}
	n.mu.Unlock()

	return func() {
		n.mu.Lock()
		delete(n.observers, id)
		n.mu.Unlock()
	}
}

// Observers returns the number of registered observers.
func (n *Notifier) Observers() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.observers)
}

// Resize updates el (when it is an *Element) and notifies its observers.
func (n *Notifier) Resize(el layout.Element, r layout.Rect) {
	if fake, ok := el.(*Element); ok {
		fake.SetRect(r)
	}
	n.Notify(el)
}

// Notify fires the observers registered for el.
func (n *Notifier) Notify(el layout.Element) {
	n.mu.Lock()
	var fns []func()
	for id := 0; id < n.nextID; id++ {
		if obs, ok := n.observers[id]; ok && obs.el == el {
			fns = append(fns, obs.fn)
		}
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
