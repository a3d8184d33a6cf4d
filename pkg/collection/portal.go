package collection

import "sync"

// Portal carries a realized collection from the renderer that declares the
// option markup to the control that owns it. The declaring side publishes a
// description; the owning side reads Collection or subscribes.
type Portal struct {
	mu          sync.RWMutex
	current     *Collection
	description []Node
	descRev     uint64
	nextID      int
	subscribers map[int]func(*Collection)
	order       []int
}

// NewPortal creates a portal holding the empty collection.
func NewPortal() *Portal {
	return &Portal{
		current:     Empty,
		subscribers: make(map[int]func(*Collection)),
	}
}

// Publish materializes description and swaps it in. changed is false when the
// result is value-equal to the current collection, in which case the current
// pointer is kept and subscribers are not notified. The description itself is
// always stored so display text edits reach Description; DescriptionRevision
// moves whenever it differs from the previous one.
func (p *Portal) Publish(description []Node) (changed bool, err error) {
	next, err := FromNodes(description)
	if err != nil {
		return false, err
	}
	return p.swap(next, description, true), nil
}

// PublishCollection swaps in an already materialized collection. The stored
// description is cleared only when the collection changes.
func (p *Portal) PublishCollection(next *Collection) bool {
	if next == nil {
		next = Empty
	}
	return p.swap(next, nil, false)
}

func (p *Portal) swap(next *Collection, description []Node, described bool) bool {
	p.mu.Lock()
	equal := p.current.Equal(next)
	if (described || !equal) && !nodesEqual(p.description, description) {
		p.description = description
		p.descRev++
	}
	if equal {
		p.mu.Unlock()
		return false
	}
	p.current = next
	subs := make([]func(*Collection), 0, len(p.order))
	for _, id := range p.order {
		subs = append(subs, p.subscribers[id])
	}
	p.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return true
}

// Collection returns the latest realized collection.
func (p *Portal) Collection() *Collection {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Description returns the last published description, if any.
func (p *Portal) Description() []Node {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Node(nil), p.description...)
}

// DescriptionRevision increments each time a different description is stored.
func (p *Portal) DescriptionRevision() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.descRev
}

// Subscribe registers fn for collection changes and returns its unregister func.
func (p *Portal) Subscribe(fn func(*Collection)) func() {
	if fn == nil {
		return func() {}
	}
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subscribers[id] = fn
	p.order = append(p.order, id)
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.subscribers, id)
			for i, candidate := range p.order {
				if candidate == id {
					p.order = append(p.order[:i], p.order[i+1:]...)
					break
				}
			}
		})
	}
}

func nodesEqual(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if x.Kind != y.Kind || x.Key != y.Key || x.Text != y.Text ||
			x.TextValue != y.TextValue || x.Disabled != y.Disabled {
			return false
		}
		if !nodesEqual(x.Children, y.Children) {
			return false
		}
	}
	return true
}
