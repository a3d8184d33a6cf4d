package layout

import (
	"context"
	"sync"
	"time"
)

// ManualFrames queues frame callbacks until the embedding event loop calls
// Flush, which is how a host without its own frame clock drives measurement.
type ManualFrames struct {
	mu     sync.Mutex
	nextID int
	queue  []frameRequest
}

type frameRequest struct {
	id int
	fn func()
}

// NewManualFrames returns an empty frame queue.
func NewManualFrames() *ManualFrames {
	return &ManualFrames{}
}

// RequestFrame implements FrameScheduler.
func (f *ManualFrames) RequestFrame(fn func()) func() {
	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.queue = append(f.queue, frameRequest{id: id, fn: fn})
	f.mu.Unlock()

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, req := range f.queue {
			if req.id == id {
				f.queue = append(f.queue[:i], f.queue[i+1:]...)
				return
			}
		}
	}
}

// Pending reports the number of queued callbacks.
func (f *ManualFrames) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Flush runs the callbacks queued before the call, in request order.
// Callbacks requested while flushing wait for the next frame.
func (f *ManualFrames) Flush() int {
	f.mu.Lock()
	batch := f.queue
	f.queue = nil
	f.mu.Unlock()

	for _, req := range batch {
		req.fn()
	}
	return len(batch)
}

// TickerFrames flushes requested callbacks on a fixed interval until ctx is
// done. Callbacks run on the ticker goroutine.
type TickerFrames struct {
	frames *ManualFrames
}

// DefaultFrameInterval approximates a 60Hz display.
const DefaultFrameInterval = 16 * time.Millisecond

// NewTickerFrames starts the frame loop. A non-positive interval uses
// DefaultFrameInterval.
func NewTickerFrames(ctx context.Context, interval time.Duration) *TickerFrames {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	t := &TickerFrames{frames: NewManualFrames()}
	go t.loop(ctx, interval)
	return t
}

// RequestFrame implements FrameScheduler.
func (t *TickerFrames) RequestFrame(fn func()) func() {
	return t.frames.RequestFrame(fn)
}

func (t *TickerFrames) loop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.frames.Flush()
		}
	}
}
