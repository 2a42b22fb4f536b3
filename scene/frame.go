package scene

import "sync"

// FrameID names one pending frame request.
type FrameID uint64

// Scheduler hands out next-frame callbacks.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type frameReq struct {
	id FrameID
	fn func()
}

// FrameLoop is a Scheduler driven by the host: every refresh the host calls
// Tick, which runs the callbacks that were pending when the tick began.
// Callbacks requested while a tick runs wait for the next one.
type FrameLoop struct {
	mu      sync.Mutex
	next    FrameID
	pending []frameReq
	live    map[FrameID]bool
}

func NewFrameLoop() *FrameLoop {
	return &FrameLoop{live: make(map[FrameID]bool)}
}

func (l *FrameLoop) RequestFrame(fn func()) FrameID {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.next++
	id := l.next
	l.pending = append(l.pending, frameReq{id: id, fn: fn})
	l.live[id] = true
	return id
}

// CancelFrame drops a request that has not run yet. Unknown ids are ignored.
func (l *FrameLoop) CancelFrame(id FrameID) {
	l.mu.Lock()
	delete(l.live, id)
	l.mu.Unlock()
}

// Pending reports how many requests are still waiting.
func (l *FrameLoop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.live)
}

// Tick runs one frame and returns the number of callbacks invoked.
func (l *FrameLoop) Tick() int {
	l.mu.Lock()
	batch := l.pending
	l.pending = nil
	l.mu.Unlock()

	ran := 0
	for _, r := range batch {
		l.mu.Lock()
		ok := l.live[r.id]
		delete(l.live, r.id)
		l.mu.Unlock()
		if !ok {
			continue
		}
		r.fn()
		ran++
	}
	return ran
}
