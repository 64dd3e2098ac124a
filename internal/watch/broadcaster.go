// Package watch provides change notification for the in-memory stores so
// that readers observe every mutation without polling.
package watch

import "sync"

// Broadcaster fans out change signals to subscribers. Signals carry no
// payload; a subscriber re-reads the store snapshot when woken. Notify never
// blocks: a subscriber that has not drained its channel holds at most one
// pending signal, so bursts of mutations coalesce.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan struct{})}
}

// Subscribe registers a listener. The cancel func releases it and must be
// called when the listener is done.
func (b *Broadcaster) Subscribe() (<-chan struct{}, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan struct{}, 1)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
	return ch, cancel
}

// Notify signals every current subscriber.
func (b *Broadcaster) Notify() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
