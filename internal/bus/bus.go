package bus

import (
	"strings"
	"sync"
)

// Bus is an in-process publish/subscribe bus with namespace filtering.
// Publish never blocks: a subscriber whose buffer is full misses the event.
type Bus struct {
	mu     sync.RWMutex
	subs   map[int]*Subscription
	next   int
	closed bool
}

// Subscription receives events whose kind starts with its namespace.
type Subscription struct {
	namespace string
	ch        chan Event
	cancel    func()
}

// C returns the delivery channel. It is closed by Cancel or Bus.Close.
func (s *Subscription) C() <-chan Event { return s.ch }

// Cancel stops delivery and closes the channel. Safe to call twice.
func (s *Subscription) Cancel() { s.cancel() }

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[int]*Subscription)}
}

// Publish delivers evt to every matching subscriber.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if !strings.HasPrefix(evt.Kind, sub.namespace) {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
		}
	}
}

// Subscribe registers a subscriber for namespace with the given buffer.
// Subscribing to a closed bus returns an already closed subscription.
func (b *Bus) Subscribe(namespace string, bufSize int) *Subscription {
	sub := &Subscription{namespace: namespace, ch: make(chan Event, bufSize)}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(sub.ch)
		sub.cancel = func() {}
		return sub
	}
	id := b.next
	b.next++
	b.subs[id] = sub

	var once sync.Once
	sub.cancel = func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub.ch)
			}
		})
	}
	return sub
}

// Close cancels every subscription. Later publishes are dropped.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
}
