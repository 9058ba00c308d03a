// Package events implements the synchronous change-notification bus of the state tree.
package events

import "sync"

// Listener is called with no arguments after every successful mutation.
// Listeners pull fresh state from the repositories themselves.
type Listener func()

type subscription struct {
	id int
	fn Listener
}

// Bus delivers zero-argument notifications to subscribers in registration order.
// The zero value is ready to use.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (b *Bus) Subscribe(fn Listener) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish invokes every listener registered at the time of the call, synchronously and in
// registration order. Listeners added or removed while a round runs do not affect it.
// A listener may call back into the bus, including Publish.
func (b *Bus) Publish() {
	b.mu.Lock()
	round := make([]Listener, len(b.subs))
	for i, s := range b.subs {
		round[i] = s.fn
	}
	b.mu.Unlock()

	for _, fn := range round {
		fn()
	}
}

// Len returns the number of current subscribers.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
