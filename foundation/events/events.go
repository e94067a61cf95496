// Package events fans chain activity out to interested subscribers, such
// as websocket clients watching block production.
package events

import (
	"fmt"
	"sync"
)

// Subscribers that are not draining their channel have messages dropped
// rather than blocking the chain. The buffer absorbs short stalls.
const subscriberBuffer = 100

// Events maintains the set of subscriber channels keyed by a unique id.
type Events struct {
	mu   sync.RWMutex
	subs map[string]chan string
}

// New constructs an Events value for subscribing to chain activity.
func New() *Events {
	return &Events{
		subs: make(map[string]chan string),
	}
}

// Acquire returns the channel registered under the specified id, creating
// it on first use.
func (evt *Events) Acquire(id string) chan string {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	if ch, exists := evt.subs[id]; exists {
		return ch
	}

	ch := make(chan string, subscriberBuffer)
	evt.subs[id] = ch

	return ch
}

// Release closes and removes the channel registered under the specified
// id.
func (evt *Events) Release(id string) error {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	ch, exists := evt.subs[id]
	if !exists {
		return fmt.Errorf("subscriber %q does not exist", id)
	}

	delete(evt.subs, id)
	close(ch)

	return nil
}

// Send formats the message and delivers it to every subscriber without
// blocking on any of them.
func (evt *Events) Send(v string, args ...any) {
	evt.mu.RLock()
	defer evt.mu.RUnlock()

	msg := fmt.Sprintf(v, args...)

	for _, ch := range evt.subs {
		select {
		case ch <- msg:
		default:
		}
	}
}

// Shutdown closes and removes every subscriber channel.
func (evt *Events) Shutdown() {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	for id, ch := range evt.subs {
		delete(evt.subs, id)
		close(ch)
	}
}
