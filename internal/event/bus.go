// Package event provides the synchronous publish/subscribe hub that carries
// gameplay signals between session components.
package event

import (
	"errors"
	"fmt"
)

// ErrDispatching is returned when the subscriber list is mutated while a
// publish is in progress.
var ErrDispatching = errors.New("event: subscribers cannot change during dispatch")

// Handler receives published events.
type Handler func(Event)

// Subscription identifies a registered handler so it can be removed.
type Subscription struct {
	signal Signal
	id     uint64
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus maps each signal to an ordered list of subscribers. Publish invokes
// them synchronously in registration order. Publishing from inside a handler
// is allowed; subscribing or unsubscribing is not.
type Bus struct {
	subscribers map[Signal][]subscriber
	nextID      uint64
	depth       int // Nesting level of in-flight Publish calls
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[Signal][]subscriber),
		nextID:      1,
	}
}

// Subscribe appends handler to the subscriber list of signal.
func (b *Bus) Subscribe(signal Signal, handler Handler) (Subscription, error) {
	if handler == nil {
		return Subscription{}, fmt.Errorf("event: nil handler for %s", signal)
	}
	if b.depth > 0 {
		return Subscription{}, ErrDispatching
	}
	id := b.nextID
	b.nextID++
	b.subscribers[signal] = append(b.subscribers[signal], subscriber{id: id, handler: handler})
	return Subscription{signal: signal, id: id}, nil
}

// MustSubscribe is Subscribe for session wiring, where failure is a bug.
func (b *Bus) MustSubscribe(signal Signal, handler Handler) Subscription {
	sub, err := b.Subscribe(signal, handler)
	if err != nil {
		panic(err)
	}
	return sub
}

// Unsubscribe removes a handler. Removing an unknown subscription is a no-op.
func (b *Bus) Unsubscribe(sub Subscription) error {
	if b.depth > 0 {
		return ErrDispatching
	}
	list := b.subscribers[sub.signal]
	for i, s := range list {
		if s.id == sub.id {
			b.subscribers[sub.signal] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	return nil
}

// Publish delivers an event to every subscriber of signal before returning.
func (b *Bus) Publish(signal Signal, value int) {
	list := b.subscribers[signal]
	if len(list) == 0 {
		return
	}
	b.depth++
	defer func() { b.depth-- }()

	e := Event{Signal: signal, Value: value}
	for _, s := range list {
		s.handler(e)
	}
}

// Subscribers returns the number of handlers registered for signal.
func (b *Bus) Subscribers(signal Signal) int {
	return len(b.subscribers[signal])
}

// Reset drops every subscription. Used when a session is torn down.
func (b *Bus) Reset() {
	if b.depth > 0 {
		panic(ErrDispatching)
	}
	clear(b.subscribers)
}
