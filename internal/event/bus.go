package event

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrNotSubscribed is returned when unsubscribing an unknown handle.
var ErrNotSubscribed = errors.New("subscription not found")

// Handler processes a delivered event.
type Handler func(Event)

// Subscription is a handle for cancelling a subscription.
type Subscription struct {
	id    uint64
	topic Topic
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Stats reports bus activity counters.
type Stats struct {
	Published     uint64
	Delivered     uint64
	HandlerPanics uint64
}

// Bus delivers events to topic subscribers synchronously, in
// subscription order. A panicking handler is recovered and counted so
// one subscriber cannot take down the viewer.
type Bus struct {
	mu     sync.RWMutex
	subs   map[Topic][]subscriber
	nextID atomic.Uint64

	published     atomic.Uint64
	delivered     atomic.Uint64
	handlerPanics atomic.Uint64
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]subscriber)}
}

// Subscribe registers a handler for a topic and returns its handle.
func (b *Bus) Subscribe(topic Topic, h Handler) Subscription {
	id := b.nextID.Add(1)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], subscriber{id: id, handler: h})
	return Subscription{id: id, topic: topic}
}

// Unsubscribe removes a previously registered handler.
func (b *Bus) Unsubscribe(sub Subscription) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[sub.topic]
	for i, s := range subs {
		if s.id == sub.id {
			b.subs[sub.topic] = append(subs[:i:i], subs[i+1:]...)
			return nil
		}
	}
	return ErrNotSubscribed
}

// Publish delivers an event to every subscriber of its topic, inline.
// The event's timestamp is filled in if unset.
func (b *Bus) Publish(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	b.published.Add(1)

	b.mu.RLock()
	subs := make([]subscriber, len(b.subs[e.Topic]))
	copy(subs, b.subs[e.Topic])
	b.mu.RUnlock()

	for _, s := range subs {
		b.deliver(s, e)
	}
}

func (b *Bus) deliver(s subscriber, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.handlerPanics.Add(1)
		}
	}()
	s.handler(e)
	b.delivered.Add(1)
}

// Stats returns a snapshot of the bus counters.
func (b *Bus) Stats() Stats {
	return Stats{
		Published:     b.published.Load(),
		Delivered:     b.delivered.Load(),
		HandlerPanics: b.handlerPanics.Load(),
	}
}
