// Package memory implements an in-process EventBus.
//
// Every subscription owns an unbounded mailbox, so Publish never waits for a
// slow reader. Messages of one topic reach each subscriber in publish order.
// The Hub type is also used by the networked buses to fan messages received
// from Redis or Postgres out to local subscribers.
package memory

import (
	"context"
	"errors"
	"sync"

	"eats/internal/core/ports"
)

var ErrBusClosed = errors.New("event bus is closed")

// Hub routes messages to local subscriptions by topic.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[*mailbox]struct{}
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*mailbox]struct{})}
}

// Deliver hands payload to every subscription of topic.
func (h *Hub) Deliver(topic string, payload []byte) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return ErrBusClosed
	}
	for mb := range h.subs[topic] {
		mb.push(payload)
	}
	return nil
}

// Subscribe registers a mailbox for topic. The subscription is closed when ctx
// ends.
func (h *Hub) Subscribe(ctx context.Context, topic string) (ports.Subscription, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrBusClosed
	}

	mb := newMailbox(func(mb *mailbox) { h.remove(topic, mb) })
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[*mailbox]struct{})
	}
	h.subs[topic][mb] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
			_ = mb.Close()
		case <-mb.closed:
		}
	}()

	return mb, nil
}

// HasSubscribers reports whether topic has at least one local subscription.
func (h *Hub) HasSubscribers(topic string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[topic]) > 0
}

// Close ends every subscription.
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	var all []*mailbox
	for _, set := range h.subs {
		for mb := range set {
			all = append(all, mb)
		}
	}
	h.subs = make(map[string]map[*mailbox]struct{})
	h.mu.Unlock()

	for _, mb := range all {
		mb.shutdown()
	}
	return nil
}

func (h *Hub) remove(topic string, mb *mailbox) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs[topic], mb)
	if len(h.subs[topic]) == 0 {
		delete(h.subs, topic)
	}
}

// Bus is the in-process EventBus.
type Bus struct {
	*Hub
}

func NewBus() *Bus {
	return &Bus{Hub: NewHub()}
}

func (b *Bus) Publish(_ context.Context, topic string, payload []byte) error {
	return b.Deliver(topic, append([]byte(nil), payload...))
}
