package notifications

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"
)

type envelope struct {
	topic   string
	key     string
	payload []byte
}

// Notifier queues order events and publishes them from one goroutine.
//
// The queue is unbounded; Publish methods never block on the bus. Events are
// published in queue order. A failed publish is logged and dropped.
type Notifier struct {
	bus     ports.EventBus
	journal ports.EventJournal
	logger  *slog.Logger

	mu      sync.Mutex
	queue   []envelope
	closed  bool
	wake    chan struct{}
	done    chan struct{}
	started bool
}

// NewNotifier creates a stopped notifier. journal may be nil.
func NewNotifier(bus ports.EventBus, journal ports.EventJournal, logger *slog.Logger) *Notifier {
	return &Notifier{
		bus:     bus,
		journal: journal,
		logger:  logger.With("component", "notifier"),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Start launches the dispatcher. Calling it twice is a no-op.
func (n *Notifier) Start() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.started {
		return
	}
	n.started = true
	go n.run()
}

// Close stops accepting events, waits until the queue is drained or ctx ends.
func (n *Notifier) Close(ctx context.Context) error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	started := n.started
	n.mu.Unlock()

	if !started {
		return nil
	}
	n.signal()

	select {
	case <-n.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PendingOrder announces a freshly placed order to its restaurant owner.
func (n *Notifier) PendingOrder(o *order.Order) {
	n.enqueue(TopicNewPendingOrder, o)
}

// OrderCooked alerts drivers that o is ready for pick up.
func (n *Notifier) OrderCooked(o *order.Order) {
	n.enqueue(TopicOrderCooked, o)
}

// OrderStatusUpdated informs the customer, owner and driver of o.
func (n *Notifier) OrderStatusUpdated(o *order.Order) {
	n.enqueue(TopicOrderStatusUpdated, o)
}

func (n *Notifier) enqueue(topic string, o *order.Order) {
	payload, err := json.Marshal(NewOrderEvent(o))
	if err != nil {
		n.logger.Error("failed to encode order event", "topic", topic, "order_id", o.ID().String(), "error", err)
		return
	}

	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		n.logger.Warn("notifier is closed, dropping event", "topic", topic, "order_id", o.ID().String())
		return
	}
	n.queue = append(n.queue, envelope{topic: topic, key: o.ID().String(), payload: payload})
	n.mu.Unlock()

	n.signal()
}

func (n *Notifier) signal() {
	select {
	case n.wake <- struct{}{}:
	default:
	}
}

func (n *Notifier) run() {
	defer close(n.done)

	for range n.wake {
		n.mu.Lock()
		batch := n.queue
		n.queue = nil
		closed := n.closed
		n.mu.Unlock()

		for _, env := range batch {
			n.publish(env)
		}

		if closed {
			n.mu.Lock()
			remaining := len(n.queue)
			n.mu.Unlock()
			if remaining == 0 {
				return
			}
			n.signal()
		}
	}
}

func (n *Notifier) publish(env envelope) {
	ctx := context.Background()

	if err := n.bus.Publish(ctx, env.topic, env.payload); err != nil {
		n.logger.Error("failed to publish order event", "topic", env.topic, "order_id", env.key, "error", err)
	}

	if n.journal == nil {
		return
	}
	if err := n.journal.Record(ctx, env.topic, env.key, env.payload); err != nil {
		n.logger.Error("failed to journal order event", "topic", env.topic, "order_id", env.key, "error", err)
	}
}
