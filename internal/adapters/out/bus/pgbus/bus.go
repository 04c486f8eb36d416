// Package pgbus implements the EventBus on Postgres LISTEN/NOTIFY. It needs
// no infrastructure besides the database the orders live in.
package pgbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eats/internal/adapters/out/bus/memory"
	"eats/internal/core/ports"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DefaultChannel is the NOTIFY channel carrying every topic.
const DefaultChannel = "eats_events"

// MaxPayload is the largest envelope Postgres accepts in a notification.
const MaxPayload = 7999

var ErrPayloadTooLarge = errors.New("event payload exceeds the notification size limit")

// notification is the envelope sent through the single channel.
type notification struct {
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload"`
}

// Bus notifies through db and listens with a dedicated pq connection.
type Bus struct {
	db       *gorm.DB
	channel  string
	listener *pq.Listener
	hub      *memory.Hub
	logger   *slog.Logger

	once sync.Once
	stop chan struct{}
	done chan struct{}
}

// NewBus opens the listener on dsn and starts forwarding notifications to
// local subscribers. Payloads must be JSON documents.
func NewBus(db *gorm.DB, dsn, channel string, logger *slog.Logger) (*Bus, error) {
	if channel == "" {
		channel = DefaultChannel
	}
	logger = logger.With("component", "pg_bus")

	listener := pq.NewListener(dsn, 100*time.Millisecond, 10*time.Second,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				logger.Warn("listener event", "event", int(ev), "error", err)
			}
		})
	if err := listener.Listen(channel); err != nil {
		_ = listener.Close()
		return nil, fmt.Errorf("listen on %s: %w", channel, err)
	}

	b := &Bus{
		db:       db,
		channel:  channel,
		listener: listener,
		hub:      memory.NewHub(),
		logger:   logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go b.forward()
	return b, nil
}

func (b *Bus) Publish(ctx context.Context, topic string, payload []byte) error {
	envelope, err := json.Marshal(notification{Topic: topic, Payload: payload})
	if err != nil {
		return fmt.Errorf("encode %s notification: %w", topic, err)
	}
	if len(envelope) > MaxPayload {
		return ErrPayloadTooLarge
	}
	if err = b.db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", b.channel, string(envelope)).Error; err != nil {
		return fmt.Errorf("notify %s: %w", topic, err)
	}
	return nil
}

func (b *Bus) Subscribe(ctx context.Context, topic string) (ports.Subscription, error) {
	return b.hub.Subscribe(ctx, topic)
}

func (b *Bus) Close() error {
	var err error
	b.once.Do(func() {
		close(b.stop)
		<-b.done
		err = b.listener.Close()
		_ = b.hub.Close()
	})
	return err
}

func (b *Bus) forward() {
	defer close(b.done)

	ping := time.NewTicker(time.Minute)
	defer ping.Stop()

	for {
		select {
		case <-b.stop:
			return
		case n, ok := <-b.listener.Notify:
			if !ok {
				return
			}
			// nil after a reconnect; notifications sent meanwhile are lost.
			if n == nil {
				continue
			}
			b.deliver(n.Extra)
		case <-ping.C:
			if err := b.listener.Ping(); err != nil {
				b.logger.Warn("listener ping failed", "error", err)
			}
		}
	}
}

func (b *Bus) deliver(raw string) {
	var n notification
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		b.logger.Warn("skipping malformed notification", "error", err)
		return
	}
	if !b.hub.HasSubscribers(n.Topic) {
		return
	}
	if err := b.hub.Deliver(n.Topic, n.Payload); err != nil {
		b.logger.Warn("dropping message", "topic", n.Topic, "error", err)
	}
}
