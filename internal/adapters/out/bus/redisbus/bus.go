// Package redisbus implements the EventBus on Redis pub/sub so that every
// instance of the API sees events published by the others.
package redisbus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"eats/internal/adapters/out/bus/memory"
	"eats/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces the Redis channels used by the bus.
const DefaultPrefix = "eats:"

// Bus publishes to Redis channels named prefix+topic. One pattern
// subscription per process feeds a local hub, which fans messages out to
// subscribers in the order Redis delivered them.
type Bus struct {
	client *redis.Client
	prefix string
	pubsub *redis.PubSub
	hub    *memory.Hub
	logger *slog.Logger

	once sync.Once
	done chan struct{}
}

// NewBus subscribes to prefix+"*" and waits for Redis to confirm before
// returning, so nothing published afterwards is missed.
func NewBus(ctx context.Context, client *redis.Client, prefix string, logger *slog.Logger) (*Bus, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	pubsub := client.PSubscribe(ctx, prefix+"*")
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("subscribe to %s*: %w", prefix, err)
	}

	b := &Bus{
		client: client,
		prefix: prefix,
		pubsub: pubsub,
		hub:    memory.NewHub(),
		logger: logger.With("component", "redis_bus"),
		done:   make(chan struct{}),
	}
	go b.forward()
	return b, nil
}

func (b *Bus) Publish(ctx context.Context, topic string, payload []byte) error {
	if err := b.client.Publish(ctx, b.prefix+topic, payload).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

func (b *Bus) Subscribe(ctx context.Context, topic string) (ports.Subscription, error) {
	return b.hub.Subscribe(ctx, topic)
}

// Close ends the Redis subscription and every local subscription.
func (b *Bus) Close() error {
	var err error
	b.once.Do(func() {
		err = b.pubsub.Close()
		<-b.done
		_ = b.hub.Close()
	})
	return err
}

func (b *Bus) forward() {
	defer close(b.done)

	for msg := range b.pubsub.Channel() {
		topic := strings.TrimPrefix(msg.Channel, b.prefix)
		if !b.hub.HasSubscribers(topic) {
			continue
		}
		if err := b.hub.Deliver(topic, []byte(msg.Payload)); err != nil {
			b.logger.Warn("dropping message", "topic", topic, "error", err)
		}
	}
}
