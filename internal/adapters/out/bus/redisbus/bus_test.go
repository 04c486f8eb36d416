package redisbus_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"eats/internal/adapters/out/bus/redisbus"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBus(t *testing.T, addr string) *redisbus.Bus {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	bus, err := redisbus.NewBus(context.Background(), client, "test:", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bus.Close() })
	return bus
}

func receive(t *testing.T, ch <-chan []byte) string {
	t.Helper()
	select {
	case msg, ok := <-ch:
		require.True(t, ok, "subscription closed")
		return string(msg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return ""
	}
}

func TestBus_FansOutAcrossInstances(t *testing.T) {
	mr := miniredis.RunT(t)
	publisher := newBus(t, mr.Addr())
	listener := newBus(t, mr.Addr())

	sub, err := listener.Subscribe(t.Context(), "order-cooked")
	require.NoError(t, err)
	other, err := listener.Subscribe(t.Context(), "new-pending-order")
	require.NoError(t, err)

	for _, payload := range []string{"1", "2", "3"} {
		require.NoError(t, publisher.Publish(t.Context(), "order-cooked", []byte(payload)))
	}

	assert.Equal(t, "1", receive(t, sub.Messages()))
	assert.Equal(t, "2", receive(t, sub.Messages()))
	assert.Equal(t, "3", receive(t, sub.Messages()))

	select {
	case msg := <-other.Messages():
		t.Fatalf("unexpected message %q on other topic", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_SubscriptionEndsWithContext(t *testing.T) {
	mr := miniredis.RunT(t)
	bus := newBus(t, mr.Addr())

	ctx, cancel := context.WithCancel(t.Context())
	sub, err := bus.Subscribe(ctx, "order-cooked")
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-sub.Messages():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not closed")
	}
}

func TestBus_CloseEndsSubscriptions(t *testing.T) {
	mr := miniredis.RunT(t)
	bus := newBus(t, mr.Addr())

	sub, err := bus.Subscribe(t.Context(), "order-status-updated")
	require.NoError(t, err)
	require.NoError(t, bus.Close())

	select {
	case _, ok := <-sub.Messages():
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not closed")
	}
}

func TestNewBus_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	defer client.Close()

	ctx, cancel := context.WithTimeout(t.Context(), time.Second)
	defer cancel()

	_, err := redisbus.NewBus(ctx, client, "", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}
