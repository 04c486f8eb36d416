package notifications_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"eats/internal/adapters/out/bus/memory"
	"eats/internal/core/application/notifications"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	customer user.Identity
	owner    user.Identity
	driver   user.Identity
}

func newFixture() fixture {
	return fixture{
		customer: user.Identity{ID: kernel.NewUUID(), Role: user.Client},
		owner:    user.Identity{ID: kernel.NewUUID(), Role: user.Owner},
		driver:   user.Identity{ID: kernel.NewUUID(), Role: user.Delivery},
	}
}

func (f fixture) order(t *testing.T, status order.Status, withDriver bool) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), nil, kernel.MustMoney("12.5"))
	require.NoError(t, err)
	var driverID *kernel.UUID
	if withDriver {
		driverID = &f.driver.ID
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), f.customer.ID, kernel.NewUUID(), f.owner.ID, driverID,
		[]order.Item{item}, kernel.MustMoney("12.5"), status, time.Now().UTC(), 1)
	require.NoError(t, err)
	return o
}

func next(t *testing.T, ch <-chan notifications.OrderEvent) notifications.OrderEvent {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "feed closed")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for order event")
		return notifications.OrderEvent{}
	}
}

func nothing(t *testing.T, ch <-chan notifications.OrderEvent) {
	t.Helper()
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event for order %s", ev.OrderID)
	case <-time.After(100 * time.Millisecond):
	}
}

func start(t *testing.T) (*notifications.Notifier, *notifications.Subscriptions) {
	t.Helper()
	bus := memory.NewBus()
	notifier := notifications.NewNotifier(bus, nil, discardLogger())
	notifier.Start()
	t.Cleanup(func() {
		_ = notifier.Close(context.Background())
		_ = bus.Close()
	})
	return notifier, notifications.NewSubscriptions(bus, discardLogger())
}

func TestPendingOrdersForOwner(t *testing.T) {
	f := newFixture()
	notifier, subs := start(t)

	mine, err := subs.PendingOrdersForOwner(t.Context(), f.owner)
	require.NoError(t, err)
	stranger, err := subs.PendingOrdersForOwner(t.Context(), user.Identity{ID: kernel.NewUUID(), Role: user.Owner})
	require.NoError(t, err)

	o := f.order(t, order.Pending, false)
	notifier.PendingOrder(o)

	ev := next(t, mine)
	assert.True(t, ev.OrderID.IsEqual(o.ID()))
	assert.True(t, ev.CustomerID.IsEqual(f.customer.ID))
	assert.Equal(t, order.Pending, ev.Status)
	assert.True(t, ev.Total.IsEqual(kernel.MustMoney("12.50")))
	nothing(t, stranger)

	_, err = subs.PendingOrdersForOwner(t.Context(), f.customer)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestCookedOrdersForDrivers(t *testing.T) {
	f := newFixture()
	notifier, subs := start(t)

	feed, err := subs.CookedOrdersForDrivers(t.Context(), f.driver)
	require.NoError(t, err)

	o := f.order(t, order.Cooked, false)
	notifier.OrderStatusUpdated(o)
	notifier.OrderCooked(o)

	ev := next(t, feed)
	assert.True(t, ev.OrderID.IsEqual(o.ID()))
	assert.Nil(t, ev.DriverID)

	_, err = subs.CookedOrdersForDrivers(t.Context(), f.owner)
	require.ErrorIs(t, err, errs.ErrForbidden)
}

func TestOrderUpdatesFor(t *testing.T) {
	f := newFixture()
	notifier, subs := start(t)

	customerFeed, err := subs.OrderUpdatesFor(t.Context(), f.customer, nil)
	require.NoError(t, err)
	ownerFeed, err := subs.OrderUpdatesFor(t.Context(), f.owner, nil)
	require.NoError(t, err)
	driverFeed, err := subs.OrderUpdatesFor(t.Context(), f.driver, nil)
	require.NoError(t, err)
	strangerFeed, err := subs.OrderUpdatesFor(t.Context(), user.Identity{ID: kernel.NewUUID(), Role: user.Client}, nil)
	require.NoError(t, err)

	o := f.order(t, order.PickedUp, true)
	notifier.OrderStatusUpdated(o)

	for _, feed := range []<-chan notifications.OrderEvent{customerFeed, ownerFeed, driverFeed} {
		ev := next(t, feed)
		assert.True(t, ev.OrderID.IsEqual(o.ID()))
		assert.Equal(t, order.PickedUp, ev.Status)
		require.NotNil(t, ev.DriverID)
		assert.True(t, ev.DriverID.IsEqual(f.driver.ID))
	}
	nothing(t, strangerFeed)
}

func TestOrderUpdatesFor_SingleOrder(t *testing.T) {
	f := newFixture()
	notifier, subs := start(t)

	watched := f.order(t, order.Pending, false)
	other := f.order(t, order.Pending, false)
	watchedID := watched.ID()

	feed, err := subs.OrderUpdatesFor(t.Context(), f.customer, &watchedID)
	require.NoError(t, err)

	notifier.OrderStatusUpdated(other)
	notifier.OrderStatusUpdated(watched)

	ev := next(t, feed)
	assert.True(t, ev.OrderID.IsEqual(watchedID))
}

func TestNotifier_PreservesOrder(t *testing.T) {
	f := newFixture()
	notifier, subs := start(t)

	feed, err := subs.OrderUpdatesFor(t.Context(), f.owner, nil)
	require.NoError(t, err)

	statuses := []order.Status{order.Pending, order.Cooking, order.Cooked, order.PickedUp, order.Delivered}
	for _, s := range statuses {
		notifier.OrderStatusUpdated(f.order(t, s, true))
	}

	for _, s := range statuses {
		assert.Equal(t, s, next(t, feed).Status)
	}
}

func TestSubscription_EndsWithContext(t *testing.T) {
	f := newFixture()
	_, subs := start(t)

	ctx, cancel := context.WithCancel(t.Context())
	feed, err := subs.OrderUpdatesFor(ctx, f.customer, nil)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-feed:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("feed was not closed")
	}
}

type recordingJournal struct {
	mu     sync.Mutex
	topics []string
	fail   bool
}

func (j *recordingJournal) Record(_ context.Context, topic, _ string, _ []byte) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.topics = append(j.topics, topic)
	if j.fail {
		return errors.New("broker unavailable")
	}
	return nil
}

func (j *recordingJournal) Close() error { return nil }

func (j *recordingJournal) recorded() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.topics...)
}

func TestNotifier_JournalsEvents(t *testing.T) {
	f := newFixture()
	bus := memory.NewBus()
	defer bus.Close()
	journal := &recordingJournal{fail: true}
	notifier := notifications.NewNotifier(bus, journal, discardLogger())
	notifier.Start()

	o := f.order(t, order.Cooked, false)
	notifier.OrderStatusUpdated(o)
	notifier.OrderCooked(o)

	require.NoError(t, notifier.Close(t.Context()))
	assert.Equal(t, []string{notifications.TopicOrderStatusUpdated, notifications.TopicOrderCooked}, journal.recorded())

	// Closed notifiers drop events instead of blocking the caller.
	notifier.OrderCooked(o)
	assert.Len(t, journal.recorded(), 2)
}
