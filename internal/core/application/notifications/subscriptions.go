package notifications

import (
	"context"
	"encoding/json"
	"log/slog"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// Subscriptions opens role scoped live feeds of order events.
type Subscriptions struct {
	bus    ports.EventBus
	logger *slog.Logger
}

func NewSubscriptions(bus ports.EventBus, logger *slog.Logger) *Subscriptions {
	return &Subscriptions{bus: bus, logger: logger.With("component", "subscriptions")}
}

// PendingOrdersForOwner streams orders placed at restaurants owned by who.
func (s *Subscriptions) PendingOrdersForOwner(ctx context.Context, who user.Identity) (<-chan OrderEvent, error) {
	if who.Role != user.Owner {
		return nil, errs.NewForbiddenError("pending orders are only streamed to owners")
	}
	return s.open(ctx, TopicNewPendingOrder, func(e OrderEvent) bool {
		return who.Is(e.OwnerID)
	})
}

// CookedOrdersForDrivers streams every order that became Cooked.
func (s *Subscriptions) CookedOrdersForDrivers(ctx context.Context, who user.Identity) (<-chan OrderEvent, error) {
	if who.Role != user.Delivery {
		return nil, errs.NewForbiddenError("cooked orders are only streamed to drivers")
	}
	return s.open(ctx, TopicOrderCooked, func(OrderEvent) bool {
		return true
	})
}

// OrderUpdatesFor streams status changes of orders who is a party to,
// optionally narrowed to orderID.
func (s *Subscriptions) OrderUpdatesFor(
	ctx context.Context,
	who user.Identity,
	orderID *kernel.UUID,
) (<-chan OrderEvent, error) {
	if err := who.Validate(); err != nil {
		return nil, errs.NewForbiddenErrorWithCause("order updates", err)
	}
	return s.open(ctx, TopicOrderStatusUpdated, func(e OrderEvent) bool {
		if orderID != nil && !e.OrderID.IsEqual(*orderID) {
			return false
		}
		return e.ConcernedWith(who)
	})
}

// open forwards matching events until ctx ends or the bus closes the feed.
func (s *Subscriptions) open(
	ctx context.Context,
	topic string,
	match func(OrderEvent) bool,
) (<-chan OrderEvent, error) {
	sub, err := s.bus.Subscribe(ctx, topic)
	if err != nil {
		return nil, errs.Internal("could not subscribe to "+topic, err)
	}

	out := make(chan OrderEvent)
	go func() {
		defer close(out)
		defer func() {
			_ = sub.Close()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case payload, ok := <-sub.Messages():
				if !ok {
					return
				}

				var ev OrderEvent
				if err := json.Unmarshal(payload, &ev); err != nil {
					s.logger.Warn("skipping undecodable order event", "topic", topic, "error", err)
					continue
				}
				if !match(ev) {
					continue
				}

				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
