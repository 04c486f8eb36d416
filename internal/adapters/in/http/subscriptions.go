package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"eats/internal/core/application/notifications"
	"eats/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func (s *Server) PendingOrders(c echo.Context) error {
	events, err := s.subscriptions.PendingOrdersForOwner(c.Request().Context(), identityOf(c))
	if err != nil {
		return err
	}
	return s.stream(c, notifications.TopicNewPendingOrder, events)
}

func (s *Server) CookedOrders(c echo.Context) error {
	events, err := s.subscriptions.CookedOrdersForDrivers(c.Request().Context(), identityOf(c))
	if err != nil {
		return err
	}
	return s.stream(c, notifications.TopicOrderCooked, events)
}

// OrderUpdates streams status changes of the caller's orders, or of one order
// when orderId is given.
func (s *Server) OrderUpdates(c echo.Context) error {
	raw, err := queryString(c, "orderId", false)
	if err != nil {
		return err
	}
	var orderID *kernel.UUID
	if raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest("orderId", err)
		}
		orderID = &id
	}

	events, err := s.subscriptions.OrderUpdatesFor(c.Request().Context(), identityOf(c), orderID)
	if err != nil {
		return err
	}
	return s.stream(c, notifications.TopicOrderStatusUpdated, events)
}

// stream writes events as server-sent events until the client goes away or
// the subscription ends. Comment lines keep idle connections open.
func (s *Server) stream(c echo.Context, name string, events <-chan notifications.OrderEvent) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	heartbeat := time.NewTicker(s.opts.Heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			data, err := json.Marshal(ev)
			if err != nil {
				s.logger.Error("failed to encode event", "event", name, "error", err)
				continue
			}
			if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", name, data); err != nil {
				return nil
			}
			res.Flush()
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": ping\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}
