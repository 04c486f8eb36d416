package http

import (
	"net/http"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

type itemOptionRequest struct {
	Name   string  `json:"name"             validate:"required"`
	Choice *string `json:"choice,omitempty"`
}

type orderItemRequest struct {
	DishID  kernel.UUID         `json:"dishId"  validate:"required"`
	Options []itemOptionRequest `json:"options" validate:"dive"`
}

type createOrderRequest struct {
	RestaurantID kernel.UUID        `json:"restaurantId" validate:"required"`
	Items        []orderItemRequest `json:"items"        validate:"required,min=1,dive"`
}

type editOrderRequest struct {
	Status order.Status `json:"status" validate:"required"`
}

func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	items := make([]commands.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		options := make([]order.ItemOption, 0, len(it.Options))
		for _, o := range it.Options {
			options = append(options, order.ItemOption{Name: o.Name, Choice: o.Choice})
		}
		items = append(items, commands.OrderItemInput{DishID: it.DishID, Options: options})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), identityOf(c), req.RestaurantID, items)
	if err != nil {
		return err
	}
	if err := s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, success(envelope{"orderId": cmd.OrderID()}))
}

func (s *Server) GetOrders(c echo.Context) error {
	raw, err := queryString(c, "status", false)
	if err != nil {
		return err
	}
	var status *order.Status
	if raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return badRequest("status", err)
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(identityOf(c), status)
	if err != nil {
		return err
	}
	orders, err := s.h.Orders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(envelope{"orders": orders}))
}

func (s *Server) GetOrder(c echo.Context) error {
	id, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(identityOf(c), id)
	if err != nil {
		return err
	}
	view, err := s.h.Order.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(envelope{"order": view}))
}

func (s *Server) EditOrder(c echo.Context) error {
	id, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	var req editOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewEditOrderCommand(identityOf(c), id, req.Status)
	if err != nil {
		return err
	}
	if err := s.h.EditOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(nil))
}

func (s *Server) TakeOrder(c echo.Context) error {
	id, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}
	cmd, err := commands.NewTakeOrderCommand(identityOf(c), id)
	if err != nil {
		return err
	}
	if err := s.h.TakeOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(nil))
}
