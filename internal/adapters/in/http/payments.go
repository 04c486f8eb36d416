package http

import (
	"net/http"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type createPaymentRequest struct {
	RestaurantID  kernel.UUID `json:"restaurantId"  validate:"required"`
	TransactionID string      `json:"transactionId" validate:"required"`
}

func (s *Server) CreatePayment(c echo.Context) error {
	var req createPaymentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreatePaymentCommand(kernel.NewUUID(), identityOf(c), req.RestaurantID, req.TransactionID)
	if err != nil {
		return err
	}
	if err := s.h.CreatePayment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, success(envelope{"paymentId": cmd.PaymentID()}))
}

func (s *Server) GetPayments(c echo.Context) error {
	query, err := queries.NewGetPaymentsQuery(identityOf(c))
	if err != nil {
		return err
	}
	payments, err := s.h.Payments.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, success(envelope{"payments": payments}))
}
