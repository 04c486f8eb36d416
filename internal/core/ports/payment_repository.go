package ports

import (
	"context"

	"eats/internal/core/domain/model/payment"
)

type PaymentRepository interface {
	Add(ctx context.Context, p *payment.Payment) error
}
