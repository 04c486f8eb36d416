package paymentrepo

import (
	"time"

	"eats/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TransactionID string    `gorm:"not null"`
	OwnerID       uuid.UUID `gorm:"type:uuid;index;not null"`
	RestaurantID  uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID().Bytes(),
		TransactionID: p.TransactionID(),
		OwnerID:       p.OwnerID().Bytes(),
		RestaurantID:  p.RestaurantID().Bytes(),
		CreatedAt:     p.CreatedAt().UTC(),
	}
}
