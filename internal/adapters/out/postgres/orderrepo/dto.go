package orderrepo

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type OrderDTO struct {
	ID           uuid.UUID                    `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID                    `gorm:"type:uuid;index;not null"`
	RestaurantID uuid.UUID                    `gorm:"type:uuid;index;not null"`
	OwnerID      uuid.UUID                    `gorm:"type:uuid;index;not null"`
	DriverID     *uuid.UUID                   `gorm:"type:uuid;index"`
	Items        datatypes.JSONSlice[ItemDTO] `gorm:"not null"`
	Total        decimal.Decimal              `gorm:"type:numeric(12,2);not null"`
	Status       string                       `gorm:"size:16;index;not null"`
	CreatedAt    time.Time                    `gorm:"index;not null"`
	Version      int                          `gorm:"not null;default:1"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line inside the items JSON column.
type ItemDTO struct {
	DishID    uuid.UUID       `json:"dishId"`
	Options   []ItemOptionDTO `json:"options"`
	LinePrice decimal.Decimal `json:"linePrice"`
}

type ItemOptionDTO struct {
	Name   string  `json:"name"`
	Choice *string `json:"choice,omitempty"`
}

func fromDomain(o *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := o.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		options := make([]ItemOptionDTO, 0, len(item.Options()))
		for _, opt := range item.Options() {
			options = append(options, ItemOptionDTO{Name: opt.Name, Choice: opt.Choice})
		}
		items = append(items, ItemDTO{
			DishID:    item.DishID().Bytes(),
			Options:   options,
			LinePrice: item.LinePrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:           o.ID().Bytes(),
		CustomerID:   o.CustomerID().Bytes(),
		RestaurantID: o.RestaurantID().Bytes(),
		OwnerID:      o.OwnerID().Bytes(),
		DriverID:     driverID,
		Items:        datatypes.NewJSONSlice(items),
		Total:        o.Total().Decimal(),
		Status:       o.Status().String(),
		CreatedAt:    o.CreatedAt().UTC(),
		Version:      o.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	ids, err := uuidsFromDTO(dto.ID, dto.CustomerID, dto.RestaurantID, dto.OwnerID)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(ids[0], ids[1], ids[2], ids[3], driverID, items, total, status, dto.CreatedAt, dto.Version)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	dishID, err := kernel.UUIDFromBytes(dto.DishID[:])
	if err != nil {
		return order.Item{}, err
	}
	linePrice, err := kernel.NewMoney(dto.LinePrice)
	if err != nil {
		return order.Item{}, err
	}

	options := make([]order.ItemOption, 0, len(dto.Options))
	for _, opt := range dto.Options {
		options = append(options, order.ItemOption{Name: opt.Name, Choice: opt.Choice})
	}
	return order.NewItem(dishID, options, linePrice)
}

func uuidsFromDTO(raw ...uuid.UUID) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromBytes(r[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
