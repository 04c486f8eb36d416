package queries

import (
	"encoding/json"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// RestaurantRef is the restaurant as shown next to an order.
type RestaurantRef struct {
	ID         kernel.UUID `json:"id"`
	Name       string      `json:"name"`
	Address    string      `json:"address"`
	CoverImage string      `json:"coverImage"`
}

type OrderItemOption struct {
	Name   string  `json:"name"`
	Choice *string `json:"choice,omitempty"`
}

type OrderItemView struct {
	DishID    kernel.UUID       `json:"dishId"`
	Options   []OrderItemOption `json:"options"`
	LinePrice kernel.Money      `json:"linePrice"`
}

// OrderView is the read model of an order returned by getOrder and getOrders.
type OrderView struct {
	ID         kernel.UUID     `json:"id"`
	CustomerID kernel.UUID     `json:"customerId"`
	DriverID   *kernel.UUID    `json:"driverId,omitempty"`
	Restaurant RestaurantRef   `json:"restaurant"`
	Items      []OrderItemView `json:"items"`
	Total      kernel.Money    `json:"total"`
	Status     order.Status    `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func orderViewFromAggregate(o *order.Order, ref RestaurantRef) OrderView {
	view := OrderView{
		ID:         o.ID(),
		CustomerID: o.CustomerID(),
		DriverID:   o.DriverID(),
		Restaurant: ref,
		Items:      make([]OrderItemView, 0, len(o.Items())),
		Total:      o.Total(),
		Status:     o.Status(),
		CreatedAt:  o.CreatedAt(),
	}
	for _, item := range o.Items() {
		options := make([]OrderItemOption, 0, len(item.Options()))
		for _, opt := range item.Options() {
			options = append(options, OrderItemOption{Name: opt.Name, Choice: opt.Choice})
		}
		view.Items = append(view.Items, OrderItemView{
			DishID:    item.DishID(),
			Options:   options,
			LinePrice: item.LinePrice(),
		})
	}
	return view
}

// RestaurantSummary is a restaurant as listed in the catalog.
type RestaurantSummary struct {
	ID            kernel.UUID  `json:"id"`
	OwnerID       kernel.UUID  `json:"ownerId"`
	CategoryID    *kernel.UUID `json:"categoryId,omitempty"`
	Name          string       `json:"name"`
	Address       string       `json:"address"`
	CoverImage    string       `json:"coverImage"`
	Promoted      bool         `json:"promoted"`
	PromotedUntil *time.Time   `json:"promotedUntil,omitempty"`
}

// restaurantRow is the column set shared by every restaurant query.
type restaurantRow struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	CategoryID    uuid.NullUUID
	Name          string
	Address       string
	CoverImage    string
	PromotedUntil *time.Time
}

const restaurantColumns = "id, owner_id, category_id, name, address, cover_image, promoted_until"

func (r restaurantRow) toSummary(now time.Time) (RestaurantSummary, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return RestaurantSummary{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(r.OwnerID[:])
	if err != nil {
		return RestaurantSummary{}, err
	}
	categoryID, err := nullableUUID(r.CategoryID)
	if err != nil {
		return RestaurantSummary{}, err
	}
	return RestaurantSummary{
		ID:            id,
		OwnerID:       ownerID,
		CategoryID:    categoryID,
		Name:          r.Name,
		Address:       r.Address,
		CoverImage:    r.CoverImage,
		Promoted:      r.PromotedUntil != nil && r.PromotedUntil.After(now),
		PromotedUntil: r.PromotedUntil,
	}, nil
}

func summaries(rows []restaurantRow, now time.Time) ([]RestaurantSummary, error) {
	result := make([]RestaurantSummary, 0, len(rows))
	for _, row := range rows {
		s, err := row.toSummary(now)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

type DishChoiceView struct {
	Name  string       `json:"name"`
	Extra kernel.Money `json:"extra"`
}

// DishOptionView carries Extra for flat modifiers and Choices for choice groups.
type DishOptionView struct {
	Name    string           `json:"name"`
	Extra   *kernel.Money    `json:"extra,omitempty"`
	Choices []DishChoiceView `json:"choices,omitempty"`
}

type DishView struct {
	ID          kernel.UUID      `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Photo       string           `json:"photo"`
	Price       kernel.Money     `json:"price"`
	Options     []DishOptionView `json:"options"`
}

type CategoryView struct {
	ID              kernel.UUID `json:"id"`
	Name            string      `json:"name"`
	Slug            string      `json:"slug"`
	CoverImage      string      `json:"coverImage"`
	RestaurantCount int64       `json:"restaurantCount"`
}

type PaymentView struct {
	ID            kernel.UUID `json:"id"`
	TransactionID string      `json:"transactionId"`
	RestaurantID  kernel.UUID `json:"restaurantId"`
	CreatedAt     time.Time   `json:"createdAt"`
}

type UserProfileView struct {
	ID       kernel.UUID `json:"id"`
	Email    string      `json:"email"`
	Role     user.Role   `json:"role"`
	Verified bool        `json:"verified"`
}

func nullableUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil //nolint:nilnil // absent reference
	}
	parsed, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func moneyFromColumn(param string, amount decimal.Decimal) (kernel.Money, error) {
	m, err := kernel.NewMoney(amount)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return m, nil
}

// decodeJSON reads a JSON column into dst. Empty columns leave dst untouched.
func decodeJSON(param string, raw datatypes.JSON, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return nil
}
