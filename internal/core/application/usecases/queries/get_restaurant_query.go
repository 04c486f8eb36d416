package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var (
	ErrGetRestaurantQueryIsNotConstructed = errors.New(
		"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor",
	)
)

// GetRestaurantQuery fetches a restaurant together with its menu.
type GetRestaurantQuery struct {
	restaurantID kernel.UUID
	guard        guard.ConstructorGuard
}

func NewGetRestaurantQuery(restaurantID kernel.UUID) (GetRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQuery{}, err
	}
	return GetRestaurantQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

func (q GetRestaurantQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

// RestaurantDetails is a restaurant with its full menu.
type RestaurantDetails struct {
	RestaurantSummary
	Menu []DishView `json:"menu"`
}
