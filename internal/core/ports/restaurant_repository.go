package ports

import (
	"context"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
)

// RestaurantRepository stores restaurants. Get returns errs.ObjectNotFoundError
// for unknown ids.
type RestaurantRepository interface {
	Add(ctx context.Context, r *restaurant.Restaurant) error
	Update(ctx context.Context, r *restaurant.Restaurant) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// ListPromotionEndedBy returns restaurants whose promotion ended at or before
	// the given time.
	ListPromotionEndedBy(ctx context.Context, now time.Time) ([]*restaurant.Restaurant, error)
}

// DishRepository stores dishes. Get returns errs.ObjectNotFoundError for
// unknown ids.
type DishRepository interface {
	Add(ctx context.Context, d *restaurant.Dish) error
	Update(ctx context.Context, d *restaurant.Dish) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Dish, error)
}

// CategoryQueries groups the category lookups used by the catalog.
type CategoryQueries interface {
	// GetOrCreate normalises rawName and returns the category with that slug,
	// creating it on first use.
	GetOrCreate(ctx context.Context, rawName string) (*restaurant.Category, error)
}

// RestaurantOwnershipQueries resolves a restaurant on behalf of its owner.
type RestaurantOwnershipQueries interface {
	// GetOwned returns errs.ObjectNotFoundError when the restaurant does not
	// exist and errs.ForbiddenError when ownerID does not own it.
	GetOwned(ctx context.Context, ownerID, restaurantID kernel.UUID) (*restaurant.Restaurant, error)
}
