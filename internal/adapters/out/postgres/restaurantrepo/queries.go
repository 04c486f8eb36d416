package restaurantrepo

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormCategoryQueries struct {
	db *gorm.DB
}

func NewGormCategoryQueries(db *gorm.DB) *GormCategoryQueries {
	return &GormCategoryQueries{db: db}
}

// GetOrCreate returns the category whose slug matches the normalised rawName
// and inserts it when missing. When two requests insert the same slug the
// loser reads the winner's row.
func (q *GormCategoryQueries) GetOrCreate(ctx context.Context, rawName string) (*restaurant.Category, error) {
	candidate, err := restaurant.NewCategory(kernel.NewUUID(), rawName, "")
	if err != nil {
		return nil, err
	}

	db := q.db.WithContext(ctx)
	found, err := q.findBySlug(db, candidate.Slug())
	if err == nil || !errors.Is(err, gorm.ErrRecordNotFound) {
		return found, err
	}

	dto := CategoryDTO{
		ID:   candidate.ID().Bytes(),
		Name: candidate.Name(),
		Slug: candidate.Slug(),
	}
	if err = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error; err != nil {
		return nil, err
	}
	return q.findBySlug(db, candidate.Slug())
}

func (q *GormCategoryQueries) findBySlug(db *gorm.DB, slug string) (*restaurant.Category, error) {
	var dto CategoryDTO
	if err := db.First(&dto, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return categoryToDomain(dto)
}

type GormOwnershipQueries struct {
	restaurants *GormRestaurantRepository
}

func NewGormOwnershipQueries(db *gorm.DB) *GormOwnershipQueries {
	return &GormOwnershipQueries{restaurants: NewGormRestaurantRepository(db)}
}

func (q *GormOwnershipQueries) GetOwned(
	ctx context.Context,
	ownerID, restaurantID kernel.UUID,
) (*restaurant.Restaurant, error) {
	r, err := q.restaurants.Get(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !r.IsOwnedBy(ownerID) {
		return nil, errs.NewForbiddenError("you can't manage a restaurant that you don't own")
	}
	return r, nil
}
