package restaurantrepo

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormDishRepository struct {
	db *gorm.DB
}

func NewGormDishRepository(db *gorm.DB) *GormDishRepository {
	return &GormDishRepository{db: db}
}

func (r *GormDishRepository) Add(ctx context.Context, aggregate *restaurant.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := dishFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormDishRepository) Update(ctx context.Context, aggregate *restaurant.Dish) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := dishFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DishDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dish", aggregate.ID().String())
	}
	return nil
}

func (r *GormDishRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(&DishDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dish", id.String())
	}
	return nil
}

func (r *GormDishRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", id.String())
		}
		return nil, err
	}

	return dishToDomain(dto)
}
