package restaurantrepo

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type RestaurantDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID       uuid.UUID  `gorm:"type:uuid;index;not null"`
	CategoryID    *uuid.UUID `gorm:"type:uuid;index"`
	Name          string     `gorm:"not null"`
	Address       string     `gorm:"not null"`
	CoverImage    string
	PromotedUntil *time.Time `gorm:"index"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type DishDTO struct {
	ID           uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID                      `gorm:"type:uuid;index;not null"`
	Name         string                         `gorm:"not null"`
	Description  string                         `gorm:"not null"`
	Photo        string
	Price        decimal.Decimal                `gorm:"type:numeric(12,2);not null"`
	Options      datatypes.JSONSlice[OptionDTO] `gorm:"not null"`
}

func (DishDTO) TableName() string {
	return "dishes"
}

// OptionDTO is the JSON shape of a dish option. Extra is set for flat
// modifiers, Choices for choice groups.
type OptionDTO struct {
	Name    string           `json:"name"`
	Extra   *decimal.Decimal `json:"extra,omitempty"`
	Choices []ChoiceDTO      `json:"choices,omitempty"`
}

type ChoiceDTO struct {
	Name  string          `json:"name"`
	Extra decimal.Decimal `json:"extra"`
}

type CategoryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"uniqueIndex;not null"`
	Slug       string    `gorm:"uniqueIndex;not null"`
	CoverImage string
}

func (CategoryDTO) TableName() string {
	return "categories"
}

func restaurantFromDomain(r *restaurant.Restaurant) RestaurantDTO {
	var categoryID *uuid.UUID
	if id := r.CategoryID(); id != nil {
		raw := id.Bytes()
		categoryID = &raw
	}

	var promotedUntil *time.Time
	if until := r.PromotedUntil(); until != nil {
		utc := until.UTC()
		promotedUntil = &utc
	}

	return RestaurantDTO{
		ID:            r.ID().Bytes(),
		OwnerID:       r.OwnerID().Bytes(),
		CategoryID:    categoryID,
		Name:          r.Name(),
		Address:       r.Address(),
		CoverImage:    r.CoverImage(),
		PromotedUntil: promotedUntil,
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, catErr := kernel.UUIDFromBytes((*dto.CategoryID)[:])
		if catErr != nil {
			return nil, catErr
		}
		categoryID = &cID
	}

	return restaurant.RestoreRestaurant(id, ownerID, categoryID, dto.Name, dto.Address, dto.CoverImage, dto.PromotedUntil)
}

func dishFromDomain(d *restaurant.Dish) DishDTO {
	options := make([]OptionDTO, 0, len(d.Options()))
	for _, opt := range d.Options() {
		dto := OptionDTO{Name: opt.Name()}
		switch opt.Kind() {
		case restaurant.FlatModifier:
			extra := opt.Extra().Decimal()
			dto.Extra = &extra
		case restaurant.ChoiceGroup:
			for _, c := range opt.Choices() {
				dto.Choices = append(dto.Choices, ChoiceDTO{Name: c.Name(), Extra: c.Extra().Decimal()})
			}
		}
		options = append(options, dto)
	}

	return DishDTO{
		ID:           d.ID().Bytes(),
		RestaurantID: d.RestaurantID().Bytes(),
		Name:         d.Name(),
		Description:  d.Description(),
		Photo:        d.Photo(),
		Price:        d.Price().Decimal(),
		Options:      datatypes.NewJSONSlice(options),
	}
}

func dishToDomain(dto DishDTO) (*restaurant.Dish, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	options := make([]restaurant.Option, 0, len(dto.Options))
	for _, optDTO := range dto.Options {
		opt, optErr := optionToDomain(optDTO)
		if optErr != nil {
			return nil, optErr
		}
		options = append(options, opt)
	}

	return restaurant.NewDish(id, restaurantID, dto.Name, dto.Description, dto.Photo, price, options)
}

func optionToDomain(dto OptionDTO) (restaurant.Option, error) {
	if len(dto.Choices) == 0 {
		extra := kernel.ZeroMoney()
		if dto.Extra != nil {
			var err error
			if extra, err = kernel.NewMoney(*dto.Extra); err != nil {
				return restaurant.Option{}, err
			}
		}
		return restaurant.NewFlatOption(dto.Name, extra)
	}

	choices := make([]restaurant.Choice, 0, len(dto.Choices))
	for _, c := range dto.Choices {
		extra, err := kernel.NewMoney(c.Extra)
		if err != nil {
			return restaurant.Option{}, err
		}
		choice, err := restaurant.NewChoice(c.Name, extra)
		if err != nil {
			return restaurant.Option{}, err
		}
		choices = append(choices, choice)
	}
	return restaurant.NewChoiceOption(dto.Name, choices)
}

func categoryToDomain(dto CategoryDTO) (*restaurant.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return restaurant.RestoreCategory(id, dto.Name, dto.Slug, dto.CoverImage)
}
