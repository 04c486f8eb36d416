package queries

import (
	"context"
	"errors"
	"time"

	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetCategoryQueryIsNotConstructed = errors.New(
		"GetCategoryQuery must be created via NewGetCategoryQuery constructor",
	)
)

// GetCategoryQuery fetches a category by slug with one page of its restaurants.
// The slug is normalised the same way category names are, so "Fast Food" and
// "fast-food" address the same category.
type GetCategoryQuery struct {
	slug  string
	page  int
	guard guard.ConstructorGuard
}

func NewGetCategoryQuery(slug string, page int) (GetCategoryQuery, error) {
	_, normalized := restaurant.NormalizeCategoryName(slug)
	var slugErr error
	if normalized == "" {
		slugErr = errs.NewValueIsRequiredError("slug")
	}
	if err := errors.Join(slugErr, validatePage(page)); err != nil {
		return GetCategoryQuery{}, err
	}
	return GetCategoryQuery{slug: normalized, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoryQueryIsNotConstructed)
}

func (q GetCategoryQuery) Slug() string {
	return q.slug
}

func (q GetCategoryQuery) Page() int {
	return q.page
}

// CategoryPage is a category with one page of its restaurants.
type CategoryPage struct {
	Category CategoryView `json:"category"`
	RestaurantPage
}

type GetCategoryQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetCategoryQueryHandler(db *gorm.DB) GetCategoryQueryHandler {
	return GetCategoryQueryHandler{db: db, now: time.Now}
}

// Handle returns errs.ObjectNotFoundError for unknown slugs.
func (h GetCategoryQueryHandler) Handle(ctx context.Context, query GetCategoryQuery) (page CategoryPage, err error) {
	defer func() { err = errs.Internal("could not load category", err) }()

	if err = query.Validate(); err != nil {
		return CategoryPage{}, err
	}

	var row categoryRow
	res := h.db.WithContext(ctx).Raw(`
		SELECT c.id, c.name, c.slug, c.cover_image,
			(SELECT COUNT(*) FROM restaurants r WHERE r.category_id = c.id) AS restaurant_count
		FROM categories c
		WHERE c.slug = ?
	`, query.Slug()).Scan(&row)
	if res.Error != nil {
		return CategoryPage{}, res.Error
	}
	if res.RowsAffected == 0 {
		return CategoryPage{}, errs.NewObjectNotFoundError("category", query.Slug())
	}

	category, err := row.toView()
	if err != nil {
		return CategoryPage{}, err
	}

	restaurants, err := listRestaurants(ctx, h.db, h.now(), query.Page(), "category_id = ?", row.ID)
	if err != nil {
		return CategoryPage{}, err
	}
	return CategoryPage{Category: category, RestaurantPage: restaurants}, nil
}
