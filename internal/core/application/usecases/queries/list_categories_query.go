package queries

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrListCategoriesQueryIsNotConstructed = errors.New(
		"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
	)
)

// ListCategoriesQuery lists every category with the number of restaurants in it.
type ListCategoriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListCategoriesQuery() ListCategoriesQuery {
	return ListCategoriesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

type ListCategoriesQueryHandler struct {
	db *gorm.DB
}

func NewListCategoriesQueryHandler(db *gorm.DB) ListCategoriesQueryHandler {
	return ListCategoriesQueryHandler{db: db}
}

type categoryRow struct {
	ID              uuid.UUID
	Name            string
	Slug            string
	CoverImage      string
	RestaurantCount int64
}

func (r categoryRow) toView() (CategoryView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return CategoryView{}, err
	}
	return CategoryView{
		ID:              id,
		Name:            r.Name,
		Slug:            r.Slug,
		CoverImage:      r.CoverImage,
		RestaurantCount: r.RestaurantCount,
	}, nil
}

// Handle returns the categories ordered by name.
func (h ListCategoriesQueryHandler) Handle(
	ctx context.Context,
	query ListCategoriesQuery,
) (result []CategoryView, err error) {
	defer func() { err = errs.Internal("could not load categories", err) }()

	if err = query.Validate(); err != nil {
		return nil, err
	}

	var rows []categoryRow
	if err = h.db.WithContext(ctx).Raw(`
		SELECT c.id, c.name, c.slug, c.cover_image, COUNT(r.id) AS restaurant_count
		FROM categories c
		LEFT JOIN restaurants r ON r.category_id = c.id
		GROUP BY c.id, c.name, c.slug, c.cover_image
		ORDER BY c.name
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	result = make([]CategoryView, 0, len(rows))
	for _, row := range rows {
		view, convErr := row.toView()
		if convErr != nil {
			return nil, convErr
		}
		result = append(result, view)
	}
	return result, nil
}
