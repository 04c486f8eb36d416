package queries

import (
	"context"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GetRestaurantQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetRestaurantQueryHandler(db *gorm.DB) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db, now: time.Now}
}

// Handle returns errs.ObjectNotFoundError for unknown restaurants. Dishes are
// ordered by name.
func (h GetRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantQuery,
) (details RestaurantDetails, err error) {
	defer func() { err = errs.Internal("could not load restaurant", err) }()

	if err = query.Validate(); err != nil {
		return RestaurantDetails{}, err
	}

	var row restaurantRow
	res := h.db.WithContext(ctx).
		Raw("SELECT "+restaurantColumns+" FROM restaurants WHERE id = ?", query.RestaurantID().Bytes()).
		Scan(&row)
	if res.Error != nil {
		return RestaurantDetails{}, res.Error
	}
	if res.RowsAffected == 0 {
		return RestaurantDetails{}, errs.NewObjectNotFoundError("restaurant", query.RestaurantID())
	}

	summary, err := row.toSummary(h.now())
	if err != nil {
		return RestaurantDetails{}, err
	}

	menu, err := h.menu(ctx, query.RestaurantID())
	if err != nil {
		return RestaurantDetails{}, err
	}

	return RestaurantDetails{RestaurantSummary: summary, Menu: menu}, nil
}

type dishRow struct {
	ID          uuid.UUID
	Name        string
	Description string
	Photo       string
	Price       decimal.Decimal
	Options     datatypes.JSON
}

func (h GetRestaurantQueryHandler) menu(ctx context.Context, restaurantID kernel.UUID) ([]DishView, error) {
	var rows []dishRow
	if err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, description, photo, price, options
		FROM dishes
		WHERE restaurant_id = ?
		ORDER BY name, id
	`, restaurantID.Bytes()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	menu := make([]DishView, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		price, err := moneyFromColumn("price", row.Price)
		if err != nil {
			return nil, err
		}
		options := make([]DishOptionView, 0)
		if err = decodeJSON("options", row.Options, &options); err != nil {
			return nil, err
		}
		menu = append(menu, DishView{
			ID:          id,
			Name:        row.Name,
			Description: row.Description,
			Photo:       row.Photo,
			Price:       price,
			Options:     options,
		})
	}
	return menu, nil
}
