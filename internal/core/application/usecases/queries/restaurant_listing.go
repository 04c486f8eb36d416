package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// RestaurantPage is one page of a restaurant listing.
type RestaurantPage struct {
	Page
	Restaurants []RestaurantSummary `json:"restaurants"`
}

// listRestaurants pages through the restaurants matching where. Restaurants
// promoted at now come first, then the rest by name.
func listRestaurants(
	ctx context.Context,
	db *gorm.DB,
	now time.Time,
	page int,
	where string,
	args ...any,
) (RestaurantPage, error) {
	var total int64
	if err := db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM restaurants WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return RestaurantPage{}, err
	}

	pageArgs := append(append([]any{}, args...), now.UTC(), PageSize, pageOffset(page))
	var rows []restaurantRow
	if err := db.WithContext(ctx).Raw(`
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE `+where+`
		ORDER BY CASE WHEN promoted_until > ? THEN 0 ELSE 1 END, name, id
		LIMIT ? OFFSET ?
	`, pageArgs...).Scan(&rows).Error; err != nil {
		return RestaurantPage{}, err
	}

	list, err := summaries(rows, now)
	if err != nil {
		return RestaurantPage{}, err
	}
	return RestaurantPage{Page: newPage(page, total), Restaurants: list}, nil
}
