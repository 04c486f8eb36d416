package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads order listings straight from the orders table.
// The role scope is applied in SQL so no order outside the viewer's scope is
// ever loaded.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// scopeColumn maps a role to the orders column holding that party.
func scopeColumn(role user.Role) (string, error) {
	switch role {
	case user.Client:
		return "o.customer_id", nil
	case user.Delivery:
		return "o.driver_id", nil
	case user.Owner:
		return "o.owner_id", nil
	case user.UnknownRole:
	}
	return "", errs.NewForbiddenError("you can't list orders")
}

// Handle returns an empty slice when nothing matches.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) (result []OrderView, err error) {
	defer func() { err = errs.Internal("could not load orders", err) }()

	if err = query.Validate(); err != nil {
		return nil, err
	}

	column, err := scopeColumn(query.Viewer().Role)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString(`
		SELECT
			o.id,
			o.customer_id,
			o.driver_id,
			o.restaurant_id,
			r.name,
			r.address,
			r.cover_image,
			o.items,
			o.total,
			o.status,
			o.created_at
		FROM orders o
		LEFT JOIN restaurants r ON r.id = o.restaurant_id
		WHERE `)
	sb.WriteString(column)
	sb.WriteString(" = ?")
	args := []any{query.Viewer().ID.Bytes()}
	if s := query.Status(); s != nil {
		sb.WriteString(" AND o.status = ?")
		args = append(args, s.String())
	}
	sb.WriteString(" ORDER BY o.created_at DESC, o.id")

	rows, err := h.db.WithContext(ctx).Raw(sb.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result = make([]OrderView, 0)
	for rows.Next() {
		var (
			id, customerID, restaurantID uuid.UUID
			driverID                     uuid.NullUUID
			name, address, cover         sql.NullString
			items                        datatypes.JSON
			total                        decimal.Decimal
			status                       string
			createdAt                    time.Time
		)
		if err = rows.Scan(
			&id,
			&customerID,
			&driverID,
			&restaurantID,
			&name,
			&address,
			&cover,
			&items,
			&total,
			&status,
			&createdAt,
		); err != nil {
			return nil, err
		}

		view, convErr := orderViewFromRow(id, customerID, driverID, restaurantID, items, total, status)
		if convErr != nil {
			return nil, convErr
		}
		view.Restaurant.Name = name.String
		view.Restaurant.Address = address.String
		view.Restaurant.CoverImage = cover.String
		view.CreatedAt = createdAt
		result = append(result, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func orderViewFromRow(
	id, customerID uuid.UUID,
	driverID uuid.NullUUID,
	restaurantID uuid.UUID,
	items datatypes.JSON,
	total decimal.Decimal,
	status string,
) (OrderView, error) {
	var view OrderView
	var err error

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderView{}, err
	}
	if view.DriverID, err = nullableUUID(driverID); err != nil {
		return OrderView{}, err
	}
	if view.Restaurant.ID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return OrderView{}, err
	}
	if view.Total, err = moneyFromColumn("total", total); err != nil {
		return OrderView{}, err
	}
	if view.Status, err = order.ParseStatus(status); err != nil {
		return OrderView{}, err
	}

	view.Items = make([]OrderItemView, 0)
	if err = decodeJSON("items", items, &view.Items); err != nil {
		return OrderView{}, err
	}
	return view, nil
}
