package queries

import (
	"context"
	"time"

	"vizoshop/internal/core/domain/model/kernel"
	"vizoshop/internal/core/domain/model/order"
	"vizoshop/internal/core/domain/model/region"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOwnerOrdersQueryHandler reads order history straight from the orders
// tables without loading aggregates.
type ListOwnerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOwnerOrdersQueryHandler(db *gorm.DB) ListOwnerOrdersQueryHandler {
	return ListOwnerOrdersQueryHandler{db: db}
}

// Handle returns at most query.Limit() orders, newest first. ItemCount is the
// total unit quantity of each order.
func (h ListOwnerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOwnerOrdersQuery,
) ([]ListOwnerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListOwnerOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.source,
			o.delivery_method,
			o.customer_region,
			COALESCE(SUM(i.quantity), 0) AS item_count,
			o.total,
			o.created_at
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.owner_id = ?
		GROUP BY o.id
		ORDER BY o.created_at DESC, o.id
		LIMIT ?
	`, query.Owner().String(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id             uuid.UUID
			status         int
			source, method string
			regionName     string
			itemCount      int
			total          decimal.Decimal
			createdAt      time.Time
		)

		err = rows.Scan(&id, &status, &source, &method, &regionName, &itemCount, &total, &createdAt)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, ListOwnerOrdersQueryResponse{
			ID:             orderID,
			Status:         order.Status(status),
			Source:         order.Source(source),
			DeliveryMethod: region.DeliveryMethod(method),
			Region:         regionName,
			ItemCount:      itemCount,
			Total:          total,
			CreatedAt:      createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
