package ports

import (
	"context"

	"vizoshop/internal/core/domain/model/order"
)

// CatalogRepository is the read side of the product catalog.
type CatalogRepository interface {
	// Snapshot prices quantity units of a product at its current catalog
	// price. Returns an errs.ObjectNotFoundError for unknown products.
	Snapshot(ctx context.Context, productID string, quantity int, size string) (order.Item, error)
}
