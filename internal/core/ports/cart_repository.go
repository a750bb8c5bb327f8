package ports

import (
	"context"

	"vizoshop/internal/core/domain/model/kernel"
	"vizoshop/internal/core/domain/model/order"
)

// CartRepository exposes the shopper's cart as priced item snapshots.
type CartRepository interface {
	// Items snapshots the current cart lines at catalog prices. A line whose
	// product is gone or inactive yields an errs.ObjectNotFoundError.
	Items(ctx context.Context, owner kernel.OwnerID) ([]order.Item, error)

	// Clear empties the cart of owner.
	Clear(ctx context.Context, owner kernel.OwnerID) error
}
