// Package ports defines the contracts between the storefront domain and its
// infrastructure: the order record store, the cart, the catalog, shipment
// dispatch and the shipment ledger.
package ports

import (
	"context"

	"vizoshop/internal/core/domain/model/kernel"
	"vizoshop/internal/core/domain/model/order"
)

// OrderRepository is the order record store. It is append-mostly: the
// submission pipeline only ever adds orders.
type OrderRepository interface {
	// Add persists a new order. A second order from the same owner with the
	// same idempotency key is rejected with an errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetByIdempotencyKey retrieves the order owner submitted with key.
	// Returns an errs.ObjectNotFoundError when none exists.
	GetByIdempotencyKey(ctx context.Context, owner kernel.OwnerID, key string) (*order.Order, error)
}
