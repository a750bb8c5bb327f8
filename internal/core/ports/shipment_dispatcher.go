package ports

import (
	"context"
	"errors"
	"time"

	"vizoshop/internal/core/domain/model/shipment"
)

// ShipmentDispatcher hands a parcel request to the delivery partner relay.
type ShipmentDispatcher interface {
	// Dispatch sends req tagged with idempotencyKey. A nil error means some
	// relay accepted the request.
	Dispatch(ctx context.Context, req shipment.Request, idempotencyKey string) (shipment.Receipt, error)
}

// ShipmentLedger remembers which submissions already requested a shipment.
type ShipmentLedger interface {
	// MarkProcessed records key and reports true only for the first caller
	// within ttl.
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release forgets key so a later request may claim it again.
	Release(ctx context.Context, key string) error
}

// ErrPartnerReplyUnreadable marks a failure after the partner answered 2xx.
// The parcel may exist on the partner's side.
var ErrPartnerReplyUnreadable = errors.New("partner accepted the request but its reply is unusable")

// PartnerClient creates parcels on the delivery partner's API.
type PartnerClient interface {
	// CreateParcels posts a batch and returns the partner's JSON reply as is.
	// Errors raised after a 2xx reply wrap ErrPartnerReplyUnreadable.
	CreateParcels(ctx context.Context, parcels []shipment.Request, idempotencyKey string) ([]byte, error)
}
