package commands

import (
	"errors"
	"strings"

	"vizoshop/internal/core/domain/model/order"
	"vizoshop/internal/core/domain/model/shipment"
	"vizoshop/internal/pkg/errs"
	"vizoshop/internal/pkg/guard"
)

var ErrRelayShipmentCommandIsNotConstructed = errors.New(
	"RelayShipmentCommand must be created via NewRelayShipmentCommand constructor",
)

// RelayShipmentCommand forwards one parcel to the delivery partner.
// The idempotency key is optional; without it the ledger is not consulted.
type RelayShipmentCommand struct { //nolint:recvcheck //using for validation
	request        shipment.Request
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewRelayShipmentCommand accepts the batch as received and insists it holds
// exactly one parcel.
func NewRelayShipmentCommand(parcels []shipment.Request, idempotencyKey string) (RelayShipmentCommand, error) {
	if len(parcels) != 1 {
		return RelayShipmentCommand{}, errs.NewValueIsOutOfRangeError("parcels", len(parcels), 1, 1)
	}

	key := strings.TrimSpace(idempotencyKey)
	if len(key) > order.MaxIdempotencyKeyLength {
		return RelayShipmentCommand{}, errs.NewValueIsOutOfRangeError(
			"idempotencyKey length", len(key), 0, order.MaxIdempotencyKeyLength)
	}

	return RelayShipmentCommand{
		request:        parcels[0],
		idempotencyKey: key,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c RelayShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRelayShipmentCommandIsNotConstructed)
}

func (c RelayShipmentCommand) Request() shipment.Request {
	return c.request
}

func (c RelayShipmentCommand) IdempotencyKey() string {
	return c.idempotencyKey
}
