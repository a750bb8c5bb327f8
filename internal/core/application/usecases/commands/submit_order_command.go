package commands

import (
	"errors"
	"fmt"
	"strings"

	"vizoshop/internal/core/domain/model/order"
	"vizoshop/internal/core/domain/model/region"
	"vizoshop/internal/core/domain/model/shipment"
	"vizoshop/internal/pkg/errs"
	"vizoshop/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// ItemSelection is one line of a direct purchase as sent by the shopper.
// Prices are never taken from the request; the catalog supplies them.
type ItemSelection struct {
	ProductID string
	Quantity  int
	Size      string
}

// SubmitOrderCommand asks the pipeline to place an order.
//
// The owner may be empty: the handler, not the constructor, turns a missing
// session into a Rejected outcome so the caller can ask the shopper to log in.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(
//	    session.Owner, r.Header.Get("Idempotency-Key"),
//	    order.CustomerInfo{FullName: "Amina Benali", Phone: "+213 555123456", Region: "Blida", SubRegion: "Boufarik"},
//	    region.PickupPoint, order.SourceCart, nil, shipment.Overrides{},
//	)
//	result, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID        string
	idempotencyKey string
	customer       order.CustomerInfo
	deliveryMethod region.DeliveryMethod
	source         order.Source
	selections     []ItemSelection
	overrides      shipment.Overrides

	guard guard.ConstructorGuard
}

func NewSubmitOrderCommand(
	ownerID string,
	idempotencyKey string,
	customer order.CustomerInfo,
	deliveryMethod region.DeliveryMethod,
	source order.Source,
	selections []ItemSelection,
	overrides shipment.Overrides,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		ownerID:        strings.TrimSpace(ownerID),
		customer:       customer,
		deliveryMethod: deliveryMethod,
		overrides:      overrides,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIdempotencyKey(idempotencyKey),
		cmd.setSource(source),
		cmd.setSelections(source, selections),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OwnerID is the session identity; empty when the shopper is anonymous.
func (c SubmitOrderCommand) OwnerID() string {
	return c.ownerID
}

func (c SubmitOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c SubmitOrderCommand) Customer() order.CustomerInfo {
	return c.customer
}

func (c SubmitOrderCommand) DeliveryMethod() region.DeliveryMethod {
	return c.deliveryMethod
}

func (c SubmitOrderCommand) Source() order.Source {
	return c.source
}

// Selections returns the direct-purchase lines; empty for cart submissions.
func (c SubmitOrderCommand) Selections() []ItemSelection {
	out := make([]ItemSelection, len(c.selections))
	copy(out, c.selections)
	return out
}

func (c SubmitOrderCommand) Overrides() shipment.Overrides {
	return c.overrides
}

func (c *SubmitOrderCommand) setIdempotencyKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errs.NewValueIsRequiredError("idempotencyKey")
	}
	if len(key) > order.MaxIdempotencyKeyLength {
		return errs.NewValueIsOutOfRangeError("idempotencyKey length", len(key), 1, order.MaxIdempotencyKeyLength)
	}
	c.idempotencyKey = key
	return nil
}

func (c *SubmitOrderCommand) setSource(source order.Source) error {
	if err := source.Validate(); err != nil {
		return err
	}
	c.source = source
	return nil
}

func (c *SubmitOrderCommand) setSelections(source order.Source, selections []ItemSelection) error {
	if source != order.SourceDirect {
		return nil
	}

	for idx, sel := range selections {
		if strings.TrimSpace(sel.ProductID) == "" {
			return errs.NewValueIsRequiredError(fmt.Sprintf("items[%d].productId", idx))
		}
		if sel.Quantity < 1 || sel.Quantity > order.MaxItemQuantity {
			return errs.NewValueIsOutOfRangeError(fmt.Sprintf("items[%d].quantity", idx), sel.Quantity, 1, order.MaxItemQuantity)
		}
	}

	c.selections = make([]ItemSelection, len(selections))
	copy(c.selections, selections)
	return nil
}
