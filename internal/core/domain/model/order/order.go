package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"vizoshop/internal/core/domain/model/kernel"
	"vizoshop/internal/core/domain/model/region"
	"vizoshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxIdempotencyKeyLength bounds the client supplied submission token.
const MaxIdempotencyKeyLength = 128

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order would be created empty.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root recorded by the submission pipeline.
//
// Order follows these invariants:
//   - Must have a valid identifier, owner and idempotency key
//   - Holds at least one item
//   - summary.total == summary.subtotal + summary.shippingFee
//   - summary.subtotal == Σ(item.unitPrice × item.quantity)
//   - Items, customer snapshot and summary never change after creation
type Order struct {
	id             kernel.UUID
	owner          kernel.OwnerID
	idempotencyKey string

	// customer is the frozen shipping form
	customer       CustomerInfo
	deliveryMethod region.DeliveryMethod

	items   []Item
	summary Summary

	status    Status
	source    Source
	createdAt time.Time

	isConstructed bool
}

// NewOrder places a new order in Pending status. The summary is derived from
// items and shippingFee; callers never supply totals.
//
// Example:
//
//	item, _ := order.NewItem("sku-42", "Linen shirt", decimal.NewFromInt(6000), 1, "", "")
//	o, err := order.NewOrder(
//	    kernel.NewUUID(), owner, "7f9c-key",
//	    order.CustomerInfo{FullName: "Amina B.", Phone: "+213 555123456", Address: "12 rue Larbi", Region: "Blida", SubRegion: "Boufarik"},
//	    region.Home, []order.Item{item}, decimal.NewFromInt(590), order.SourceDirect, time.Now(),
//	)
//	// o.Summary().Total() == 6590
func NewOrder(
	id kernel.UUID,
	owner kernel.OwnerID,
	idempotencyKey string,
	customer CustomerInfo,
	deliveryMethod region.DeliveryMethod,
	items []Item,
	shippingFee decimal.Decimal,
	source Source,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		customer:      customer.Trimmed(),
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(owner),
		o.setIdempotencyKey(idempotencyKey),
		o.setDeliveryMethod(deliveryMethod),
		o.setItems(items),
		o.setSource(source),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	summary, err := NewSummary(o.items, shippingFee)
	if err != nil {
		return nil, err
	}
	o.summary = summary

	return o, nil
}

// RestoreOrder rebuilds an order read from storage. Stored totals are
// checked against the items so a corrupted row surfaces as an error instead
// of a silently inconsistent aggregate.
func RestoreOrder(
	id kernel.UUID,
	owner kernel.OwnerID,
	idempotencyKey string,
	customer CustomerInfo,
	deliveryMethod region.DeliveryMethod,
	items []Item,
	subtotal, shippingFee, total decimal.Decimal,
	status Status,
	source Source,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		customer:      customer,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(owner),
		o.setIdempotencyKey(idempotencyKey),
		o.setDeliveryMethod(deliveryMethod),
		o.setItems(items),
		o.setStatus(status),
		o.setSource(source),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	summary, err := RestoreSummary(o.items, subtotal, shippingFee, total)
	if err != nil {
		return nil, err
	}
	o.summary = summary

	return o, nil
}

// Validate ensures the Order was built through one of its constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Owner() kernel.OwnerID {
	return o.owner
}

func (o *Order) IdempotencyKey() string {
	return o.idempotencyKey
}

func (o *Order) Customer() CustomerInfo {
	return o.customer
}

func (o *Order) DeliveryMethod() region.DeliveryMethod {
	return o.deliveryMethod
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ItemCount is the total number of units across all lines.
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.items {
		count += item.Quantity()
	}
	return count
}

func (o *Order) Summary() Summary {
	return o.summary
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Source() Source {
	return o.source
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwner(owner kernel.OwnerID) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	o.owner = owner
	return nil
}

func (o *Order) setIdempotencyKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errs.NewValueIsRequiredError("idempotencyKey")
	}
	if len(key) > MaxIdempotencyKeyLength {
		return errs.NewValueIsOutOfRangeError("idempotencyKey length", len(key), 1, MaxIdempotencyKeyLength)
	}
	o.idempotencyKey = key
	return nil
}

func (o *Order) setDeliveryMethod(method region.DeliveryMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.deliveryMethod = method
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setSource(source Source) error {
	if err := source.Validate(); err != nil {
		return err
	}
	o.source = source
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt.UTC()
	return nil
}
