package order

import (
	"errors"
	"fmt"
	"strings"

	"vizoshop/internal/pkg/errs"
	"vizoshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// MaxItemQuantity bounds a single line of an order.
const MaxItemQuantity = 1000

// Item is a priced snapshot of one product line. Catalog changes made after
// the snapshot was taken never affect it.
type Item struct {
	productID string
	name      string
	unitPrice decimal.Decimal
	quantity  int
	imageRef  string
	size      string

	guard guard.ConstructorGuard
}

// NewItem snapshots a product line.
//
// Example:
//
//	item, err := order.NewItem("sku-42", "Linen shirt", decimal.NewFromInt(6000), 1, "shirts/42.jpg", "L")
func NewItem(productID, name string, unitPrice decimal.Decimal, quantity int, imageRef, size string) (Item, error) {
	item := Item{
		imageRef: strings.TrimSpace(imageRef),
		size:     strings.TrimSpace(size),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() string {
	return i.productID
}

func (i Item) Name() string {
	return i.name
}

func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) ImageRef() string {
	return i.imageRef
}

// Size is the optional size or variant descriptor; empty when not applicable.
func (i Item) Size() string {
	return i.size
}

// LineTotal is unitPrice × quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i *Item) setProductID(productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxItemQuantity)
	}
	i.quantity = quantity
	return nil
}
