package order

import (
	"fmt"

	"vizoshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Summary holds the money totals of an order.
type Summary struct {
	subtotal    decimal.Decimal
	shippingFee decimal.Decimal
	total       decimal.Decimal
}

// NewSummary derives the totals from items and the shipping fee.
func NewSummary(items []Item, shippingFee decimal.Decimal) (Summary, error) {
	if shippingFee.IsNegative() {
		return Summary{}, errs.NewValueIsInvalidErrorWithCause("shippingFee", fmt.Errorf("%s is negative", shippingFee))
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	return Summary{
		subtotal:    subtotal,
		shippingFee: shippingFee,
		total:       subtotal.Add(shippingFee),
	}, nil
}

// RestoreSummary rebuilds stored totals and checks them against items.
func RestoreSummary(items []Item, subtotal, shippingFee, total decimal.Decimal) (Summary, error) {
	expected, err := NewSummary(items, shippingFee)
	if err != nil {
		return Summary{}, err
	}

	if !expected.subtotal.Equal(subtotal) {
		return Summary{}, errs.NewValueIsInvalidErrorWithCause(
			"subtotal",
			fmt.Errorf("stored %s differs from items sum %s", subtotal, expected.subtotal),
		)
	}
	if !expected.total.Equal(total) {
		return Summary{}, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("stored %s differs from subtotal + shippingFee %s", total, expected.total),
		)
	}

	return expected, nil
}

func (s Summary) Subtotal() decimal.Decimal {
	return s.subtotal
}

func (s Summary) ShippingFee() decimal.Decimal {
	return s.shippingFee
}

func (s Summary) Total() decimal.Decimal {
	return s.total
}
