package services

import (
	"strings"

	"vizoshop/internal/core/domain/model/region"

	"github.com/shopspring/decimal"
)

// ShippingQuote is the result of a fee lookup. Resolved is false when the
// fee is zero only because no tariff row matched, which callers must not
// mistake for free shipping.
type ShippingQuote struct {
	Fee      decimal.Decimal
	Resolved bool
}

// ShippingCostCalculator prices delivery from the tariff matrix.
//
// Example:
//
//	calc := NewShippingCostCalculator(region.NewTariffTable())
//	calc.ComputeFee("Blida", region.Home)    // {Fee: 590, Resolved: true}
//	calc.ComputeFee("Atlantis", region.Home) // {Fee: 0, Resolved: false}
type ShippingCostCalculator struct {
	tariffs region.TariffTable
}

func NewShippingCostCalculator(tariffs region.TariffTable) ShippingCostCalculator {
	return ShippingCostCalculator{tariffs: tariffs}
}

// ComputeFee returns the fee for region and method. An empty region and a
// region without a tariff row both price at zero and are reported as
// unresolved.
func (c ShippingCostCalculator) ComputeFee(regionName string, method region.DeliveryMethod) ShippingQuote {
	if strings.TrimSpace(regionName) == "" {
		return ShippingQuote{Fee: decimal.Zero}
	}

	fee, ok := c.tariffs.FeeOf(regionName, method)
	if !ok {
		return ShippingQuote{Fee: decimal.Zero}
	}

	return ShippingQuote{Fee: fee, Resolved: true}
}
