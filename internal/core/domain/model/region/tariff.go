package region

import "github.com/shopspring/decimal"

// Tariff is one row of the tariff matrix, amounts in DZD.
type Tariff struct {
	HomeDelivery decimal.Decimal
	PickupPoint  decimal.Decimal
}

// TariffTable maps a region to its per-method delivery fees.
type TariffTable struct {
	rows map[string]Tariff
}

// NewTariffTable returns the bundled tariff matrix.
func NewTariffTable() TariffTable {
	rows := make(map[string]Tariff, len(bundledTariffs))
	for name, fees := range bundledTariffs {
		rows[normalize(name)] = Tariff{
			HomeDelivery: decimal.NewFromInt(fees[0]),
			PickupPoint:  decimal.NewFromInt(fees[1]),
		}
	}
	return TariffTable{rows: rows}
}

// FeeOf returns the fee for region and method. The boolean is false when the
// region has no row or the method is not a known column; the amount is then
// zero and carries no meaning.
func (t TariffTable) FeeOf(region string, method DeliveryMethod) (decimal.Decimal, bool) {
	row, ok := t.rows[normalize(region)]
	if !ok {
		return decimal.Zero, false
	}

	switch method {
	case Home:
		return row.HomeDelivery, true
	case PickupPoint:
		return row.PickupPoint, true
	default:
		return decimal.Zero, false
	}
}

// Len returns the number of regions carrying a tariff row.
func (t TariffTable) Len() int {
	return len(t.rows)
}
