package queries

import (
	"errors"
	"strings"

	"vizoshop/internal/core/domain/model/region"
	"vizoshop/internal/core/domain/services"
	"vizoshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrQuoteShippingFeeQueryIsNotConstructed = errors.New(
	"QuoteShippingFeeQuery must be created via NewQuoteShippingFeeQuery constructor",
)

// QuoteShippingFeeQuery prices delivery to a region before checkout.
type QuoteShippingFeeQuery struct {
	region string
	method region.DeliveryMethod
	guard  guard.ConstructorGuard
}

func NewQuoteShippingFeeQuery(regionName string, method region.DeliveryMethod) (QuoteShippingFeeQuery, error) {
	if err := method.Validate(); err != nil {
		return QuoteShippingFeeQuery{}, err
	}
	return QuoteShippingFeeQuery{
		region: strings.TrimSpace(regionName),
		method: method,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteShippingFeeQuery) Validate() error {
	return q.guard.Validate(ErrQuoteShippingFeeQueryIsNotConstructed)
}

// QuoteShippingFeeQueryResponse reports Resolved=false when no tariff exists
// for the region; Fee is then zero.
type QuoteShippingFeeQueryResponse struct {
	Region   string
	Method   region.DeliveryMethod
	Fee      decimal.Decimal
	Resolved bool
}

type QuoteShippingFeeQueryHandler struct {
	calculator services.ShippingCostCalculator
}

func NewQuoteShippingFeeQueryHandler(calculator services.ShippingCostCalculator) QuoteShippingFeeQueryHandler {
	return QuoteShippingFeeQueryHandler{calculator: calculator}
}

func (h QuoteShippingFeeQueryHandler) Handle(query QuoteShippingFeeQuery) (QuoteShippingFeeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteShippingFeeQueryResponse{}, err
	}

	quote := h.calculator.ComputeFee(query.region, query.method)
	return QuoteShippingFeeQueryResponse{
		Region:   query.region,
		Method:   query.method,
		Fee:      quote.Fee,
		Resolved: quote.Resolved,
	}, nil
}
