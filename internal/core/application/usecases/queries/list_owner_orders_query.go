package queries

import (
	"errors"
	"time"

	"vizoshop/internal/core/domain/model/kernel"
	"vizoshop/internal/core/domain/model/order"
	"vizoshop/internal/core/domain/model/region"
	"vizoshop/internal/pkg/errs"
	"vizoshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	DefaultOrdersPageSize = 20
	MaxOrdersPageSize     = 100
)

var ErrListOwnerOrdersQueryIsNotConstructed = errors.New(
	"ListOwnerOrdersQuery must be created via NewListOwnerOrdersQuery constructor",
)

// ListOwnerOrdersQuery pages through the orders of one shopper, newest
// first.
//
// Example:
//
//	query, err := NewListOwnerOrdersQuery(session.Owner, 20)
//	orders, err := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Printf("%s %s %s\n", o.ID, o.Status, o.Total)
//	}
type ListOwnerOrdersQuery struct {
	owner kernel.OwnerID
	limit int
	guard guard.ConstructorGuard
}

// NewListOwnerOrdersQuery uses DefaultOrdersPageSize when limit is zero.
func NewListOwnerOrdersQuery(owner string, limit int) (ListOwnerOrdersQuery, error) {
	ownerID, err := kernel.NewOwnerID(owner)
	if err != nil {
		return ListOwnerOrdersQuery{}, err
	}

	if limit == 0 {
		limit = DefaultOrdersPageSize
	}
	if limit < 1 || limit > MaxOrdersPageSize {
		return ListOwnerOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxOrdersPageSize)
	}

	return ListOwnerOrdersQuery{owner: ownerID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOwnerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOwnerOrdersQueryIsNotConstructed)
}

func (q ListOwnerOrdersQuery) Owner() kernel.OwnerID {
	return q.owner
}

func (q ListOwnerOrdersQuery) Limit() int {
	return q.limit
}

// ListOwnerOrdersQueryResponse is the order history line shown to a shopper.
type ListOwnerOrdersQueryResponse struct {
	ID             kernel.UUID
	Status         order.Status
	Source         order.Source
	DeliveryMethod region.DeliveryMethod
	Region         string
	ItemCount      int
	Total          decimal.Decimal
	CreatedAt      time.Time
}
