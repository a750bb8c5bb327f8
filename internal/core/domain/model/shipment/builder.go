package shipment

import (
	"fmt"
	"math"
	"strings"
	"time"

	"vizoshop/internal/core/domain/model/order"
)

// referenceOwnerPrefix is how many characters of the owner id enter the
// shipment reference.
const referenceOwnerPrefix = 6

// Overrides lets the caller change the descriptive defaults of a parcel.
// A nil field keeps the default.
type Overrides struct {
	DoInsurance  *bool
	HasExchange  *bool
	FreeShipping *bool
}

// Builder derives partner requests from placed orders.
type Builder struct {
	resolver     Resolver
	originRegion string
}

func NewBuilder(resolver Resolver, originRegion string) Builder {
	return Builder{
		resolver:     resolver,
		originRegion: originRegion,
	}
}

// Build turns a placed order into a parcel request. The reference combines
// the submission time and the owner id so two submissions never share it.
//
// Example:
//
//	req := builder.Build(o, time.Now(), shipment.Overrides{})
//	// req.OrderID == "ORD-1740823200000-u1AbCd"
//	// req.ProductList == "2x Linen shirt (L), 1x Cap"
func (b Builder) Build(o *order.Order, submittedAt time.Time, overrides Overrides) Request {
	customer := o.Customer()
	firstName, familyName := SplitFullName(customer.FullName)
	total := int(o.Summary().Total().Round(0).IntPart())

	req := NewDefaultRequest()
	req.OrderID = Reference(submittedAt, o.Owner().Prefix(referenceOwnerPrefix))
	req.FirstName = firstName
	req.FamilyName = familyName
	req.Phone = customer.Phone
	req.Address = customer.Address
	req.ToRegionName = customer.Region
	req.ToSubRegionName = customer.SubRegion
	req.FromRegionName = b.originRegion
	req.ProductList = ProductList(o.Items())
	req.Price = total
	req.DeclaredValue = total
	req.Weight = Weight(o.ItemCount())
	req.IsStopdesk = o.DeliveryMethod().IsPickupPoint()

	if overrides.DoInsurance != nil {
		req.DoInsurance = *overrides.DoInsurance
	}
	if overrides.HasExchange != nil {
		req.HasExchange = *overrides.HasExchange
	}
	if overrides.FreeShipping != nil {
		req.FreeShipping = *overrides.FreeShipping
	}

	return b.resolver.Resolve(req)
}

// Reference formats a shipment reference.
func Reference(submittedAt time.Time, ownerPrefix string) string {
	return fmt.Sprintf("ORD-%d-%s", submittedAt.UnixMilli(), ownerPrefix)
}

// ProductList flattens items as "{qty}x {name} ({size})" joined by ", ".
func ProductList(items []order.Item) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		line := fmt.Sprintf("%dx %s", item.Quantity(), item.Name())
		if item.Size() != "" {
			line += " (" + item.Size() + ")"
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, ", ")
}

// Weight estimates the parcel weight in kilograms: 0.3 per unit, at least 1.
func Weight(itemCount int) float64 {
	w := math.Round(float64(itemCount)*0.3*100) / 100
	return math.Max(DefaultWeight, w)
}
