package region

import (
	"fmt"

	"vizoshop/internal/pkg/errs"
)

// DeliveryMethod selects the tariff column and, for dispatch, whether the
// parcel goes to a partner relay point.
type DeliveryMethod string

const (
	// Home is door delivery; the customer address is mandatory.
	Home DeliveryMethod = "home"

	// PickupPoint is delivery to a partner stop desk.
	PickupPoint DeliveryMethod = "pickupPoint"
)

func (m DeliveryMethod) String() string {
	return string(m)
}

func (m DeliveryMethod) Validate() error {
	switch m {
	case Home, PickupPoint:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryMethod",
			fmt.Errorf("%q is neither %q nor %q", string(m), Home, PickupPoint),
		)
	}
}

// IsPickupPoint reports whether the parcel is collected at a relay point.
func (m DeliveryMethod) IsPickupPoint() bool {
	return m == PickupPoint
}
