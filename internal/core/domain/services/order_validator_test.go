package services_test

import (
	"testing"

	"vizoshop/internal/core/domain/model/order"
	"vizoshop/internal/core/domain/model/region"
	"vizoshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func validForm() order.CustomerInfo {
	return order.CustomerInfo{
		FullName:  "Amina Benali",
		Phone:     "+213 555123456",
		Address:   "12 rue Larbi Ben M'hidi",
		Region:    "Blida",
		SubRegion: "Boufarik",
	}
}

func TestOrderValidator_Phone(t *testing.T) {
	v := services.NewOrderValidator()

	tests := []struct {
		phone string
		valid bool
	}{
		{phone: "+213 555123456", valid: true},
		{phone: "+213 0555123456", valid: true},
		{phone: "+213661223344", valid: true},
		{phone: "+2130771223344", valid: true},
		{phone: "0555123456", valid: false},
		{phone: "+213 455123456", valid: false},
		{phone: "+213 55512345", valid: false},
		{phone: "+213 55512345678", valid: false},
		{phone: "+33 612345678", valid: false},
		{phone: "+213  555123456", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			form := validForm()
			form.Phone = tt.phone

			errs := v.Validate(form, region.Home)
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, "phone")
			}
		})
	}
}

func TestOrderValidator_AddressDependsOnDeliveryMethod(t *testing.T) {
	v := services.NewOrderValidator()
	form := validForm()
	form.Address = "   "

	homeErrs := v.Validate(form, region.Home)
	assert.Equal(t, map[string]string{"address": "address is required for home delivery"}, homeErrs)

	pickupErrs := v.Validate(form, region.PickupPoint)
	assert.Empty(t, pickupErrs)
}

func TestOrderValidator_RequiredFields(t *testing.T) {
	v := services.NewOrderValidator()

	errs := v.Validate(order.CustomerInfo{FullName: " ", Region: "", SubRegion: "\t"}, region.PickupPoint)

	assert.Equal(t, map[string]string{
		"fullName":  "fullName is required",
		"phone":     "phone is required",
		"region":    "region is required",
		"subRegion": "subRegion is required",
	}, errs)
}

func TestOrderValidator_DeliveryMethod(t *testing.T) {
	v := services.NewOrderValidator()

	errs := v.Validate(validForm(), region.DeliveryMethod("drone"))

	assert.Len(t, errs, 1)
	assert.Contains(t, errs["deliveryMethod"], "home pickupPoint")
}

func TestOrderValidator_ValidForm(t *testing.T) {
	v := services.NewOrderValidator()
	assert.Empty(t, v.Validate(validForm(), region.Home))
	assert.Empty(t, v.Validate(validForm(), region.PickupPoint))
}
