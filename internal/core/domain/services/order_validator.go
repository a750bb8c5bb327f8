package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"vizoshop/internal/core/domain/model/order"
	"vizoshop/internal/core/domain/model/region"

	"github.com/go-playground/validator/v10"
)

// phonePattern accepts "+213", an optional space, an optional leading 0, a
// 5, 6 or 7 prefix and eight more digits.
var phonePattern = regexp.MustCompile(`^\+213\s?0?[567]\d{8}$`)

const phoneTag = "dzphone"

// shippingForm is the validated view of CustomerInfo plus the delivery
// method the address rule depends on.
type shippingForm struct {
	FullName       string `json:"fullName" validate:"required"`
	Phone          string `json:"phone" validate:"required,dzphone"`
	Address        string `json:"address" validate:"required_if=DeliveryMethod home"`
	Region         string `json:"region" validate:"required"`
	SubRegion      string `json:"subRegion" validate:"required"`
	DeliveryMethod string `json:"deliveryMethod" validate:"oneof=home pickupPoint"`
}

// OrderValidator checks the shipping form. An empty result means valid.
type OrderValidator struct {
	validate *validator.Validate
}

func NewOrderValidator() OrderValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation(phoneTag, func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return OrderValidator{validate: v}
}

// Validate returns a message per invalid field, keyed by the field's JSON
// name (fullName, phone, address, region, subRegion, deliveryMethod).
//
// Example:
//
//	errs := v.Validate(order.CustomerInfo{FullName: "Amina", Phone: "0555"}, region.PickupPoint)
//	// errs == {"phone": "...", "region": "region is required", "subRegion": "subRegion is required"}
func (v OrderValidator) Validate(customer order.CustomerInfo, method region.DeliveryMethod) map[string]string {
	trimmed := customer.Trimmed()
	form := shippingForm{
		FullName:       trimmed.FullName,
		Phone:          trimmed.Phone,
		Address:        trimmed.Address,
		Region:         trimmed.Region,
		SubRegion:      trimmed.SubRegion,
		DeliveryMethod: string(method),
	}

	fieldErrors := make(map[string]string)

	err := v.validate.Struct(form)
	if err == nil {
		return fieldErrors
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrors["form"] = err.Error()
		return fieldErrors
	}

	for _, fe := range verrs {
		fieldErrors[fe.Field()] = fieldMessage(fe)
	}
	return fieldErrors
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "required_if":
		return fmt.Sprintf("%s is required for home delivery", fe.Field())
	case phoneTag:
		return fmt.Sprintf("%s must be +213 followed by 9 or 10 digits starting with 5, 6 or 7", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s validation", fe.Field(), fe.Tag())
	}
}
