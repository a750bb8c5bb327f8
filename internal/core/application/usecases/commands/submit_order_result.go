package commands

import (
	"vizoshop/internal/core/domain/model/kernel"
	"vizoshop/internal/core/domain/model/order"
)

// SubmitOrderResult describes where a submission ended.
type SubmitOrderResult struct {
	// State is the terminal state reached; Trace lists every state entered.
	State SubmissionState
	Trace []SubmissionState

	// OrderID and Summary are set once the order is recorded.
	OrderID kernel.UUID
	Summary order.Summary

	// ShippingResolved is false when no tariff matched the region and the
	// fee was priced at zero.
	ShippingResolved bool

	// Reference, Tracking, Label and Endpoint describe the shipment request.
	Reference string
	Tracking  string
	Label     string
	Endpoint  string

	FieldErrors map[string]string
}

// Message is the shopper-facing status line for the terminal state.
func (r SubmitOrderResult) Message() string {
	switch r.State {
	case Completed:
		return "order placed, shipment created"
	case PartiallyCompleted:
		return "saved, will be arranged manually"
	case Duplicate:
		return "order already submitted"
	case Rejected:
		return "order rejected"
	case PersistenceFailed:
		return "order could not be saved, please retry"
	default:
		return r.State.String()
	}
}
