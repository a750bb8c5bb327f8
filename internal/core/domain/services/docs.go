// Package services provides the stateless domain services used while an
// order is submitted.
//
// The package includes:
//   - ShippingCostCalculator: (region, delivery method) → fee quote
//   - OrderValidator: field-level checks of the shipping form
//
// Neither service performs I/O; both are safe for concurrent use.
package services
