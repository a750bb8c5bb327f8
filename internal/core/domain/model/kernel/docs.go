// Package kernel holds the identity primitives shared by every aggregate of
// the storefront domain.
//
//   - UUID: identifier of persisted orders
//   - OwnerID: identity of the shopper who owns an order or a cart
//
// Both are immutable values; their zero values fail Validate.
package kernel
