// Package order provides the Order aggregate placed by the submission
// pipeline.
//
// The package includes:
//   - Order: the aggregate root, an immutable record of what the shopper bought
//   - Item: a priced snapshot of one purchased product
//   - CustomerInfo: the shipping form frozen at submission time
//   - Summary: subtotal, shipping fee and total
//   - Status: the administrative lifecycle, starting at Pending
//   - Source: whether the items came from the cart or a direct purchase
//
// Key business rules:
//   - An order holds at least one item
//   - subtotal == Σ(unitPrice × quantity) and total == subtotal + shippingFee
//   - Items and summary never change after creation
//   - Every order carries the client idempotency key it was submitted with
package order
