// Package shipment models the parcel-creation request sent to the delivery
// partner and the reference data needed to build it.
//
//   - Request: the partner-schema view of an order, one parcel
//   - Resolver: maps region and sub-region names to partner ids, falling back
//     to the capital and reporting when it did
//   - Builder: derives a Request from a placed order
//   - Receipt: tracking data extracted from the partner reply
//
// A Request is built per dispatch attempt and never stored on its own.
package shipment
