// Package order provides the Order aggregate and its Status state machine.
//
// The package includes:
//   - Order: the aggregate root holding customer, restaurant, driver, items and total
//   - Item / ItemOption: immutable dish selections with their line price
//   - Status: Pending -> Cooking -> Cooked -> PickedUp -> Delivered
//
// Key business rules:
//   - orders are created Pending with a total equal to the sum of line prices
//   - a driver can be assigned once and never replaced
//   - Delivered is terminal
//   - who may request which status is decided outside the aggregate, by
//     services.AccessPolicy
package order
