// Package services holds the pure domain services of the order engine. They
// work across aggregates but never touch storage or the bus.
//
// The package includes:
//   - PriceCalculator: line prices of dish selections and order totals
//   - AccessPolicy: role scoped visibility and status edit rules for orders
package services
