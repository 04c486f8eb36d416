// Package kernel provides the value objects shared by every aggregate of the
// order service.
//
// The package includes:
//   - UUID: identifier of users, restaurants, dishes, orders and payments
//   - Money: non-negative decimal amount used for dish prices and order totals
//
// Both types are immutable and their zero values fail Validate, so a missing
// identifier or price is caught at construction time rather than in storage.
package kernel
