// Package order provides the Order aggregate: a tracked package owned by a
// cabinet, priced once at creation from the origin country's tariff.
//
// The package includes:
//   - Order: the aggregate root managing identity, price, flags, and lifecycle
//   - Status: the state machine Accepted -> OnTheWay -> Arrived -> Delivered
//
// Key business rules:
//   - The tracking id is globally unique and immutable
//   - The price is fixed at creation and never recomputed
//   - The paid flag moves only from false to true, through settlement
//   - The declared flag moves only from false to true
//   - Status transitions only move forward; Delivered is terminal
package order
