// Package kernel contains the shared value objects of the cargo domain:
// UUID for entity identity, Money for monetary amounts, and CabinetID for
// the human-readable cabinet codes that link accounts to their orders.
//
// All types in this package are immutable value objects. Zero values are
// invalid where a value carries identity (UUID, CabinetID) and must be
// produced through the provided constructors; Money treats its zero value
// as a legitimate zero amount.
package kernel
