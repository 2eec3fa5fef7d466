// Package account provides the Account aggregate: a registered user who owns
// a cabinet and a prepaid balance. The balance is the only mutable monetary
// state in the system; it grows through deposits and shrinks only when the
// settlement use case pays for an order.
//
// Key business rules:
//   - The cabinet code is assigned once at registration and never changes
//   - Deposits must be strictly positive
//   - Withdrawals never drive the balance negative
package account
