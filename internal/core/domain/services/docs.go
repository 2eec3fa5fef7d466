// Package services contains stateless domain services that do not belong to
// a single aggregate: tariff-based price calculation and cabinet code
// allocation with bounded collision retry.
package services
