// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: validation, transaction
// management, and persistence.
package commands

import (
	"context"

	"cargo/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler depends on the narrowest surface it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountRepoFactory provides access to the account repository within a
	// transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CountryRepoFactory provides access to the country repository within a
	// transaction.
	CountryRepoFactory interface {
		CountryRepository() ports.CountryRepository
	}

	// FlightRepoFactory provides access to the flight repository within a
	// transaction.
	FlightRepoFactory interface {
		FlightRepository() ports.FlightRepository
	}

	// ShopRepoFactory provides access to the shop repository within a
	// transaction.
	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	// AccountUoW manages transactions for account-only operations
	// (registration, balance top-up).
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// OrderUoW manages transactions for order-only operations
	// (status updates, declaration, deletion, flight advancement).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SettlementUoW manages the payment transaction that touches both the
	// account balance and the order paid flag. Settlement must see both
	// repositories inside one transaction; this is the boundary that makes
	// the debit and the paid flag commit or roll back together.
	SettlementUoW interface {
		TxManager
		AccountRepoFactory
		OrderRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// OrderEntryUoW manages order creation, which reads accounts, countries,
	// and flights for existence and pricing before inserting the order.
	OrderEntryUoW interface {
		TxManager
		AccountRepoFactory
		OrderRepoFactory
		CountryRepoFactory
		FlightRepoFactory
	}

	// OrderEntryUoWFactory creates new order entry unit of work instances.
	OrderEntryUoWFactory interface {
		Create() OrderEntryUoW
	}

	// CountryUoW manages transactions for country tariff reference data.
	CountryUoW interface {
		TxManager
		CountryRepoFactory
	}

	// CountryUoWFactory creates new country unit of work instances.
	CountryUoWFactory interface {
		Create() CountryUoW
	}

	// FlightUoW manages transactions for flight reference data.
	FlightUoW interface {
		TxManager
		FlightRepoFactory
	}

	// FlightUoWFactory creates new flight unit of work instances.
	FlightUoWFactory interface {
		Create() FlightUoW
	}

	// ShopUoW manages transactions for shop reference data.
	ShopUoW interface {
		TxManager
		ShopRepoFactory
	}

	// ShopUoWFactory creates new shop unit of work instances.
	ShopUoWFactory interface {
		Create() ShopUoW
	}
)
