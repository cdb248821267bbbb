// Package store declares the data access ports the HTTP layer and the
// ingest pipeline depend on. Backends live in the subpackages and in
// internal/storage.
package store

import (
	"context"

	"revboard/internal/core"
)

// Ports for outbound adapters.
type (
	TransactionLister interface {
		// ListTransactions returns every known transaction, newest first.
		ListTransactions(ctx context.Context) ([]core.Transaction, error)
	}

	TransactionWriter interface {
		// InsertTransaction stores a transaction. The boolean reports
		// whether a row was actually written; duplicates by payment
		// reference return false with a nil error.
		InsertTransaction(ctx context.Context, t core.Transaction) (bool, error)
	}

	WalletReader interface {
		Wallet(ctx context.Context) (core.Wallet, error)
	}

	UserReader interface {
		User(ctx context.Context) (core.User, error)
	}
)

// Backend bundles every port a full data backend provides.
type Backend interface {
	TransactionLister
	TransactionWriter
	WalletReader
	UserReader
}
