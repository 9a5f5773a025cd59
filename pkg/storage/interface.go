// Package storage defines the persistence interfaces the application relies
// on. It abstracts the blocklist and exemption stores plus transaction
// management so that different backends (e.g. PostgreSQL) can provide
// concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is a composite interface that includes all domain-specific
// storage capabilities required by the application.
type AllStorage interface {
	DomainStorage
	ExemptionStorage
	JobStorage
}

// TxStorage is a storage handle operating inside a database transaction. It
// exposes the same capabilities as AllStorage and additionally allows
// committing or rolling back. Implementations become unusable after Commit or
// Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is a non-transactional storage handle with the ability to start
// transactions and manage the backend's lifecycle.
type Storage interface {
	AllStorage

	// Close releases resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance must not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage scoped to it.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with a transactional handle, and
	// commits on success or rolls back when cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
