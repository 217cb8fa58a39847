// Package ports defines the persistence contracts consumed by the domain
// core. Adapters under internal/adapters implement these interfaces.
package ports

import (
	"context"
	"errors"

	"barista/internal/core/domain/model/kernel"
)

// ErrOrderAlreadyExists is returned by AtomicCreate when a record with the
// candidate id is already present. The ledger treats this as a same-second
// collision and retries with the next disambiguator; it is never surfaced to
// callers.
var ErrOrderAlreadyExists = errors.New("order already exists")

// OrderStore defines the durable storage contract for committed orders.
// One record is kept per order, addressed by its OrderID. Implementations
// must make AtomicCreate exclusive with respect to concurrent creates of the
// same id, and must never expose a partially written record under its final
// name.
type OrderStore interface {
	// EnsureDir creates the storage location if absent. Idempotent; no
	// error if it already exists. Called before the first write.
	EnsureDir(ctx context.Context) error

	// Exists reports whether a record with the given id is present.
	Exists(ctx context.Context, id kernel.OrderID) (bool, error)

	// AtomicCreate durably writes a new record under the given id.
	// Fails with ErrOrderAlreadyExists if the id is taken; the write is
	// all-or-nothing even across a crash mid-write.
	AtomicCreate(ctx context.Context, id kernel.OrderID, data []byte) error

	// List returns the ids of all committed records, sorted ascending.
	List(ctx context.Context) ([]kernel.OrderID, error)

	// Read returns the raw bytes of a committed record.
	Read(ctx context.Context, id kernel.OrderID) ([]byte, error)
}
