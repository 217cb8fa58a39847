package commands

import (
	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/services"
)

// SessionRegistry provides access to per-conversation ledgers.
// Implemented by the in-memory registry adapter.
type SessionRegistry interface {
	// Open starts a new session with an empty ledger and returns its id.
	Open() (kernel.UUID, error)

	// Get resolves the ledger owned by a session, marking it active.
	Get(id kernel.UUID) (*services.OrderLedger, error)

	// Close ends a session, discarding its ledger without persistence.
	Close(id kernel.UUID) error
}
