package queries

import (
	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/services"
)

// SessionRegistry is the read-side view of the session registry. Queries
// only need to resolve a session's ledger, never open or close sessions.
type SessionRegistry interface {
	// Get resolves the ledger owned by a session, marking it active.
	Get(id kernel.UUID) (*services.OrderLedger, error)
}
