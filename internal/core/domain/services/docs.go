// Package services contains domain services for the order-intake system.
//
// The central service is OrderLedger: the per-conversation slot-filling
// controller. A ledger owns one in-progress draft, merges partial attribute
// updates across turns, answers completeness queries, and performs the
// commit protocol - normalize, validate, assign identity, write durably
// exactly once.
//
// Ledger state machine:
//
//	Empty ──> Collecting ──> Committed
//	             ^   │
//	             └───┘
//	        (further updates)
//
// Committed is terminal: any update or commit afterwards fails with
// ErrLedgerAlreadyCommitted. A ledger that never commits is simply
// discarded; abandonment has no persistence side effect.
//
// Commit is the only operation touching shared state (the order store).
// Identity collisions between ledgers committing within the same second are
// resolved by retrying with an incrementing disambiguator against the
// store's exclusive-create primitive.
package services
