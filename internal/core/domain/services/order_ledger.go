package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/model/order"
	"barista/internal/core/ports"
	"barista/internal/pkg/clock"
	"barista/internal/pkg/errs"
)

var (
	// ErrOrderLedgerIsNotConstructed is returned when an OrderLedger was not
	// created through the NewOrderLedger factory method.
	ErrOrderLedgerIsNotConstructed = errors.New("OrderLedger must be created via NewOrderLedger constructor")

	// ErrLedgerAlreadyCommitted is returned when an update or commit is
	// attempted after a successful commit. It indicates a caller bug
	// (double-commit or post-commit edit attempt) and is never retried.
	ErrLedgerAlreadyCommitted = errors.New("order is already committed")

	// ErrPersistenceFailed is the sentinel for durable-write failures.
	// The ledger stays in Collecting and the caller may retry commit; the
	// in-memory draft is not lost.
	ErrPersistenceFailed = errors.New("persistence failed")
)

// PersistenceError indicates that the durable write failed (I/O failure,
// permissions, disk full). Commit did not happen and the ledger remains in
// Collecting state.
type PersistenceError struct {
	Cause error
}

// NewPersistenceError creates a PersistenceError wrapping the underlying cause.
func NewPersistenceError(cause error) *PersistenceError {
	return &PersistenceError{Cause: cause}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s (cause: %s)", ErrPersistenceFailed, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistenceFailed
}

// State represents the lifecycle state of an order ledger.
//
// State transitions:
//
//	Empty ──> Collecting ──> Committed
//
// Any successful update moves Empty to Collecting; a successful commit moves
// Collecting to the terminal Committed state. There is no transition out of
// Committed.
type State int

const (
	// Empty is the initial state before any attribute has been supplied.
	Empty State = iota

	// Collecting indicates at least one update has been merged and the
	// order has not yet committed.
	Collecting

	// Committed indicates the order was validated and durably persisted.
	// This is a terminal state; the ledger is frozen afterwards.
	Committed
)

// String returns the human-readable name of the state.
// Implements fmt.Stringer and is safe on any State value.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Collecting:
		return "Collecting"
	case Committed:
		return "Committed"
	default:
		return "Unknown"
	}
}

// OrderLedger owns the mutable in-progress state for one conversation-scoped
// order and performs the commit protocol. Each conversation owns exactly one
// ledger; ledgers share no mutable state with each other except the
// underlying order store.
//
// Update and IsComplete touch only the ledger's private state. Commit is the
// sole operation touching the store and relies on the store's
// exclusive-create primitive to serialize id selection against concurrently
// committing ledgers.
//
// OrderLedger is safe for concurrent use by the handlers of one session.
//
// Example:
//
//	ledger, err := services.NewOrderLedger(store, clock.NewSystem())
//	if err != nil {
//	    return err
//	}
//	ledger.Update(order.Update{ItemType: &itemType})
//	if ledger.IsComplete() {
//	    committed, err := ledger.Commit(ctx)
//	    // ...
//	}
type OrderLedger struct {
	mu    sync.Mutex
	draft order.Draft
	state State

	store ports.OrderStore
	clock clock.Clock

	isConstructed bool
}

// NewOrderLedger creates a ledger for a new conversation. The draft starts
// empty; the store and clock must be provided.
func NewOrderLedger(store ports.OrderStore, clk clock.Clock) (*OrderLedger, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	if clk == nil {
		return nil, errs.NewValueIsRequiredError("clock")
	}

	return &OrderLedger{
		store:         store,
		clock:         clk,
		isConstructed: true,
	}, nil
}

// Validate ensures the ledger was properly constructed through NewOrderLedger.
func (l *OrderLedger) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrOrderLedgerIsNotConstructed
	}
	return nil
}

// State returns the ledger's current lifecycle state.
func (l *OrderLedger) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Update merges a partial attribute update into the in-progress draft and
// returns the resulting snapshot. Fields absent from the update are left
// untouched; fields present overwrite the prior value entirely. Raw values
// are accepted as-is - no validation happens here, so the caller can always
// see exactly what was captured.
//
// Fails with ErrLedgerAlreadyCommitted once the order has committed.
func (l *OrderLedger) Update(update order.Update) (order.Snapshot, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == Committed {
		return order.Snapshot{}, ErrLedgerAlreadyCommitted
	}

	snapshot := l.draft.Apply(update)
	l.state = Collecting
	return snapshot, nil
}

// Snapshot returns the draft's current raw state without mutating anything.
func (l *OrderLedger) Snapshot() order.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.draft.Snapshot()
}

// IsComplete reports whether required-field validation would currently
// succeed. Pure query: no mutation, no error. Used by the caller to decide
// whether to keep asking questions.
func (l *OrderLedger) IsComplete() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == Committed {
		return true
	}
	return l.draft.IsComplete()
}

// Commit validates the draft, assigns identity, durably writes the record
// and freezes the ledger.
//
// On validation failure the specific missing or invalid field is reported
// and the ledger stays in Collecting so the caller can ask a targeted
// follow-up question. On a storage failure a PersistenceError is returned
// and the ledger likewise stays in Collecting; the draft is intact and
// commit may be retried. Same-second id collisions are resolved internally
// by an incrementing suffix against the store's exclusive create and are
// never surfaced.
//
// On success the committed, immutable record is returned and every further
// Update or Commit fails with ErrLedgerAlreadyCommitted.
func (l *OrderLedger) Commit(ctx context.Context) (*order.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == Committed {
		return nil, ErrLedgerAlreadyCommitted
	}

	snapshot := l.draft.Snapshot()
	createdAt := l.clock.Now()

	committed, err := order.NewOrder(kernel.NewOrderID(createdAt), snapshot, createdAt)
	if err != nil {
		return nil, err
	}

	payload, err := json.MarshalIndent(committed, "", "  ")
	if err != nil {
		return nil, NewPersistenceError(err)
	}

	if err = l.store.EnsureDir(ctx); err != nil {
		return nil, NewPersistenceError(err)
	}

	id, err := l.reserveAndWrite(ctx, committed.ID(), payload)
	if err != nil {
		return nil, err
	}

	if id.Suffix() > 0 {
		// Record content is id-independent, so only the identity needs
		// rebuilding after a collision.
		committed, err = order.NewOrder(id, snapshot, createdAt)
		if err != nil {
			return nil, NewPersistenceError(err)
		}
	}

	l.state = Committed
	return committed, nil
}

// reserveAndWrite finds the first unused id derived from base and writes the
// record under it. The existence pre-check is a cheap fast path; the store's
// exclusive create is what actually arbitrates races, so a concurrent winner
// simply bumps this ledger to the next suffix.
func (l *OrderLedger) reserveAndWrite(
	ctx context.Context,
	base kernel.OrderID,
	payload []byte,
) (kernel.OrderID, error) {
	for attempt := 0; ; attempt++ {
		candidate := base.WithSuffix(attempt)

		taken, err := l.store.Exists(ctx, candidate)
		if err != nil {
			return kernel.OrderID{}, NewPersistenceError(err)
		}
		if taken {
			continue
		}

		err = l.store.AtomicCreate(ctx, candidate, payload)
		if errors.Is(err, ports.ErrOrderAlreadyExists) {
			continue
		}
		if err != nil {
			return kernel.OrderID{}, NewPersistenceError(err)
		}

		return candidate, nil
	}
}
