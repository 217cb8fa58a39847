// Package inmemory implements process-local session tracking. Sessions are
// deliberately not durable: an in-progress order lives and dies with its
// conversation, and only committed orders reach the store.
package inmemory

import (
	"sync"
	"time"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/services"
	"barista/internal/core/ports"
	"barista/internal/pkg/clock"
	"barista/internal/pkg/errs"
)

// session pairs one conversation's ledger with its last-activity time so
// abandoned conversations can be reaped.
type session struct {
	ledger     *services.OrderLedger
	lastActive time.Time
}

// SessionRegistry owns one OrderLedger per active conversation, keyed by
// session UUID. Opening a session constructs its ledger; closing or reaping
// a session discards the ledger with no persistence side effect.
//
// Safe for concurrent use across sessions.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[kernel.UUID]*session

	store ports.OrderStore
	clock clock.Clock
}

// NewSessionRegistry creates an empty registry. The store and clock are
// handed to every ledger the registry constructs.
func NewSessionRegistry(store ports.OrderStore, clk clock.Clock) (*SessionRegistry, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	if clk == nil {
		return nil, errs.NewValueIsRequiredError("clock")
	}

	return &SessionRegistry{
		sessions: make(map[kernel.UUID]*session),
		store:    store,
		clock:    clk,
	}, nil
}

// Open starts a new conversation session with a fresh, empty ledger and
// returns its identifier.
func (r *SessionRegistry) Open() (kernel.UUID, error) {
	ledger, err := services.NewOrderLedger(r.store, r.clock)
	if err != nil {
		return kernel.UUID{}, err
	}

	id := kernel.NewUUID()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = &session{
		ledger:     ledger,
		lastActive: r.clock.Now(),
	}
	return id, nil
}

// Get returns the ledger owned by the given session and marks the session
// active. Fails with an object-not-found error for unknown or already
// discarded sessions.
func (r *SessionRegistry) Get(id kernel.UUID) (*services.OrderLedger, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("sessionId", id.String())
	}
	s.lastActive = r.clock.Now()
	return s.ledger, nil
}

// Close ends a session and discards its ledger. An uncommitted draft is
// abandoned with no persistence side effect. Fails with an object-not-found
// error for unknown sessions.
func (r *SessionRegistry) Close(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return errs.NewObjectNotFoundError("sessionId", id.String())
	}
	delete(r.sessions, id)
	return nil
}

// ReapIdle discards every session whose last activity is older than the
// given age and returns how many were removed. Used by the scheduled
// session reaper to clean up conversations that ended without closing.
func (r *SessionRegistry) ReapIdle(maxIdle time.Duration) int {
	cutoff := r.clock.Now().Add(-maxIdle)

	r.mu.Lock()
	defer r.mu.Unlock()

	reaped := 0
	for id, s := range r.sessions {
		if s.lastActive.Before(cutoff) {
			delete(r.sessions, id)
			reaped++
		}
	}
	return reaped
}

// Count returns the number of live sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
