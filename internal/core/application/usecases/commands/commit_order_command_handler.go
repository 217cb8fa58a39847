package commands

import (
	"context"

	"barista/internal/core/domain/model/order"
)

// CommitOrderCommandHandler finalizes a session's order through the
// ledger's commit protocol.
//
// Example:
//
//	handler := NewCommitOrderCommandHandler(registry)
//	cmd, _ := NewCommitOrderCommand(sessionID)
//
//	committed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    // a validation error names the field to ask about next;
//	    // a persistence error means the draft survived - retry commit
//	    return err
//	}
//	fmt.Printf("recorded %s as %s", committed, committed.ID())
type CommitOrderCommandHandler struct {
	registry SessionRegistry
}

// NewCommitOrderCommandHandler creates a handler backed by the given registry.
func NewCommitOrderCommandHandler(registry SessionRegistry) CommitOrderCommandHandler {
	return CommitOrderCommandHandler{registry: registry}
}

// Handle resolves the session's ledger and commits its order. On success the
// committed, immutable record is returned and the session's ledger is frozen.
func (h CommitOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CommitOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	ledger, err := h.registry.Get(cmd.SessionID())
	if err != nil {
		return nil, err
	}

	return ledger.Commit(ctx)
}
