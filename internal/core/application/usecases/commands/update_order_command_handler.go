package commands

import (
	"context"

	"barista/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler merges turn-level attribute updates into the
// session's in-progress draft. No validation happens at this stage, so the
// conversational layer always sees exactly what was captured.
type UpdateOrderCommandHandler struct {
	registry SessionRegistry
}

// NewUpdateOrderCommandHandler creates a handler backed by the given registry.
func NewUpdateOrderCommandHandler(registry SessionRegistry) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{registry: registry}
}

// Handle resolves the session's ledger and merges the update, returning the
// draft snapshot after the merge. Fails for unknown sessions and for
// sessions whose order has already committed.
func (h UpdateOrderCommandHandler) Handle(
	_ context.Context,
	cmd UpdateOrderCommand,
) (order.Snapshot, error) {
	if err := cmd.Validate(); err != nil {
		return order.Snapshot{}, err
	}

	ledger, err := h.registry.Get(cmd.SessionID())
	if err != nil {
		return order.Snapshot{}, err
	}

	return ledger.Update(cmd.Update())
}
