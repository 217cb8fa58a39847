package queries

import (
	"context"
)

// GetOrderQueryHandler reads a session's draft state from the registry.
type GetOrderQueryHandler struct {
	registry SessionRegistry
}

// NewGetOrderQueryHandler creates a handler backed by the given registry.
func NewGetOrderQueryHandler(registry SessionRegistry) GetOrderQueryHandler {
	return GetOrderQueryHandler{registry: registry}
}

// Handle resolves the session's ledger and returns its current snapshot,
// completeness and lifecycle state. Reading never validates the draft.
func (h GetOrderQueryHandler) Handle(
	_ context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	ledger, err := h.registry.Get(query.SessionID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		Snapshot:   ledger.Snapshot(),
		IsComplete: ledger.IsComplete(),
		State:      ledger.State(),
	}, nil
}
