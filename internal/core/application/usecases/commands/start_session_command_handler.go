package commands

import (
	"context"

	"barista/internal/core/domain/model/kernel"
)

// StartSessionCommandHandler opens conversation sessions.
//
// Example:
//
//	handler := NewStartSessionCommandHandler(registry)
//	sessionID, err := handler.Handle(ctx, NewStartSessionCommand())
//	if err != nil {
//	    return fmt.Errorf("failed to start session: %w", err)
//	}
type StartSessionCommandHandler struct {
	registry SessionRegistry
}

// NewStartSessionCommandHandler creates a handler backed by the given registry.
func NewStartSessionCommandHandler(registry SessionRegistry) StartSessionCommandHandler {
	return StartSessionCommandHandler{registry: registry}
}

// Handle opens a new session with an empty ledger and returns its id.
func (h StartSessionCommandHandler) Handle(_ context.Context, cmd StartSessionCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	return h.registry.Open()
}
