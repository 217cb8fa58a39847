package commands

import "context"

// EndSessionCommandHandler discards conversation sessions.
type EndSessionCommandHandler struct {
	registry SessionRegistry
}

// NewEndSessionCommandHandler creates a handler backed by the given registry.
func NewEndSessionCommandHandler(registry SessionRegistry) EndSessionCommandHandler {
	return EndSessionCommandHandler{registry: registry}
}

// Handle ends the session and discards its ledger. Fails for unknown
// sessions.
func (h EndSessionCommandHandler) Handle(_ context.Context, cmd EndSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.registry.Close(cmd.SessionID())
}
