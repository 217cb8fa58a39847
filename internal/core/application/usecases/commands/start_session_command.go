package commands

import (
	"errors"

	"barista/internal/pkg/guard"
)

// ErrStartSessionCommandIsNotConstructed is returned when a
// StartSessionCommand was not created via its constructor.
var ErrStartSessionCommandIsNotConstructed = errors.New(
	"StartSessionCommand must be created via NewStartSessionCommand constructor",
)

// StartSessionCommand represents a request to open a new conversation
// session. The command carries no payload; session identity is assigned by
// the registry.
type StartSessionCommand struct {
	guard guard.ConstructorGuard
}

// NewStartSessionCommand creates a command to open a conversation session.
func NewStartSessionCommand() StartSessionCommand {
	return StartSessionCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c StartSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartSessionCommandIsNotConstructed)
}
