package commands

import (
	"errors"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/pkg/guard"
)

// ErrEndSessionCommandIsNotConstructed is returned when an
// EndSessionCommand was not created via its constructor.
var ErrEndSessionCommandIsNotConstructed = errors.New(
	"EndSessionCommand must be created via NewEndSessionCommand constructor",
)

// EndSessionCommand represents the end of a conversation. Whatever the
// session's ledger holds is discarded; an uncommitted draft is abandoned
// with no persistence side effect.
type EndSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEndSessionCommand creates a command to end a conversation session.
func NewEndSessionCommand(sessionID kernel.UUID) (EndSessionCommand, error) {
	cmd := EndSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return EndSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EndSessionCommand) Validate() error {
	return c.guard.Validate(ErrEndSessionCommandIsNotConstructed)
}

// SessionID returns the session being ended.
func (c EndSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *EndSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
