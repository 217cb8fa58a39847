package commands

import (
	"errors"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/pkg/guard"
)

// ErrCommitOrderCommandIsNotConstructed is returned when a
// CommitOrderCommand was not created via its constructor.
var ErrCommitOrderCommandIsNotConstructed = errors.New(
	"CommitOrderCommand must be created via NewCommitOrderCommand constructor",
)

// CommitOrderCommand represents a request to finalize a session's order:
// validate the collected attributes, assign identity and persist the record.
type CommitOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCommitOrderCommand creates a command to commit a session's order.
func NewCommitOrderCommand(sessionID kernel.UUID) (CommitOrderCommand, error) {
	cmd := CommitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return CommitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CommitOrderCommand) Validate() error {
	return c.guard.Validate(ErrCommitOrderCommandIsNotConstructed)
}

// SessionID returns the session whose order is committed.
func (c CommitOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *CommitOrderCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
