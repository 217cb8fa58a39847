package commands

import (
	"errors"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/model/order"
	"barista/internal/pkg/guard"
)

var (
	// ErrUpdateOrderCommandIsNotConstructed is returned when an
	// UpdateOrderCommand was not created via its constructor.
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)

	// ErrUpdateIsEmpty is returned when an update carries no attributes;
	// an empty turn has nothing to merge.
	ErrUpdateIsEmpty = errors.New("update must carry at least one attribute")
)

// UpdateOrderCommand represents one conversational turn's worth of extracted
// order attributes for a session. Any subset of attributes may be present;
// raw values are accepted as captured.
//
// Example:
//
//	itemType := "latte"
//	cmd, err := NewUpdateOrderCommand(sessionID, order.Update{ItemType: &itemType})
//	if err != nil {
//	    return fmt.Errorf("invalid update: %w", err)
//	}
//	snapshot, err := handler.Handle(ctx, cmd)
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	update    order.Update

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to merge attributes into a
// session's draft. Validates that the session id is constructed and the
// update is non-empty.
func NewUpdateOrderCommand(sessionID kernel.UUID, update order.Update) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setUpdate(update),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// SessionID returns the session whose draft is updated.
func (c UpdateOrderCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// Update returns the partial attribute set to merge.
func (c UpdateOrderCommand) Update() order.Update {
	return c.update
}

func (c *UpdateOrderCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *UpdateOrderCommand) setUpdate(update order.Update) error {
	if update.IsEmpty() {
		return ErrUpdateIsEmpty
	}

	c.update = update
	return nil
}
