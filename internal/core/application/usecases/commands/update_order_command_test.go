package commands_test

import (
	"context"
	"testing"

	"barista/internal/core/application/usecases/commands"
	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/model/order"
	"barista/internal/core/domain/services"
	"barista/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand(t *testing.T) {
	validUpdate := order.Update{ItemType: strptr("latte")}

	t.Run("should create valid command", func(t *testing.T) {
		sessionID := kernel.NewUUID()

		cmd, err := commands.NewUpdateOrderCommand(sessionID, validUpdate)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.SessionID().IsEqual(sessionID))
		assert.Equal(t, "latte", *cmd.Update().ItemType)
	})

	t.Run("should fail with unconstructed session id", func(t *testing.T) {
		var sessionID kernel.UUID

		_, err := commands.NewUpdateOrderCommand(sessionID, validUpdate)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with empty update", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(kernel.NewUUID(), order.Update{})

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrUpdateIsEmpty)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.UpdateOrderCommand

		assert.Equal(t, commands.ErrUpdateOrderCommandIsNotConstructed, cmd.Validate())
	})
}

func TestUpdateOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should merge updates into the session draft", func(t *testing.T) {
		registry, _ := newTestRegistry(t)
		sessionID := openSession(t, registry)
		handler := commands.NewUpdateOrderCommandHandler(registry)

		cmd, err := commands.NewUpdateOrderCommand(sessionID,
			order.Update{ItemType: strptr("latte"), Size: strptr("medium")})
		require.NoError(t, err)
		snapshot, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "latte", snapshot.ItemType)
		assert.Equal(t, "medium", snapshot.Size)

		cmd, err = commands.NewUpdateOrderCommand(sessionID, order.Update{Size: strptr("large")})
		require.NoError(t, err)
		snapshot, err = handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "latte", snapshot.ItemType)
		assert.Equal(t, "large", snapshot.Size)
	})

	t.Run("should fail for unknown session", func(t *testing.T) {
		registry, _ := newTestRegistry(t)
		handler := commands.NewUpdateOrderCommandHandler(registry)

		cmd, err := commands.NewUpdateOrderCommand(kernel.NewUUID(),
			order.Update{ItemType: strptr("latte")})
		require.NoError(t, err)
		_, err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should fail once the session's order committed", func(t *testing.T) {
		registry, _ := newTestRegistry(t)
		sessionID := openSession(t, registry)
		applyUpdates(t, registry, sessionID, completeOrderUpdates()...)

		commitCmd, err := commands.NewCommitOrderCommand(sessionID)
		require.NoError(t, err)
		_, err = commands.NewCommitOrderCommandHandler(registry).Handle(ctx, commitCmd)
		require.NoError(t, err)

		cmd, err := commands.NewUpdateOrderCommand(sessionID,
			order.Update{ItemType: strptr("espresso")})
		require.NoError(t, err)
		_, err = commands.NewUpdateOrderCommandHandler(registry).Handle(ctx, cmd)

		assert.ErrorIs(t, err, services.ErrLedgerAlreadyCommitted)
	})
}
