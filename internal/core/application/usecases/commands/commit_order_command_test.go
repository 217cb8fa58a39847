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

func TestNewCommitOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		sessionID := kernel.NewUUID()

		cmd, err := commands.NewCommitOrderCommand(sessionID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.SessionID().IsEqual(sessionID))
	})

	t.Run("should fail with unconstructed session id", func(t *testing.T) {
		var sessionID kernel.UUID

		_, err := commands.NewCommitOrderCommand(sessionID)

		require.Error(t, err)
	})

	t.Run("should fail validation for zero value command", func(t *testing.T) {
		var cmd commands.CommitOrderCommand

		assert.Equal(t, commands.ErrCommitOrderCommandIsNotConstructed, cmd.Validate())
	})
}

func TestCommitOrderCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("should commit a complete order and persist the record", func(t *testing.T) {
		registry, store := newTestRegistry(t)
		sessionID := openSession(t, registry)
		applyUpdates(t, registry, sessionID, completeOrderUpdates()...)
		handler := commands.NewCommitOrderCommandHandler(registry)

		cmd, err := commands.NewCommitOrderCommand(sessionID)
		require.NoError(t, err)
		committed, err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "order_20260830_142501", committed.ID().String())
		assert.Equal(t, order.SizeMedium, committed.Size())

		ids, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, ids, 1)
		assert.True(t, ids[0].IsEqual(committed.ID()))
	})

	t.Run("should report the first missing field for an incomplete order", func(t *testing.T) {
		registry, store := newTestRegistry(t)
		sessionID := openSession(t, registry)
		applyUpdates(t, registry, sessionID, order.Update{ItemType: strptr("latte")})
		handler := commands.NewCommitOrderCommandHandler(registry)

		cmd, err := commands.NewCommitOrderCommand(sessionID)
		require.NoError(t, err)
		_, err = handler.Handle(ctx, cmd)

		require.Error(t, err)
		var required *errs.ValueIsRequiredError
		require.ErrorAs(t, err, &required)
		assert.Equal(t, "size", required.ParamName)

		// Nothing was persisted and the session is still collecting.
		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, ids)
		ledger, err := registry.Get(sessionID)
		require.NoError(t, err)
		assert.Equal(t, services.Collecting, ledger.State())
	})

	t.Run("should fail on double commit", func(t *testing.T) {
		registry, _ := newTestRegistry(t)
		sessionID := openSession(t, registry)
		applyUpdates(t, registry, sessionID, completeOrderUpdates()...)
		handler := commands.NewCommitOrderCommandHandler(registry)

		cmd, err := commands.NewCommitOrderCommand(sessionID)
		require.NoError(t, err)
		_, err = handler.Handle(ctx, cmd)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)

		assert.ErrorIs(t, err, services.ErrLedgerAlreadyCommitted)
	})

	t.Run("should fail for unknown session", func(t *testing.T) {
		registry, _ := newTestRegistry(t)
		handler := commands.NewCommitOrderCommandHandler(registry)

		cmd, err := commands.NewCommitOrderCommand(kernel.NewUUID())
		require.NoError(t, err)
		_, err = handler.Handle(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should disambiguate same-second commits across sessions", func(t *testing.T) {
		registry, store := newTestRegistry(t)
		handler := commands.NewCommitOrderCommandHandler(registry)

		var ids []string
		for n := 0; n < 2; n++ {
			sessionID := openSession(t, registry)
			applyUpdates(t, registry, sessionID, completeOrderUpdates()...)

			cmd, err := commands.NewCommitOrderCommand(sessionID)
			require.NoError(t, err)
			committed, err := handler.Handle(ctx, cmd)
			require.NoError(t, err)
			ids = append(ids, committed.ID().String())
		}

		assert.NotEqual(t, ids[0], ids[1])
		stored, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, stored, 2)
	})
}
