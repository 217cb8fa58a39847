package commands_test

import (
	"path/filepath"
	"testing"
	"time"

	"barista/internal/adapters/out/filestore"
	"barista/internal/adapters/out/inmemory"
	"barista/internal/core/application/usecases/commands"
	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/model/order"
	"barista/internal/pkg/clock"

	"github.com/stretchr/testify/require"
)

var testCommitTime = time.Date(2026, 8, 30, 14, 25, 1, 0, time.UTC)

func newTestRegistry(t *testing.T) (*inmemory.SessionRegistry, *filestore.OrderStore) {
	t.Helper()

	store, err := filestore.NewOrderStore(filepath.Join(t.TempDir(), "orders"))
	require.NoError(t, err)

	registry, err := inmemory.NewSessionRegistry(store, clock.NewFixed(testCommitTime))
	require.NoError(t, err)
	return registry, store
}

func openSession(t *testing.T, registry *inmemory.SessionRegistry) kernel.UUID {
	t.Helper()

	id, err := registry.Open()
	require.NoError(t, err)
	return id
}

func applyUpdates(t *testing.T, registry commands.SessionRegistry, sessionID kernel.UUID, updates ...order.Update) {
	t.Helper()

	ledger, err := registry.Get(sessionID)
	require.NoError(t, err)
	for _, update := range updates {
		_, err = ledger.Update(update)
		require.NoError(t, err)
	}
}

func completeOrderUpdates() []order.Update {
	return []order.Update{
		{ItemType: strptr("latte")},
		{Size: strptr("Medium")},
		{Modifier: strptr("oat milk")},
		{Extras: extrasptr("vanilla syrup")},
		{SubmitterName: strptr("Alex")},
	}
}

func strptr(s string) *string {
	return &s
}

func extrasptr(extras ...string) *[]string {
	return &extras
}
