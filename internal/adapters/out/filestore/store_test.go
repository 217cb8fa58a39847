package filestore_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"barista/internal/adapters/out/filestore"
	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/model/order"
	"barista/internal/core/domain/services"
	"barista/internal/core/ports"
	"barista/internal/pkg/clock"
	"barista/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stampTime = time.Date(2026, 8, 30, 14, 25, 1, 0, time.UTC)

func newTestStore(t *testing.T) *filestore.OrderStore {
	t.Helper()
	store, err := filestore.NewOrderStore(filepath.Join(t.TempDir(), "orders"))
	require.NoError(t, err)
	return store
}

func TestNewOrderStore(t *testing.T) {
	t.Run("should require a directory", func(t *testing.T) {
		_, err := filestore.NewOrderStore("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderStore_EnsureDir(t *testing.T) {
	ctx := context.Background()

	t.Run("should create the directory and be idempotent", func(t *testing.T) {
		store := newTestStore(t)

		require.NoError(t, store.EnsureDir(ctx))
		require.NoError(t, store.EnsureDir(ctx))

		info, err := os.Stat(store.Dir())
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})
}

func TestOrderStore_AtomicCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("should write a record visible under its final name", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.EnsureDir(ctx))
		id := kernel.NewOrderID(stampTime)

		require.NoError(t, store.AtomicCreate(ctx, id, []byte(`{"ok":true}`)))

		exists, err := store.Exists(ctx, id)
		require.NoError(t, err)
		assert.True(t, exists)

		data, err := store.Read(ctx, id)
		require.NoError(t, err)
		assert.JSONEq(t, `{"ok":true}`, string(data))
	})

	t.Run("should refuse to overwrite an existing id", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.EnsureDir(ctx))
		id := kernel.NewOrderID(stampTime)
		require.NoError(t, store.AtomicCreate(ctx, id, []byte("first")))

		err := store.AtomicCreate(ctx, id, []byte("second"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ports.ErrOrderAlreadyExists)

		data, err := store.Read(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "first", string(data))
	})

	t.Run("should leave no temp files behind", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.EnsureDir(ctx))
		id := kernel.NewOrderID(stampTime)

		require.NoError(t, store.AtomicCreate(ctx, id, []byte("data")))

		entries, err := os.ReadDir(store.Dir())
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, id.Filename(), entries[0].Name())
	})

	t.Run("should admit exactly one winner per id under concurrency", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.EnsureDir(ctx))
		id := kernel.NewOrderID(stampTime)

		const writers = 16
		results := make([]error, writers)
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = store.AtomicCreate(ctx, id, []byte("payload"))
			}(i)
		}
		wg.Wait()

		winners := 0
		for _, err := range results {
			if err == nil {
				winners++
			} else {
				assert.ErrorIs(t, err, ports.ErrOrderAlreadyExists)
			}
		}
		assert.Equal(t, 1, winners)
	})
}

func TestOrderStore_Read(t *testing.T) {
	ctx := context.Background()

	t.Run("should report a missing record as not found", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.EnsureDir(ctx))

		_, err := store.Read(ctx, kernel.NewOrderID(stampTime))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrderStore_List(t *testing.T) {
	ctx := context.Background()

	t.Run("should return nothing for a missing directory", func(t *testing.T) {
		store := newTestStore(t)

		ids, err := store.List(ctx)

		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("should list records sorted with suffixes in numeric order", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.EnsureDir(ctx))

		base := kernel.NewOrderID(stampTime)
		later := kernel.NewOrderID(stampTime.Add(time.Minute))
		for _, id := range []kernel.OrderID{later, base.WithSuffix(2), base, base.WithSuffix(10)} {
			require.NoError(t, store.AtomicCreate(ctx, id, []byte("{}")))
		}

		ids, err := store.List(ctx)

		require.NoError(t, err)
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = id.String()
		}
		assert.Equal(t, []string{
			"order_20260830_142501",
			"order_20260830_142501_2",
			"order_20260830_142501_10",
			"order_20260830_142601",
		}, names)
	})

	t.Run("should skip foreign files", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.EnsureDir(ctx))
		require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "README.md"), []byte("docs"), 0o644))
		require.NoError(t, store.AtomicCreate(ctx, kernel.NewOrderID(stampTime), []byte("{}")))

		ids, err := store.List(ctx)

		require.NoError(t, err)
		assert.Len(t, ids, 1)
	})
}

// Two ledgers committing within the same wall-clock second to the same
// directory must never produce the same file, and both records must be
// independently recoverable with their content intact.
func TestSameSecondCommitsAgainstRealStore(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	fixed := clock.NewFixed(stampTime)

	newCommittedLedger := func(name string) *services.OrderLedger {
		ledger, err := services.NewOrderLedger(store, fixed)
		require.NoError(t, err)
		for _, update := range []order.Update{
			{ItemType: strptr("latte")},
			{Size: strptr("medium")},
			{Modifier: strptr("oat milk")},
			{SubmitterName: &name},
		} {
			_, err = ledger.Update(update)
			require.NoError(t, err)
		}
		return ledger
	}

	first := newCommittedLedger("Alex")
	second := newCommittedLedger("Sam")

	o1, err := first.Commit(ctx)
	require.NoError(t, err)
	o2, err := second.Commit(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, o1.ID().String(), o2.ID().String())

	for _, committed := range []*order.Order{o1, o2} {
		data, err := store.Read(ctx, committed.ID())
		require.NoError(t, err)

		parsed, err := order.ParseOrder(committed.ID(), data)
		require.NoError(t, err)
		assert.Equal(t, committed.SubmitterName(), parsed.SubmitterName())

		expected, err := json.Marshal(committed)
		require.NoError(t, err)
		assert.JSONEq(t, string(expected), string(data))
	}
}

func strptr(s string) *string {
	return &s
}
