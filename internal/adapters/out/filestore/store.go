// Package filestore implements the order store on the local filesystem.
// Each committed order is one JSON file in a caller-supplied directory,
// named after its OrderID.
//
// Writes go through a temporary file in the same directory followed by a
// rename, so a crash mid-write never leaves a partially written record
// visible under its final name. Creation of a given id is exclusive: the
// check-and-reserve sequence runs under a store-level mutex, so two commits
// racing for the same id resolve deterministically and one of them receives
// ports.ErrOrderAlreadyExists to retry with the next suffix.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/ports"
	"barista/internal/pkg/errs"
)

// OrderStore persists committed orders as JSON files under dir.
// Implements ports.OrderStore. Safe for concurrent use.
type OrderStore struct {
	dir string
	mu  sync.Mutex
}

// NewOrderStore creates a store rooted at the given directory. The directory
// is created lazily by EnsureDir before the first write.
func NewOrderStore(dir string) (*OrderStore, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("orders directory")
	}
	return &OrderStore{dir: dir}, nil
}

// Dir returns the storage directory.
func (s *OrderStore) Dir() string {
	return s.dir
}

// EnsureDir creates the orders directory if absent. Idempotent.
func (s *OrderStore) EnsureDir(_ context.Context) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", s.dir, err)
	}
	return nil
}

// Exists reports whether a record with the given id is already present.
func (s *OrderStore) Exists(_ context.Context, id kernel.OrderID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	_, err := os.Stat(filepath.Join(s.dir, id.Filename()))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", id.Filename(), err)
}

// AtomicCreate durably writes a new record under the given id. Fails with
// ports.ErrOrderAlreadyExists when the id is taken. The record is written to
// a temporary file, synced, and renamed into place, so it becomes visible
// under its final name all at once or not at all.
func (s *OrderStore) AtomicCreate(ctx context.Context, id kernel.OrderID, data []byte) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	taken, err := s.Exists(ctx, id)
	if err != nil {
		return err
	}
	if taken {
		return ports.ErrOrderAlreadyExists
	}

	tmp, err := os.CreateTemp(s.dir, id.String()+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp record: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write record: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync record: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close record: %w", err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(s.dir, id.Filename())); err != nil {
		return fmt.Errorf("rename record into place: %w", err)
	}
	return nil
}

// List returns the ids of all committed records, sorted ascending. Files
// that do not match the order naming scheme (including in-flight temp
// files) are skipped. A missing directory reads as an empty store.
func (s *OrderStore) List(_ context.Context) ([]kernel.OrderID, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read orders directory: %w", err)
	}

	ids := make([]kernel.OrderID, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, err := kernel.OrderIDFromFilename(entry.Name())
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		base1, base2 := ids[i].WithSuffix(0).String(), ids[j].WithSuffix(0).String()
		if base1 != base2 {
			return base1 < base2
		}
		return ids[i].Suffix() < ids[j].Suffix()
	})
	return ids, nil
}

// Read returns the raw bytes of a committed record.
func (s *OrderStore) Read(_ context.Context, id kernel.OrderID) ([]byte, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, id.Filename()))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	if err != nil {
		return nil, fmt.Errorf("read record %s: %w", id.Filename(), err)
	}
	return data, nil
}
