// Package file persists ledger snapshots as a single JSON document on disk.
// It is the default backend for local, single-user deployments.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/haushalt/ledger/internal/ledger"
)

// Store writes the snapshot to a fixed path. Writes go through a temp file and
// rename, so a crash mid-write never corrupts the previous snapshot.
type Store struct {
	path string
}

// New constructs a file store for the given path.
func New(path string) *Store { return &Store{path: path} }

// Load reads the snapshot from disk. A missing file reports found=false.
func (s *Store) Load(_ context.Context) (ledger.Snapshot, bool, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ledger.Snapshot{}, false, nil
		}
		return ledger.Snapshot{}, false, fmt.Errorf("read snapshot: %w", err)
	}
	var snap ledger.Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return ledger.Snapshot{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, true, nil
}

// Save atomically replaces the snapshot file.
func (s *Store) Save(_ context.Context, snap ledger.Snapshot) error {
	b, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}
