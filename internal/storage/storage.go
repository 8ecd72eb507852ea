// Package storage defines the snapshot persistence contract consumed by the
// service: load the last snapshot at startup, save one after mutations.
package storage

import (
	"context"

	"github.com/haushalt/ledger/internal/ledger"
)

// SnapshotStore persists complete ledger snapshots. Load reports found=false on
// a first run with nothing persisted yet; that is not an error.
type SnapshotStore interface {
	Load(ctx context.Context) (snap ledger.Snapshot, found bool, err error)
	Save(ctx context.Context, snap ledger.Snapshot) error
}
