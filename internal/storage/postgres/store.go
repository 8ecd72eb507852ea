// Package postgres provides a pgx-backed snapshot store. The ledger is an
// in-process data structure; Postgres only holds the latest serialized
// snapshot, one generation per save, in a single-row table.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haushalt/ledger/internal/ledger"
)

const schema = `
create table if not exists snapshots (
    id         int primary key default 1 check (id = 1),
    data       jsonb not null,
    updated_at timestamptz not null default now()
)`

// Store holds a pgx connection pool. All methods are safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string and ensures
// the snapshot table exists. The initial connect is retried with exponential
// backoff so the service can start alongside its database.
func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	ping := func() error { return pool.Ping(ctx) }
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	if err := backoff.Retry(ping, bo); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure snapshot table: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

// Load reads the latest snapshot. An empty table reports found=false.
func (s *Store) Load(ctx context.Context) (ledger.Snapshot, bool, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `select data from snapshots where id = 1`).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ledger.Snapshot{}, false, nil
		}
		return ledger.Snapshot{}, false, fmt.Errorf("load snapshot: %w", err)
	}
	var snap ledger.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return ledger.Snapshot{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, true, nil
}

// Save upserts the snapshot as the single current generation.
func (s *Store) Save(ctx context.Context, snap ledger.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.pool.Exec(ctx, `
        insert into snapshots (id, data, updated_at)
        values (1, $1, $2)
        on conflict (id) do update set data = excluded.data, updated_at = excluded.updated_at
    `, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
