// Package store is the catalog source: a thin PostgreSQL layer serving
// item and BoM snapshots and CRUD. It carries no referential constraints
// between items and BoMs; cross-entity rules are enforced by the validation
// core at import time, not by the database.
package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mfgdata/masterdata/internal/core"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Store provides catalog access backed by a pgx pool.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store on the given pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Snapshot is one consistent read of the full catalog, the input every
// validation pass is built from.
type Snapshot struct {
	Items []core.Item
	BoMs  []core.BoMEntry
}

// Snapshot fetches the live items and all BoM entries in one transaction so
// a validation pass never sees a half-updated catalog.
func (s *Store) Snapshot(ctx context.Context) (Snapshot, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return Snapshot{}, fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback(ctx)

	items, err := listItems(ctx, tx, ItemFilter{})
	if err != nil {
		return Snapshot{}, err
	}
	boms, err := listBoMs(ctx, tx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Items: items, BoMs: boms}, nil
}

// withTx runs fn inside a transaction, committing on success.
func (s *Store) withTx(ctx context.Context, fn func(pgx.Tx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
