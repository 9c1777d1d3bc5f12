package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mfgdata/masterdata/internal/core"
)

const bomColumns = "id, item_id, component_id, quantity, uom"

// ListBoMs returns all BoM entries ordered by id.
func (s *Store) ListBoMs(ctx context.Context) ([]core.BoMEntry, error) {
	return listBoMs(ctx, s.pool)
}

func listBoMs(ctx context.Context, db DBTX) ([]core.BoMEntry, error) {
	rows, err := db.Query(ctx, "SELECT "+bomColumns+" FROM boms ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list boms: %w", err)
	}
	defer rows.Close()

	var boms []core.BoMEntry
	for rows.Next() {
		b, err := scanBoM(rows)
		if err != nil {
			return nil, err
		}
		boms = append(boms, b)
	}
	return boms, rows.Err()
}

// GetBoM returns one BoM entry by id.
func (s *Store) GetBoM(ctx context.Context, id string) (core.BoMEntry, error) {
	row := s.pool.QueryRow(ctx, "SELECT "+bomColumns+" FROM boms WHERE id = $1", id)
	b, err := scanBoM(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return core.BoMEntry{}, ErrNotFound
	}
	return b, err
}

// CreateBoM inserts one BoM entry.
func (s *Store) CreateBoM(ctx context.Context, b core.BoMEntry) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		return insertBoM(ctx, tx, b)
	})
}

// CreateBoMs inserts a validated batch in one transaction, all-or-nothing.
func (s *Store) CreateBoMs(ctx context.Context, boms []core.BoMEntry) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		for _, b := range boms {
			if err := insertBoM(ctx, tx, b); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertBoM(ctx context.Context, db DBTX, b core.BoMEntry) error {
	_, err := db.Exec(ctx, `
		INSERT INTO boms (id, item_id, component_id, quantity, uom)
		VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.ItemID, b.ComponentID, b.Quantity, toText(string(b.UoM)),
	)
	if err != nil {
		return fmt.Errorf("insert bom %s: %w", b.ID, err)
	}
	return nil
}

// UpdateBoM replaces a BoM entry's fields in place.
func (s *Store) UpdateBoM(ctx context.Context, b core.BoMEntry) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE boms SET item_id = $2, component_id = $3, quantity = $4, uom = $5, updated_at = now()
		WHERE id = $1`,
		b.ID, b.ItemID, b.ComponentID, b.Quantity, toText(string(b.UoM)),
	)
	if err != nil {
		return fmt.Errorf("update bom %s: %w", b.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteBoM removes a BoM entry. BoM deletes are hard; nothing references
// a BoM entry by id.
func (s *Store) DeleteBoM(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM boms WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete bom %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBoM(row pgx.Row) (core.BoMEntry, error) {
	var (
		b   core.BoMEntry
		uom pgtype.Text
	)
	if err := row.Scan(&b.ID, &b.ItemID, &b.ComponentID, &b.Quantity, &uom); err != nil {
		return core.BoMEntry{}, err
	}
	b.UoM = core.UoM(uom.String)
	return b, nil
}
