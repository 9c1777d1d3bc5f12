package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/mfgdata/masterdata/internal/core"
)

// ErrNotFound is returned when an id does not match any live record.
var ErrNotFound = errors.New("record not found")

const itemColumns = `id, internal_item_name, tenant_id, item_description, type, uom,
	min_buffer, max_buffer, customer_item_name, avg_weight_needed, scrap_type, is_deleted`

// ItemFilter narrows item listings. Zero value lists all live items.
type ItemFilter struct {
	// Search matches internal_item_name case-insensitively as a substring.
	Search string
	// Type restricts to one item type when non-empty.
	Type core.ItemType
	// TenantID restricts to one tenant when non-empty.
	TenantID string
}

// ListItems returns live items matching the filter, ordered by id.
func (s *Store) ListItems(ctx context.Context, filter ItemFilter) ([]core.Item, error) {
	return listItems(ctx, s.pool, filter)
}

func listItems(ctx context.Context, db DBTX, filter ItemFilter) ([]core.Item, error) {
	query := "SELECT " + itemColumns + " FROM items WHERE NOT is_deleted"
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += " AND internal_item_name ILIKE $" + strconv.Itoa(len(args))
	}
	if filter.Type != "" {
		args = append(args, string(filter.Type))
		query += " AND type = $" + strconv.Itoa(len(args))
	}
	if filter.TenantID != "" {
		args = append(args, filter.TenantID)
		query += " AND tenant_id = $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY id"

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []core.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetItem returns one live item by id.
func (s *Store) GetItem(ctx context.Context, id string) (core.Item, error) {
	row := s.pool.QueryRow(ctx,
		"SELECT "+itemColumns+" FROM items WHERE id = $1 AND NOT is_deleted", id)
	it, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return core.Item{}, ErrNotFound
	}
	return it, err
}

// CreateItem inserts one item.
func (s *Store) CreateItem(ctx context.Context, it core.Item) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		return insertItem(ctx, tx, it)
	})
}

// CreateItems inserts a validated batch in one transaction. Commit is
// all-or-nothing: any failure rolls back every row of the upload.
func (s *Store) CreateItems(ctx context.Context, items []core.Item) error {
	return s.withTx(ctx, func(tx pgx.Tx) error {
		for _, it := range items {
			if err := insertItem(ctx, tx, it); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertItem(ctx context.Context, db DBTX, it core.Item) error {
	_, err := db.Exec(ctx, `
		INSERT INTO items (
			id, internal_item_name, tenant_id, item_description, type, uom,
			min_buffer, max_buffer, customer_item_name, avg_weight_needed, scrap_type
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		it.ID,
		it.InternalItemName,
		it.TenantID,
		toText(it.ItemDescription),
		string(it.Type),
		strings.ToLower(string(it.UoM)),
		toNumeric(it.MinBuffer),
		toNumeric(it.MaxBuffer),
		toText(it.CustomerItemName),
		it.AdditionalAttributes.AvgWeightNeeded,
		toText(it.AdditionalAttributes.ScrapType),
	)
	if err != nil {
		return fmt.Errorf("insert item %s: %w", it.ID, err)
	}
	return nil
}

// UpdateItem replaces an item's mutable fields in place.
func (s *Store) UpdateItem(ctx context.Context, it core.Item) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE items SET
			internal_item_name = $2, tenant_id = $3, item_description = $4,
			type = $5, uom = $6, min_buffer = $7, max_buffer = $8,
			customer_item_name = $9, avg_weight_needed = $10, scrap_type = $11,
			updated_at = now()
		WHERE id = $1 AND NOT is_deleted`,
		it.ID,
		it.InternalItemName,
		it.TenantID,
		toText(it.ItemDescription),
		string(it.Type),
		strings.ToLower(string(it.UoM)),
		toNumeric(it.MinBuffer),
		toNumeric(it.MaxBuffer),
		toText(it.CustomerItemName),
		it.AdditionalAttributes.AvgWeightNeeded,
		toText(it.AdditionalAttributes.ScrapType),
	)
	if err != nil {
		return fmt.Errorf("update item %s: %w", it.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItem soft-deletes an item. The id stays reserved; the pending-setup
// analyzer surfaces BoMs that still reference it.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx,
		"UPDATE items SET is_deleted = true, updated_at = now() WHERE id = $1 AND NOT is_deleted", id)
	if err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (core.Item, error) {
	var (
		it          core.Item
		description pgtype.Text
		minBuffer   pgtype.Float8
		maxBuffer   pgtype.Float8
		customer    pgtype.Text
		scrapType   pgtype.Text
	)
	err := row.Scan(
		&it.ID, &it.InternalItemName, &it.TenantID, &description,
		&it.Type, &it.UoM, &minBuffer, &maxBuffer, &customer,
		&it.AdditionalAttributes.AvgWeightNeeded, &scrapType, &it.IsDeleted,
	)
	if err != nil {
		return core.Item{}, err
	}
	it.ItemDescription = description.String
	it.CustomerItemName = customer.String
	it.AdditionalAttributes.ScrapType = scrapType.String
	if minBuffer.Valid {
		v := minBuffer.Float64
		it.MinBuffer = &v
	}
	if maxBuffer.Valid {
		v := maxBuffer.Float64
		it.MaxBuffer = &v
	}
	return it, nil
}

func toText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func toNumeric(f *float64) pgtype.Float8 {
	if f == nil {
		return pgtype.Float8{}
	}
	return pgtype.Float8{Float64: *f, Valid: true}
}
