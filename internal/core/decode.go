package core

// decode.go turns positional raw rows into typed records before validation.
//
// Spreadsheet rows arrive as ordered cell slices; every cell is an untyped
// string. Decoding resolves the fixed layout once, distinguishing "cell is
// absent" (row too short) from "cell is blank", which the validation rules
// treat differently. A row below the layout's structural minimum fails fast
// with a structural error and no further rules run against it.

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mfgdata/masterdata/internal/schema"
)

// numericRegex validates that a string is numeric after cleanup.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// CleanCell removes common spreadsheet artifacts from a cell value:
// trims whitespace, strips an Excel formula prefix (="..."), and
// removes surrounding quotes.
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.Trim(s, `"'`)
}

// parseNumber parses a cell as a float after cleanup.
func parseNumber(s string) (float64, bool) {
	s = CleanCell(s)
	if !numericRegex.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseStrictBool accepts only the literal strings "true" and "false",
// case-insensitively. Anything else, including yes/no and 1/0, is rejected:
// the avg_weight_needed contract is boolean-as-string, not truthiness.
func parseStrictBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// cell holds one decoded cell with its presence flag. Present is false when
// the source row was too short to contain the column at all.
type cell struct {
	Value   string
	Present bool
}

// cellAt reads a positional cell from a row, tolerating short rows.
func cellAt(row RawRow, pos int) cell {
	if pos >= len(row) {
		return cell{}
	}
	return cell{Value: row[pos], Present: true}
}

// itemRecord is an item import row with named fields.
type itemRecord struct {
	ID              cell
	Name            cell
	TenantID        cell
	Type            cell
	UoM             cell
	MinBuffer       cell
	MaxBuffer       cell
	AvgWeightNeeded cell
	ScrapType       cell
}

// decodeItemRow maps a raw row onto the item layout. Returns false when the
// row is below the structural minimum and cannot be decoded.
func decodeItemRow(row RawRow) (itemRecord, bool) {
	if len(row) < schema.ItemLayout.MinColumns {
		return itemRecord{}, false
	}
	return itemRecord{
		ID:              cellAt(row, schema.ItemColID),
		Name:            cellAt(row, schema.ItemColName),
		TenantID:        cellAt(row, schema.ItemColTenantID),
		Type:            cellAt(row, schema.ItemColType),
		UoM:             cellAt(row, schema.ItemColUoM),
		MinBuffer:       cellAt(row, schema.ItemColMinBuffer),
		MaxBuffer:       cellAt(row, schema.ItemColMaxBuffer),
		AvgWeightNeeded: cellAt(row, schema.ItemColAvgWeightNeeded),
		ScrapType:       cellAt(row, schema.ItemColScrapType),
	}, true
}

// bomRecord is a BoM import row with named fields.
type bomRecord struct {
	ID          cell
	ItemID      cell
	ComponentID cell
	Quantity    cell
}

// decodeBomRow maps a raw row onto the BoM layout.
func decodeBomRow(row RawRow) (bomRecord, bool) {
	if len(row) < schema.BomLayout.MinColumns {
		return bomRecord{}, false
	}
	return bomRecord{
		ID:          cellAt(row, schema.BomColID),
		ItemID:      cellAt(row, schema.BomColItemID),
		ComponentID: cellAt(row, schema.BomColComponentID),
		Quantity:    cellAt(row, schema.BomColQuantity),
	}, true
}

// blank reports whether a cell is absent or holds only whitespace.
func (c cell) blank() bool {
	return !c.Present || strings.TrimSpace(c.Value) == ""
}

// trimmed returns the cell value with surrounding whitespace removed.
func (c cell) trimmed() string {
	return strings.TrimSpace(c.Value)
}

// lower returns the cell value trimmed and lowercased, for case-insensitive
// enum comparison.
func (c cell) lower() string {
	return strings.ToLower(strings.TrimSpace(c.Value))
}
