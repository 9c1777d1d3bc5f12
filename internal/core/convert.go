package core

// convert.go turns validated import rows into catalog entities. Conversion
// assumes the row already passed validation; it normalizes rather than
// re-checks. Enum cells fold to lowercase, buffers parse to optional
// numerics, and blank optional cells become zero values.

import (
	"strings"

	"github.com/mfgdata/masterdata/internal/schema"
)

// ItemFromRow builds an Item from a validated item import row.
func ItemFromRow(row RawRow) (Item, bool) {
	rec, ok := decodeItemRow(row)
	if !ok {
		return Item{}, false
	}

	it := Item{
		ID:               rec.ID.trimmed(),
		InternalItemName: rec.Name.trimmed(),
		TenantID:         rec.TenantID.trimmed(),
		Type:             ItemType(rec.Type.lower()),
		UoM:              UoM(rec.UoM.lower()),
	}
	if desc := cellAt(row, schema.ItemColDescription); !desc.blank() {
		it.ItemDescription = desc.trimmed()
	}
	if v, ok := bufferFromCell(rec.MinBuffer); ok {
		it.MinBuffer = v
	}
	if v, ok := bufferFromCell(rec.MaxBuffer); ok {
		it.MaxBuffer = v
	}
	if b, ok := parseStrictBool(rec.AvgWeightNeeded.Value); ok {
		if b {
			it.AdditionalAttributes.AvgWeightNeeded = "true"
		} else {
			it.AdditionalAttributes.AvgWeightNeeded = "false"
		}
	}
	it.AdditionalAttributes.ScrapType = rec.ScrapType.trimmed()
	return it, true
}

// BoMFromRow builds a BoMEntry from a validated BoM import row.
func BoMFromRow(row RawRow) (BoMEntry, bool) {
	rec, ok := decodeBomRow(row)
	if !ok {
		return BoMEntry{}, false
	}

	qty, _ := parseNumber(rec.Quantity.Value)
	b := BoMEntry{
		ID:          rec.ID.trimmed(),
		ItemID:      rec.ItemID.trimmed(),
		ComponentID: rec.ComponentID.trimmed(),
		Quantity:    qty,
	}
	if uom := cellAt(row, schema.BomColUoM); !uom.blank() {
		b.UoM = UoM(strings.ToLower(uom.trimmed()))
	}
	return b, true
}

// bufferFromCell parses an optional buffer cell into an optional value.
// A blank cell stays unset rather than becoming zero.
func bufferFromCell(c cell) (*float64, bool) {
	if c.blank() {
		return nil, false
	}
	v, ok := parseNumber(c.Value)
	if !ok {
		return nil, false
	}
	return &v, true
}
