package core

// item_validation.go holds the row-level rules for item master imports.
//
// Every rule runs and every violated rule contributes its message to the
// verdict; only the structural column-count check short-circuits, since no
// other rule can read a row that thin. Bad data never produces a Go error,
// only an invalid verdict.

import (
	"fmt"
	"strings"
)

// Validation messages for item rows. Kept as exact strings because the
// error report and the inline row editor surface them to users verbatim.
const (
	msgItemInsufficientColumns = "Insufficient data columns"
	msgItemAlreadyExists       = "Already exist"
	msgItemNameMandatory       = "Internal item name is mandatory"
	msgAvgWeightBool           = "Avg weight needed must be a boolean"
	msgScrapTypeMandatory      = "Scrap type is mandatory for sell type items"
	msgMinBufferMandatory      = "Minimum buffer is mandatory for sell and purchase types and cannot be negative"
	msgMaxBufferInvalid        = "Maximum buffer must be greater than or equal to minimum buffer and cannot be negative"
)

// ValidateItemRow validates one item import row against the catalog index.
//
// On a successful name-uniqueness check the row's name+tenant key is added
// to the index, so later rows in the same pass detect duplicates against
// this row, not just against the pre-existing catalog. That mutation makes
// the validator non-idempotent: re-running the identical call against the
// same index reports the row's own key as a duplicate.
func ValidateItemRow(row RawRow, ix *Index) Verdict {
	rec, ok := decodeItemRow(row)
	if !ok {
		return Verdict{IsValid: false, Reason: msgItemInsufficientColumns}
	}

	var errs []string

	var missing []string
	if rec.ID.blank() {
		missing = append(missing, "id")
	}
	if rec.TenantID.blank() {
		missing = append(missing, "tenant_id")
	}
	if rec.UoM.blank() {
		missing = append(missing, "uom")
	}
	if !rec.AvgWeightNeeded.Present {
		missing = append(missing, "avg_weight_needed")
	}
	if len(missing) > 0 {
		errs = append(errs, "Missing mandatory fields: "+strings.Join(missing, ", "))
	}

	// The incoming id must not collide with an existing item id. This
	// conflates "item already created" with "row re-imported"; the catalog
	// has no separate import-row identity, so the item id is the identity.
	if ix.HasItem(rec.ID.trimmed()) {
		errs = append(errs, msgItemAlreadyExists)
	}

	name := rec.Name.trimmed()
	if name == "" {
		errs = append(errs, msgItemNameMandatory)
	}

	nameKey := NameKey(name, rec.TenantID.trimmed())
	if ix.HasNameKey(nameKey) {
		errs = append(errs, fmt.Sprintf("Item with internal item name '%s' already exists for tenant %s", name, rec.TenantID.trimmed()))
	} else {
		ix.AddNameKey(nameKey)
	}

	itemType := ItemType(rec.Type.lower())
	if !validItemType(itemType) {
		errs = append(errs, fmt.Sprintf("Invalid type. Must be one of: %s", joinItemTypes()))
	}

	if !validUoM(UoM(rec.UoM.lower())) {
		errs = append(errs, fmt.Sprintf("Invalid UoM. Must be one of: %s", joinUoMs()))
	}

	if _, ok := parseStrictBool(rec.AvgWeightNeeded.Value); !ok {
		errs = append(errs, msgAvgWeightBool)
	}

	if itemType == TypeSell && rec.ScrapType.blank() {
		errs = append(errs, msgScrapTypeMandatory)
	}

	if itemType != TypeComponent {
		minVal, minOK := bufferValue(rec.MinBuffer)
		maxVal, maxOK := bufferValue(rec.MaxBuffer)

		if !rec.MinBuffer.Present || !minOK || minVal < 0 {
			errs = append(errs, msgMinBufferMandatory)
		}
		if minOK && maxOK && (maxVal < 0 || maxVal < minVal) {
			errs = append(errs, msgMaxBufferInvalid)
		}
	}

	if len(errs) > 0 {
		return Verdict{IsValid: false, Reason: strings.Join(errs, ". ")}
	}
	return Verdict{IsValid: true}
}

// bufferValue interprets a buffer cell. A blank cell counts as zero; only a
// present, non-numeric value fails to parse.
func bufferValue(c cell) (float64, bool) {
	if c.blank() {
		return 0, true
	}
	return parseNumber(c.Value)
}

func validItemType(t ItemType) bool {
	for _, v := range ItemTypes {
		if t == v {
			return true
		}
	}
	return false
}

func validUoM(u UoM) bool {
	for _, v := range UoMs {
		if u == v {
			return true
		}
	}
	return false
}

func joinItemTypes() string {
	parts := make([]string, len(ItemTypes))
	for i, t := range ItemTypes {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}

func joinUoMs() string {
	parts := make([]string, len(UoMs))
	for i, u := range UoMs {
		parts[i] = string(u)
	}
	return strings.Join(parts, ", ")
}
