package core

// bom_validation.go holds the row-level rules for Bill of Materials imports.
//
// Unlike the item validator, a single BoM validate call never mutates the
// index: the duplicate-combination set only grows at the batch layer, after
// a row has validated clean (see batch.go). Each single call is therefore
// independent and idempotent.

import (
	"fmt"
	"strings"
)

// Validation messages for BoM rows.
const (
	msgBomInsufficientColumns = "Insufficient data columns for Bill of Materials"
	msgBomDuplicateID         = "Duplicate ID found"
	msgBomIDsRequired         = "Both Item ID and Component ID are required"
	msgBomQuantityNaN         = "Quantity must be a valid number"
	msgBomDuplicatePair       = "Duplicate combination of item_id and component_id"
	msgBomUnknownItems        = "BoM cannot be created for items not created yet"
	msgBomSellComponent       = "Sell item cannot be a component in BoM"
	msgBomPurchaseParent      = "Purchase item cannot be item_id in BoM"
	msgBomComponentIDs        = "Component items require both item_id and component_id"
)

// ValidateBomRow validates one BoM import row against the catalog index.
// All rules run; messages are joined with ", ".
func ValidateBomRow(row RawRow, ix *Index) Verdict {
	rec, ok := decodeBomRow(row)
	if !ok {
		return Verdict{IsValid: false, Reason: msgBomInsufficientColumns}
	}

	var errs []string

	if ix.HasBomID(rec.ID.trimmed()) {
		errs = append(errs, msgBomDuplicateID)
	}

	itemID := rec.ItemID.trimmed()
	componentID := rec.ComponentID.trimmed()

	if itemID == "" || componentID == "" {
		errs = append(errs, msgBomIDsRequired)
	}

	if rec.Quantity.blank() {
		errs = append(errs, msgBomQuantityNaN)
	} else if qty, ok := parseNumber(rec.Quantity.Value); !ok {
		errs = append(errs, msgBomQuantityNaN)
	} else if qty < MinQuantity || qty > MaxQuantity {
		errs = append(errs, fmt.Sprintf("Quantity must be a number between %d and %d", MinQuantity, MaxQuantity))
	}

	if ix.HasPair(PairKey(itemID, componentID)) {
		errs = append(errs, msgBomDuplicatePair)
	}

	if !ix.HasItem(itemID) || !ix.HasItem(componentID) {
		errs = append(errs, msgBomUnknownItems)
	}

	itemType, _ := ix.TypeOf(itemID)
	componentType, _ := ix.TypeOf(componentID)

	if itemType == TypeSell && componentType == TypeSell {
		errs = append(errs, msgBomSellComponent)
	}

	if itemType == TypePurchase {
		errs = append(errs, msgBomPurchaseParent)
	}

	// Explicit business rule for component parents. Unreachable once the
	// required-IDs rule above has run, but kept as a rule in its own right.
	if itemType == TypeComponent {
		if itemID == "" || componentID == "" {
			errs = append(errs, msgBomComponentIDs)
		}
	}

	if len(errs) > 0 {
		return Verdict{IsValid: false, Reason: strings.Join(errs, ", ")}
	}
	return Verdict{IsValid: true}
}
