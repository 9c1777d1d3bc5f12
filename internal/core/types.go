// Package core implements the bulk-import validation and reconciliation
// engine for items and Bills of Materials. It has no UI or storage
// dependencies: callers hand it a catalog snapshot and parsed rows, and it
// hands back verdicts.
package core

// ItemType classifies an item's role in manufacturing.
type ItemType string

const (
	TypeSell      ItemType = "sell"
	TypePurchase  ItemType = "purchase"
	TypeComponent ItemType = "component"
)

// ItemTypes lists all valid item types, in the order they are reported
// in validation messages.
var ItemTypes = []ItemType{TypeSell, TypePurchase, TypeComponent}

// UoM is a unit of measure. Input is case-insensitive and normalized
// to the lowercase forms below.
type UoM string

const (
	UoMKgs UoM = "kgs"
	UoMNos UoM = "nos"
)

// UoMs lists all valid units of measure.
var UoMs = []UoM{UoMKgs, UoMNos}

// Quantity bounds for a BoM entry, inclusive.
const (
	MinQuantity = 1
	MaxQuantity = 100
)

// AdditionalAttributes holds the nested attribute map carried by an item.
// AvgWeightNeeded is stored as the string form of a boolean to match the
// upstream catalog contract.
type AdditionalAttributes struct {
	AvgWeightNeeded string `json:"avg_weight_needed"`
	ScrapType       string `json:"scrap_type,omitempty"`
}

// Item is one master-data item. IDs are externally assigned; names are
// unique per tenant.
type Item struct {
	ID                   string               `json:"id"`
	InternalItemName     string               `json:"internal_item_name"`
	TenantID             string               `json:"tenant_id"`
	ItemDescription      string               `json:"item_description,omitempty"`
	Type                 ItemType             `json:"type"`
	UoM                  UoM                  `json:"uom"`
	MinBuffer            *float64             `json:"min_buffer,omitempty"`
	MaxBuffer            *float64             `json:"max_buffer,omitempty"`
	CustomerItemName     string               `json:"customer_item_name,omitempty"`
	AdditionalAttributes AdditionalAttributes `json:"additional_attributes"`
	IsDeleted            bool                 `json:"is_deleted,omitempty"`
}

// BoMEntry pairs a parent item with one required component and a quantity.
// The (ItemID, ComponentID) pair is unique across the whole BoM catalog.
type BoMEntry struct {
	ID          string  `json:"id"`
	ItemID      string  `json:"item_id"`
	ComponentID string  `json:"component_id"`
	Quantity    float64 `json:"quantity"`
	UoM         UoM     `json:"uom,omitempty"`
}

// RawRow is one parsed spreadsheet row: an ordered sequence of cell values
// positioned according to a fixed schema. The parser coerces every cell to
// a string; absent trailing cells are simply not present in the slice.
type RawRow []string

// Verdict is the result of validating one row. Reason is empty when the
// row is valid, otherwise a human-readable concatenation of every failed
// rule, never just the first failure.
type Verdict struct {
	IsValid bool   `json:"isValid"`
	Reason  string `json:"reason"`
}

// RowResult is one row's verdict with provenance back to the source file.
// RowNumber is 1-based and counts the header row when one was skipped, so
// users can map an error straight back to their spreadsheet.
type RowResult struct {
	Row       RawRow `json:"row"`
	RowNumber int    `json:"rowNumber"`
	IsValid   bool   `json:"isValid"`
	Reason    string `json:"reason"`
}

// Severity drives how prominently a pending-setup finding is displayed.
type Severity string

const (
	SeverityHigh Severity = "high"
	SeverityLow  Severity = "low"
)

// Finding is one pending-setup advisory surfaced from the full catalog.
type Finding struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}
