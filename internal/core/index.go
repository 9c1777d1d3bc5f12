package core

// index.go builds the Catalog Index: the in-memory lookup structures every
// validator runs against. The index is derived from one immutable catalog
// snapshot and is rebuilt whenever the snapshot changes.
//
// Two of the sets are mutable within a validation pass: the
// item name keys and the BoM pair keys absorb each clean row as the batch
// is scanned, so later rows in the same file detect duplicates against
// earlier ones, not just against the pre-existing catalog. Because of that
// mutation, an Index must be exclusively owned by a single pass. Callers
// validating concurrently must each work on their own Clone.

import "strings"

// Index holds fast lookups over one catalog snapshot.
type Index struct {
	typeByID map[string]ItemType
	nameKeys map[string]struct{}
	bomPairs map[string]struct{}
	bomIDs   map[string]struct{}
}

// NameKey builds the composite uniqueness key for an item name within a
// tenant. Names are compared case-insensitively.
func NameKey(name, tenantID string) string {
	return strings.ToLower(name) + "-" + tenantID
}

// PairKey builds the composite uniqueness key for a BoM combination.
func PairKey(itemID, componentID string) string {
	return itemID + "-" + componentID
}

// NewIndex builds an Index from the current catalog in O(len(items)+len(boms)).
// Soft-deleted items are excluded, matching what the catalog source serves.
func NewIndex(items []Item, boms []BoMEntry) *Index {
	ix := &Index{
		typeByID: make(map[string]ItemType, len(items)),
		nameKeys: make(map[string]struct{}, len(items)),
		bomPairs: make(map[string]struct{}, len(boms)),
		bomIDs:   make(map[string]struct{}, len(boms)),
	}
	for _, it := range items {
		if it.IsDeleted {
			continue
		}
		ix.typeByID[it.ID] = it.Type
		ix.nameKeys[NameKey(it.InternalItemName, it.TenantID)] = struct{}{}
	}
	for _, b := range boms {
		ix.bomPairs[PairKey(b.ItemID, b.ComponentID)] = struct{}{}
		ix.bomIDs[b.ID] = struct{}{}
	}
	return ix
}

// Clone returns a deep copy. Each validation pass mutates its own copy's
// duplicate sets, so passes never contaminate each other.
func (ix *Index) Clone() *Index {
	c := &Index{
		typeByID: make(map[string]ItemType, len(ix.typeByID)),
		nameKeys: make(map[string]struct{}, len(ix.nameKeys)),
		bomPairs: make(map[string]struct{}, len(ix.bomPairs)),
		bomIDs:   make(map[string]struct{}, len(ix.bomIDs)),
	}
	for k, v := range ix.typeByID {
		c.typeByID[k] = v
	}
	for k := range ix.nameKeys {
		c.nameKeys[k] = struct{}{}
	}
	for k := range ix.bomPairs {
		c.bomPairs[k] = struct{}{}
	}
	for k := range ix.bomIDs {
		c.bomIDs[k] = struct{}{}
	}
	return c
}

// HasItem reports whether an item with the given ID exists in the catalog.
func (ix *Index) HasItem(id string) bool {
	_, ok := ix.typeByID[id]
	return ok
}

// TypeOf returns the type of the item with the given ID, if it exists.
func (ix *Index) TypeOf(id string) (ItemType, bool) {
	t, ok := ix.typeByID[id]
	return t, ok
}

// HasNameKey reports whether a name+tenant key is already taken.
func (ix *Index) HasNameKey(key string) bool {
	_, ok := ix.nameKeys[key]
	return ok
}

// AddNameKey records a name+tenant key so later rows in the same pass see it.
func (ix *Index) AddNameKey(key string) {
	ix.nameKeys[key] = struct{}{}
}

// HasPair reports whether an (item_id, component_id) combination exists.
func (ix *Index) HasPair(key string) bool {
	_, ok := ix.bomPairs[key]
	return ok
}

// AddPair records an (item_id, component_id) combination for the current pass.
func (ix *Index) AddPair(key string) {
	ix.bomPairs[key] = struct{}{}
}

// HasBomID reports whether a BoM entry with the given ID exists.
func (ix *Index) HasBomID(id string) bool {
	_, ok := ix.bomIDs[id]
	return ok
}
