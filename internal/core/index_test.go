package core

import "testing"

func TestNewIndex_Lookups(t *testing.T) {
	items := []Item{
		{ID: "S1", InternalItemName: "Assembly", TenantID: "1", Type: TypeSell},
		{ID: "C1", InternalItemName: "Bracket", TenantID: "1", Type: TypeComponent},
		{ID: "D1", InternalItemName: "Old", TenantID: "1", Type: TypeSell, IsDeleted: true},
	}
	boms := []BoMEntry{{ID: "B1", ItemID: "S1", ComponentID: "C1", Quantity: 2}}

	ix := NewIndex(items, boms)

	if !ix.HasItem("S1") || !ix.HasItem("C1") {
		t.Error("live items should be indexed")
	}
	if ix.HasItem("D1") {
		t.Error("soft-deleted items must not be indexed")
	}
	if typ, ok := ix.TypeOf("C1"); !ok || typ != TypeComponent {
		t.Errorf("TypeOf(C1) = %v,%v", typ, ok)
	}
	if !ix.HasNameKey(NameKey("bracket", "1")) {
		t.Error("name keys are case-folded")
	}
	if !ix.HasPair(PairKey("S1", "C1")) || !ix.HasBomID("B1") {
		t.Error("BoM pairs and ids should be indexed")
	}
}

// Clones must be fully independent: a pass mutating its clone's duplicate
// sets must not leak into the source index or into sibling clones.
func TestIndex_CloneIsolation(t *testing.T) {
	base := NewIndex([]Item{{ID: "1", InternalItemName: "Bolt", TenantID: "2", Type: TypeSell}}, nil)

	a := base.Clone()
	b := base.Clone()

	a.AddNameKey(NameKey("Nut", "2"))
	a.AddPair(PairKey("1", "9"))

	if base.HasNameKey(NameKey("nut", "2")) || b.HasNameKey(NameKey("nut", "2")) {
		t.Error("name key leaked out of clone")
	}
	if base.HasPair(PairKey("1", "9")) || b.HasPair(PairKey("1", "9")) {
		t.Error("pair leaked out of clone")
	}
	if !a.HasNameKey(NameKey("NUT", "2")) {
		t.Error("clone should see its own additions")
	}
}
