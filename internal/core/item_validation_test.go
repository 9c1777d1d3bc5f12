package core

import (
	"strings"
	"testing"
)

// validItemRow returns a 15-column item row that passes every rule against
// an empty catalog. Tests mutate individual cells from here.
func validItemRow() RawRow {
	return RawRow{
		"1",      // id
		"Bolt",   // internal_item_name
		"2",      // tenant_id
		"",       // item_description
		"sell",   // type
		"kgs",    // uom
		"0",      // min_buffer
		"10",     // max_buffer
		"", "", "", "", "", // created_by .. is_deleted
		"true",  // avg_weight_needed
		"metal", // scrap_type
	}
}

func TestValidateItemRow_Valid(t *testing.T) {
	ix := NewIndex(nil, nil)
	v := ValidateItemRow(validItemRow(), ix)
	if !v.IsValid {
		t.Fatalf("expected valid row, got reason %q", v.Reason)
	}
	if v.Reason != "" {
		t.Errorf("valid row must have empty reason, got %q", v.Reason)
	}
}

func TestValidateItemRow_InsufficientColumns(t *testing.T) {
	ix := NewIndex(nil, nil)
	v := ValidateItemRow(RawRow{"1", "Bolt", "2"}, ix)
	if v.IsValid {
		t.Fatal("expected invalid row")
	}
	if v.Reason != "Insufficient data columns" {
		t.Errorf("reason = %q, want structural message", v.Reason)
	}
}

func TestValidateItemRow_MissingMandatoryFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(RawRow) RawRow
		field  string
	}{
		{"missing id", func(r RawRow) RawRow { r[0] = ""; return r }, "id"},
		{"missing tenant_id", func(r RawRow) RawRow { r[2] = ""; return r }, "tenant_id"},
		{"missing uom", func(r RawRow) RawRow { r[5] = ""; return r }, "uom"},
		{"missing avg_weight_needed column", func(r RawRow) RawRow { return r[:13] }, "avg_weight_needed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ix := NewIndex(nil, nil)
			v := ValidateItemRow(tt.mutate(validItemRow()), ix)
			if v.IsValid {
				t.Fatal("expected invalid row")
			}
			if !strings.Contains(v.Reason, "Missing mandatory fields") || !strings.Contains(v.Reason, tt.field) {
				t.Errorf("reason = %q, want missing-field message naming %q", v.Reason, tt.field)
			}
		})
	}
}

func TestValidateItemRow_AccumulatesAllErrors(t *testing.T) {
	row := validItemRow()
	row[0] = ""       // missing id
	row[4] = "resell" // bad type
	row[5] = "tons"   // bad uom

	ix := NewIndex(nil, nil)
	v := ValidateItemRow(row, ix)
	if v.IsValid {
		t.Fatal("expected invalid row")
	}
	for _, want := range []string{"Missing mandatory fields", "Invalid type", "Invalid UoM"} {
		if !strings.Contains(v.Reason, want) {
			t.Errorf("reason %q missing %q", v.Reason, want)
		}
	}
}

func TestValidateItemRow_AlreadyExist(t *testing.T) {
	ix := NewIndex([]Item{{ID: "1", InternalItemName: "Washer", TenantID: "9", Type: TypeSell}}, nil)
	v := ValidateItemRow(validItemRow(), ix)
	if v.IsValid {
		t.Fatal("expected invalid row")
	}
	if !strings.Contains(v.Reason, "Already exist") {
		t.Errorf("reason = %q, want Already exist", v.Reason)
	}
}

func TestValidateItemRow_DuplicateNamePerTenant(t *testing.T) {
	ix := NewIndex([]Item{{ID: "7", InternalItemName: "Bolt", TenantID: "2", Type: TypeSell}}, nil)
	v := ValidateItemRow(validItemRow(), ix)
	if v.IsValid {
		t.Fatal("expected invalid row")
	}
	if !strings.Contains(v.Reason, "already exists for tenant 2") {
		t.Errorf("reason = %q, want tenant duplicate message", v.Reason)
	}

	// Same name under a different tenant is fine.
	row := validItemRow()
	row[2] = "3"
	v = ValidateItemRow(row, NewIndex([]Item{{ID: "7", InternalItemName: "Bolt", TenantID: "2", Type: TypeSell}}, nil))
	if !v.IsValid {
		t.Errorf("different tenant should be valid, got %q", v.Reason)
	}
}

func TestValidateItemRow_NameComparisonIsCaseInsensitive(t *testing.T) {
	ix := NewIndex([]Item{{ID: "7", InternalItemName: "BOLT", TenantID: "2", Type: TypeSell}}, nil)
	v := ValidateItemRow(validItemRow(), ix)
	if v.IsValid {
		t.Fatal("case-folded duplicate name should be invalid")
	}
}

func TestValidateItemRow_TypeAndUoMCaseInsensitive(t *testing.T) {
	row := validItemRow()
	row[4] = "SELL"
	row[5] = "Kgs"
	v := ValidateItemRow(row, NewIndex(nil, nil))
	if !v.IsValid {
		t.Errorf("case-insensitive enums should be valid, got %q", v.Reason)
	}
}

func TestValidateItemRow_AvgWeightNeeded(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"true", true},
		{"FALSE", true},
		{" True ", true},
		{"yes", false},
		{"1", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			row := validItemRow()
			row[13] = tt.value
			v := ValidateItemRow(row, NewIndex(nil, nil))
			got := v.IsValid || !strings.Contains(v.Reason, "Avg weight needed must be a boolean")
			if got != tt.valid {
				t.Errorf("avg_weight_needed=%q: valid=%v reason=%q, want valid=%v", tt.value, v.IsValid, v.Reason, tt.valid)
			}
		})
	}
}

func TestValidateItemRow_ScrapTypeForSell(t *testing.T) {
	row := validItemRow()
	row[14] = ""
	v := ValidateItemRow(row, NewIndex(nil, nil))
	if v.IsValid || !strings.Contains(v.Reason, "Scrap type is mandatory") {
		t.Errorf("sell item without scrap type: valid=%v reason=%q", v.IsValid, v.Reason)
	}

	// Purchase items do not need a scrap type.
	row = validItemRow()
	row[4] = "purchase"
	row[14] = ""
	v = ValidateItemRow(row, NewIndex(nil, nil))
	if !v.IsValid {
		t.Errorf("purchase item without scrap type should be valid, got %q", v.Reason)
	}
}

func TestValidateItemRow_Buffers(t *testing.T) {
	tests := []struct {
		name     string
		min, max string
		itemType string
		valid    bool
		want     string
	}{
		{"max below min", "10", "5", "sell", false, "Maximum buffer"},
		{"max equals min", "5", "5", "sell", true, ""},
		{"negative min", "-1", "5", "sell", false, "Minimum buffer"},
		{"non-numeric min", "abc", "5", "sell", false, "Minimum buffer"},
		{"zero min large max", "0", "100", "purchase", true, ""},
		{"component skips buffers", "", "", "component", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validItemRow()
			row[4] = tt.itemType
			row[6] = tt.min
			row[7] = tt.max
			if tt.itemType != "sell" {
				row[14] = ""
			}
			v := ValidateItemRow(row, NewIndex(nil, nil))
			if v.IsValid != tt.valid {
				t.Fatalf("valid=%v reason=%q, want valid=%v", v.IsValid, v.Reason, tt.valid)
			}
			if tt.want != "" && !strings.Contains(v.Reason, tt.want) {
				t.Errorf("reason = %q, want substring %q", v.Reason, tt.want)
			}
		})
	}
}

// The item validator absorbs a clean row's name key into the index, so the
// exact same call is not idempotent: the second run sees its own key. That
// mutation is what makes intra-file duplicate detection work.
func TestValidateItemRow_NotIdempotent(t *testing.T) {
	ix := NewIndex(nil, nil)
	first := ValidateItemRow(validItemRow(), ix)
	if !first.IsValid {
		t.Fatalf("first run should be valid, got %q", first.Reason)
	}
	second := ValidateItemRow(validItemRow(), ix)
	if second.IsValid {
		t.Fatal("second identical run must flag the absorbed name key as a duplicate")
	}
	if !strings.Contains(second.Reason, "already exists for tenant") {
		t.Errorf("reason = %q, want name duplicate message", second.Reason)
	}
}
