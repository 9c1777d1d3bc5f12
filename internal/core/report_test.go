package core

import (
	"reflect"
	"testing"
)

func TestErrorReportHeader(t *testing.T) {
	got := ErrorReportHeader([]string{"id", "item_id"})
	want := []string{"Row Number", "id", "item_id", "Error Reason"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("header = %v, want %v", got, want)
	}
}

func TestBuildErrorReport(t *testing.T) {
	invalid := []RowResult{
		{Row: RawRow{"9", "S1", "C1", "abc"}, RowNumber: 4, Reason: "Quantity must be a valid number"},
		{Row: RawRow{"10"}, RowNumber: 7}, // short row, no reason recorded
	}
	fields := []string{"id", "item_id", "component_id", "quantity"}

	got := BuildErrorReport(invalid, fields)
	want := [][]string{
		{"4", "9", "S1", "C1", "abc", "Quantity must be a valid number"},
		{"7", "10", "", "", "", "No reason provided"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("report = %v, want %v", got, want)
	}
}

func TestBuildErrorReport_Empty(t *testing.T) {
	if got := BuildErrorReport(nil, []string{"id"}); len(got) != 0 {
		t.Errorf("empty input should yield no rows, got %v", got)
	}
}
