package parse

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestCSV(t *testing.T) {
	input := "id,internal_item_name,tenant_id\n1,Bolt,2\n2,Nut,2\n"
	rows, err := CSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if !reflect.DeepEqual([]string(rows[1]), []string{"1", "Bolt", "2"}) {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestCSV_StripsBOM(t *testing.T) {
	input := "\xEF\xBB\xBFid,name\n1,Bolt\n"
	rows, err := CSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if rows[0][0] != "id" {
		t.Errorf("first cell = %q, BOM not stripped", rows[0][0])
	}
}

func TestCSV_RaggedRows(t *testing.T) {
	input := "1,Bolt,2,,sell,kgs\n2,Nut\n"
	rows, err := CSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ragged rows must parse: %v", err)
	}
	if len(rows[0]) != 6 || len(rows[1]) != 2 {
		t.Errorf("row widths = %d,%d, want 6,2", len(rows[0]), len(rows[1]))
	}
}

func TestRows_UnsupportedFormat(t *testing.T) {
	if _, err := Rows("items.pdf", strings.NewReader("")); err == nil {
		t.Error("pdf should be rejected")
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	header := []string{"Row Number", "id", "Error Reason"}
	data := [][]string{{"2", "9", "Duplicate ID found"}}
	if err := WriteXLSX(&buf, "Error Report", header, data); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	rows, err := XLSX(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("XLSX: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if !reflect.DeepEqual([]string(rows[0]), header) {
		t.Errorf("header = %v, want %v", rows[0], header)
	}
	if !reflect.DeepEqual([]string(rows[1]), data[0]) {
		t.Errorf("data row = %v, want %v", rows[1], data[0])
	}
}

func TestWriteXLSX_SheetName(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, "Error Report", []string{"a"}, nil); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()
	if got := f.GetSheetName(0); got != "Error Report" {
		t.Errorf("sheet name = %q", got)
	}
}
