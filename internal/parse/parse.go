// Package parse converts uploaded spreadsheet files into ordered rows of
// raw cell values. It is the file-format boundary: the validation core
// never touches bytes, only the [][]cell output produced here.
//
// CSV is read leniently: ragged rows are allowed, since the structural
// column check belongs to the validators, not the parser. XLSX is read via
// excelize from the first sheet.
package parse

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mfgdata/masterdata/internal/core"
)

// ErrUnsupportedFormat is returned for file extensions this parser does not
// understand.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// utf8BOM is stripped from the head of CSV input; Excel exports carry it.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Rows parses an uploaded file into raw rows based on its extension.
// Supported: .csv, .xlsx.
func Rows(fileName string, r io.Reader) ([]core.RawRow, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return CSV(r)
	case ".xlsx":
		return XLSX(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(fileName))
	}
}

// CSV reads comma-separated input into raw rows. Rows keep their original
// cell counts; no padding or truncation happens here.
func CSV(r io.Reader) ([]core.RawRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1 // ragged rows are the validators' problem
	reader.TrimLeadingSpace = true

	var rows []core.RawRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		rows = append(rows, core.RawRow(record))
	}
	return rows, nil
}

// XLSX reads the first sheet of an Excel workbook into raw rows. Cell
// values come back as excelize's formatted strings, matching what the user
// sees in the spreadsheet.
func XLSX(r io.Reader) ([]core.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, errors.New("workbook has no sheets")
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	rows := make([]core.RawRow, len(records))
	for i, record := range records {
		rows[i] = core.RawRow(record)
	}
	return rows, nil
}

// WriteXLSX serializes a header and data rows into a single-sheet workbook.
// Used for error-report downloads and import templates.
func WriteXLSX(w io.Writer, sheetName string, header []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	const defaultSheet = "Sheet1"
	if sheetName != defaultSheet {
		f.SetSheetName(defaultSheet, sheetName)
	}

	if err := setRow(f, sheetName, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheetName, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", rowNum, err)
	}
	return nil
}
