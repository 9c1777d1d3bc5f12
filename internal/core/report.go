package core

// report.go projects invalid rows into the downloadable error report.
// The projection is pure tabular data; serializing it to a file format is
// the caller's concern.

import "strconv"

// ErrorReportHeader returns the header row for an error report over the
// given schema fields: row provenance first, then one column per field,
// then the reason.
func ErrorReportHeader(schemaFields []string) []string {
	header := make([]string, 0, len(schemaFields)+2)
	header = append(header, "Row Number")
	header = append(header, schemaFields...)
	header = append(header, "Error Reason")
	return header
}

// BuildErrorReport maps each invalid row onto the schema fields by
// position. Cells beyond the row's length render empty; a missing reason
// falls back to a placeholder rather than an empty cell.
func BuildErrorReport(invalid []RowResult, schemaFields []string) [][]string {
	rows := make([][]string, 0, len(invalid))
	for _, r := range invalid {
		row := make([]string, 0, len(schemaFields)+2)
		row = append(row, strconv.Itoa(r.RowNumber))
		for i := range schemaFields {
			if i < len(r.Row) {
				row = append(row, r.Row[i])
			} else {
				row = append(row, "")
			}
		}
		reason := r.Reason
		if reason == "" {
			reason = "No reason provided"
		}
		row = append(row, reason)
		rows = append(rows, row)
	}
	return rows
}
