package core

// batch.go applies the row validators across a whole parsed file.
//
// Rows are validated strictly in file order against one shared, mutable
// index, which is what makes intra-file duplicate semantics correct: the
// first occurrence of a key wins as "existing" and later matching rows are
// flagged. The caller owns the index for the duration of the pass and must
// not share it with another pass.

// ValidateItems validates every row of an item import file. When skipHeader
// is true the first row is dropped and row numbers start at 2, so reported
// numbers always match the user's spreadsheet.
func ValidateItems(rows []RawRow, skipHeader bool, ix *Index) []RowResult {
	data := rows
	offset := 1
	if skipHeader {
		if len(data) > 0 {
			data = data[1:]
		}
		offset = 2
	}

	results := make([]RowResult, len(data))
	for i, row := range data {
		v := ValidateItemRow(row, ix)
		results[i] = RowResult{
			Row:       row,
			RowNumber: i + offset,
			IsValid:   v.IsValid,
			Reason:    v.Reason,
		}
	}
	return results
}

// ValidateBoMs validates every row of a BoM import file.
//
// The single-row validator checks combinations but never records them, so
// the batch pass records each clean row's (item_id, component_id) pair here
// before moving on. Later rows in the same file that repeat the pair are
// flagged as duplicates; rows that are already invalid for other reasons do
// not claim their pair.
func ValidateBoMs(rows []RawRow, skipHeader bool, ix *Index) []RowResult {
	data := rows
	offset := 1
	if skipHeader {
		if len(data) > 0 {
			data = data[1:]
		}
		offset = 2
	}

	results := make([]RowResult, len(data))
	for i, row := range data {
		v := ValidateBomRow(row, ix)
		if v.IsValid {
			rec, _ := decodeBomRow(row)
			ix.AddPair(PairKey(rec.ItemID.trimmed(), rec.ComponentID.trimmed()))
		}
		results[i] = RowResult{
			Row:       row,
			RowNumber: i + offset,
			IsValid:   v.IsValid,
			Reason:    v.Reason,
		}
	}
	return results
}

// RevalidateItemRow re-runs the item validator for one edited row and
// replaces its verdict in place. Sibling rows are not re-validated: a fixed
// duplicate may still be flagged on the other row that claimed the key
// first.
func RevalidateItemRow(results []RowResult, index int, row RawRow, ix *Index) (RowResult, bool) {
	if index < 0 || index >= len(results) {
		return RowResult{}, false
	}
	v := ValidateItemRow(row, ix)
	results[index].Row = row
	results[index].IsValid = v.IsValid
	results[index].Reason = v.Reason
	return results[index], true
}

// RevalidateBomRow re-runs the BoM validator for one edited row and
// replaces its verdict in place.
func RevalidateBomRow(results []RowResult, index int, row RawRow, ix *Index) (RowResult, bool) {
	if index < 0 || index >= len(results) {
		return RowResult{}, false
	}
	v := ValidateBomRow(row, ix)
	results[index].Row = row
	results[index].IsValid = v.IsValid
	results[index].Reason = v.Reason
	return results[index], true
}

// AllValid reports whether every row in a batch validated clean. Upload
// commit is all-or-nothing: a single invalid row blocks the whole batch.
func AllValid(results []RowResult) bool {
	for _, r := range results {
		if !r.IsValid {
			return false
		}
	}
	return true
}

// InvalidRows returns the rows that failed validation, in file order.
func InvalidRows(results []RowResult) []RowResult {
	var out []RowResult
	for _, r := range results {
		if !r.IsValid {
			out = append(out, r)
		}
	}
	return out
}
