// Package schema is the registry of import layouts: ordered field-name to
// column-position mappings for each bulk-upload kind. The validation core
// uses the positions and minimum column counts; the error report builder
// and template download use the ordered field names.
package schema

// Field maps one named field to its column position in the import layout.
type Field struct {
	Name string
	Pos  int
}

// Layout describes one import file layout.
type Layout struct {
	Fields []Field
	// MinColumns is the structural lower bound on row width. Rows shorter
	// than this cannot be decoded and fail with a structural error.
	MinColumns int
}

// FieldNames returns the ordered field names of the layout.
func (l Layout) FieldNames() []string {
	names := make([]string, len(l.Fields))
	for i, f := range l.Fields {
		names[i] = f.Name
	}
	return names
}

// Width returns the number of columns the layout spans.
func (l Layout) Width() int {
	w := 0
	for _, f := range l.Fields {
		if f.Pos+1 > w {
			w = f.Pos + 1
		}
	}
	return w
}
