package schema

// BoM column positions in the bulk-import layout.
const (
	BomColID = iota
	BomColItemID
	BomColComponentID
	BomColQuantity
	BomColUoM
)

// BomLayout is the fixed import layout for Bill of Materials rows.
// A row needs at least id, item_id and component_id to be decodable.
var BomLayout = Layout{
	MinColumns: 3,
	Fields: []Field{
		{Name: "id", Pos: BomColID},
		{Name: "item_id", Pos: BomColItemID},
		{Name: "component_id", Pos: BomColComponentID},
		{Name: "quantity", Pos: BomColQuantity},
		{Name: "uom", Pos: BomColUoM},
	},
}
