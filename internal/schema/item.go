package schema

// Item column positions in the bulk-import layout. The validators read
// cells by these positions; keep them in sync with ItemLayout below.
const (
	ItemColID = iota
	ItemColName
	ItemColTenantID
	ItemColDescription
	ItemColType
	ItemColUoM
	ItemColMinBuffer
	ItemColMaxBuffer
	ItemColCreatedBy
	ItemColLastUpdatedBy
	ItemColCreatedAt
	ItemColUpdatedAt
	ItemColIsDeleted
	ItemColAvgWeightNeeded
	ItemColScrapType
)

// ItemLayout is the fixed import layout for item master rows.
// A row needs at least the first six columns to be decodable.
var ItemLayout = Layout{
	MinColumns: 6,
	Fields: []Field{
		{Name: "id", Pos: ItemColID},
		{Name: "internal_item_name", Pos: ItemColName},
		{Name: "tenant_id", Pos: ItemColTenantID},
		{Name: "item_description", Pos: ItemColDescription},
		{Name: "type", Pos: ItemColType},
		{Name: "uom", Pos: ItemColUoM},
		{Name: "min_buffer", Pos: ItemColMinBuffer},
		{Name: "max_buffer", Pos: ItemColMaxBuffer},
		{Name: "created_by", Pos: ItemColCreatedBy},
		{Name: "last_updated_by", Pos: ItemColLastUpdatedBy},
		{Name: "created_at", Pos: ItemColCreatedAt},
		{Name: "updated_at", Pos: ItemColUpdatedAt},
		{Name: "is_deleted", Pos: ItemColIsDeleted},
		{Name: "avg_weight_needed", Pos: ItemColAvgWeightNeeded},
		{Name: "scrap_type", Pos: ItemColScrapType},
	},
}
