// Package entity provides the domain entities held by the enterprise state
// store. Entities are plain serializable structs; every instance handed to a
// caller is a deep copy, so none of them carry behavior that depends on
// identity.
package entity

import (
	"time"

	"opscore/internal/core/types"
)

// ItemType classifies an item by its role in production.
type ItemType string

const (
	ItemTypeRaw         ItemType = "raw"
	ItemTypeSubassembly ItemType = "subassembly"
	ItemTypeFinished    ItemType = "finished"
	ItemTypeService     ItemType = "service"
)

// Item is a stock-keeping unit. Identity is immutable; attributes change
// via upsert.
type Item struct {
	ID   string   `json:"id"`
	SKU  string   `json:"sku"`
	Name string   `json:"name"`
	UOM  string   `json:"uom"`
	Type ItemType `json:"type"`

	UnitCost types.Money `json:"unitCost"`
}

// BomLine is one component requirement per unit of the produced item.
type BomLine struct {
	ComponentItemID string         `json:"componentItemId"`
	Qty             types.Quantity `json:"qty"`
}

// Bom maps one produced item to its ordered component lines.
// One active BOM per produced item is assumed; the first match wins.
type Bom struct {
	ID     string    `json:"id"`
	ItemID string    `json:"itemId"`
	Lines  []BomLine `json:"lines"`
}

// LocationRole names the semantic role a location plays in production flow.
type LocationRole string

const (
	RoleRaw LocationRole = "raw"
	RoleWip LocationRole = "wip"
	RoleFg  LocationRole = "fg"
)

// Warehouse groups locations. RoleLocations is the explicit role mapping
// consulted before any path heuristic.
type Warehouse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`

	RoleLocations map[LocationRole]string `json:"roleLocations,omitempty"`
}

// Location is a storage position inside exactly one warehouse, identified
// by a human-readable hierarchical path.
type Location struct {
	ID          string `json:"id"`
	WarehouseID string `json:"warehouseId"`
	Path        string `json:"path"`
}

// LotStatus is the lifecycle status of a stock lot.
type LotStatus string

const (
	LotStatusAvailable   LotStatus = "available"
	LotStatusReserved    LotStatus = "reserved"
	LotStatusConsumed    LotStatus = "consumed"
	LotStatusQuarantined LotStatus = "quarantined"
	LotStatusInTransit   LotStatus = "in-transit"
)

// StockLot is the running quantity balance for one (item, location) pair.
// At most one lot exists per pair; quantity is kept >= 0 and rounded to
// 2 decimal places. A lot that reaches exactly zero becomes consumed but is
// never deleted.
type StockLot struct {
	ID         string         `json:"id"`
	ItemID     string         `json:"itemId"`
	LocationID string         `json:"locationId"`
	LotNo      string         `json:"lotNo"`
	Qty        types.Quantity `json:"qty"`
	Status     LotStatus      `json:"status"`
}

// Reference document kinds recorded on stock moves.
const (
	RefTypeWorkOrder     = "WorkOrder"
	RefTypePurchaseOrder = "PurchaseOrder"
	RefTypeSalesOrder    = "SalesOrder"
	RefTypeAdjustment    = "Adjustment"
)

// StockMove is an immutable journal entry recording one physical quantity
// transfer. Quantity is always a positive magnitude; either location side
// may be absent. The journal is most-recent-first and never mutated.
type StockMove struct {
	ID             string         `json:"id"`
	ItemID         string         `json:"itemId"`
	Qty            types.Quantity `json:"qty"`
	FromLocationID string         `json:"fromLocationId,omitempty"`
	ToLocationID   string         `json:"toLocationId,omitempty"`
	RefType        string         `json:"refType"`
	RefID          string         `json:"refId"`
	Note           string         `json:"note,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}
