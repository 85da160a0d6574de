package dto

// UpsertItemRequest creates or replaces an item.
type UpsertItemRequest struct {
	ID       string  `json:"id"`
	SKU      string  `json:"sku" binding:"required"`
	Name     string  `json:"name" binding:"required"`
	UOM      string  `json:"uom"`
	Type     string  `json:"type" binding:"required"`
	UnitCost float64 `json:"unitCost"`
}

// RecordStockMoveRequest records one ledger move. Either location side may
// be omitted; a move with neither side is a pure audit entry.
type RecordStockMoveRequest struct {
	ItemID         string  `json:"itemId" binding:"required"`
	Qty            float64 `json:"qty"`
	FromLocationID string  `json:"fromLocationId"`
	ToLocationID   string  `json:"toLocationId"`
	RefType        string  `json:"refType" binding:"required"`
	RefID          string  `json:"refId" binding:"required"`
	Note           string  `json:"note"`
	Status         string  `json:"status"`
}

// ReceiveInventoryRequest records an inbound receipt.
type ReceiveInventoryRequest struct {
	ItemID     string  `json:"itemId" binding:"required"`
	Qty        float64 `json:"qty"`
	LocationID string  `json:"locationId" binding:"required"`
	LotNo      string  `json:"lotNo"`
	RefType    string  `json:"refType" binding:"required"`
	RefID      string  `json:"refId" binding:"required"`
}
