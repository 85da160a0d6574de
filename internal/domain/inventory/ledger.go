// Package inventory provides the Stock Ledger: lot-quantity bookkeeping and
// the append-only stock-move journal.
//
// The primitives in this file operate directly on an InventoryState and
// assume the caller already holds the store's critical section. The MES and
// ERP repositories call them from inside their own store updates so that a
// document's ledger effects commit atomically with the document itself.
package inventory

import (
	"context"
	"strings"
	"time"

	"opscore/internal/core/entity"
	"opscore/internal/core/id"
	"opscore/internal/core/state"
	"opscore/internal/core/types"
	"opscore/pkg/logger"
)

// MoveInput describes one stock move to record. Either location side may be
// empty; a move with neither side is a pure audit entry with no lot effect.
type MoveInput struct {
	ItemID         string           `json:"itemId"`
	Qty            types.Quantity   `json:"qty"`
	FromLocationID string           `json:"fromLocationId,omitempty"`
	ToLocationID   string           `json:"toLocationId,omitempty"`
	RefType        string           `json:"refType"`
	RefID          string           `json:"refId"`
	Note           string           `json:"note,omitempty"`
	Status         entity.LotStatus `json:"status,omitempty"`
}

// ReceiveInput describes an inbound receipt into one location.
type ReceiveInput struct {
	ItemID     string         `json:"itemId"`
	Qty        types.Quantity `json:"qty"`
	LocationID string         `json:"locationId"`
	LotNo      string         `json:"lotNo,omitempty"`
	RefType    string         `json:"refType"`
	RefID      string         `json:"refId"`
}

// AdjustLot applies a quantity delta to the lot for (itemID, locationID).
//
// Existing lot: qty becomes round2(max(0, old+delta)); a non-empty status
// overwrites the lot status, but a qty of exactly zero forces consumed.
// Missing lot with positive delta: a new lot is created (status defaults to
// available). Missing lot with non-positive delta: the adjustment is
// ignored — this is a deliberate best-effort policy, surfaced only through
// the diagnostic log below.
func AdjustLot(ctx context.Context, inv *state.InventoryState, itemID, locationID string, delta types.Quantity, status entity.LotStatus) *entity.StockLot {
	for i := range inv.StockLots {
		lot := &inv.StockLots[i]
		if lot.ItemID != itemID || lot.LocationID != locationID {
			continue
		}
		lot.Qty = types.ClampFloor2(lot.Qty.Add(delta))
		if status != "" {
			lot.Status = status
		}
		if lot.Qty.IsZero() {
			lot.Status = entity.LotStatusConsumed
		}
		return lot
	}

	if delta.Sign() > 0 {
		if status == "" {
			status = entity.LotStatusAvailable
		}
		inv.StockLots = append(inv.StockLots, entity.StockLot{
			ID:         id.New("lot"),
			ItemID:     itemID,
			LocationID: locationID,
			LotNo:      id.New("LOT"),
			Qty:        types.Round2(delta),
			Status:     status,
		})
		return &inv.StockLots[len(inv.StockLots)-1]
	}

	logger.Warn(ctx, "stock decrement ignored",
		"item_id", itemID,
		"location_id", locationID,
		"delta", delta.String(),
	)
	return nil
}

// RecordMove is the ledger's core mutation: adjust the from-side down, the
// to-side up, and prepend a journal entry. The journal is the source of
// truth for what physically happened; lot quantities are the derived
// running balances kept in sync here.
func RecordMove(ctx context.Context, inv *state.InventoryState, in MoveInput) entity.StockMove {
	qty := in.Qty.Abs()

	if in.FromLocationID != "" {
		AdjustLot(ctx, inv, in.ItemID, in.FromLocationID, qty.Neg(), "")
	}
	if in.ToLocationID != "" {
		AdjustLot(ctx, inv, in.ItemID, in.ToLocationID, qty, in.Status)
	}

	move := entity.StockMove{
		ID:             id.New("mv"),
		ItemID:         in.ItemID,
		Qty:            qty,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		RefType:        in.RefType,
		RefID:          in.RefID,
		Note:           in.Note,
		CreatedAt:      time.Now().UTC(),
	}

	// Most recent first; entries are never mutated or deleted.
	inv.StockMoves = append([]entity.StockMove{move}, inv.StockMoves...)
	return move
}

// Receive records an inbound move with note "Receipt" and returns the
// resulting lot. A provided lot number overrides the one on the lot.
func Receive(ctx context.Context, inv *state.InventoryState, in ReceiveInput) (entity.StockLot, entity.StockMove) {
	move := RecordMove(ctx, inv, MoveInput{
		ItemID:       in.ItemID,
		Qty:          in.Qty,
		ToLocationID: in.LocationID,
		RefType:      in.RefType,
		RefID:        in.RefID,
		Note:         "Receipt",
	})

	for i := range inv.StockLots {
		lot := &inv.StockLots[i]
		if lot.ItemID == in.ItemID && lot.LocationID == in.LocationID {
			if in.LotNo != "" {
				lot.LotNo = in.LotNo
			}
			return *lot, move
		}
	}

	// Zero-quantity receipt against a missing lot creates nothing.
	return entity.StockLot{}, move
}

// ResolveRole picks the location serving the given role. Order: explicit
// warehouse role mapping, then case-insensitive substring match against the
// location path, then the first configured location. The last fallback keeps
// moves from being dropped when no warehouse follows the naming convention.
func ResolveRole(inv *state.InventoryState, role entity.LocationRole) (string, bool) {
	for _, wh := range inv.Warehouses {
		if locID, ok := wh.RoleLocations[role]; ok && locID != "" {
			return locID, true
		}
	}

	needle := strings.ToLower(string(role))
	for _, loc := range inv.Locations {
		if strings.Contains(strings.ToLower(loc.Path), needle) {
			return loc.ID, true
		}
	}

	if len(inv.Locations) > 0 {
		return inv.Locations[0].ID, true
	}
	return "", false
}

// FindBom returns the first BOM for the produced item, or nil.
func FindBom(inv *state.InventoryState, itemID string) *entity.Bom {
	for i := range inv.Boms {
		if inv.Boms[i].ItemID == itemID {
			return &inv.Boms[i]
		}
	}
	return nil
}
