package inventory

import (
	"context"

	"opscore/internal/core/clone"
	"opscore/internal/core/entity"
	"opscore/internal/core/id"
	"opscore/internal/core/state"
	"opscore/pkg/logger"
)

// Repository is the Stock Ledger facade. Every result crosses the deep-copy
// boundary; callers can mutate what they receive without affecting the
// store.
type Repository struct {
	store *state.Store
}

// NewRepository creates the inventory repository over the shared store.
func NewRepository(store *state.Store) *Repository {
	return &Repository{store: store}
}

// --- Reads (never fail) ---

// ListItems returns all items.
func (r *Repository) ListItems(ctx context.Context) []entity.Item {
	var out []entity.Item
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.Inventory.Items)
	})
	return out
}

// ListBoms returns all bills of materials.
func (r *Repository) ListBoms(ctx context.Context) []entity.Bom {
	var out []entity.Bom
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.Inventory.Boms)
	})
	return out
}

// ListWarehouses returns all warehouses.
func (r *Repository) ListWarehouses(ctx context.Context) []entity.Warehouse {
	var out []entity.Warehouse
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.Inventory.Warehouses)
	})
	return out
}

// ListLocations returns all locations.
func (r *Repository) ListLocations(ctx context.Context) []entity.Location {
	var out []entity.Location
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.Inventory.Locations)
	})
	return out
}

// ListStockLots returns all stock lots, consumed ones included.
func (r *Repository) ListStockLots(ctx context.Context) []entity.StockLot {
	var out []entity.StockLot
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.Inventory.StockLots)
	})
	return out
}

// ListStockMoves returns the journal, most recent first.
func (r *Repository) ListStockMoves(ctx context.Context) []entity.StockMove {
	var out []entity.StockMove
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.Inventory.StockMoves)
	})
	return out
}

// --- Mutations ---

// UpsertItem replaces the item with a matching id in place, or assigns a
// fresh id and appends. Returns the stored copy.
func (r *Repository) UpsertItem(ctx context.Context, item entity.Item) entity.Item {
	stored := clone.Of(item)
	_ = r.store.Update(func(snap *state.Snapshot) error {
		inv := &snap.Inventory
		for i := range inv.Items {
			if inv.Items[i].ID == stored.ID {
				inv.Items[i] = stored
				return nil
			}
		}
		stored.ID = id.New("itm")
		inv.Items = append(inv.Items, stored)
		return nil
	})

	logger.Debug(ctx, "item upserted", "item_id", stored.ID, "sku", stored.SKU)
	return clone.Of(stored)
}

// RecordStockMove records one move: from-side decrement, to-side increment,
// journal prepend — one critical section, no partial application visible.
func (r *Repository) RecordStockMove(ctx context.Context, in MoveInput) entity.StockMove {
	var move entity.StockMove
	_ = r.store.Update(func(snap *state.Snapshot) error {
		move = RecordMove(ctx, &snap.Inventory, in)
		return nil
	})

	logger.Info(ctx, "stock move recorded",
		"move_id", move.ID,
		"item_id", move.ItemID,
		"qty", move.Qty.String(),
		"ref_type", move.RefType,
		"ref_id", move.RefID,
	)
	return clone.Of(move)
}

// ReceiveInventory records an inbound receipt and returns the resulting lot.
func (r *Repository) ReceiveInventory(ctx context.Context, in ReceiveInput) entity.StockLot {
	var lot entity.StockLot
	_ = r.store.Update(func(snap *state.Snapshot) error {
		lot, _ = Receive(ctx, &snap.Inventory, in)
		return nil
	})

	logger.Info(ctx, "inventory received",
		"item_id", in.ItemID,
		"location_id", in.LocationID,
		"qty", in.Qty.String(),
	)
	return clone.Of(lot)
}
