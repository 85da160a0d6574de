package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opscore/internal/core/entity"
	"opscore/internal/core/types"
)

func TestStoreSeedIDsAreStable(t *testing.T) {
	store := New()

	store.View(func(snap *Snapshot) {
		require.Len(t, snap.Inventory.Items, 4)
		assert.Equal(t, "itm-1918c0de01-0001", snap.Inventory.Items[0].ID)
		assert.Equal(t, "prd-1918c0de01-0001", snap.MES.ProductionOrders[0].ID)
		assert.Equal(t, "po-1918c0de01-0001", snap.ERP.PurchaseOrders[0].ID)
		assert.Equal(t, "lot-1918c0de01-0001", snap.Inventory.StockLots[0].ID)
	})
}

func TestStoreResetRestoresSeed(t *testing.T) {
	store := New()

	err := store.Update(func(snap *Snapshot) error {
		snap.Inventory.StockLots[0].Qty = types.MustQty("1")
		snap.Inventory.Items = append(snap.Inventory.Items, entity.Item{ID: "itm-extra", SKU: "X"})
		snap.MES.ProductionOrders[0].Status = entity.ProductionOrderClosed
		return nil
	})
	require.NoError(t, err)

	store.Reset()

	store.View(func(snap *Snapshot) {
		assert.True(t, snap.Inventory.StockLots[0].Qty.Equal(types.MustQty("500")))
		assert.Len(t, snap.Inventory.Items, 4)
		assert.Equal(t, entity.ProductionOrderReleased, snap.MES.ProductionOrders[0].Status)
		assert.Equal(t, "lot-1918c0de01-0001", snap.Inventory.StockLots[0].ID)
	})
}

func TestStoreSeedIsolation(t *testing.T) {
	seed := Seed()
	store := NewWithSeed(seed)

	// Mutating the caller's seed value must not leak into the store.
	seed.Inventory.Items[0].SKU = "TAMPERED"

	store.View(func(snap *Snapshot) {
		assert.Equal(t, "RM-STEEL", snap.Inventory.Items[0].SKU)
	})
}

func TestStoreUpdateErrorKeepsPriorMutations(t *testing.T) {
	store := New()

	err := store.Update(func(snap *Snapshot) error {
		snap.Tasks.Tasks = append(snap.Tasks.Tasks, entity.Task{ID: "tsk-x", Title: "x"})
		return assert.AnError
	})
	require.Error(t, err)

	// No rollback: the append before the failure is visible.
	store.View(func(snap *Snapshot) {
		assert.Len(t, snap.Tasks.Tasks, 3)
	})
}
