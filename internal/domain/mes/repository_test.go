package mes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opscore/internal/core/apperror"
	"opscore/internal/core/entity"
	"opscore/internal/core/state"
	"opscore/internal/core/types"
)

const (
	seedProdOrderID = "prd-1918c0de01-0001"
	steelID         = "itm-1918c0de01-0001"
	bearingID       = "itm-1918c0de01-0002"
	driveUnitID     = "itm-1918c0de01-0004"
	rawLoc          = "loc-1918c0de01-0001"
	wipLoc          = "loc-1918c0de01-0002"
	fgLoc           = "loc-1918c0de01-0003"
)

func findLot(lots []entity.StockLot, itemID, locID string) *entity.StockLot {
	for i := range lots {
		if lots[i].ItemID == itemID && lots[i].LocationID == locID {
			return &lots[i]
		}
	}
	return nil
}

func lotsOf(store *state.Store) []entity.StockLot {
	var out []entity.StockLot
	store.View(func(snap *state.Snapshot) {
		out = append(out, snap.Inventory.StockLots...)
	})
	return out
}

func TestCreateProductionOrderStartsAsDraft(t *testing.T) {
	repo := NewRepository(state.New())
	ctx := context.Background()

	po := repo.CreateProductionOrder(ctx, CreateProductionOrderInput{
		ItemID:  driveUnitID,
		Qty:     types.MustQty("3"),
		DueDate: time.Now().AddDate(0, 0, 7),
	})

	assert.Equal(t, entity.ProductionOrderDraft, po.Status)
	assert.NotEmpty(t, po.ID)
	assert.Nil(t, po.ReleasedAt)
}

func TestReleaseProductionOrderStampsOnce(t *testing.T) {
	repo := NewRepository(state.New())
	ctx := context.Background()

	po := repo.CreateProductionOrder(ctx, CreateProductionOrderInput{ItemID: driveUnitID, Qty: types.MustQty("1")})

	released, err := repo.ReleaseProductionOrder(ctx, po.ID)
	require.NoError(t, err)
	require.NotNil(t, released.ReleasedAt)
	firstStamp := *released.ReleasedAt

	again, err := repo.ReleaseProductionOrder(ctx, po.ID)
	require.NoError(t, err)
	require.NotNil(t, again.ReleasedAt)
	assert.True(t, firstStamp.Equal(*again.ReleasedAt), "ReleasedAt must not be overwritten")
}

func TestReleaseProductionOrderNotFound(t *testing.T) {
	repo := NewRepository(state.New())

	_, err := repo.ReleaseProductionOrder(context.Background(), "prd-missing")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Contains(t, err.Error(), "ProductionOrder prd-missing not found")
}

func TestGenerateWorkOrdersCreatesOnePerOperation(t *testing.T) {
	repo := NewRepository(state.New())
	ctx := context.Background()

	wos, err := repo.GenerateWorkOrders(ctx, seedProdOrderID)
	require.NoError(t, err)
	require.Len(t, wos, 2)

	assert.Equal(t, "op-1918c0de01-0001", wos[0].OpID)
	assert.Equal(t, 10, wos[0].Seq)
	assert.Equal(t, "op-1918c0de01-0002", wos[1].OpID)
	assert.Equal(t, 20, wos[1].Seq)
	for _, wo := range wos {
		assert.Equal(t, entity.WorkOrderPlanned, wo.Status)
		assert.Equal(t, seedProdOrderID, wo.ProductionOrderID)
	}
}

func TestGenerateWorkOrdersIsIdempotent(t *testing.T) {
	repo := NewRepository(state.New())
	ctx := context.Background()

	first, err := repo.GenerateWorkOrders(ctx, seedProdOrderID)
	require.NoError(t, err)
	second, err := repo.GenerateWorkOrders(ctx, seedProdOrderID)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Len(t, repo.ListWorkOrders(ctx), 2)
}

func TestGenerateWorkOrdersMissingRouting(t *testing.T) {
	repo := NewRepository(state.New())
	ctx := context.Background()

	// Steel has no routing.
	po := repo.CreateProductionOrder(ctx, CreateProductionOrderInput{ItemID: steelID, Qty: types.MustQty("1")})

	_, err := repo.GenerateWorkOrders(ctx, po.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Contains(t, err.Error(), "Routing")
}

func TestStartWorkOrder(t *testing.T) {
	repo := NewRepository(state.New())
	ctx := context.Background()

	wos, err := repo.GenerateWorkOrders(ctx, seedProdOrderID)
	require.NoError(t, err)

	started, err := repo.StartWorkOrder(ctx, wos[0].ID, "m.keller")
	require.NoError(t, err)
	assert.Equal(t, entity.WorkOrderInProgress, started.Status)
	assert.Equal(t, "m.keller", started.Assignee)
	require.NotNil(t, started.StartedAt)

	// Empty assignee leaves the existing one in place.
	restarted, err := repo.StartWorkOrder(ctx, wos[0].ID, "")
	require.NoError(t, err)
	assert.Equal(t, "m.keller", restarted.Assignee)
}

func TestCompleteFirstWorkOrderIssuesComponents(t *testing.T) {
	store := state.New()
	repo := NewRepository(store)
	ctx := context.Background()

	wos, err := repo.GenerateWorkOrders(ctx, seedProdOrderID)
	require.NoError(t, err)

	// Order qty 5, BOM: 8 steel + 2 bearings per unit.
	done, err := repo.CompleteWorkOrder(ctx, wos[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.WorkOrderCompleted, done.Status)
	require.NotNil(t, done.FinishedAt)

	lots := lotsOf(store)
	rawSteel := findLot(lots, steelID, rawLoc)
	wipSteel := findLot(lots, steelID, wipLoc)
	wipBearing := findLot(lots, bearingID, wipLoc)
	require.NotNil(t, rawSteel)
	require.NotNil(t, wipSteel)
	require.NotNil(t, wipBearing)

	assert.True(t, rawSteel.Qty.Equal(types.MustQty("460")), "raw steel: %s", rawSteel.Qty)
	assert.True(t, wipSteel.Qty.Equal(types.MustQty("40")), "wip steel: %s", wipSteel.Qty)
	assert.True(t, wipBearing.Qty.Equal(types.MustQty("10")), "wip bearings: %s", wipBearing.Qty)

	// Production order still has an open operation.
	po := repo.ListProductionOrders(ctx)[0]
	assert.Equal(t, entity.ProductionOrderReleased, po.Status)
}

func TestCompleteLastWorkOrderTransfersFinishedGoods(t *testing.T) {
	store := state.New()
	repo := NewRepository(store)
	ctx := context.Background()

	wos, err := repo.GenerateWorkOrders(ctx, seedProdOrderID)
	require.NoError(t, err)

	_, err = repo.CompleteWorkOrder(ctx, wos[0].ID)
	require.NoError(t, err)
	_, err = repo.CompleteWorkOrder(ctx, wos[1].ID)
	require.NoError(t, err)

	lots := lotsOf(store)
	fgDrive := findLot(lots, driveUnitID, fgLoc)
	require.NotNil(t, fgDrive)
	assert.True(t, fgDrive.Qty.Equal(types.MustQty("5")), "fg drive units: %s", fgDrive.Qty)
	assert.Equal(t, entity.LotStatusAvailable, fgDrive.Status)

	// All operations done: the owning order cascades to completed.
	po := repo.ListProductionOrders(ctx)[0]
	assert.Equal(t, entity.ProductionOrderCompleted, po.Status)
}

func TestCompleteWorkOrderOutOfOrderStillCascades(t *testing.T) {
	store := state.New()
	repo := NewRepository(store)
	ctx := context.Background()

	wos, err := repo.GenerateWorkOrders(ctx, seedProdOrderID)
	require.NoError(t, err)

	// Completing the last operation first transfers finished goods even
	// though components were never issued; the wip decrement is dropped.
	_, err = repo.CompleteWorkOrder(ctx, wos[1].ID)
	require.NoError(t, err)

	lots := lotsOf(store)
	fgDrive := findLot(lots, driveUnitID, fgLoc)
	require.NotNil(t, fgDrive)
	assert.True(t, fgDrive.Qty.Equal(types.MustQty("5")))

	po := repo.ListProductionOrders(ctx)[0]
	assert.Equal(t, entity.ProductionOrderReleased, po.Status)

	_, err = repo.CompleteWorkOrder(ctx, wos[0].ID)
	require.NoError(t, err)

	po = repo.ListProductionOrders(ctx)[0]
	assert.Equal(t, entity.ProductionOrderCompleted, po.Status)
}

func TestCompleteWorkOrderNotFound(t *testing.T) {
	repo := NewRepository(state.New())

	_, err := repo.CompleteWorkOrder(context.Background(), "wo-missing")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateWorkOrderStatusAcceptsAnyValue(t *testing.T) {
	repo := NewRepository(state.New())
	ctx := context.Background()

	wos, err := repo.GenerateWorkOrders(ctx, seedProdOrderID)
	require.NoError(t, err)

	wo, err := repo.UpdateWorkOrderStatus(ctx, wos[0].ID, entity.WorkOrderBlocked)
	require.NoError(t, err)
	assert.Equal(t, entity.WorkOrderBlocked, wo.Status)
}

func TestRecordQualityCheckAndNonconformance(t *testing.T) {
	repo := NewRepository(state.New())
	ctx := context.Background()

	qc := repo.RecordQualityCheck(ctx, entity.QualityCheck{
		WorkOrderID: "wo-x",
		Result:      "pass",
		Inspector:   "j.lind",
	})
	assert.NotEmpty(t, qc.ID)
	assert.False(t, qc.CheckedAt.IsZero())

	nc := repo.RaiseNonconformance(ctx, entity.Nonconformance{
		RefType:     entity.RefTypeWorkOrder,
		RefID:       "wo-x",
		Severity:    "minor",
		Description: "Surface scratch beyond tolerance",
	})
	assert.NotEmpty(t, nc.ID)
	assert.Equal(t, "open", nc.Status)
}

func TestAppendMaintenanceLog(t *testing.T) {
	repo := NewRepository(state.New())
	ctx := context.Background()

	mo, err := repo.AppendMaintenanceLog(ctx, "mnt-1918c0de01-0001", "Replaced spindle oil")
	require.NoError(t, err)
	require.Len(t, mo.Log, 2)
	assert.Equal(t, "Replaced spindle oil", mo.Log[1].Entry)

	_, err = repo.AppendMaintenanceLog(ctx, "mnt-missing", "x")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
