// Package mes provides the Production Workflow Engine: work-order
// generation and execution against the Stock Ledger, plus quality and
// maintenance bookkeeping.
package mes

import (
	"context"
	"time"

	"opscore/internal/core/apperror"
	"opscore/internal/core/clone"
	"opscore/internal/core/entity"
	"opscore/internal/core/id"
	"opscore/internal/core/state"
	"opscore/internal/core/types"
	"opscore/internal/domain/inventory"
	"opscore/pkg/logger"
)

// Repository is the MES facade over the shared store.
type Repository struct {
	store *state.Store
}

// NewRepository creates the MES repository.
func NewRepository(store *state.Store) *Repository {
	return &Repository{store: store}
}

// --- Reads ---

// ListWorkCenters returns all work centers.
func (r *Repository) ListWorkCenters(ctx context.Context) []entity.WorkCenter {
	var out []entity.WorkCenter
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.MES.WorkCenters)
	})
	return out
}

// ListRoutings returns all routings.
func (r *Repository) ListRoutings(ctx context.Context) []entity.Routing {
	var out []entity.Routing
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.MES.Routings)
	})
	return out
}

// ListProductionOrders returns all production orders.
func (r *Repository) ListProductionOrders(ctx context.Context) []entity.ProductionOrder {
	var out []entity.ProductionOrder
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.MES.ProductionOrders)
	})
	return out
}

// ListWorkOrders returns all work orders.
func (r *Repository) ListWorkOrders(ctx context.Context) []entity.WorkOrder {
	var out []entity.WorkOrder
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.MES.WorkOrders)
	})
	return out
}

// ListQualityChecks returns all quality checks.
func (r *Repository) ListQualityChecks(ctx context.Context) []entity.QualityCheck {
	var out []entity.QualityCheck
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.MES.QualityChecks)
	})
	return out
}

// ListNonconformances returns all nonconformances.
func (r *Repository) ListNonconformances(ctx context.Context) []entity.Nonconformance {
	var out []entity.Nonconformance
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.MES.Nonconformances)
	})
	return out
}

// ListMaintenanceOrders returns all maintenance orders.
func (r *Repository) ListMaintenanceOrders(ctx context.Context) []entity.MaintenanceOrder {
	var out []entity.MaintenanceOrder
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.MES.MaintenanceOrders)
	})
	return out
}

// --- Production order lifecycle ---

// CreateProductionOrderInput is the payload for a new draft order.
type CreateProductionOrderInput struct {
	ItemID  string         `json:"itemId"`
	Qty     types.Quantity `json:"qty"`
	DueDate time.Time      `json:"dueDate"`
}

// CreateProductionOrder appends a new draft production order.
func (r *Repository) CreateProductionOrder(ctx context.Context, in CreateProductionOrderInput) entity.ProductionOrder {
	po := entity.ProductionOrder{
		ID:      id.New("prd"),
		ItemID:  in.ItemID,
		Qty:     in.Qty,
		DueDate: in.DueDate,
		Status:  entity.ProductionOrderDraft,
	}
	_ = r.store.Update(func(snap *state.Snapshot) error {
		snap.MES.ProductionOrders = append(snap.MES.ProductionOrders, po)
		return nil
	})
	return clone.Of(po)
}

// ReleaseProductionOrder moves the order to released. ReleasedAt is set
// exactly once; releasing again does not overwrite the timestamp.
func (r *Repository) ReleaseProductionOrder(ctx context.Context, prodOrderID string) (entity.ProductionOrder, error) {
	var out entity.ProductionOrder
	err := r.store.Update(func(snap *state.Snapshot) error {
		po := findProductionOrder(&snap.MES, prodOrderID)
		if po == nil {
			return apperror.NewNotFound("ProductionOrder", prodOrderID)
		}
		po.Status = entity.ProductionOrderReleased
		if po.ReleasedAt == nil {
			now := time.Now().UTC()
			po.ReleasedAt = &now
		}
		out = *po
		return nil
	})
	if err != nil {
		return entity.ProductionOrder{}, err
	}
	return clone.Of(out), nil
}

// UpdateProductionOrderStatus overwrites the status directly, with no
// transition check. closed is reachable only through this edit.
func (r *Repository) UpdateProductionOrderStatus(ctx context.Context, prodOrderID string, status entity.ProductionOrderStatus) (entity.ProductionOrder, error) {
	var out entity.ProductionOrder
	err := r.store.Update(func(snap *state.Snapshot) error {
		po := findProductionOrder(&snap.MES, prodOrderID)
		if po == nil {
			return apperror.NewNotFound("ProductionOrder", prodOrderID)
		}
		po.Status = status
		out = *po
		return nil
	})
	if err != nil {
		return entity.ProductionOrder{}, err
	}
	return clone.Of(out), nil
}

// --- Work order generation and execution ---

// GenerateWorkOrders instantiates one planned work order per routing
// operation of the order's item.
//
// Idempotency is count-based: when the number of existing work orders for
// the order already equals the routing's operation count, the existing set
// is returned unchanged. Known limitation: editing the routing's operation
// count after generation defeats the check and appends a full extra set.
func (r *Repository) GenerateWorkOrders(ctx context.Context, prodOrderID string) ([]entity.WorkOrder, error) {
	var out []entity.WorkOrder
	err := r.store.Update(func(snap *state.Snapshot) error {
		mesState := &snap.MES

		po := findProductionOrder(mesState, prodOrderID)
		if po == nil {
			return apperror.NewNotFound("ProductionOrder", prodOrderID)
		}
		routing := findRoutingForItem(mesState, po.ItemID)
		if routing == nil {
			return apperror.NewNotFound("Routing", po.ItemID)
		}

		existing := workOrdersFor(mesState, prodOrderID)
		if len(existing) == len(routing.Operations) {
			out = existing
			return nil
		}

		created := make([]entity.WorkOrder, 0, len(routing.Operations))
		for _, op := range routing.Operations {
			wo := entity.WorkOrder{
				ID:                id.New("wo"),
				ProductionOrderID: prodOrderID,
				OpID:              op.OpID,
				Seq:               op.Seq,
				WorkCenterID:      op.WorkCenterID,
				Status:            entity.WorkOrderPlanned,
			}
			mesState.WorkOrders = append(mesState.WorkOrders, wo)
			created = append(created, wo)
		}
		out = created

		logger.Info(ctx, "work orders generated",
			"production_order_id", prodOrderID,
			"count", len(created),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return clone.Slice(out), nil
}

// StartWorkOrder moves the work order to in-progress and stamps StartedAt.
// The assignee is set only when one is provided.
func (r *Repository) StartWorkOrder(ctx context.Context, workOrderID, assignee string) (entity.WorkOrder, error) {
	var out entity.WorkOrder
	err := r.store.Update(func(snap *state.Snapshot) error {
		wo := findWorkOrder(&snap.MES, workOrderID)
		if wo == nil {
			return apperror.NewNotFound("WorkOrder", workOrderID)
		}
		wo.Status = entity.WorkOrderInProgress
		now := time.Now().UTC()
		wo.StartedAt = &now
		if assignee != "" {
			wo.Assignee = assignee
		}
		out = *wo
		return nil
	})
	if err != nil {
		return entity.WorkOrder{}, err
	}
	return clone.Of(out), nil
}

// UpdateWorkOrderStatus overwrites the status directly; paused and blocked
// are only reachable this way.
func (r *Repository) UpdateWorkOrderStatus(ctx context.Context, workOrderID string, status entity.WorkOrderStatus) (entity.WorkOrder, error) {
	var out entity.WorkOrder
	err := r.store.Update(func(snap *state.Snapshot) error {
		wo := findWorkOrder(&snap.MES, workOrderID)
		if wo == nil {
			return apperror.NewNotFound("WorkOrder", workOrderID)
		}
		wo.Status = status
		out = *wo
		return nil
	})
	if err != nil {
		return entity.WorkOrder{}, err
	}
	return clone.Of(out), nil
}

// CompleteWorkOrder marks the work order completed and applies the cascading
// ledger effects:
//
//   - first routing operation: issue every BOM component of the produced
//     item (component qty x order qty) from the raw location to wip;
//   - last routing operation: transfer the full order quantity of the
//     produced item from wip to the finished-goods location;
//   - all work orders completed: advance the owning production order to
//     completed.
//
// A missing owning order or routing skips the ledger effects; the work-order
// completion itself still succeeds.
func (r *Repository) CompleteWorkOrder(ctx context.Context, workOrderID string) (entity.WorkOrder, error) {
	var out entity.WorkOrder
	err := r.store.Update(func(snap *state.Snapshot) error {
		mesState := &snap.MES

		wo := findWorkOrder(mesState, workOrderID)
		if wo == nil {
			return apperror.NewNotFound("WorkOrder", workOrderID)
		}
		wo.Status = entity.WorkOrderCompleted
		now := time.Now().UTC()
		wo.FinishedAt = &now

		po := findProductionOrder(mesState, wo.ProductionOrderID)
		var routing *entity.Routing
		if po != nil {
			routing = findRoutingForItem(mesState, po.ItemID)
		}

		if po != nil && routing != nil && len(routing.Operations) > 0 {
			r.applyLedgerEffects(ctx, snap, wo, po, routing)
		}

		if po != nil && allCompleted(workOrdersFor(mesState, po.ID)) {
			po.Status = entity.ProductionOrderCompleted
			logger.Info(ctx, "production order completed", "production_order_id", po.ID)
		}

		out = *wo
		return nil
	})
	if err != nil {
		return entity.WorkOrder{}, err
	}
	return clone.Of(out), nil
}

// applyLedgerEffects issues components on the first operation and transfers
// finished goods on the last. Material flow is tied to the position of the
// operation in the routing, not to a per-operation flag, so each production
// order has a single consumption stage and a single output stage.
func (r *Repository) applyLedgerEffects(ctx context.Context, snap *state.Snapshot, wo *entity.WorkOrder, po *entity.ProductionOrder, routing *entity.Routing) {
	inv := &snap.Inventory

	rawLoc, rawOK := inventory.ResolveRole(inv, entity.RoleRaw)
	wipLoc, wipOK := inventory.ResolveRole(inv, entity.RoleWip)
	fgLoc, fgOK := inventory.ResolveRole(inv, entity.RoleFg)

	first := routing.Operations[0]
	last := routing.Operations[len(routing.Operations)-1]

	if wo.OpID == first.OpID && rawOK && wipOK {
		if bom := inventory.FindBom(inv, po.ItemID); bom != nil {
			for _, line := range bom.Lines {
				inventory.RecordMove(ctx, inv, inventory.MoveInput{
					ItemID:         line.ComponentItemID,
					Qty:            line.Qty.Mul(po.Qty),
					FromLocationID: rawLoc,
					ToLocationID:   wipLoc,
					RefType:        entity.RefTypeWorkOrder,
					RefID:          wo.ID,
					Note:           "Issue components",
				})
			}
			logger.Info(ctx, "components issued",
				"work_order_id", wo.ID,
				"production_order_id", po.ID,
				"lines", len(bom.Lines),
			)
		}
	}

	if wo.OpID == last.OpID && wipOK && fgOK {
		inventory.RecordMove(ctx, inv, inventory.MoveInput{
			ItemID:         po.ItemID,
			Qty:            po.Qty,
			FromLocationID: wipLoc,
			ToLocationID:   fgLoc,
			RefType:        entity.RefTypeWorkOrder,
			RefID:          wo.ID,
			Note:           "Finished goods transfer",
			Status:         entity.LotStatusAvailable,
		})
		logger.Info(ctx, "finished goods transferred",
			"work_order_id", wo.ID,
			"production_order_id", po.ID,
			"qty", po.Qty.String(),
		)
	}
}

// --- Quality and maintenance ---

// RecordQualityCheck appends an inspection result.
func (r *Repository) RecordQualityCheck(ctx context.Context, qc entity.QualityCheck) entity.QualityCheck {
	qc.ID = id.New("qc")
	qc.CheckedAt = time.Now().UTC()
	_ = r.store.Update(func(snap *state.Snapshot) error {
		snap.MES.QualityChecks = append(snap.MES.QualityChecks, qc)
		return nil
	})
	return clone.Of(qc)
}

// RaiseNonconformance appends an open nonconformance.
func (r *Repository) RaiseNonconformance(ctx context.Context, nc entity.Nonconformance) entity.Nonconformance {
	nc.ID = id.New("nc")
	nc.Status = "open"
	nc.RaisedAt = time.Now().UTC()
	_ = r.store.Update(func(snap *state.Snapshot) error {
		snap.MES.Nonconformances = append(snap.MES.Nonconformances, nc)
		return nil
	})
	return clone.Of(nc)
}

// AppendMaintenanceLog adds a log entry to an existing maintenance order.
func (r *Repository) AppendMaintenanceLog(ctx context.Context, maintenanceOrderID, entry string) (entity.MaintenanceOrder, error) {
	var out entity.MaintenanceOrder
	err := r.store.Update(func(snap *state.Snapshot) error {
		for i := range snap.MES.MaintenanceOrders {
			mo := &snap.MES.MaintenanceOrders[i]
			if mo.ID == maintenanceOrderID {
				mo.Log = append(mo.Log, entity.MaintenanceLogEntry{
					At:    time.Now().UTC(),
					Entry: entry,
				})
				out = *mo
				return nil
			}
		}
		return apperror.NewNotFound("MaintenanceOrder", maintenanceOrderID)
	})
	if err != nil {
		return entity.MaintenanceOrder{}, err
	}
	return clone.Of(out), nil
}

// --- Lookup helpers (caller holds the store lock) ---

func findProductionOrder(m *state.MESState, id string) *entity.ProductionOrder {
	for i := range m.ProductionOrders {
		if m.ProductionOrders[i].ID == id {
			return &m.ProductionOrders[i]
		}
	}
	return nil
}

func findWorkOrder(m *state.MESState, id string) *entity.WorkOrder {
	for i := range m.WorkOrders {
		if m.WorkOrders[i].ID == id {
			return &m.WorkOrders[i]
		}
	}
	return nil
}

func findRoutingForItem(m *state.MESState, itemID string) *entity.Routing {
	for i := range m.Routings {
		if m.Routings[i].ItemID == itemID {
			return &m.Routings[i]
		}
	}
	return nil
}

func workOrdersFor(m *state.MESState, prodOrderID string) []entity.WorkOrder {
	var out []entity.WorkOrder
	for _, wo := range m.WorkOrders {
		if wo.ProductionOrderID == prodOrderID {
			out = append(out, wo)
		}
	}
	return out
}

func allCompleted(workOrders []entity.WorkOrder) bool {
	if len(workOrders) == 0 {
		return false
	}
	for _, wo := range workOrders {
		if wo.Status != entity.WorkOrderCompleted {
			return false
		}
	}
	return true
}
