// Package erp provides the Order Fulfillment bridge: purchase-order receipt
// and sales-order shipment, both expressed as Stock Ledger mutations driven
// by commercial documents.
package erp

import (
	"context"
	"time"

	"opscore/internal/core/apperror"
	"opscore/internal/core/clone"
	"opscore/internal/core/entity"
	"opscore/internal/core/id"
	"opscore/internal/core/state"
	"opscore/internal/domain/inventory"
	"opscore/pkg/logger"
)

// Repository is the ERP facade over the shared store.
type Repository struct {
	store *state.Store
}

// NewRepository creates the ERP repository.
func NewRepository(store *state.Store) *Repository {
	return &Repository{store: store}
}

// --- Reads ---

// ListSuppliers returns all suppliers.
func (r *Repository) ListSuppliers(ctx context.Context) []entity.Supplier {
	var out []entity.Supplier
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.ERP.Suppliers)
	})
	return out
}

// ListCustomers returns all customers.
func (r *Repository) ListCustomers(ctx context.Context) []entity.Customer {
	var out []entity.Customer
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.ERP.Customers)
	})
	return out
}

// ListPurchaseOrders returns all purchase orders.
func (r *Repository) ListPurchaseOrders(ctx context.Context) []entity.PurchaseOrder {
	var out []entity.PurchaseOrder
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.ERP.PurchaseOrders)
	})
	return out
}

// ListSalesOrders returns all sales orders.
func (r *Repository) ListSalesOrders(ctx context.Context) []entity.SalesOrder {
	var out []entity.SalesOrder
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.ERP.SalesOrders)
	})
	return out
}

// ListInvoices returns all invoices.
func (r *Repository) ListInvoices(ctx context.Context) []entity.Invoice {
	var out []entity.Invoice
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.ERP.Invoices)
	})
	return out
}

// --- Document creation ---

// CreatePurchaseOrder appends a draft purchase order.
func (r *Repository) CreatePurchaseOrder(ctx context.Context, supplierID string, lines []entity.OrderLine) entity.PurchaseOrder {
	po := entity.PurchaseOrder{
		ID:         id.New("po"),
		SupplierID: supplierID,
		Lines:      clone.Slice(lines),
		Status:     entity.PurchaseOrderDraft,
		CreatedAt:  time.Now().UTC(),
	}
	_ = r.store.Update(func(snap *state.Snapshot) error {
		snap.ERP.PurchaseOrders = append(snap.ERP.PurchaseOrders, po)
		return nil
	})
	return clone.Of(po)
}

// CreateSalesOrder appends a draft sales order.
func (r *Repository) CreateSalesOrder(ctx context.Context, customerID string, lines []entity.OrderLine) entity.SalesOrder {
	so := entity.SalesOrder{
		ID:         id.New("so"),
		CustomerID: customerID,
		Lines:      clone.Slice(lines),
		Status:     entity.SalesOrderDraft,
		CreatedAt:  time.Now().UTC(),
	}
	_ = r.store.Update(func(snap *state.Snapshot) error {
		snap.ERP.SalesOrders = append(snap.ERP.SalesOrders, so)
		return nil
	})
	return clone.Of(so)
}

// CreateInvoice appends an invoice with a generated id. Totals are not
// validated against the referenced order.
func (r *Repository) CreateInvoice(ctx context.Context, inv entity.Invoice) entity.Invoice {
	inv.ID = id.New("inv")
	inv.IssuedAt = time.Now().UTC()
	if inv.Status == "" {
		inv.Status = "issued"
	}
	_ = r.store.Update(func(snap *state.Snapshot) error {
		snap.ERP.Invoices = append(snap.ERP.Invoices, inv)
		return nil
	})
	return clone.Of(inv)
}

// --- Fulfillment ---

// ReceivePurchaseOrder receives every line into the raw-role location.
// Status becomes received only when the order was exactly approved;
// any other prior status degrades to partially-received. This is a blunt
// status rule, not quantity reconciliation.
func (r *Repository) ReceivePurchaseOrder(ctx context.Context, poID string) (entity.PurchaseOrder, error) {
	var out entity.PurchaseOrder
	err := r.store.Update(func(snap *state.Snapshot) error {
		po := findPurchaseOrder(&snap.ERP, poID)
		if po == nil {
			return apperror.NewNotFound("PurchaseOrder", poID)
		}

		if rawLoc, ok := inventory.ResolveRole(&snap.Inventory, entity.RoleRaw); ok {
			for _, line := range po.Lines {
				inventory.Receive(ctx, &snap.Inventory, inventory.ReceiveInput{
					ItemID:     line.ItemID,
					Qty:        line.Qty,
					LocationID: rawLoc,
					RefType:    entity.RefTypePurchaseOrder,
					RefID:      po.ID,
				})
			}
		}

		if po.Status == entity.PurchaseOrderApproved {
			po.Status = entity.PurchaseOrderReceived
		} else {
			po.Status = entity.PurchaseOrderPartiallyReceived
		}
		out = *po
		return nil
	})
	if err != nil {
		return entity.PurchaseOrder{}, err
	}

	logger.Info(ctx, "purchase order received",
		"purchase_order_id", out.ID,
		"status", out.Status,
		"lines", len(out.Lines),
	)
	return clone.Of(out), nil
}

// ShipSalesOrder issues every line out of the fg-role location and sets the
// status to shipped unconditionally. There is no partially-shipped path;
// the asymmetry with the purchase side is intentional.
func (r *Repository) ShipSalesOrder(ctx context.Context, soID string) (entity.SalesOrder, error) {
	var out entity.SalesOrder
	err := r.store.Update(func(snap *state.Snapshot) error {
		so := findSalesOrder(&snap.ERP, soID)
		if so == nil {
			return apperror.NewNotFound("SalesOrder", soID)
		}

		if fgLoc, ok := inventory.ResolveRole(&snap.Inventory, entity.RoleFg); ok {
			for _, line := range so.Lines {
				inventory.RecordMove(ctx, &snap.Inventory, inventory.MoveInput{
					ItemID:         line.ItemID,
					Qty:            line.Qty,
					FromLocationID: fgLoc,
					RefType:        entity.RefTypeSalesOrder,
					RefID:          so.ID,
					Note:           "Shipment",
				})
			}
		}

		so.Status = entity.SalesOrderShipped
		out = *so
		return nil
	})
	if err != nil {
		return entity.SalesOrder{}, err
	}

	logger.Info(ctx, "sales order shipped",
		"sales_order_id", out.ID,
		"lines", len(out.Lines),
	)
	return clone.Of(out), nil
}

// --- Status edits (no transition validation) ---

// UpdatePurchaseOrderStatus overwrites the status; any value is accepted.
func (r *Repository) UpdatePurchaseOrderStatus(ctx context.Context, poID string, status entity.PurchaseOrderStatus) (entity.PurchaseOrder, error) {
	var out entity.PurchaseOrder
	err := r.store.Update(func(snap *state.Snapshot) error {
		po := findPurchaseOrder(&snap.ERP, poID)
		if po == nil {
			return apperror.NewNotFound("PurchaseOrder", poID)
		}
		po.Status = status
		out = *po
		return nil
	})
	if err != nil {
		return entity.PurchaseOrder{}, err
	}
	return clone.Of(out), nil
}

// UpdateSalesOrderStatus overwrites the status; any value is accepted.
func (r *Repository) UpdateSalesOrderStatus(ctx context.Context, soID string, status entity.SalesOrderStatus) (entity.SalesOrder, error) {
	var out entity.SalesOrder
	err := r.store.Update(func(snap *state.Snapshot) error {
		so := findSalesOrder(&snap.ERP, soID)
		if so == nil {
			return apperror.NewNotFound("SalesOrder", soID)
		}
		so.Status = status
		out = *so
		return nil
	})
	if err != nil {
		return entity.SalesOrder{}, err
	}
	return clone.Of(out), nil
}

// --- Lookup helpers (caller holds the store lock) ---

func findPurchaseOrder(e *state.ERPState, id string) *entity.PurchaseOrder {
	for i := range e.PurchaseOrders {
		if e.PurchaseOrders[i].ID == id {
			return &e.PurchaseOrders[i]
		}
	}
	return nil
}

func findSalesOrder(e *state.ERPState, id string) *entity.SalesOrder {
	for i := range e.SalesOrders {
		if e.SalesOrders[i].ID == id {
			return &e.SalesOrders[i]
		}
	}
	return nil
}
