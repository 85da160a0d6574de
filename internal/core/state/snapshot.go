// Package state owns the canonical in-process snapshot of all domain
// sub-states, plus the frozen seed it can be reset to. Repositories are the
// only mutators; nothing outside internal/ ever sees a live reference.
package state

import "opscore/internal/core/entity"

// InventoryState is the Stock Ledger sub-state.
type InventoryState struct {
	Items      []entity.Item      `json:"items"`
	Boms       []entity.Bom       `json:"boms"`
	Warehouses []entity.Warehouse `json:"warehouses"`
	Locations  []entity.Location  `json:"locations"`
	StockLots  []entity.StockLot  `json:"stockLots"`
	StockMoves []entity.StockMove `json:"stockMoves"`
}

// MESState is the Production Workflow Engine sub-state.
type MESState struct {
	WorkCenters       []entity.WorkCenter       `json:"workCenters"`
	Routings          []entity.Routing          `json:"routings"`
	ProductionOrders  []entity.ProductionOrder  `json:"productionOrders"`
	WorkOrders        []entity.WorkOrder        `json:"workOrders"`
	QualityChecks     []entity.QualityCheck     `json:"qualityChecks"`
	Nonconformances   []entity.Nonconformance   `json:"nonconformances"`
	MaintenanceOrders []entity.MaintenanceOrder `json:"maintenanceOrders"`
}

// ERPState is the Order Fulfillment sub-state.
type ERPState struct {
	Suppliers      []entity.Supplier      `json:"suppliers"`
	Customers      []entity.Customer      `json:"customers"`
	PurchaseOrders []entity.PurchaseOrder `json:"purchaseOrders"`
	SalesOrders    []entity.SalesOrder    `json:"salesOrders"`
	Invoices       []entity.Invoice       `json:"invoices"`
}

// TasksState holds the kanban board.
type TasksState struct {
	Tasks []entity.Task `json:"tasks"`
}

// PassportState holds product passports.
type PassportState struct {
	Passports []entity.ProductPassport `json:"passports"`
}

// AutomationState holds playbook templates, instances and run history.
type AutomationState struct {
	Templates []entity.PlaybookTemplate `json:"templates"`
	Playbooks []entity.Playbook         `json:"playbooks"`
	Runs      []entity.PlaybookRun      `json:"runs"`
}

// WorkforceState holds employees and shift assignments.
type WorkforceState struct {
	Employees []entity.Employee `json:"employees"`
	Shifts    []entity.Shift    `json:"shifts"`
}

// Snapshot is the full enterprise state. One Snapshot is live in the store;
// another frozen one is the seed.
type Snapshot struct {
	Inventory  InventoryState  `json:"inventory"`
	MES        MESState        `json:"mes"`
	ERP        ERPState        `json:"erp"`
	Tasks      TasksState      `json:"tasks"`
	Passports  PassportState   `json:"passports"`
	Automation AutomationState `json:"automation"`
	Workforce  WorkforceState  `json:"workforce"`
}
