package entity

import (
	"time"

	"opscore/internal/core/types"
)

// WorkCenter is a production resource that executes routing operations.
type WorkCenter struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// OperationStep is one step in a routing template.
type OperationStep struct {
	OpID         string  `json:"opId"`
	Seq          int     `json:"seq"`
	WorkCenterID string  `json:"workCenterId"`
	StdMinutes   float64 `json:"stdMinutes"`
}

// Routing is the ordered template of operations required to produce an item.
type Routing struct {
	ID         string          `json:"id"`
	ItemID     string          `json:"itemId"`
	Operations []OperationStep `json:"operations"`
}

// ProductionOrderStatus lifecycle: draft -> released -> in-progress ->
// completed -> closed.
type ProductionOrderStatus string

const (
	ProductionOrderDraft      ProductionOrderStatus = "draft"
	ProductionOrderReleased   ProductionOrderStatus = "released"
	ProductionOrderInProgress ProductionOrderStatus = "in-progress"
	ProductionOrderCompleted  ProductionOrderStatus = "completed"
	ProductionOrderClosed     ProductionOrderStatus = "closed"
)

// ProductionOrder is a demand to produce Qty units of an item by DueDate.
// It owns zero or more work orders.
type ProductionOrder struct {
	ID         string                `json:"id"`
	ItemID     string                `json:"itemId"`
	Qty        types.Quantity        `json:"qty"`
	DueDate    time.Time             `json:"dueDate"`
	Status     ProductionOrderStatus `json:"status"`
	ReleasedAt *time.Time            `json:"releasedAt,omitempty"`
}

// WorkOrderStatus lifecycle: planned -> in-progress -> completed.
// paused and blocked are side states reachable only through direct edits.
type WorkOrderStatus string

const (
	WorkOrderPlanned    WorkOrderStatus = "planned"
	WorkOrderInProgress WorkOrderStatus = "in-progress"
	WorkOrderCompleted  WorkOrderStatus = "completed"
	WorkOrderPaused     WorkOrderStatus = "paused"
	WorkOrderBlocked    WorkOrderStatus = "blocked"
)

// WorkOrder is one instantiated execution unit of a routing operation,
// scoped to a specific production order.
type WorkOrder struct {
	ID                string          `json:"id"`
	ProductionOrderID string          `json:"productionOrderId"`
	OpID              string          `json:"opId"`
	Seq               int             `json:"seq"`
	WorkCenterID      string          `json:"workCenterId"`
	Status            WorkOrderStatus `json:"status"`
	Assignee          string          `json:"assignee,omitempty"`
	StartedAt         *time.Time      `json:"startedAt,omitempty"`
	FinishedAt        *time.Time      `json:"finishedAt,omitempty"`
}

// QualityCheck records an inspection result against a work order.
type QualityCheck struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"workOrderId"`
	ItemID      string    `json:"itemId"`
	Result      string    `json:"result"` // pass | fail
	Inspector   string    `json:"inspector,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CheckedAt   time.Time `json:"checkedAt"`
}

// Nonconformance records a quality deviation raised against a document.
type Nonconformance struct {
	ID          string    `json:"id"`
	RefType     string    `json:"refType"`
	RefID       string    `json:"refId"`
	Severity    string    `json:"severity"` // minor | major | critical
	Description string    `json:"description"`
	Status      string    `json:"status"` // open | closed
	RaisedAt    time.Time `json:"raisedAt"`
}

// MaintenanceLogEntry is one line in a maintenance order's log.
type MaintenanceLogEntry struct {
	At    time.Time `json:"at"`
	Entry string    `json:"entry"`
}

// MaintenanceOrder tracks upkeep work on a work center.
type MaintenanceOrder struct {
	ID           string                `json:"id"`
	WorkCenterID string                `json:"workCenterId"`
	Description  string                `json:"description"`
	Status       string                `json:"status"` // open | in-progress | done
	DueDate      time.Time             `json:"dueDate"`
	Log          []MaintenanceLogEntry `json:"log"`
}
