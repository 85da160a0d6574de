package dto

import "time"

// CreateProductionOrderRequest opens a draft production order.
type CreateProductionOrderRequest struct {
	ItemID  string    `json:"itemId" binding:"required"`
	Qty     float64   `json:"qty" binding:"required"`
	DueDate time.Time `json:"dueDate"`
}

// StartWorkOrderRequest starts a work order, optionally assigning it.
type StartWorkOrderRequest struct {
	Assignee string `json:"assignee"`
}

// QualityCheckRequest records an inspection result.
type QualityCheckRequest struct {
	WorkOrderID string `json:"workOrderId"`
	ItemID      string `json:"itemId"`
	Result      string `json:"result" binding:"required"`
	Inspector   string `json:"inspector"`
	Notes       string `json:"notes"`
}

// NonconformanceRequest raises a quality deviation.
type NonconformanceRequest struct {
	RefType     string `json:"refType" binding:"required"`
	RefID       string `json:"refId" binding:"required"`
	Severity    string `json:"severity" binding:"required"`
	Description string `json:"description"`
}

// MaintenanceLogRequest appends a maintenance log entry.
type MaintenanceLogRequest struct {
	Entry string `json:"entry" binding:"required"`
}
