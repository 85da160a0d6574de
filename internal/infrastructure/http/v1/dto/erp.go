package dto

// CreatePurchaseOrderRequest opens a draft purchase order.
type CreatePurchaseOrderRequest struct {
	SupplierID string             `json:"supplierId" binding:"required"`
	Lines      []OrderLineRequest `json:"lines" binding:"required"`
}

// CreateSalesOrderRequest opens a draft sales order.
type CreateSalesOrderRequest struct {
	CustomerID string             `json:"customerId" binding:"required"`
	Lines      []OrderLineRequest `json:"lines" binding:"required"`
}

// CreateInvoiceRequest appends an invoice referencing an order.
type CreateInvoiceRequest struct {
	RefType string  `json:"refType" binding:"required"`
	RefID   string  `json:"refId" binding:"required"`
	Amount  float64 `json:"amount"`
	Status  string  `json:"status"`
}
