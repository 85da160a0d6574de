package entity

import (
	"time"

	"opscore/internal/core/types"
)

// Supplier is a counterparty goods are purchased from.
type Supplier struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// Customer is a counterparty goods are sold to.
type Customer struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// OrderLine is one (item, qty, price) position of a commercial document.
type OrderLine struct {
	ItemID string         `json:"itemId"`
	Qty    types.Quantity `json:"qty"`
	Price  types.Money    `json:"price"`
}

// PurchaseOrderStatus lifecycle: draft -> approved -> received /
// partially-received -> closed.
type PurchaseOrderStatus string

const (
	PurchaseOrderDraft             PurchaseOrderStatus = "draft"
	PurchaseOrderApproved          PurchaseOrderStatus = "approved"
	PurchaseOrderReceived          PurchaseOrderStatus = "received"
	PurchaseOrderPartiallyReceived PurchaseOrderStatus = "partially-received"
	PurchaseOrderClosed            PurchaseOrderStatus = "closed"
)

// PurchaseOrder is an inbound commercial document.
type PurchaseOrder struct {
	ID         string              `json:"id"`
	SupplierID string              `json:"supplierId"`
	Lines      []OrderLine         `json:"lines"`
	Status     PurchaseOrderStatus `json:"status"`
	CreatedAt  time.Time           `json:"createdAt"`
	ExpectedAt *time.Time          `json:"expectedAt,omitempty"`
}

// SalesOrderStatus lifecycle: draft -> approved -> shipped -> closed.
// partially-shipped exists in the type but no operation produces it; the
// shipment path is deliberately asymmetric with the purchase side.
type SalesOrderStatus string

const (
	SalesOrderDraft            SalesOrderStatus = "draft"
	SalesOrderApproved         SalesOrderStatus = "approved"
	SalesOrderShipped          SalesOrderStatus = "shipped"
	SalesOrderPartiallyShipped SalesOrderStatus = "partially-shipped"
	SalesOrderClosed           SalesOrderStatus = "closed"
)

// SalesOrder is an outbound commercial document.
type SalesOrder struct {
	ID         string           `json:"id"`
	CustomerID string           `json:"customerId"`
	Lines      []OrderLine      `json:"lines"`
	Status     SalesOrderStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// Invoice is a billing document referencing a purchase or sales order.
// Totals are not validated against the referenced order.
type Invoice struct {
	ID       string      `json:"id"`
	RefType  string      `json:"refType"` // PurchaseOrder | SalesOrder
	RefID    string      `json:"refId"`
	Amount   types.Money `json:"amount"`
	Status   string      `json:"status"` // draft | issued | paid
	IssuedAt time.Time   `json:"issuedAt"`
}
