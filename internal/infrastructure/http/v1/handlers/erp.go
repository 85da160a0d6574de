package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opscore/internal/core/entity"
	"opscore/internal/core/types"
	"opscore/internal/domain/erp"
	"opscore/internal/infrastructure/http/v1/dto"
)

// ERPHandler handles HTTP requests for the Order Fulfillment bridge.
type ERPHandler struct {
	*BaseHandler
	repo *erp.Repository
}

// NewERPHandler creates a new ERP handler.
func NewERPHandler(base *BaseHandler, repo *erp.Repository) *ERPHandler {
	return &ERPHandler{BaseHandler: base, repo: repo}
}

// ListSuppliers handles GET /erp/suppliers
func (h *ERPHandler) ListSuppliers(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListSuppliers(c.Request.Context()))
}

// ListCustomers handles GET /erp/customers
func (h *ERPHandler) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListCustomers(c.Request.Context()))
}

// ListPurchaseOrders handles GET /erp/purchase-orders
func (h *ERPHandler) ListPurchaseOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListPurchaseOrders(c.Request.Context()))
}

// ListSalesOrders handles GET /erp/sales-orders
func (h *ERPHandler) ListSalesOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListSalesOrders(c.Request.Context()))
}

// ListInvoices handles GET /erp/invoices
func (h *ERPHandler) ListInvoices(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListInvoices(c.Request.Context()))
}

// CreatePurchaseOrder handles POST /erp/purchase-orders
func (h *ERPHandler) CreatePurchaseOrder(c *gin.Context) {
	var req dto.CreatePurchaseOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	po := h.repo.CreatePurchaseOrder(c.Request.Context(), req.SupplierID, toOrderLines(req.Lines))
	c.JSON(http.StatusCreated, po)
}

// CreateSalesOrder handles POST /erp/sales-orders
func (h *ERPHandler) CreateSalesOrder(c *gin.Context) {
	var req dto.CreateSalesOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	so := h.repo.CreateSalesOrder(c.Request.Context(), req.CustomerID, toOrderLines(req.Lines))
	c.JSON(http.StatusCreated, so)
}

// ReceivePurchaseOrder handles POST /erp/purchase-orders/:id/receive
func (h *ERPHandler) ReceivePurchaseOrder(c *gin.Context) {
	po, err := h.repo.ReceivePurchaseOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}

// ShipSalesOrder handles POST /erp/sales-orders/:id/ship
func (h *ERPHandler) ShipSalesOrder(c *gin.Context) {
	so, err := h.repo.ShipSalesOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, so)
}

// UpdatePurchaseOrderStatus handles PUT /erp/purchase-orders/:id/status
func (h *ERPHandler) UpdatePurchaseOrderStatus(c *gin.Context) {
	var req dto.StatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	po, err := h.repo.UpdatePurchaseOrderStatus(c.Request.Context(), c.Param("id"), entity.PurchaseOrderStatus(req.Status))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}

// UpdateSalesOrderStatus handles PUT /erp/sales-orders/:id/status
func (h *ERPHandler) UpdateSalesOrderStatus(c *gin.Context) {
	var req dto.StatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	so, err := h.repo.UpdateSalesOrderStatus(c.Request.Context(), c.Param("id"), entity.SalesOrderStatus(req.Status))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, so)
}

// CreateInvoice handles POST /erp/invoices
func (h *ERPHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	inv := h.repo.CreateInvoice(c.Request.Context(), entity.Invoice{
		RefType: req.RefType,
		RefID:   req.RefID,
		Amount:  types.Qty(req.Amount),
		Status:  req.Status,
	})
	c.JSON(http.StatusCreated, inv)
}

func toOrderLines(lines []dto.OrderLineRequest) []entity.OrderLine {
	out := make([]entity.OrderLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, entity.OrderLine{
			ItemID: l.ItemID,
			Qty:    types.Qty(l.Qty),
			Price:  types.Qty(l.Price),
		})
	}
	return out
}
