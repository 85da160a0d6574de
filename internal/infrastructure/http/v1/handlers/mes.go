package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opscore/internal/core/entity"
	"opscore/internal/core/types"
	"opscore/internal/domain/mes"
	"opscore/internal/infrastructure/http/v1/dto"
)

// MESHandler handles HTTP requests for the Production Workflow Engine.
type MESHandler struct {
	*BaseHandler
	repo *mes.Repository
}

// NewMESHandler creates a new MES handler.
func NewMESHandler(base *BaseHandler, repo *mes.Repository) *MESHandler {
	return &MESHandler{BaseHandler: base, repo: repo}
}

// ListWorkCenters handles GET /mes/work-centers
func (h *MESHandler) ListWorkCenters(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListWorkCenters(c.Request.Context()))
}

// ListRoutings handles GET /mes/routings
func (h *MESHandler) ListRoutings(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListRoutings(c.Request.Context()))
}

// ListProductionOrders handles GET /mes/production-orders
func (h *MESHandler) ListProductionOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListProductionOrders(c.Request.Context()))
}

// ListWorkOrders handles GET /mes/work-orders
func (h *MESHandler) ListWorkOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListWorkOrders(c.Request.Context()))
}

// ListQualityChecks handles GET /mes/quality-checks
func (h *MESHandler) ListQualityChecks(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListQualityChecks(c.Request.Context()))
}

// ListNonconformances handles GET /mes/nonconformances
func (h *MESHandler) ListNonconformances(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListNonconformances(c.Request.Context()))
}

// ListMaintenanceOrders handles GET /mes/maintenance-orders
func (h *MESHandler) ListMaintenanceOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListMaintenanceOrders(c.Request.Context()))
}

// CreateProductionOrder handles POST /mes/production-orders
func (h *MESHandler) CreateProductionOrder(c *gin.Context) {
	var req dto.CreateProductionOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	po := h.repo.CreateProductionOrder(c.Request.Context(), mes.CreateProductionOrderInput{
		ItemID:  req.ItemID,
		Qty:     types.Qty(req.Qty),
		DueDate: req.DueDate,
	})
	c.JSON(http.StatusCreated, po)
}

// ReleaseProductionOrder handles POST /mes/production-orders/:id/release
func (h *MESHandler) ReleaseProductionOrder(c *gin.Context) {
	po, err := h.repo.ReleaseProductionOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}

// UpdateProductionOrderStatus handles PUT /mes/production-orders/:id/status
func (h *MESHandler) UpdateProductionOrderStatus(c *gin.Context) {
	var req dto.StatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	po, err := h.repo.UpdateProductionOrderStatus(c.Request.Context(), c.Param("id"), entity.ProductionOrderStatus(req.Status))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}

// GenerateWorkOrders handles POST /mes/production-orders/:id/work-orders
func (h *MESHandler) GenerateWorkOrders(c *gin.Context) {
	workOrders, err := h.repo.GenerateWorkOrders(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, workOrders)
}

// StartWorkOrder handles POST /mes/work-orders/:id/start
func (h *MESHandler) StartWorkOrder(c *gin.Context) {
	var req dto.StartWorkOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	wo, err := h.repo.StartWorkOrder(c.Request.Context(), c.Param("id"), req.Assignee)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, wo)
}

// CompleteWorkOrder handles POST /mes/work-orders/:id/complete
func (h *MESHandler) CompleteWorkOrder(c *gin.Context) {
	wo, err := h.repo.CompleteWorkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, wo)
}

// UpdateWorkOrderStatus handles PUT /mes/work-orders/:id/status
func (h *MESHandler) UpdateWorkOrderStatus(c *gin.Context) {
	var req dto.StatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	wo, err := h.repo.UpdateWorkOrderStatus(c.Request.Context(), c.Param("id"), entity.WorkOrderStatus(req.Status))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, wo)
}

// RecordQualityCheck handles POST /mes/quality-checks
func (h *MESHandler) RecordQualityCheck(c *gin.Context) {
	var req dto.QualityCheckRequest
	if !h.BindJSON(c, &req) {
		return
	}

	qc := h.repo.RecordQualityCheck(c.Request.Context(), entity.QualityCheck{
		WorkOrderID: req.WorkOrderID,
		ItemID:      req.ItemID,
		Result:      req.Result,
		Inspector:   req.Inspector,
		Notes:       req.Notes,
	})
	c.JSON(http.StatusCreated, qc)
}

// RaiseNonconformance handles POST /mes/nonconformances
func (h *MESHandler) RaiseNonconformance(c *gin.Context) {
	var req dto.NonconformanceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	nc := h.repo.RaiseNonconformance(c.Request.Context(), entity.Nonconformance{
		RefType:     req.RefType,
		RefID:       req.RefID,
		Severity:    req.Severity,
		Description: req.Description,
	})
	c.JSON(http.StatusCreated, nc)
}

// AppendMaintenanceLog handles POST /mes/maintenance-orders/:id/log
func (h *MESHandler) AppendMaintenanceLog(c *gin.Context) {
	var req dto.MaintenanceLogRequest
	if !h.BindJSON(c, &req) {
		return
	}

	mo, err := h.repo.AppendMaintenanceLog(c.Request.Context(), c.Param("id"), req.Entry)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, mo)
}
