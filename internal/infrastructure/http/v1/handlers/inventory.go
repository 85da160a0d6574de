package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opscore/internal/core/entity"
	"opscore/internal/core/types"
	"opscore/internal/domain/inventory"
	"opscore/internal/infrastructure/http/v1/dto"
)

// InventoryHandler handles HTTP requests for the Stock Ledger.
type InventoryHandler struct {
	*BaseHandler
	repo *inventory.Repository
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(base *BaseHandler, repo *inventory.Repository) *InventoryHandler {
	return &InventoryHandler{BaseHandler: base, repo: repo}
}

// ListItems handles GET /inventory/items
func (h *InventoryHandler) ListItems(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListItems(c.Request.Context()))
}

// ListBoms handles GET /inventory/boms
func (h *InventoryHandler) ListBoms(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListBoms(c.Request.Context()))
}

// ListWarehouses handles GET /inventory/warehouses
func (h *InventoryHandler) ListWarehouses(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListWarehouses(c.Request.Context()))
}

// ListLocations handles GET /inventory/locations
func (h *InventoryHandler) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListLocations(c.Request.Context()))
}

// ListStockLots handles GET /inventory/stock-lots
func (h *InventoryHandler) ListStockLots(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListStockLots(c.Request.Context()))
}

// ListStockMoves handles GET /inventory/stock-moves
func (h *InventoryHandler) ListStockMoves(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListStockMoves(c.Request.Context()))
}

// UpsertItem handles POST /inventory/items
func (h *InventoryHandler) UpsertItem(c *gin.Context) {
	var req dto.UpsertItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item := h.repo.UpsertItem(c.Request.Context(), entity.Item{
		ID:       req.ID,
		SKU:      req.SKU,
		Name:     req.Name,
		UOM:      req.UOM,
		Type:     entity.ItemType(req.Type),
		UnitCost: types.Qty(req.UnitCost),
	})
	c.JSON(http.StatusOK, item)
}

// RecordStockMove handles POST /inventory/stock-moves
func (h *InventoryHandler) RecordStockMove(c *gin.Context) {
	var req dto.RecordStockMoveRequest
	if !h.BindJSON(c, &req) {
		return
	}

	move := h.repo.RecordStockMove(c.Request.Context(), inventory.MoveInput{
		ItemID:         req.ItemID,
		Qty:            types.Qty(req.Qty),
		FromLocationID: req.FromLocationID,
		ToLocationID:   req.ToLocationID,
		RefType:        req.RefType,
		RefID:          req.RefID,
		Note:           req.Note,
		Status:         entity.LotStatus(req.Status),
	})
	c.JSON(http.StatusCreated, move)
}

// ReceiveInventory handles POST /inventory/receipts
func (h *InventoryHandler) ReceiveInventory(c *gin.Context) {
	var req dto.ReceiveInventoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	lot := h.repo.ReceiveInventory(c.Request.Context(), inventory.ReceiveInput{
		ItemID:     req.ItemID,
		Qty:        types.Qty(req.Qty),
		LocationID: req.LocationID,
		LotNo:      req.LotNo,
		RefType:    req.RefType,
		RefID:      req.RefID,
	})
	c.JSON(http.StatusCreated, lot)
}
