package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opscore/internal/core/entity"
	"opscore/internal/domain/passport"
	"opscore/internal/infrastructure/http/v1/dto"
)

// PassportHandler handles HTTP requests for product passports.
type PassportHandler struct {
	*BaseHandler
	repo *passport.Repository
}

// NewPassportHandler creates a new passport handler.
func NewPassportHandler(base *BaseHandler, repo *passport.Repository) *PassportHandler {
	return &PassportHandler{BaseHandler: base, repo: repo}
}

// ListPassports handles GET /passports
func (h *PassportHandler) ListPassports(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListPassports(c.Request.Context()))
}

// CreatePassport handles POST /passports
func (h *PassportHandler) CreatePassport(c *gin.Context) {
	var req dto.PassportRequest
	if !h.BindJSON(c, &req) {
		return
	}

	pp := h.repo.CreatePassport(c.Request.Context(), entity.ProductPassport{
		SerialNo: req.SerialNo,
		ItemID:   req.ItemID,
		BatchNo:  req.BatchNo,
	})
	c.JSON(http.StatusCreated, pp)
}

// AppendEvent handles POST /passports/:id/events
func (h *PassportHandler) AppendEvent(c *gin.Context) {
	var req dto.PassportEventRequest
	if !h.BindJSON(c, &req) {
		return
	}

	pp, err := h.repo.AppendEvent(c.Request.Context(), c.Param("id"), req.Kind, req.Note)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, pp)
}
