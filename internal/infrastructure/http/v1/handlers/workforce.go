package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opscore/internal/core/entity"
	"opscore/internal/domain/workforce"
	"opscore/internal/infrastructure/http/v1/dto"
)

// WorkforceHandler handles HTTP requests for employees and shifts.
type WorkforceHandler struct {
	*BaseHandler
	repo *workforce.Repository
}

// NewWorkforceHandler creates a new workforce handler.
func NewWorkforceHandler(base *BaseHandler, repo *workforce.Repository) *WorkforceHandler {
	return &WorkforceHandler{BaseHandler: base, repo: repo}
}

// ListEmployees handles GET /workforce/employees
func (h *WorkforceHandler) ListEmployees(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListEmployees(c.Request.Context()))
}

// ListShifts handles GET /workforce/shifts
func (h *WorkforceHandler) ListShifts(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListShifts(c.Request.Context()))
}

// UpsertEmployee handles POST /workforce/employees
func (h *WorkforceHandler) UpsertEmployee(c *gin.Context) {
	var req dto.EmployeeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	emp := h.repo.UpsertEmployee(c.Request.Context(), entity.Employee{
		ID:     req.ID,
		Name:   req.Name,
		Role:   req.Role,
		Active: req.Active,
	})
	c.JSON(http.StatusOK, emp)
}

// AssignShift handles POST /workforce/shifts
func (h *WorkforceHandler) AssignShift(c *gin.Context) {
	var req dto.ShiftRequest
	if !h.BindJSON(c, &req) {
		return
	}

	shift, err := h.repo.AssignShift(c.Request.Context(), entity.Shift{
		EmployeeID: req.EmployeeID,
		StartsAt:   req.StartsAt,
		EndsAt:     req.EndsAt,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, shift)
}
