package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opscore/internal/domain/automation"
	"opscore/internal/infrastructure/http/v1/dto"
)

// AutomationHandler handles HTTP requests for playbooks.
type AutomationHandler struct {
	*BaseHandler
	repo *automation.Repository
}

// NewAutomationHandler creates a new automation handler.
func NewAutomationHandler(base *BaseHandler, repo *automation.Repository) *AutomationHandler {
	return &AutomationHandler{BaseHandler: base, repo: repo}
}

// ListTemplates handles GET /automation/templates
func (h *AutomationHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListTemplates(c.Request.Context()))
}

// ListPlaybooks handles GET /automation/playbooks
func (h *AutomationHandler) ListPlaybooks(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListPlaybooks(c.Request.Context()))
}

// ListRuns handles GET /automation/runs
func (h *AutomationHandler) ListRuns(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListRuns(c.Request.Context()))
}

// CreatePlaybook handles POST /automation/playbooks
func (h *AutomationHandler) CreatePlaybook(c *gin.Context) {
	var req dto.CreatePlaybookRequest
	if !h.BindJSON(c, &req) {
		return
	}

	pb, err := h.repo.CreatePlaybookFromTemplate(c.Request.Context(), req.TemplateID, req.Name)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, pb)
}

// RunPlaybook handles POST /automation/playbooks/:id/run
func (h *AutomationHandler) RunPlaybook(c *gin.Context) {
	run, err := h.repo.RunPlaybook(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, run)
}

// SetPlaybookEnabled handles PUT /automation/playbooks/:id/enabled
func (h *AutomationHandler) SetPlaybookEnabled(c *gin.Context) {
	var req dto.PlaybookEnabledRequest
	if !h.BindJSON(c, &req) {
		return
	}

	pb, err := h.repo.SetPlaybookEnabled(c.Request.Context(), c.Param("id"), req.Enabled)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, pb)
}
