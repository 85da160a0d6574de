package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opscore/internal/core/state"
	"opscore/pkg/logger"
)

// AdminHandler exposes operational endpoints on the state store.
type AdminHandler struct {
	store *state.Store
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(store *state.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

// Reset handles POST /admin/reset. It restores the exact seed snapshot,
// discarding every run-time mutation. Used for demo and test isolation.
func (h *AdminHandler) Reset(c *gin.Context) {
	h.store.Reset()
	logger.Info(c.Request.Context(), "state store reset to seed")
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
