package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"opscore/internal/core/entity"
	"opscore/internal/domain/tasks"
	"opscore/internal/infrastructure/http/v1/dto"
)

// TasksHandler handles HTTP requests for the kanban board.
type TasksHandler struct {
	*BaseHandler
	repo *tasks.Repository
}

// NewTasksHandler creates a new tasks handler.
func NewTasksHandler(base *BaseHandler, repo *tasks.Repository) *TasksHandler {
	return &TasksHandler{BaseHandler: base, repo: repo}
}

// ListTasks handles GET /tasks
func (h *TasksHandler) ListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, h.repo.ListTasks(c.Request.Context()))
}

// CreateTask handles POST /tasks
func (h *TasksHandler) CreateTask(c *gin.Context) {
	var req dto.TaskRequest
	if !h.BindJSON(c, &req) {
		return
	}

	task := h.repo.CreateTask(c.Request.Context(), entity.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Assignee:    req.Assignee,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /tasks/:id
func (h *TasksHandler) UpdateTask(c *gin.Context) {
	var req dto.TaskRequest
	if !h.BindJSON(c, &req) {
		return
	}

	task, err := h.repo.UpdateTask(c.Request.Context(), entity.Task{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Assignee:    req.Assignee,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// MoveTask handles PUT /tasks/:id/status
func (h *TasksHandler) MoveTask(c *gin.Context) {
	var req dto.StatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	task, err := h.repo.MoveTask(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /tasks/:id
func (h *TasksHandler) DeleteTask(c *gin.Context) {
	if err := h.repo.DeleteTask(c.Request.Context(), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
