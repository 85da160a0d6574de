package dto

import "time"

// TaskRequest creates or updates a kanban task.
type TaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Assignee    string     `json:"assignee"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

// EmployeeRequest creates or updates an employee.
type EmployeeRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name" binding:"required"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// ShiftRequest assigns an employee to a working window.
type ShiftRequest struct {
	EmployeeID string    `json:"employeeId" binding:"required"`
	StartsAt   time.Time `json:"startsAt" binding:"required"`
	EndsAt     time.Time `json:"endsAt" binding:"required"`
}

// PassportRequest opens a product passport.
type PassportRequest struct {
	SerialNo string `json:"serialNo" binding:"required"`
	ItemID   string `json:"itemId" binding:"required"`
	BatchNo  string `json:"batchNo"`
}

// PassportEventRequest appends a passport lifecycle event.
type PassportEventRequest struct {
	Kind string `json:"kind" binding:"required"`
	Note string `json:"note"`
}

// CreatePlaybookRequest instantiates a playbook from a template.
type CreatePlaybookRequest struct {
	TemplateID string `json:"templateId" binding:"required"`
	Name       string `json:"name"`
}

// PlaybookEnabledRequest toggles a playbook.
type PlaybookEnabledRequest struct {
	Enabled bool `json:"enabled"`
}
