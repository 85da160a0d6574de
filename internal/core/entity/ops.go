package entity

import "time"

// Task is a kanban card. Plain CRUD; the only invariant is id uniqueness.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"` // backlog | todo | in-progress | done
	Assignee    string     `json:"assignee,omitempty"`
	Priority    string     `json:"priority,omitempty"` // low | medium | high
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Employee is a workforce member.
type Employee struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

// Shift assigns an employee to a working window.
type Shift struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	StartsAt   time.Time `json:"startsAt"`
	EndsAt     time.Time `json:"endsAt"`
}

// PassportEvent is one lifecycle entry on a product passport.
type PassportEvent struct {
	At   time.Time `json:"at"`
	Kind string    `json:"kind"`
	Note string    `json:"note,omitempty"`
}

// ProductPassport is the traceability record of one produced unit or batch.
type ProductPassport struct {
	ID       string          `json:"id"`
	SerialNo string          `json:"serialNo"`
	ItemID   string          `json:"itemId"`
	BatchNo  string          `json:"batchNo,omitempty"`
	IssuedAt time.Time       `json:"issuedAt"`
	Events   []PassportEvent `json:"events"`
}

// PlaybookTemplate is a seeded automation blueprint.
type PlaybookTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Steps       []string `json:"steps"`
}

// Playbook is an automation instance created from a template.
type Playbook struct {
	ID         string     `json:"id"`
	TemplateID string     `json:"templateId"`
	Name       string     `json:"name"`
	Enabled    bool       `json:"enabled"`
	LastRunAt  *time.Time `json:"lastRunAt,omitempty"`
}

// PlaybookRun is one execution record of a playbook.
type PlaybookRun struct {
	ID         string    `json:"id"`
	PlaybookID string    `json:"playbookId"`
	Status     string    `json:"status"` // succeeded | failed
	StartedAt  time.Time `json:"startedAt"`
}
