// Package tasks provides the kanban task facade. Plain CRUD; the only
// invariant is uniqueness of ids.
package tasks

import (
	"context"
	"time"

	"opscore/internal/core/apperror"
	"opscore/internal/core/clone"
	"opscore/internal/core/entity"
	"opscore/internal/core/id"
	"opscore/internal/core/state"
)

// Repository is the tasks facade over the shared store.
type Repository struct {
	store *state.Store
}

// NewRepository creates the tasks repository.
func NewRepository(store *state.Store) *Repository {
	return &Repository{store: store}
}

// ListTasks returns all tasks.
func (r *Repository) ListTasks(ctx context.Context) []entity.Task {
	var out []entity.Task
	r.store.View(func(snap *state.Snapshot) {
		out = clone.Slice(snap.Tasks.Tasks)
	})
	return out
}

// CreateTask appends a new task with a generated id.
func (r *Repository) CreateTask(ctx context.Context, task entity.Task) entity.Task {
	task.ID = id.New("tsk")
	task.CreatedAt = time.Now().UTC()
	if task.Status == "" {
		task.Status = "backlog"
	}
	_ = r.store.Update(func(snap *state.Snapshot) error {
		snap.Tasks.Tasks = append(snap.Tasks.Tasks, clone.Of(task))
		return nil
	})
	return clone.Of(task)
}

// UpdateTask replaces the task with the given id.
func (r *Repository) UpdateTask(ctx context.Context, task entity.Task) (entity.Task, error) {
	err := r.store.Update(func(snap *state.Snapshot) error {
		for i := range snap.Tasks.Tasks {
			if snap.Tasks.Tasks[i].ID == task.ID {
				// CreatedAt is immutable
				task.CreatedAt = snap.Tasks.Tasks[i].CreatedAt
				snap.Tasks.Tasks[i] = clone.Of(task)
				return nil
			}
		}
		return apperror.NewNotFound("Task", task.ID)
	})
	if err != nil {
		return entity.Task{}, err
	}
	return clone.Of(task), nil
}

// MoveTask changes only the board column.
func (r *Repository) MoveTask(ctx context.Context, taskID, status string) (entity.Task, error) {
	var out entity.Task
	err := r.store.Update(func(snap *state.Snapshot) error {
		for i := range snap.Tasks.Tasks {
			if snap.Tasks.Tasks[i].ID == taskID {
				snap.Tasks.Tasks[i].Status = status
				out = snap.Tasks.Tasks[i]
				return nil
			}
		}
		return apperror.NewNotFound("Task", taskID)
	})
	if err != nil {
		return entity.Task{}, err
	}
	return clone.Of(out), nil
}

// DeleteTask removes the task.
func (r *Repository) DeleteTask(ctx context.Context, taskID string) error {
	return r.store.Update(func(snap *state.Snapshot) error {
		for i := range snap.Tasks.Tasks {
			if snap.Tasks.Tasks[i].ID == taskID {
				snap.Tasks.Tasks = append(snap.Tasks.Tasks[:i], snap.Tasks.Tasks[i+1:]...)
				return nil
			}
		}
		return apperror.NewNotFound("Task", taskID)
	})
}
