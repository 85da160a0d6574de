package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opscore/internal/core/apperror"
	"opscore/internal/core/entity"
	"opscore/internal/core/state"
)

func TestCreateTaskDefaults(t *testing.T) {
	repo := NewRepository(state.New())

	task := repo.CreateTask(context.Background(), entity.Task{Title: "Check scrap bin"})

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "backlog", task.Status)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestUpdateTaskKeepsCreatedAt(t *testing.T) {
	repo := NewRepository(state.New())
	ctx := context.Background()

	task := repo.CreateTask(ctx, entity.Task{Title: "Before"})
	original := task.CreatedAt

	task.Title = "After"
	task.CreatedAt = original.AddDate(1, 0, 0)
	updated, err := repo.UpdateTask(ctx, task)
	require.NoError(t, err)

	assert.Equal(t, "After", updated.Title)
	assert.True(t, original.Equal(updated.CreatedAt), "CreatedAt is immutable")
}

func TestMoveTask(t *testing.T) {
	repo := NewRepository(state.New())
	ctx := context.Background()

	moved, err := repo.MoveTask(ctx, "tsk-1918c0de01-0001", "done")
	require.NoError(t, err)
	assert.Equal(t, "done", moved.Status)

	_, err = repo.MoveTask(ctx, "tsk-missing", "done")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteTask(t *testing.T) {
	repo := NewRepository(state.New())
	ctx := context.Background()

	require.NoError(t, repo.DeleteTask(ctx, "tsk-1918c0de01-0002"))
	assert.Len(t, repo.ListTasks(ctx), 1)

	err := repo.DeleteTask(ctx, "tsk-1918c0de01-0002")
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}
