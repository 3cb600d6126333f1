package service

import (
	"context"
	"testing"
	"time"

	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/dto"

	"github.com/stretchr/testify/require"
)

func TestTodoCreate(t *testing.T) {
	t.Parallel()
	svc := NewTodoService(newFakeTodoRepo(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "  ", nil)
	require.ErrorIs(t, err, ErrTodoTextRequired)

	deadline := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	todo, err := svc.Create(ctx, 1, "buy milk", &deadline)
	require.NoError(t, err)
	require.Equal(t, int64(1), todo.UserID)
	require.False(t, todo.Completed)
	require.NotNil(t, todo.Deadline)
	require.True(t, todo.Deadline.Equal(deadline))
}

func TestTodoUpdate_CompletedFalsePersists(t *testing.T) {
	t.Parallel()
	svc := NewTodoService(newFakeTodoRepo(), nil)
	ctx := context.Background()

	todo, err := svc.Create(ctx, 1, "buy milk", nil)
	require.NoError(t, err)

	todo, err = svc.Update(ctx, 1, todo.ID, dto.UpdateTodoRequest{Completed: boolPtr(true)})
	require.NoError(t, err)
	require.True(t, todo.Completed)

	// An explicit false must be applied, not treated as absent.
	todo, err = svc.Update(ctx, 1, todo.ID, dto.UpdateTodoRequest{Completed: boolPtr(false)})
	require.NoError(t, err)
	require.False(t, todo.Completed)
	require.Equal(t, "buy milk", todo.Text)
}

func TestTodoUpdate_ClearDeadline(t *testing.T) {
	t.Parallel()
	svc := NewTodoService(newFakeTodoRepo(), nil)
	ctx := context.Background()

	deadline := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	todo, err := svc.Create(ctx, 1, "task", &deadline)
	require.NoError(t, err)
	require.NotNil(t, todo.Deadline)

	// A present-but-null deadline clears it; zero dto.Deadline wraps nil.
	todo, err = svc.Update(ctx, 1, todo.ID, dto.UpdateTodoRequest{Deadline: &dto.Deadline{}})
	require.NoError(t, err)
	require.Nil(t, todo.Deadline)
}

func TestTodoUpdate_WrongOwner(t *testing.T) {
	t.Parallel()
	svc := NewTodoService(newFakeTodoRepo(), nil)
	ctx := context.Background()

	todo, err := svc.Create(ctx, 1, "task", nil)
	require.NoError(t, err)

	_, err = svc.Update(ctx, 2, todo.ID, dto.UpdateTodoRequest{Completed: boolPtr(true)})
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, 2, todo.ID), ErrNotFound)
}
