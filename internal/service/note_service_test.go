package service

import (
	"context"
	"testing"

	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/dto"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNoteCreate_Validation(t *testing.T) {
	t.Parallel()
	svc := NewNoteService(newFakeNoteRepo(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "", "c", nil)
	require.ErrorIs(t, err, ErrNoteFieldsRequired)
	_, err = svc.Create(ctx, 1, "t", "  ", nil)
	require.ErrorIs(t, err, ErrNoteFieldsRequired)
}

func TestNoteCreate_Defaults(t *testing.T) {
	t.Parallel()
	svc := NewNoteService(newFakeNoteRepo(), nil)

	n, err := svc.Create(context.Background(), 1, " t ", "c", nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), n.UserID)
	require.Equal(t, "t", n.Title)
	require.NotNil(t, n.Category)
	require.Empty(t, n.Category)
	require.NotZero(t, n.ID)
	require.False(t, n.UpdatedAt.Before(n.CreatedAt))
}

func TestNoteUpdate_PartialMerge(t *testing.T) {
	t.Parallel()
	svc := NewNoteService(newFakeNoteRepo(), nil)
	ctx := context.Background()

	n, err := svc.Create(ctx, 1, "t", "c", nil)
	require.NoError(t, err)

	// Only the category changes; title and content stay put.
	got, err := svc.Update(ctx, 1, n.ID, dto.UpdateNoteRequest{Category: &[]string{"Work"}})
	require.NoError(t, err)
	require.Equal(t, "t", got.Title)
	require.Equal(t, "c", got.Content)
	require.Equal(t, []string{"Work"}, got.Category)

	// Present-but-empty clears the list; absent leaves the rest alone.
	got, err = svc.Update(ctx, 1, n.ID, dto.UpdateNoteRequest{Category: &[]string{}})
	require.NoError(t, err)
	require.Empty(t, got.Category)
	require.Equal(t, "t", got.Title)
}

func TestNoteUpdate_OwnershipAndMissing(t *testing.T) {
	t.Parallel()
	svc := NewNoteService(newFakeNoteRepo(), nil)
	ctx := context.Background()

	n, err := svc.Create(ctx, 1, "t", "c", nil)
	require.NoError(t, err)

	// Another user's note must look nonexistent.
	_, err = svc.Update(ctx, 2, n.ID, dto.UpdateNoteRequest{Title: strPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, 1, 9999, dto.UpdateNoteRequest{Title: strPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNoteDelete_Roundtrip(t *testing.T) {
	t.Parallel()
	svc := NewNoteService(newFakeNoteRepo(), nil)
	ctx := context.Background()

	n, err := svc.Create(ctx, 1, "t", "c", nil)
	require.NoError(t, err)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.ErrorIs(t, svc.Delete(ctx, 2, n.ID), ErrNotFound)
	require.NoError(t, svc.Delete(ctx, 1, n.ID))
	require.ErrorIs(t, svc.Delete(ctx, 1, n.ID), ErrNotFound)

	list, err = svc.List(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestNoteList_OwnerScoped(t *testing.T) {
	t.Parallel()
	svc := NewNoteService(newFakeNoteRepo(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "mine", "c", nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, "theirs", "c", nil)
	require.NoError(t, err)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "mine", list[0].Title)
}
