package service

import (
	"context"
	"testing"

	"github.com/shazzad098/Personal-Knowledge-Tracker/internal/dto"

	"github.com/stretchr/testify/require"
)

func TestBookmarkCreate_URLValidation(t *testing.T) {
	t.Parallel()
	svc := NewBookmarkService(newFakeBookmarkRepo(), nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, "go", "", "", nil)
	require.ErrorIs(t, err, ErrBookmarkFieldsRequired)

	_, err = svc.Create(ctx, 1, "go", "not a url", "", nil)
	require.ErrorIs(t, err, ErrInvalidURL)

	// Scheme is optional, per the permissive pattern.
	for _, u := range []string{"https://go.dev/doc", "go.dev", "sub.example.co.uk/path"} {
		_, err = svc.Create(ctx, 1, "go", u, "", nil)
		require.NoError(t, err, "url %q should be accepted", u)
	}
}

func TestBookmarkUpdate_PartialMerge(t *testing.T) {
	t.Parallel()
	svc := NewBookmarkService(newFakeBookmarkRepo(), nil)
	ctx := context.Background()

	b, err := svc.Create(ctx, 1, "go", "go.dev", "docs", []string{"dev"})
	require.NoError(t, err)

	// Empty description is a real value, not "leave unchanged".
	got, err := svc.Update(ctx, 1, b.ID, dto.UpdateBookmarkRequest{Description: strPtr("")})
	require.NoError(t, err)
	require.Equal(t, "", got.Description)
	require.Equal(t, "go.dev", got.URL)
	require.Equal(t, []string{"dev"}, got.Tags)

	_, err = svc.Update(ctx, 1, b.ID, dto.UpdateBookmarkRequest{URL: strPtr("%%%")})
	require.ErrorIs(t, err, ErrInvalidURL)

	got, err = svc.Update(ctx, 1, b.ID, dto.UpdateBookmarkRequest{Tags: &[]string{}})
	require.NoError(t, err)
	require.Empty(t, got.Tags)
}
