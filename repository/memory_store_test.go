package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"legalease-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedAnalysis(name string) *models.StoredAnalysis {
	return &models.StoredAnalysis{
		ID:       uuid.New(),
		FileName: name,
		Analysis: models.StructuredAnalysis{
			Summary:      "summary",
			DocumentType: models.DocTypeGeneric,
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestMemoryStorePutGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	stored := storedAnalysis("a.pdf")
	require.NoError(t, store.Put(ctx, stored))

	got, err := store.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreRecentEviction(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var all []*models.StoredAnalysis
	for i := 0; i < 12; i++ {
		stored := storedAnalysis(fmt.Sprintf("doc-%d.pdf", i))
		require.NoError(t, store.Put(ctx, stored))
		all = append(all, stored)
	}

	recent, err := store.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, recent, RecentLimit)
	assert.Equal(t, all[11].ID, recent[0].ID)
	assert.Equal(t, all[2].ID, recent[RecentLimit-1].ID)

	// The two oldest entries were evicted entirely
	_, err = store.Get(ctx, all[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(ctx, all[1].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreRePutMovesToFront(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := storedAnalysis("first.pdf")
	require.NoError(t, store.Put(ctx, first))

	for i := 0; i < RecentLimit; i++ {
		require.NoError(t, store.Put(ctx, storedAnalysis(fmt.Sprintf("doc-%d.pdf", i))))
		// Re-putting the same id must not grow the recent list
		require.NoError(t, store.Put(ctx, first))
	}

	got, err := store.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	recent, err := store.Recent(ctx)
	require.NoError(t, err)
	require.Len(t, recent, RecentLimit)
	assert.Equal(t, first.ID, recent[0].ID)
	for _, stored := range recent[1:] {
		assert.NotEqual(t, first.ID, stored.ID)
	}
}

func TestMemoryStoreMostRecent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.MostRecent(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	first := storedAnalysis("first.pdf")
	second := storedAnalysis("second.pdf")
	require.NoError(t, store.Put(ctx, first))
	require.NoError(t, store.Put(ctx, second))

	got, err := store.MostRecent(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}
