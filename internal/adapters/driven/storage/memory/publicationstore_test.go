package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inklet-labs/inklet/internal/core/domain"
)

func TestPublicationStore_SaveAndGet(t *testing.T) {
	store := NewPublicationStore()
	ctx := context.Background()

	pub := &domain.Publication{
		ID:     "pub-1",
		PageID: "page-1",
		Title:  "Test",
	}
	require.NoError(t, store.SavePublication(ctx, pub))

	got, err := store.GetPublication(ctx, "pub-1")
	require.NoError(t, err)
	assert.Equal(t, "Test", got.Title)
}

func TestPublicationStore_GetMissing(t *testing.T) {
	store := NewPublicationStore()

	_, err := store.GetPublication(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPublicationStore_SaveNil(t *testing.T) {
	store := NewPublicationStore()

	err := store.SavePublication(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPublicationStore_ListNewestFirst(t *testing.T) {
	store := NewPublicationStore()
	ctx := context.Background()
	base := time.Now()

	for i, id := range []string{"old", "mid", "new"} {
		require.NoError(t, store.SavePublication(ctx, &domain.Publication{
			ID:          id,
			PublishedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	pubs, err := store.ListPublications(ctx, 0)
	require.NoError(t, err)
	require.Len(t, pubs, 3)
	assert.Equal(t, "new", pubs[0].ID)
	assert.Equal(t, "old", pubs[2].ID)

	limited, err := store.ListPublications(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestPageStore_CreatePage(t *testing.T) {
	store := NewPageStore()
	ctx := context.Background()

	ref, err := store.CreatePage(ctx, &domain.Page{Title: "First"})
	require.NoError(t, err)
	assert.Equal(t, "page-1", ref.ID)
	assert.Equal(t, "memory://page-1", ref.URL)

	pages := store.Pages()
	require.Len(t, pages, 1)
	assert.Equal(t, "First", pages[0].Title)
}

func TestPageStore_CreateErr(t *testing.T) {
	store := NewPageStore()
	store.CreateErr = domain.ErrRateLimited

	_, err := store.CreatePage(context.Background(), &domain.Page{})
	assert.ErrorIs(t, err, domain.ErrRateLimited)
	assert.Empty(t, store.Pages())
}
