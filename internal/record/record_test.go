package record_test

import (
	"context"
	"testing"

	"adbook/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixtureItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := record.NewMemoryStore()
	ctx := context.Background()

	items := []fixtureItem{
		{ID: "DL-1", Name: "alpha"},
		{ID: "DL-2", Name: "beta"},
	}

	err := store.Set(ctx, "deals", items)
	require.NoError(t, err)

	var got []fixtureItem
	err = store.Get(ctx, "deals", &got)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestMemoryStore_GetMissingKey(t *testing.T) {
	store := record.NewMemoryStore()

	var got []fixtureItem
	err := store.Get(context.Background(), "placements", &got)
	assert.ErrorIs(t, err, record.ErrNotFound)
	assert.Empty(t, got)
}

func TestMemoryStore_SetReplacesWholesale(t *testing.T) {
	store := record.NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "deals", []fixtureItem{{ID: "DL-1", Name: "alpha"}}))
	require.NoError(t, store.Set(ctx, "deals", []fixtureItem{{ID: "DL-2", Name: "beta"}}))

	var got []fixtureItem
	require.NoError(t, store.Get(ctx, "deals", &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "DL-2", got[0].ID)
}
