package repository_test

import (
	"context"
	"testing"

	"adbook/internal/record"
	"adbook/internal/record/mocks"
	"adbook/shared/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (e stubEntity) GetID() string {
	return e.ID
}

func TestCollection_UpsertThenRead(t *testing.T) {
	store := record.NewMemoryStore()
	coll := repository.NewCollection[stubEntity]("deals", store)
	ctx := context.Background()

	err := coll.Upsert(ctx, stubEntity{ID: "DL-1", Name: "alpha"})
	require.NoError(t, err)

	got, err := coll.ResolveByID(ctx, "DL-1")
	require.NoError(t, err)
	assert.Equal(t, "alpha", got.Name)

	err = coll.Upsert(ctx, stubEntity{ID: "DL-1", Name: "beta"})
	require.NoError(t, err)

	got, err = coll.ResolveByID(ctx, "DL-1")
	require.NoError(t, err)
	assert.Equal(t, "beta", got.Name)

	all, err := coll.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCollection_LoadsExistingSetFromStore(t *testing.T) {
	store := record.NewMemoryStore()
	ctx := context.Background()

	seed := []stubEntity{{ID: "DL-1", Name: "alpha"}, {ID: "DL-2", Name: "beta"}}
	require.NoError(t, store.Set(ctx, "deals", seed))

	coll := repository.NewCollection[stubEntity]("deals", store)

	all, err := coll.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, all)

	got, err := coll.ResolveByID(ctx, "DL-2")
	require.NoError(t, err)
	assert.Equal(t, "beta", got.Name)
}

func TestCollection_ResolveMissingID(t *testing.T) {
	coll := repository.NewCollection[stubEntity]("deals", record.NewMemoryStore())

	_, err := coll.ResolveByID(context.Background(), "DL-404")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCollection_DeleteKeepsOrder(t *testing.T) {
	store := record.NewMemoryStore()
	coll := repository.NewCollection[stubEntity]("deals", store)
	ctx := context.Background()

	require.NoError(t, coll.Upsert(ctx, stubEntity{ID: "DL-1"}))
	require.NoError(t, coll.Upsert(ctx, stubEntity{ID: "DL-2"}))
	require.NoError(t, coll.Upsert(ctx, stubEntity{ID: "DL-3"}))

	require.NoError(t, coll.Delete(ctx, "DL-2"))

	all, err := coll.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "DL-1", all[0].ID)
	assert.Equal(t, "DL-3", all[1].ID)

	got, err := coll.ResolveByID(ctx, "DL-3")
	require.NoError(t, err)
	assert.Equal(t, "DL-3", got.ID)

	err = coll.Delete(ctx, "DL-2")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCollection_RollsBackInsertOnStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	coll := repository.NewCollection[stubEntity]("deals", store)
	ctx := context.Background()

	store.EXPECT().Get(ctx, "deals", gomock.Any()).Return(record.ErrNotFound)
	store.EXPECT().Set(ctx, "deals", gomock.Any()).Return(errors.New("store unavailable"))

	err := coll.Upsert(ctx, stubEntity{ID: "DL-1", Name: "alpha"})
	assert.Error(t, err)

	all, err := coll.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = coll.ResolveByID(ctx, "DL-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCollection_RollsBackUpdateOnStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	coll := repository.NewCollection[stubEntity]("deals", store)
	ctx := context.Background()

	store.EXPECT().Get(ctx, "deals", gomock.Any()).Return(record.ErrNotFound)
	store.EXPECT().Set(ctx, "deals", gomock.Any()).Return(nil)
	store.EXPECT().Set(ctx, "deals", gomock.Any()).Return(errors.New("store unavailable"))

	require.NoError(t, coll.Upsert(ctx, stubEntity{ID: "DL-1", Name: "alpha"}))

	err := coll.Upsert(ctx, stubEntity{ID: "DL-1", Name: "beta"})
	assert.Error(t, err)

	got, err := coll.ResolveByID(ctx, "DL-1")
	require.NoError(t, err)
	assert.Equal(t, "alpha", got.Name)
}

func TestCollection_RollsBackDeleteOnStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	coll := repository.NewCollection[stubEntity]("deals", store)
	ctx := context.Background()

	store.EXPECT().Get(ctx, "deals", gomock.Any()).Return(record.ErrNotFound)
	store.EXPECT().Set(ctx, "deals", gomock.Any()).Return(nil).Times(2)
	store.EXPECT().Set(ctx, "deals", gomock.Any()).Return(errors.New("store unavailable"))

	require.NoError(t, coll.Upsert(ctx, stubEntity{ID: "DL-1"}))
	require.NoError(t, coll.Upsert(ctx, stubEntity{ID: "DL-2"}))

	err := coll.Delete(ctx, "DL-1")
	assert.Error(t, err)

	all, err := coll.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "DL-1", all[0].ID)

	got, err := coll.ResolveByID(ctx, "DL-1")
	require.NoError(t, err)
	assert.Equal(t, "DL-1", got.ID)
}
