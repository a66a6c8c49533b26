package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehousing/fulfilment-api/internal/application/dto"
	"github.com/warehousing/fulfilment-api/internal/application/usecase"
	"github.com/warehousing/fulfilment-api/internal/domain"
	"github.com/warehousing/fulfilment-api/internal/domain/entity"
	"github.com/warehousing/fulfilment-api/internal/testutil"
	"github.com/warehousing/fulfilment-api/pkg/logger"
)

// legacyCall is one captured gateway invocation.
type legacyCall struct {
	update bool
	store  entity.Store
}

// recordingGateway captures the asynchronous legacy notifications on a channel.
type recordingGateway struct {
	calls chan legacyCall
}

func newRecordingGateway() *recordingGateway {
	return &recordingGateway{calls: make(chan legacyCall, 8)}
}

func (g *recordingGateway) CreateStoreOnLegacySystem(ctx context.Context, store *entity.Store) error {
	g.calls <- legacyCall{update: false, store: *store}
	return nil
}

func (g *recordingGateway) UpdateStoreOnLegacySystem(ctx context.Context, store *entity.Store) error {
	g.calls <- legacyCall{update: true, store: *store}
	return nil
}

func (g *recordingGateway) wait(t *testing.T) legacyCall {
	t.Helper()
	select {
	case c := <-g.calls:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("no legacy notification received")
		return legacyCall{}
	}
}

func newStoreUseCase(t *testing.T) (*usecase.StoreUseCase, *testutil.MemStoreRepo, *recordingGateway) {
	t.Helper()
	repo := testutil.NewMemStoreRepo()
	gw := newRecordingGateway()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return usecase.NewStoreUseCase(repo, gw, log), repo, gw
}

func TestStoreCreate_NotifiesLegacySystem(t *testing.T) {
	uc, _, gw := newStoreUseCase(t)

	out, err := uc.Create(context.Background(), dto.CreateStoreRequest{
		Name:                    "TONSTAD",
		QuantityProductsInStock: 10,
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)

	call := gw.wait(t)
	assert.False(t, call.update)
	assert.Equal(t, "TONSTAD", call.store.Name)
	assert.Equal(t, out.ID, call.store.ID)
}

func TestStoreUpdate_NotifiesLegacySystem(t *testing.T) {
	uc, _, gw := newStoreUseCase(t)

	out, err := uc.Create(context.Background(), dto.CreateStoreRequest{Name: "KALLAX"})
	require.NoError(t, err)
	gw.wait(t) // drain the create notification

	updated, err := uc.Update(context.Background(), out.ID, dto.UpdateStoreRequest{
		Name:                    "KALLAX-2",
		QuantityProductsInStock: 7,
	})
	require.NoError(t, err)
	assert.Equal(t, "KALLAX-2", updated.Name)

	call := gw.wait(t)
	assert.True(t, call.update)
	assert.Equal(t, "KALLAX-2", call.store.Name)
}

func TestStorePatch_AppliesOnlyPresentFields(t *testing.T) {
	uc, _, gw := newStoreUseCase(t)

	out, err := uc.Create(context.Background(), dto.CreateStoreRequest{
		Name:                    "BESTA",
		QuantityProductsInStock: 4,
	})
	require.NoError(t, err)
	gw.wait(t)

	qty := 9
	patched, err := uc.Patch(context.Background(), out.ID, dto.PatchStoreRequest{
		QuantityProductsInStock: &qty,
	})
	require.NoError(t, err)
	assert.Equal(t, "BESTA", patched.Name)
	assert.Equal(t, 9, patched.QuantityProductsInStock)

	call := gw.wait(t)
	assert.True(t, call.update)
	assert.Equal(t, 9, call.store.QuantityProductsInStock)
}

func TestStoreUpdate_UnknownStoreDoesNotNotify(t *testing.T) {
	uc, _, gw := newStoreUseCase(t)

	_, err := uc.Update(context.Background(), 404, dto.UpdateStoreRequest{Name: "MALM"})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Store with id of 404 does not exist.")

	select {
	case <-gw.calls:
		t.Fatal("legacy system must not be notified for a failed update")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestStoreDelete(t *testing.T) {
	uc, repo, gw := newStoreUseCase(t)

	out, err := uc.Create(context.Background(), dto.CreateStoreRequest{Name: "MALM"})
	require.NoError(t, err)
	gw.wait(t)

	require.NoError(t, uc.Delete(context.Background(), out.ID))

	stored, err := repo.FindByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	err = uc.Delete(context.Background(), out.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStoreList_SortedByName(t *testing.T) {
	uc, _, gw := newStoreUseCase(t)

	for _, name := range []string{"TONSTAD", "BESTA", "KALLAX"} {
		_, err := uc.Create(context.Background(), dto.CreateStoreRequest{Name: name})
		require.NoError(t, err)
		gw.wait(t)
	}

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "BESTA", list[0].Name)
	assert.Equal(t, "KALLAX", list[1].Name)
	assert.Equal(t, "TONSTAD", list[2].Name)
}

func TestStoreCreate_NilGatewayIsAllowed(t *testing.T) {
	repo := testutil.NewMemStoreRepo()
	uc := usecase.NewStoreUseCase(repo, nil, nil)

	out, err := uc.Create(context.Background(), dto.CreateStoreRequest{Name: "TONSTAD"})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
}
