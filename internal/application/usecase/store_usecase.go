package usecase

import (
	"context"
	"time"

	"github.com/warehousing/fulfilment-api/internal/application/dto"
	"github.com/warehousing/fulfilment-api/internal/domain"
	"github.com/warehousing/fulfilment-api/internal/domain/entity"
	"github.com/warehousing/fulfilment-api/internal/domain/repository"
	"github.com/warehousing/fulfilment-api/pkg/logger"
)

const legacySyncTimeout = 10 * time.Second

// StoreUseCase CRUD for stores. Committed creates and updates are propagated to
// the legacy store manager asynchronously, never before the write has succeeded,
// so the downstream system cannot observe a rolled-back change.
type StoreUseCase struct {
	stores repository.StoreRepository
	legacy LegacyStoreGateway
	log    *logger.Logger
}

// NewStoreUseCase builds the use case. legacy may be nil when sync is disabled.
func NewStoreUseCase(stores repository.StoreRepository, legacy LegacyStoreGateway, log *logger.Logger) *StoreUseCase {
	return &StoreUseCase{stores: stores, legacy: legacy, log: log}
}

// List returns all stores sorted by name.
func (uc *StoreUseCase) List(ctx context.Context) ([]dto.StoreResponse, error) {
	list, err := uc.stores.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return items, nil
}

// GetByID returns one store.
func (uc *StoreUseCase) GetByID(ctx context.Context, id int64) (*dto.StoreResponse, error) {
	store, err := uc.stores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.NewNotFound("Store with id of %d does not exist.", id)
	}
	return toStoreResponse(store), nil
}

// Create persists a new store and notifies the legacy system.
func (uc *StoreUseCase) Create(ctx context.Context, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	store := &entity.Store{
		Name:                    in.Name,
		QuantityProductsInStock: in.QuantityProductsInStock,
	}
	if err := uc.stores.Create(ctx, store); err != nil {
		return nil, err
	}

	uc.notifyLegacy(store, false)
	return toStoreResponse(store), nil
}

// Update replaces name and stock quantity, then notifies the legacy system.
func (uc *StoreUseCase) Update(ctx context.Context, id int64, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.stores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.NewNotFound("Store with id of %d does not exist.", id)
	}

	store.Name = in.Name
	store.QuantityProductsInStock = in.QuantityProductsInStock
	if err := uc.stores.Update(ctx, store); err != nil {
		return nil, err
	}

	uc.notifyLegacy(store, true)
	return toStoreResponse(store), nil
}

// Patch applies only the fields present in the request, then notifies the legacy system.
func (uc *StoreUseCase) Patch(ctx context.Context, id int64, in dto.PatchStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.stores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.NewNotFound("Store with id of %d does not exist.", id)
	}

	if in.Name != nil {
		store.Name = *in.Name
	}
	if in.QuantityProductsInStock != nil {
		store.QuantityProductsInStock = *in.QuantityProductsInStock
	}
	if err := uc.stores.Update(ctx, store); err != nil {
		return nil, err
	}

	uc.notifyLegacy(store, true)
	return toStoreResponse(store), nil
}

// Delete removes a store.
func (uc *StoreUseCase) Delete(ctx context.Context, id int64) error {
	store, err := uc.stores.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.NewNotFound("Store with id of %d does not exist.", id)
	}
	return uc.stores.Delete(ctx, id)
}

// notifyLegacy propagates the committed store state in the background. Errors are
// logged and never surfaced: the legacy sync is best-effort by contract.
func (uc *StoreUseCase) notifyLegacy(store *entity.Store, update bool) {
	if uc.legacy == nil {
		return
	}
	snapshot := *store
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), legacySyncTimeout)
		defer cancel()

		var err error
		if update {
			err = uc.legacy.UpdateStoreOnLegacySystem(ctx, &snapshot)
		} else {
			err = uc.legacy.CreateStoreOnLegacySystem(ctx, &snapshot)
		}
		if err != nil && uc.log != nil {
			uc.log.Error().Err(err).
				Str("store", snapshot.Name).
				Bool("update", update).
				Msg("legacy store sync failed")
		}
	}()
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:                      s.ID,
		Name:                    s.Name,
		QuantityProductsInStock: s.QuantityProductsInStock,
	}
}
