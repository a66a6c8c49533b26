package usecase

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/warehousing/fulfilment-api/internal/application/dto"
	"github.com/warehousing/fulfilment-api/internal/domain"
	"github.com/warehousing/fulfilment-api/internal/domain/entity"
	"github.com/warehousing/fulfilment-api/internal/domain/repository"
	"github.com/warehousing/fulfilment-api/internal/domain/warehouse"
	"github.com/warehousing/fulfilment-api/internal/infrastructure/cache"
)

const activeWarehousesCacheKey = "warehouses:active"

// WarehouseUseCase orchestrates the warehouse lifecycle: create, replace, archive,
// plus the read operations. Every mutation runs its validation and writes inside
// one transaction via TxRunner.
type WarehouseUseCase struct {
	warehouses repository.WarehouseRepository // pool-bound, reads only
	tx         TxRunner
	validator  *warehouse.Validator
	cache      cache.Client
	cacheTTL   time.Duration
}

// NewWarehouseUseCase builds the use case.
func NewWarehouseUseCase(
	warehouses repository.WarehouseRepository,
	tx TxRunner,
	validator *warehouse.Validator,
	cacheClient cache.Client,
	cacheTTL time.Duration,
) *WarehouseUseCase {
	if cacheClient == nil {
		cacheClient = cache.Noop{}
	}
	return &WarehouseUseCase{
		warehouses: warehouses,
		tx:         tx,
		validator:  validator,
		cache:      cacheClient,
		cacheTTL:   cacheTTL,
	}
}

// Create validates and persists a new active warehouse.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	candidate := warehouse.Candidate{
		BusinessUnitCode: in.BusinessUnitCode,
		Location:         in.Location,
		Capacity:         in.Capacity,
		Stock:            in.Stock,
	}

	var created *entity.Warehouse
	err := uc.tx.RunWarehouse(ctx, func(warehouses repository.WarehouseRepository) error {
		if err := uc.validator.ValidateCreation(ctx, candidate, warehouses); err != nil {
			return err
		}
		w := &entity.Warehouse{
			BusinessUnitCode: candidate.BusinessUnitCode,
			Location:         candidate.Location,
			Capacity:         candidate.Capacity,
			Stock:            candidate.StockOrZero(),
			CreatedAt:        time.Now(),
		}
		if err := warehouses.Create(ctx, w); err != nil {
			return err
		}
		created = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateActiveList(ctx)
	return toWarehouseResponse(created), nil
}

// Replace archives the current active record of a business unit and creates a new
// one reusing its code. Both writes happen in one transaction: a failure partway
// leaves the unit untouched.
func (uc *WarehouseUseCase) Replace(ctx context.Context, businessUnitCode string, in dto.ReplaceWarehouseRequest) (*dto.WarehouseResponse, error) {
	candidate := warehouse.Candidate{
		BusinessUnitCode: businessUnitCode,
		Location:         in.Location,
		Capacity:         in.Capacity,
		Stock:            in.Stock,
	}

	var created *entity.Warehouse
	err := uc.tx.RunWarehouse(ctx, func(warehouses repository.WarehouseRepository) error {
		existing, err := warehouses.FindByBusinessUnitCode(ctx, businessUnitCode)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.NewNotFound("No active warehouse found with business unit code '%s'.", businessUnitCode)
		}

		if err := uc.validator.ValidateReplacement(candidate, existing); err != nil {
			return err
		}

		now := time.Now()
		existing.ArchivedAt = &now
		if err := warehouses.Update(ctx, existing); err != nil {
			return err
		}

		w := &entity.Warehouse{
			BusinessUnitCode: existing.BusinessUnitCode,
			Location:         candidate.Location,
			Capacity:         candidate.Capacity,
			Stock:            existing.Stock, // quantity on hand carries over
			CreatedAt:        now,
		}
		if err := warehouses.Create(ctx, w); err != nil {
			return err
		}
		created = w
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateActiveList(ctx)
	return toWarehouseResponse(created), nil
}

// Archive soft-deletes the active warehouse identified by numeric id or business
// unit code. Archiving an unknown or already-archived unit reports NotFound.
func (uc *WarehouseUseCase) Archive(ctx context.Context, idOrCode string) error {
	err := uc.tx.RunWarehouse(ctx, func(warehouses repository.WarehouseRepository) error {
		record, err := resolveByIDOrCode(ctx, warehouses, idOrCode)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.NewNotFound("Warehouse with id or code '%s' not found.", idOrCode)
		}

		active, err := warehouses.FindByBusinessUnitCode(ctx, record.BusinessUnitCode)
		if err != nil {
			return err
		}
		if active == nil {
			return domain.NewNotFound("No active warehouse found with business unit code '%s'.", record.BusinessUnitCode)
		}

		now := time.Now()
		active.ArchivedAt = &now
		return warehouses.Update(ctx, active)
	})
	if err != nil {
		return err
	}

	uc.invalidateActiveList(ctx)
	return nil
}

// GetByIDOrCode looks up a warehouse by numeric id (any record, history included)
// or by business unit code (active record only).
func (uc *WarehouseUseCase) GetByIDOrCode(ctx context.Context, idOrCode string) (*dto.WarehouseResponse, error) {
	record, err := resolveByIDOrCode(ctx, uc.warehouses, idOrCode)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.NewNotFound("Warehouse with id or code '%s' not found.", idOrCode)
	}
	return toWarehouseResponse(record), nil
}

// ListActive returns all active warehouses, served from the cache when possible.
func (uc *WarehouseUseCase) ListActive(ctx context.Context) ([]dto.WarehouseResponse, error) {
	if cached, err := uc.cache.Get(ctx, activeWarehousesCacheKey); err == nil {
		var items []dto.WarehouseResponse
		if json.Unmarshal([]byte(cached), &items) == nil {
			return items, nil
		}
	}

	list, err := uc.warehouses.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *toWarehouseResponse(w))
	}

	if b, err := json.Marshal(items); err == nil {
		_ = uc.cache.Set(ctx, activeWarehousesCacheKey, string(b), uc.cacheTTL)
	}
	return items, nil
}

func (uc *WarehouseUseCase) invalidateActiveList(ctx context.Context) {
	_ = uc.cache.Delete(ctx, activeWarehousesCacheKey)
}

func resolveByIDOrCode(ctx context.Context, warehouses repository.WarehouseRepository, idOrCode string) (*entity.Warehouse, error) {
	if id, err := strconv.ParseInt(idOrCode, 10, 64); err == nil {
		return warehouses.FindByID(ctx, id)
	}
	return warehouses.FindByBusinessUnitCode(ctx, idOrCode)
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:               w.ID,
		BusinessUnitCode: w.BusinessUnitCode,
		Location:         w.Location,
		Capacity:         w.Capacity,
		Stock:            w.Stock,
		CreatedAt:        w.CreatedAt,
		ArchivedAt:       w.ArchivedAt,
	}
}
