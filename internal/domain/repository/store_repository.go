package repository

import (
	"context"

	"github.com/warehousing/fulfilment-api/internal/domain/entity"
)

// StoreRepository is the persistence port for Store and its warehouse associations (DIP).
type StoreRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Store, error)
	List(ctx context.Context) ([]*entity.Store, error)
	Create(ctx context.Context, store *entity.Store) error
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id int64) error

	CountWarehouses(ctx context.Context, storeID int64) (int, error)
	HasFulfilmentUnit(ctx context.Context, storeID, warehouseID int64) (bool, error)
	AddFulfilmentUnit(ctx context.Context, storeID, warehouseID int64) error
	// OverlapByStore returns, for every store fulfilled by at least one warehouse in
	// warehouseIDs, how many of its warehouses fall inside that set. Feeds the
	// per-product-per-store overlap rule.
	OverlapByStore(ctx context.Context, warehouseIDs []int64) (map[int64]int, error)
}
