package usecase

import (
	"context"

	"github.com/warehousing/fulfilment-api/internal/domain/entity"
	"github.com/warehousing/fulfilment-api/internal/domain/repository"
)

// TxRunner executes a function inside one database transaction, handing it a
// warehouse repository bound to that transaction. The check-then-write sequences
// of the lifecycle use cases rely on this for atomicity.
type TxRunner interface {
	RunWarehouse(ctx context.Context, fn func(warehouses repository.WarehouseRepository) error) error
}

// LegacyStoreGateway propagates committed store changes to the downstream legacy
// store manager. Implementations must only ever be called after a successful commit.
type LegacyStoreGateway interface {
	CreateStoreOnLegacySystem(ctx context.Context, store *entity.Store) error
	UpdateStoreOnLegacySystem(ctx context.Context, store *entity.Store) error
}
