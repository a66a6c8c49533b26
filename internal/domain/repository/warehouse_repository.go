package repository

import (
	"context"

	"github.com/warehousing/fulfilment-api/internal/domain/entity"
)

// WarehouseRepository is the persistence port for the Warehouse aggregate (DIP).
// Lookups by business unit code see only active records; FindByID also returns
// archived history so a unit stays discoverable after replacement.
type WarehouseRepository interface {
	ListActive(ctx context.Context) ([]*entity.Warehouse, error)
	ListActiveByLocation(ctx context.Context, location string) ([]*entity.Warehouse, error)
	FindByBusinessUnitCode(ctx context.Context, code string) (*entity.Warehouse, error)
	FindByID(ctx context.Context, id int64) (*entity.Warehouse, error)
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	// Remove physically deletes a record. Administrative/test cleanup only;
	// business operations archive instead.
	Remove(ctx context.Context, id int64) error
}

// LocationResolver is the lookup port for location reference data.
// The second return value is false when the identifier is unknown.
type LocationResolver interface {
	ResolveByIdentifier(identifier string) (*entity.Location, bool)
}
