package repository

import (
	"context"

	"github.com/warehousing/fulfilment-api/internal/domain/entity"
)

// ProductRepository is the persistence port for Product and its warehouse associations (DIP).
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error

	// CountByWarehouseID counts distinct products fulfilled by the warehouse.
	CountByWarehouseID(ctx context.Context, warehouseID int64) (int, error)
	// WarehouseIDs returns the ids of all warehouses currently fulfilling the product.
	WarehouseIDs(ctx context.Context, productID int64) ([]int64, error)
	AddFulfilmentUnit(ctx context.Context, productID, warehouseID int64) error
}
