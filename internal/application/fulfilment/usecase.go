package fulfilment

import (
	"context"

	"github.com/warehousing/fulfilment-api/internal/domain"
	"github.com/warehousing/fulfilment-api/internal/domain/repository"
)

// Cardinality limits on the fulfilment relationships.
const (
	MaxProductsPerWarehouse         = 5
	MaxWarehousesPerStore           = 3
	MaxWarehousesPerProductPerStore = 2
)

// UseCase manages the product–warehouse and store–warehouse associations under
// the cardinality and overlap limits. Each association runs as one transaction.
type UseCase struct {
	tx TxRunner
}

// NewUseCase builds the association service.
func NewUseCase(tx TxRunner) *UseCase {
	return &UseCase{tx: tx}
}

// AssociateProductWithWarehouse links a product to a warehouse. Re-associating an
// existing pair is a no-op. The overlap rule evaluates the product's warehouse set
// as it would be after the candidate is added, against the current store sets.
func (uc *UseCase) AssociateProductWithWarehouse(ctx context.Context, productID, warehouseID int64) error {
	return uc.tx.RunFulfilment(ctx, func(
		products repository.ProductRepository,
		stores repository.StoreRepository,
		warehouses repository.WarehouseRepository,
	) error {
		product, err := products.FindByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NewNotFound("Product not found with id: %d", productID)
		}

		wh, err := warehouses.FindByID(ctx, warehouseID)
		if err != nil {
			return err
		}
		if wh == nil {
			return domain.NewNotFound("Warehouse not found with id: %d", warehouseID)
		}
		if !wh.Active() {
			return domain.NewValidation(domain.KindArchivedWarehouse,
				"Cannot associate an archived warehouse.")
		}

		productWarehouseIDs, err := products.WarehouseIDs(ctx, productID)
		if err != nil {
			return err
		}
		for _, id := range productWarehouseIDs {
			if id == warehouseID {
				return nil // already associated
			}
		}

		count, err := products.CountByWarehouseID(ctx, warehouseID)
		if err != nil {
			return err
		}
		if count >= MaxProductsPerWarehouse {
			return domain.NewValidation(domain.KindMaxProductsPerWarehouseExceeded,
				"Warehouse can store a maximum of %d types of products.", MaxProductsPerWarehouse)
		}

		if err := checkMaxWarehousesPerProductPerStore(ctx, stores, productWarehouseIDs, warehouseID); err != nil {
			return err
		}

		return products.AddFulfilmentUnit(ctx, productID, warehouseID)
	})
}

// AssociateStoreWithWarehouse links a store to a warehouse. Re-associating an
// existing pair is a no-op. This path enforces only the per-store warehouse cap;
// the per-product-per-store overlap rule is evaluated from the product path alone.
func (uc *UseCase) AssociateStoreWithWarehouse(ctx context.Context, storeID, warehouseID int64) error {
	return uc.tx.RunFulfilment(ctx, func(
		products repository.ProductRepository,
		stores repository.StoreRepository,
		warehouses repository.WarehouseRepository,
	) error {
		store, err := stores.FindByID(ctx, storeID)
		if err != nil {
			return err
		}
		if store == nil {
			return domain.NewNotFound("Store not found with id: %d", storeID)
		}

		wh, err := warehouses.FindByID(ctx, warehouseID)
		if err != nil {
			return err
		}
		if wh == nil {
			return domain.NewNotFound("Warehouse not found with id: %d", warehouseID)
		}
		if !wh.Active() {
			return domain.NewValidation(domain.KindArchivedWarehouse,
				"Cannot associate an archived warehouse.")
		}

		associated, err := stores.HasFulfilmentUnit(ctx, storeID, warehouseID)
		if err != nil {
			return err
		}
		if associated {
			return nil
		}

		count, err := stores.CountWarehouses(ctx, storeID)
		if err != nil {
			return err
		}
		if count >= MaxWarehousesPerStore {
			return domain.NewValidation(domain.KindMaxWarehousesPerStoreExceeded,
				"Store can be fulfilled by a maximum of %d warehouses.", MaxWarehousesPerStore)
		}

		return stores.AddFulfilmentUnit(ctx, storeID, warehouseID)
	})
}

// checkMaxWarehousesPerProductPerStore builds the product's warehouse-id set
// including the not-yet-committed candidate, then verifies no store shares more
// than the allowed number of warehouses with that set.
func checkMaxWarehousesPerProductPerStore(
	ctx context.Context,
	stores repository.StoreRepository,
	productWarehouseIDs []int64,
	candidateWarehouseID int64,
) error {
	set := make([]int64, 0, len(productWarehouseIDs)+1)
	set = append(set, productWarehouseIDs...)
	set = append(set, candidateWarehouseID)

	overlap, err := stores.OverlapByStore(ctx, set)
	if err != nil {
		return err
	}
	for _, shared := range overlap {
		if shared > MaxWarehousesPerProductPerStore {
			return domain.NewValidation(domain.KindMaxWarehousesPerProductPerStoreExceeded,
				"Product can be fulfilled by a maximum of %d warehouses per store.",
				MaxWarehousesPerProductPerStore)
		}
	}
	return nil
}
