package testutil

import (
	"context"

	"github.com/warehousing/fulfilment-api/internal/domain/repository"
)

// TxRunner runs callbacks against the in-memory repositories with rollback
// semantics: when the callback errors, every repository is restored to its
// state before the call, matching what a real transaction would do.
type TxRunner struct {
	Warehouses *MemWarehouseRepo
	Stores     *MemStoreRepo
	Products   *MemProductRepo
}

// NewTxRunner builds a runner over the given repositories. Stores and Products
// may be nil when only the warehouse lifecycle is under test.
func NewTxRunner(warehouses *MemWarehouseRepo, stores *MemStoreRepo, products *MemProductRepo) *TxRunner {
	return &TxRunner{Warehouses: warehouses, Stores: stores, Products: products}
}

// RunWarehouse implements the warehouse lifecycle transaction port.
func (t *TxRunner) RunWarehouse(ctx context.Context, fn func(warehouses repository.WarehouseRepository) error) error {
	snap := t.Warehouses.snapshot()
	if err := fn(t.Warehouses); err != nil {
		t.Warehouses.restore(snap)
		return err
	}
	return nil
}

// RunFulfilment implements the association transaction port.
func (t *TxRunner) RunFulfilment(ctx context.Context, fn func(
	products repository.ProductRepository,
	stores repository.StoreRepository,
	warehouses repository.WarehouseRepository,
) error) error {
	wSnap := t.Warehouses.snapshot()
	sSnap := t.Stores.snapshot()
	pSnap := t.Products.snapshot()
	if err := fn(t.Products, t.Stores, t.Warehouses); err != nil {
		t.Warehouses.restore(wSnap)
		t.Stores.restore(sSnap)
		t.Products.restore(pSnap)
		return err
	}
	return nil
}
