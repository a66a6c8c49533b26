package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/warehousing/fulfilment-api/internal/application/fulfilment"
	"github.com/warehousing/fulfilment-api/internal/application/usecase"
	"github.com/warehousing/fulfilment-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)
var _ fulfilment.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction. Transactions run
// serializable: the association and lifecycle rules count rows before writing, and
// two concurrent callers must not both observe a count one below the limit.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunWarehouse starts a transaction, runs fn with a tx-bound warehouse repository,
// and commits or rolls back.
func (r *TxRunner) RunWarehouse(ctx context.Context, fn func(warehouses repository.WarehouseRepository) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewWarehouseRepository(tx))
	})
}

// RunFulfilment starts a transaction, runs fn with tx-bound product, store and
// warehouse repositories, and commits or rolls back.
func (r *TxRunner) RunFulfilment(ctx context.Context, fn func(
	products repository.ProductRepository,
	stores repository.StoreRepository,
	warehouses repository.WarehouseRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewProductRepository(tx), NewStoreRepository(tx), NewWarehouseRepository(tx))
	})
}

func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
