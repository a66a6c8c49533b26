package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/warehousing/fulfilment-api/internal/domain/entity"
	"github.com/warehousing/fulfilment-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implements StoreRepository over PostgreSQL. Pass a pool or a tx (Querier).
type StoreRepo struct {
	q Querier
}

// NewStoreRepository builds the persistence adapter for stores.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// FindByID returns one store, or nil.
func (r *StoreRepo) FindByID(ctx context.Context, id int64) (*entity.Store, error) {
	query := `
		SELECT id, name, quantity_products_in_stock
		FROM stores WHERE id = $1`
	var s entity.Store
	err := r.q.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.QuantityProductsInStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// List returns all stores sorted by name.
func (r *StoreRepo) List(ctx context.Context) ([]*entity.Store, error) {
	query := `
		SELECT id, name, quantity_products_in_stock
		FROM stores ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()

	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.QuantityProductsInStock); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Create inserts a new store and fills in the generated id.
func (r *StoreRepo) Create(ctx context.Context, s *entity.Store) error {
	query := `
		INSERT INTO stores (name, quantity_products_in_stock)
		VALUES ($1, $2)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, s.Name, s.QuantityProductsInStock).Scan(&s.ID); err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// Update persists name and stock quantity.
func (r *StoreRepo) Update(ctx context.Context, s *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, quantity_products_in_stock = $3
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, s.ID, s.Name, s.QuantityProductsInStock); err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// Delete removes a store; its associations go with it.
func (r *StoreRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM stores WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}

// CountWarehouses counts the warehouses currently fulfilling the store.
func (r *StoreRepo) CountWarehouses(ctx context.Context, storeID int64) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM store_warehouse WHERE store_id = $1`, storeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count store warehouses: %w", err)
	}
	return count, nil
}

// HasFulfilmentUnit reports whether the association already exists.
func (r *StoreRepo) HasFulfilmentUnit(ctx context.Context, storeID, warehouseID int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM store_warehouse WHERE store_id = $1 AND warehouse_id = $2)`,
		storeID, warehouseID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check store warehouse association: %w", err)
	}
	return exists, nil
}

// AddFulfilmentUnit records the association; re-adding an existing pair is a no-op.
func (r *StoreRepo) AddFulfilmentUnit(ctx context.Context, storeID, warehouseID int64) error {
	query := `
		INSERT INTO store_warehouse (store_id, warehouse_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
	if _, err := r.q.Exec(ctx, query, storeID, warehouseID); err != nil {
		return fmt.Errorf("insert store warehouse association: %w", err)
	}
	return nil
}

// OverlapByStore returns, per store fulfilled by any warehouse in warehouseIDs,
// the number of its warehouses inside that set.
func (r *StoreRepo) OverlapByStore(ctx context.Context, warehouseIDs []int64) (map[int64]int, error) {
	query := `
		SELECT store_id, COUNT(*)
		FROM store_warehouse WHERE warehouse_id = ANY($1)
		GROUP BY store_id`
	rows, err := r.q.Query(ctx, query, warehouseIDs)
	if err != nil {
		return nil, fmt.Errorf("overlap by store: %w", err)
	}
	defer rows.Close()

	overlap := make(map[int64]int)
	for rows.Next() {
		var storeID int64
		var shared int
		if err := rows.Scan(&storeID, &shared); err != nil {
			return nil, fmt.Errorf("scan overlap: %w", err)
		}
		overlap[storeID] = shared
	}
	return overlap, rows.Err()
}
