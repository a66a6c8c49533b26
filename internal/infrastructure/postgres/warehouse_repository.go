package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/warehousing/fulfilment-api/internal/domain"
	"github.com/warehousing/fulfilment-api/internal/domain/entity"
	"github.com/warehousing/fulfilment-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implements WarehouseRepository over PostgreSQL. Pass a pool or a tx (Querier).
//
// A partial unique index on business_unit_code WHERE archived_at IS NULL backs the
// one-active-record-per-code invariant even under concurrent creators; Create maps
// that violation to the duplicate-code validation error.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository builds the persistence adapter for warehouses.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

const warehouseColumns = `id, business_unit_code, location, capacity, stock, created_at, archived_at`

// ListActive returns all warehouses that have not been archived.
func (r *WarehouseRepo) ListActive(ctx context.Context) ([]*entity.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + `
		FROM warehouses WHERE archived_at IS NULL ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active warehouses: %w", err)
	}
	defer rows.Close()
	return scanWarehouses(rows)
}

// ListActiveByLocation returns the active warehouses at one location.
func (r *WarehouseRepo) ListActiveByLocation(ctx context.Context, location string) ([]*entity.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + `
		FROM warehouses WHERE location = $1 AND archived_at IS NULL ORDER BY id`
	rows, err := r.q.Query(ctx, query, location)
	if err != nil {
		return nil, fmt.Errorf("list warehouses by location: %w", err)
	}
	defer rows.Close()
	return scanWarehouses(rows)
}

// FindByBusinessUnitCode returns the active record for a code, or nil.
func (r *WarehouseRepo) FindByBusinessUnitCode(ctx context.Context, code string) (*entity.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + `
		FROM warehouses WHERE business_unit_code = $1 AND archived_at IS NULL`
	return r.findOne(ctx, query, code)
}

// FindByID returns the record with the given row id, archived history included.
func (r *WarehouseRepo) FindByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	query := `
		SELECT ` + warehouseColumns + `
		FROM warehouses WHERE id = $1`
	return r.findOne(ctx, query, id)
}

// Create inserts a new record and fills in the generated id.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (business_unit_code, location, capacity, stock, created_at, archived_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		w.BusinessUnitCode, w.Location, w.Capacity, w.Stock, w.CreatedAt, w.ArchivedAt,
	).Scan(&w.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewValidation(domain.KindDuplicateBusinessUnitCode,
				"A warehouse with business unit code '%s' already exists.", w.BusinessUnitCode)
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// Update persists the mutable state of an existing record.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET location = $2, capacity = $3, stock = $4, archived_at = $5
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, w.ID, w.Location, w.Capacity, w.Stock, w.ArchivedAt)
	if err != nil {
		return fmt.Errorf("update warehouse: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update warehouse %d: no rows affected", w.ID)
	}
	return nil
}

// Remove physically deletes a record. Administrative/test cleanup only.
func (r *WarehouseRepo) Remove(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}

func (r *WarehouseRepo) findOne(ctx context.Context, query string, arg any) (*entity.Warehouse, error) {
	var w entity.Warehouse
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&w.ID, &w.BusinessUnitCode, &w.Location, &w.Capacity, &w.Stock, &w.CreatedAt, &w.ArchivedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

func scanWarehouses(rows pgx.Rows) ([]*entity.Warehouse, error) {
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.BusinessUnitCode, &w.Location, &w.Capacity, &w.Stock, &w.CreatedAt, &w.ArchivedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
