package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/warehousing/fulfilment-api/internal/domain/entity"
	"github.com/warehousing/fulfilment-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements ProductRepository over PostgreSQL. Pass a pool or a tx (Querier).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the persistence adapter for products.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// FindByID returns one product, or nil.
func (r *ProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, stock
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// List returns all products sorted by name.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, description, price, stock
		FROM products ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Create inserts a new product and fills in the generated id.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.q.QueryRow(ctx, query, p.Name, p.Description, p.Price, p.Stock).Scan(&p.ID); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update persists the mutable fields of a product.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, stock = $5
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query, p.ID, p.Name, p.Description, p.Price, p.Stock); err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete removes a product; its associations go with it.
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// CountByWarehouseID counts the distinct products fulfilled by the warehouse.
func (r *ProductRepo) CountByWarehouseID(ctx context.Context, warehouseID int64) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM product_warehouse WHERE warehouse_id = $1`, warehouseID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by warehouse: %w", err)
	}
	return count, nil
}

// WarehouseIDs returns the ids of the warehouses currently fulfilling the product.
func (r *ProductRepo) WarehouseIDs(ctx context.Context, productID int64) ([]int64, error) {
	rows, err := r.q.Query(ctx,
		`SELECT warehouse_id FROM product_warehouse WHERE product_id = $1`, productID)
	if err != nil {
		return nil, fmt.Errorf("list product warehouses: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan warehouse id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AddFulfilmentUnit records the association; re-adding an existing pair is a no-op.
func (r *ProductRepo) AddFulfilmentUnit(ctx context.Context, productID, warehouseID int64) error {
	query := `
		INSERT INTO product_warehouse (product_id, warehouse_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
	if _, err := r.q.Exec(ctx, query, productID, warehouseID); err != nil {
		return fmt.Errorf("insert product warehouse association: %w", err)
	}
	return nil
}
