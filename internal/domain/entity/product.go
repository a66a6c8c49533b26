package entity

import "github.com/shopspring/decimal"

// Product is a sellable article fulfilled from warehouses. Its warehouse set lives
// in the product_warehouse association table.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}
