package entity

// Store is a retail outlet fulfilled by up to three warehouses. Membership lives in
// the store_warehouse association table, not on the struct.
type Store struct {
	ID                      int64
	Name                    string
	QuantityProductsInStock int
}
