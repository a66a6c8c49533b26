package dto

// CreateStoreRequest payload for POST /store.
type CreateStoreRequest struct {
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}

// UpdateStoreRequest payload for PUT /store/{id}; Name is required.
type UpdateStoreRequest struct {
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}

// PatchStoreRequest payload for PATCH /store/{id}; only present fields change.
type PatchStoreRequest struct {
	Name                    *string `json:"name"`
	QuantityProductsInStock *int    `json:"quantityProductsInStock"`
}

// StoreResponse representation of a store.
type StoreResponse struct {
	ID                      int64  `json:"id"`
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
}
