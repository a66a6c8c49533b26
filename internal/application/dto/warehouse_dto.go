package dto

import "time"

// CreateWarehouseRequest payload for POST /warehouse.
type CreateWarehouseRequest struct {
	BusinessUnitCode string `json:"businessUnitCode"`
	Location         string `json:"location"`
	Capacity         int    `json:"capacity"`
	Stock            *int   `json:"stock"`
}

// ReplaceWarehouseRequest payload for POST /warehouse/{businessUnitCode}/replacement.
// Stock is optional; when present it must match the stock of the replaced record.
type ReplaceWarehouseRequest struct {
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
	Stock    *int   `json:"stock"`
}

// WarehouseResponse representation of a warehouse record.
type WarehouseResponse struct {
	ID               int64      `json:"id"`
	BusinessUnitCode string     `json:"businessUnitCode"`
	Location         string     `json:"location"`
	Capacity         int        `json:"capacity"`
	Stock            int        `json:"stock"`
	CreatedAt        time.Time  `json:"createdAt"`
	ArchivedAt       *time.Time `json:"archivedAt,omitempty"`
}
