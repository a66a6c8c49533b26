package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel wrapped by every not-found failure; handlers map it to 404.
var ErrNotFound = errors.New("resource not found")

// NotFoundError carries a human-readable message for a missing resource.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// Unwrap makes errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFound builds a NotFoundError with a formatted message.
func NewNotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ValidationKind identifies the business rule that rejected an operation.
type ValidationKind string

const (
	KindDuplicateBusinessUnitCode               ValidationKind = "DUPLICATE_BUSINESS_UNIT_CODE"
	KindUnknownLocation                         ValidationKind = "UNKNOWN_LOCATION"
	KindLocationWarehouseLimitReached           ValidationKind = "LOCATION_WAREHOUSE_LIMIT_REACHED"
	KindCapacityExceedsLocationMax              ValidationKind = "CAPACITY_EXCEEDS_LOCATION_MAX"
	KindStockExceedsCapacity                    ValidationKind = "STOCK_EXCEEDS_CAPACITY"
	KindArchivedWarehouse                       ValidationKind = "ARCHIVED_WAREHOUSE"
	KindMaxProductsPerWarehouseExceeded         ValidationKind = "MAX_PRODUCTS_PER_WAREHOUSE_EXCEEDED"
	KindMaxWarehousesPerStoreExceeded           ValidationKind = "MAX_WAREHOUSES_PER_STORE_EXCEEDED"
	KindMaxWarehousesPerProductPerStoreExceeded ValidationKind = "MAX_WAREHOUSES_PER_PRODUCT_PER_STORE_EXCEEDED"
	KindCapacityTooSmallForExistingStock        ValidationKind = "CAPACITY_TOO_SMALL_FOR_EXISTING_STOCK"
	KindStockMismatchOnReplace                  ValidationKind = "STOCK_MISMATCH_ON_REPLACE"
	KindInvalidInput                            ValidationKind = "INVALID_INPUT"
)

// ValidationError is a deterministic business-rule rejection; handlers map it to 400.
// Message carries the offending values.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidation builds a ValidationError with a formatted message.
func NewValidation(kind ValidationKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsValidation returns the ValidationError inside err, or nil.
func AsValidation(err error) *ValidationError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}
