package warehouse

import (
	"context"

	"github.com/warehousing/fulfilment-api/internal/domain"
	"github.com/warehousing/fulfilment-api/internal/domain/entity"
	"github.com/warehousing/fulfilment-api/internal/domain/repository"
)

// Candidate is the requested state of a warehouse before it is persisted.
// Stock is optional: a replacement request may omit it, meaning "keep the
// stock of the record being replaced".
type Candidate struct {
	BusinessUnitCode string
	Location         string
	Capacity         int
	Stock            *int
}

// StockOrZero returns the requested stock, defaulting to zero when omitted.
func (c Candidate) StockOrZero() int {
	if c.Stock == nil {
		return 0
	}
	return *c.Stock
}

// Validator evaluates the business rules for warehouse creation and replacement.
// Stateless; every call reads a fresh snapshot through the given repository, so
// callers must invoke it inside the same transaction as the subsequent write.
type Validator struct {
	locations repository.LocationResolver
}

// NewValidator builds the validator over the location reference data.
func NewValidator(locations repository.LocationResolver) *Validator {
	return &Validator{locations: locations}
}

// ValidateCreation checks a new warehouse. Rule order: code uniqueness first,
// then structural validity of the request (location, capacity, stock), and only
// then contention with siblings at the location.
func (v *Validator) ValidateCreation(ctx context.Context, c Candidate, warehouses repository.WarehouseRepository) error {
	existing, err := warehouses.FindByBusinessUnitCode(ctx, c.BusinessUnitCode)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.NewValidation(domain.KindDuplicateBusinessUnitCode,
			"A warehouse with business unit code '%s' already exists.", c.BusinessUnitCode)
	}

	location, err := v.validateBasicRules(c)
	if err != nil {
		return err
	}

	activeAtLocation, err := warehouses.ListActiveByLocation(ctx, c.Location)
	if err != nil {
		return err
	}
	if len(activeAtLocation) >= location.MaxNumberOfWarehouses {
		return domain.NewValidation(domain.KindLocationWarehouseLimitReached,
			"Location '%s' has reached the maximum number of warehouses (%d).",
			c.Location, location.MaxNumberOfWarehouses)
	}
	return nil
}

// ValidateReplacement checks a replacement candidate against the active record it
// replaces. The code is reused by design, so uniqueness is not re-checked.
func (v *Validator) ValidateReplacement(c Candidate, existing *entity.Warehouse) error {
	if _, err := v.validateBasicRules(c); err != nil {
		return err
	}

	if c.Capacity < existing.Stock {
		return domain.NewValidation(domain.KindCapacityTooSmallForExistingStock,
			"New warehouse capacity %d cannot accommodate the existing stock of %d.",
			c.Capacity, existing.Stock)
	}

	// Replacement preserves the quantity on hand; only location and capacity change.
	if c.Stock != nil && *c.Stock != existing.Stock {
		return domain.NewValidation(domain.KindStockMismatchOnReplace,
			"New warehouse stock %d must match the current stock of the warehouse being replaced: %d.",
			*c.Stock, existing.Stock)
	}
	return nil
}

func (v *Validator) validateBasicRules(c Candidate) (*entity.Location, error) {
	location, ok := v.locations.ResolveByIdentifier(c.Location)
	if !ok {
		return nil, domain.NewValidation(domain.KindUnknownLocation,
			"Location '%s' does not exist.", c.Location)
	}

	if c.Capacity > location.MaxCapacity {
		return nil, domain.NewValidation(domain.KindCapacityExceedsLocationMax,
			"Requested capacity %d exceeds the maximum allowed capacity %d for location '%s'.",
			c.Capacity, location.MaxCapacity, c.Location)
	}

	if c.Stock != nil && *c.Stock > c.Capacity {
		return nil, domain.NewValidation(domain.KindStockExceedsCapacity,
			"Stock %d exceeds warehouse capacity %d.", *c.Stock, c.Capacity)
	}
	return location, nil
}
