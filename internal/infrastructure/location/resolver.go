package location

import (
	"github.com/warehousing/fulfilment-api/internal/domain/entity"
	"github.com/warehousing/fulfilment-api/internal/domain/repository"
)

var _ repository.LocationResolver = (*Resolver)(nil)

// Resolver serves the fixed location reference table. The table is loaded once
// at construction and never mutated.
type Resolver struct {
	byIdentifier map[string]entity.Location
}

// NewResolver builds the resolver over the static reference data.
func NewResolver() *Resolver {
	locations := []entity.Location{
		{Identification: "ZWOLLE-001", MaxNumberOfWarehouses: 1, MaxCapacity: 40},
		{Identification: "ZWOLLE-002", MaxNumberOfWarehouses: 2, MaxCapacity: 50},
		{Identification: "AMSTERDAM-001", MaxNumberOfWarehouses: 5, MaxCapacity: 100},
		{Identification: "AMSTERDAM-002", MaxNumberOfWarehouses: 3, MaxCapacity: 75},
		{Identification: "TILBURG-001", MaxNumberOfWarehouses: 1, MaxCapacity: 30},
		{Identification: "HELMOND-001", MaxNumberOfWarehouses: 1, MaxCapacity: 45},
		{Identification: "EINDHOVEN-001", MaxNumberOfWarehouses: 2, MaxCapacity: 70},
	}

	byID := make(map[string]entity.Location, len(locations))
	for _, l := range locations {
		byID[l.Identification] = l
	}
	return &Resolver{byIdentifier: byID}
}

// ResolveByIdentifier looks up a location. Identifiers are case-sensitive;
// blank or unknown identifiers resolve to not-found.
func (r *Resolver) ResolveByIdentifier(identifier string) (*entity.Location, bool) {
	l, ok := r.byIdentifier[identifier]
	if !ok {
		return nil, false
	}
	return &l, true
}
