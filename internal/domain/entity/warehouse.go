package entity

import "time"

// Warehouse is one physical record of a business unit. A business unit code may have
// many archived records over its history but at most one active record at any time.
type Warehouse struct {
	ID               int64
	BusinessUnitCode string
	Location         string
	Capacity         int
	Stock            int
	CreatedAt        time.Time
	ArchivedAt       *time.Time
}

// Active reports whether the record has not been archived.
func (w *Warehouse) Active() bool {
	return w.ArchivedAt == nil
}
