package entity

// Location is immutable reference data constraining the warehouses placed there.
type Location struct {
	Identification        string
	MaxNumberOfWarehouses int
	MaxCapacity           int
}
