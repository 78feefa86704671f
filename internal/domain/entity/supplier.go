package entity

import "time"

// Supplier representa un proveedor de materias primas.
type Supplier struct {
	ID        string
	Name      string
	TaxID     string // NIT o Cédula
	Phone     string
	CreatedAt time.Time
}
