package entity

import "time"

// Wholesaler representa un mayorista (cliente de venta al por mayor). Inmutable.
type Wholesaler struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}
