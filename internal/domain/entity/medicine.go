package entity

import "time"

// Medicine representa un medicamento terminado del catálogo. Inmutable.
type Medicine struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
