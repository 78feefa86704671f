package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una compra de materia prima a un proveedor.
// Append-only: nunca se actualiza ni se borra; es la fuente de verdad del costo promedio.
type Purchase struct {
	ID         string
	ChemicalID string
	SupplierID string
	QuantityKg decimal.Decimal
	PricePerKg decimal.Decimal
	Date       time.Time
	CreatedAt  time.Time
	CreatedBy  string // UserID
}
