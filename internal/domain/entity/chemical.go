package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Chemical representa una materia prima (químico) del catálogo.
// Inmutable después de su registro.
type Chemical struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

// ChemicalStock representa la existencia actual de un químico en kilogramos (1:1 con Chemical).
// Se crea en cero al registrar el químico; solo cambia por compras (+) y consumo de producción (−).
// Invariante: Quantity nunca es negativa.
type ChemicalStock struct {
	ChemicalID string
	Quantity   decimal.Decimal // kilogramos
	UpdatedAt  time.Time
}
