package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateChemicalRequest alta de un químico en el catálogo.
type CreateChemicalRequest struct {
	Name string `json:"name"`
}

// ChemicalResponse químico con su existencia actual.
type ChemicalResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	StockKg   decimal.Decimal `json:"stock_kg"`
	CreatedAt time.Time       `json:"created_at"`
}

// StockSnapshotDTO una fila del snapshot de existencias.
type StockSnapshotDTO struct {
	ChemicalName string          `json:"chemical_name"`
	QuantityKg   decimal.Decimal `json:"quantity_kg"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
