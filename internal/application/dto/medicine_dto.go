package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeComponentRequest un ingrediente de la fórmula: químico y fracción en (0, 1].
type RecipeComponentRequest struct {
	ChemicalID string          `json:"chemical_id"`
	Fraction   decimal.Decimal `json:"fraction"`
}

// CreateMedicineRequest alta de un medicamento con su fórmula.
type CreateMedicineRequest struct {
	Name       string                   `json:"name"`
	Components []RecipeComponentRequest `json:"components"`
}

// MedicineResponse medicamento con su fórmula.
type MedicineResponse struct {
	ID         string                   `json:"id"`
	Name       string                   `json:"name"`
	Components []RecipeComponentRequest `json:"components,omitempty"`
	CreatedAt  time.Time                `json:"created_at"`
}
