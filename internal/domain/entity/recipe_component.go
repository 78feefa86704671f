package entity

import "github.com/shopspring/decimal"

// RecipeComponent representa un ingrediente de la fórmula de un medicamento:
// el par (medicamento, químico) con su fracción de composición en (0, 1].
// Las fracciones de un medicamento no tienen que sumar 1; el sistema no
// normaliza ni valida el total.
type RecipeComponent struct {
	MedicineID string
	ChemicalID string
	Fraction   decimal.Decimal
}
