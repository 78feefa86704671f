package dto

import "github.com/shopspring/decimal"

// SurplusChemicalDTO un químico con excedente: más de 100 kg en stock y sin
// uso en la fórmula de ningún medicamento producido en los últimos 6 meses.
type SurplusChemicalDTO struct {
	ChemicalID   string          `json:"chemical_id"`
	ChemicalName string          `json:"chemical_name"`
	QuantityKg   decimal.Decimal `json:"quantity_kg"`
}

// ProfitDashboardDTO rentabilidad proyectada de un medicamento.
// EBITDA18 es el 18% plano del precio derivado (no de la utilidad): política
// heredada del sistema original, reproducida tal cual.
type ProfitDashboardDTO struct {
	MedicineID      string          `json:"medicine_id"`
	MedicineName    string          `json:"medicine_name"`
	RawMaterialCost decimal.Decimal `json:"raw_material_cost"`
	SellingPrice60  decimal.Decimal `json:"selling_price_60"`
	EBITDA18        decimal.Decimal `json:"ebitda_18"`
	HasCost         bool            `json:"has_cost"`
}
