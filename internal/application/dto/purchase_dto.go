package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterPurchaseRequest registra una compra de materia prima.
// La compra y el abono al stock del químico son un solo paso lógico.
type RegisterPurchaseRequest struct {
	ChemicalID string          `json:"chemical_id"`
	SupplierID string          `json:"supplier_id"`
	QuantityKg decimal.Decimal `json:"quantity_kg"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
}

// PurchaseHistoryDTO una fila del historial de compras.
type PurchaseHistoryDTO struct {
	ChemicalName string          `json:"chemical_name"`
	SupplierName string          `json:"supplier_name"`
	Date         time.Time       `json:"date"`
	QuantityKg   decimal.Decimal `json:"quantity_kg"`
	PricePerKg   decimal.Decimal `json:"price_per_kg"`
}
