package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmalab-api/internal/domain/entity"
)

// PurchaseRepository acceso al historial de compras (append-only).
type PurchaseRepository interface {
	Create(p *entity.Purchase) error
	// PricesByChemical retorna todos los precios por kilo registrados para el
	// químico, en orden de compra. Slice vacío si nunca se ha comprado.
	PricesByChemical(chemicalID string) ([]decimal.Decimal, error)
}
