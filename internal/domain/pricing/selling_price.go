// Package pricing contiene la política de precios de venta
// (servicio de dominio, sin acceso a datos).
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmalab-api/internal/domain"
)

// DefaultMargin margen bruto objetivo sobre el precio de venta (60%).
var DefaultMargin = decimal.NewFromFloat(0.60)

// SellingPrice deriva el precio de venta desde el costo unitario y el margen
// bruto objetivo: precio = costo / (1 - margen).
//
// Con el margen por defecto de 0.60, un costo de 2.00 produce un precio de 5.00.
// Margen >= 1 retorna ErrInvalidInput (dividiría por cero o invertiría el signo).
func SellingPrice(cost, marginFraction decimal.Decimal) (decimal.Decimal, error) {
	one := decimal.NewFromInt(1)
	if marginFraction.GreaterThanOrEqual(one) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return cost.Div(one.Sub(marginFraction)), nil
}
