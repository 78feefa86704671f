// Package costing contiene la política de costeo de materias primas
// (servicio de dominio, sin acceso a datos).
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmalab-api/internal/domain"
)

// AveragePrice calcula el precio de referencia de un químico como el promedio
// aritmético simple de los precios por kilo de todas sus compras.
//
// NO es un promedio ponderado por cantidad: una compra grande a precio bajo
// pesa igual que una compra pequeña a precio alto. Es la política de costeo
// histórica del sistema y se reproduce tal cual.
//
// Sin compras registradas retorna ErrNoPurchaseHistory; el caller debe tratar
// el caso explícitamente, nunca asumir costo cero.
func AveragePrice(prices []decimal.Decimal) (decimal.Decimal, error) {
	if len(prices) == 0 {
		return decimal.Zero, domain.ErrNoPurchaseHistory
	}
	sum := decimal.Zero
	for _, p := range prices {
		sum = sum.Add(p)
	}
	return sum.Div(decimal.NewFromInt(int64(len(prices)))), nil
}
