package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinishedStock representa la existencia de producto terminado de un medicamento
// (1:1 con Medicine): unidades disponibles y último costo unitario calculado.
// La fila se crea en la primera producción; el despacho de pedidos la descuenta
// sin verificación de piso (ver regla de despacho en sales).
type FinishedStock struct {
	MedicineID string
	Quantity   int64           // unidades
	LastCost   decimal.Decimal // costo unitario de la última producción
	UpdatedAt  time.Time
}
