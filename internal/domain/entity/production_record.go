package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductionRecord representa una corrida de producción ya ejecutada.
// Append-only: el costo unitario queda congelado al momento de producir y no
// cambia aunque compras posteriores muevan el costo promedio.
type ProductionRecord struct {
	ID          string
	MedicineID  string
	Quantity    int64 // unidades producidas
	CostPerUnit decimal.Decimal
	Date        time.Time
	CreatedAt   time.Time
	CreatedBy   string // UserID
}
