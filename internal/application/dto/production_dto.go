package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProduceRequest orden de producción: medicamento y unidades a producir.
// Convención: 1000 unidades equivalen a 1 kilogramo de masa de composición.
type ProduceRequest struct {
	MedicineID string `json:"medicine_id"`
	Quantity   int64  `json:"quantity"`
}

// ProduceResponse resultado de una corrida de producción exitosa.
type ProduceResponse struct {
	MedicineID  string          `json:"medicine_id"`
	Quantity    int64           `json:"quantity"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	Date        time.Time       `json:"date"`
}

// ProductionRecordDTO una fila de la bitácora de producción.
type ProductionRecordDTO struct {
	MedicineID  string          `json:"medicine_id"`
	Quantity    int64           `json:"quantity"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	Date        time.Time       `json:"date"`
}
