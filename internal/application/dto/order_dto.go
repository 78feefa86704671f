package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest una línea del pedido: medicamento y unidades.
type OrderLineRequest struct {
	MedicineID string `json:"medicine_id"`
	Quantity   int64  `json:"quantity"`
}

// CreateOrderRequest crea un pedido de venta para un mayorista.
// El precio de cada línea se fija al crear el pedido (costo / 0.40 con el
// margen por defecto) y no se recalcula nunca.
type CreateOrderRequest struct {
	WholesalerID string             `json:"wholesaler_id"`
	Lines        []OrderLineRequest `json:"lines"`
}

// TransitionOrderRequest solicita un cambio de estado del pedido.
type TransitionOrderRequest struct {
	Status string `json:"status"` // shipped o cancelled
}

// OrderLineResponse línea del pedido con el precio fijado.
type OrderLineResponse struct {
	MedicineID string          `json:"medicine_id"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// OrderResponse pedido con sus líneas.
type OrderResponse struct {
	ID           string              `json:"id"`
	WholesalerID string              `json:"wholesaler_id"`
	Date         time.Time           `json:"date"`
	Status       string              `json:"status"`
	Lines        []OrderLineResponse `json:"lines"`
}

// SalesHistoryDTO una línea del historial de ventas.
type SalesHistoryDTO struct {
	OrderID        string          `json:"order_id"`
	WholesalerName string          `json:"wholesaler_name"`
	MedicineName   string          `json:"medicine_name"`
	Quantity       int64           `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Status         string          `json:"status"`
	Date           time.Time       `json:"date"`
}
