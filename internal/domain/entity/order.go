package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido de venta. El estado es monótono:
// pending→shipped y pending→cancelled son las únicas transiciones legales;
// shipped y cancelled son terminales.
const (
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
	OrderStatusCancelled = "cancelled"
)

// Order representa la cabecera de un pedido de venta a un mayorista.
type Order struct {
	ID           string
	WholesalerID string
	Date         time.Time
	Status       string // pending, shipped, cancelled
	CreatedAt    time.Time
	CreatedBy    string // UserID
}

// OrderLine representa una línea del pedido. El precio de venta se fija al
// crear el pedido y nunca se recalcula.
type OrderLine struct {
	ID         string
	OrderID    string
	MedicineID string
	Quantity   int64 // unidades
	UnitPrice  decimal.Decimal
}
