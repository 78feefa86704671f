package sales

import (
	"context"

	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Cubre la creación de pedidos (cabecera +
// líneas) y la transición de estado con su descuento de terminado.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		finishedRepo repository.FinishedStockRepository,
	) error) error
}

// DeliveryNoteData datos resueltos para la remisión de despacho de un pedido.
type DeliveryNoteData struct {
	OrderID        string
	Status         string
	Date           string
	WholesalerName string
	Address        string
	Lines          []DeliveryNoteLine
}

// DeliveryNoteLine una línea de la remisión.
type DeliveryNoteLine struct {
	MedicineName string
	Quantity     int64
	UnitPrice    string
	Subtotal     string
}

// DeliveryNoteGenerator genera el PDF de la remisión de despacho.
// Lo implementa infrastructure/pdf.
type DeliveryNoteGenerator interface {
	Generate(data DeliveryNoteData) ([]byte, error)
}
