package repository

import "github.com/jhoicas/Farmalab-api/internal/domain/entity"

// OrderRepository acceso a pedidos de venta y sus líneas.
type OrderRepository interface {
	// Create inserta cabecera y líneas (misma transacción si el Querier es una tx).
	Create(o *entity.Order, lines []*entity.OrderLine) error
	// GetByID retorna nil, nil si no existe.
	GetByID(id string) (*entity.Order, error)
	Lines(orderID string) ([]*entity.OrderLine, error)
	// UpdateStatusIfPending es el compare-and-set del estado: solo aplica el
	// cambio si el estado actual sigue siendo pending. Retorna true si la fila
	// fue afectada. Es la garantía de que el descuento por despacho corre
	// exactamente una vez bajo reintentos concurrentes.
	UpdateStatusIfPending(orderID, newStatus string) (bool, error)
}
