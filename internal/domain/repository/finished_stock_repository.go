package repository

import "github.com/jhoicas/Farmalab-api/internal/domain/entity"

// FinishedStockRepository acceso al ledger de producto terminado.
type FinishedStockRepository interface {
	// Get retorna nil, nil si el medicamento nunca se ha producido.
	Get(medicineID string) (*entity.FinishedStock, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE). Retorna nil, nil si no existe.
	GetForUpdate(medicineID string) (*entity.FinishedStock, error)
	// Upsert inserta o reemplaza cantidad y último costo.
	Upsert(s *entity.FinishedStock) error
	// AddQuantity suma delta (negativo para despachos) sin verificación de piso:
	// la regla de despacho permite que el terminado quede negativo.
	AddQuantity(medicineID string, delta int64) error
}
