package repository

import "github.com/jhoicas/Farmalab-api/internal/domain/entity"

// ChemicalRepository acceso al catálogo de químicos (materias primas).
type ChemicalRepository interface {
	// Create registra el químico y su fila de stock en cero (misma transacción
	// si el Querier es una tx).
	Create(c *entity.Chemical) error
	// GetByID retorna nil, nil si no existe.
	GetByID(id string) (*entity.Chemical, error)
	List(limit, offset int) ([]*entity.Chemical, error)
}

// ChemicalStockRepository acceso al ledger de existencias de materia prima.
// Toda secuencia leer-luego-mutar debe pasar por GetForUpdate dentro de una
// transacción: el lock de fila serializa productores concurrentes del mismo
// químico.
type ChemicalStockRepository interface {
	// Get retorna nil, nil si el químico no tiene fila de stock.
	Get(chemicalID string) (*entity.ChemicalStock, error)
	// GetForUpdate bloquea la fila (SELECT ... FOR UPDATE). Retorna nil, nil si no existe.
	GetForUpdate(chemicalID string) (*entity.ChemicalStock, error)
	Update(s *entity.ChemicalStock) error
}
