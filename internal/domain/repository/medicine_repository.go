package repository

import "github.com/jhoicas/Farmalab-api/internal/domain/entity"

// MedicineRepository acceso al catálogo de medicamentos y sus fórmulas.
type MedicineRepository interface {
	// Create registra el medicamento junto con los componentes de su fórmula
	// (misma transacción si el Querier es una tx).
	Create(m *entity.Medicine, components []*entity.RecipeComponent) error
	// GetByID retorna nil, nil si no existe.
	GetByID(id string) (*entity.Medicine, error)
	List(limit, offset int) ([]*entity.Medicine, error)
	// Components retorna la fórmula en orden estable (por chemical_id).
	Components(medicineID string) ([]*entity.RecipeComponent, error)
}
