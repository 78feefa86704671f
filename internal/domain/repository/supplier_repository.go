package repository

import "github.com/jhoicas/Farmalab-api/internal/domain/entity"

// SupplierRepository acceso al catálogo de proveedores.
type SupplierRepository interface {
	Create(s *entity.Supplier) error
	// GetByID retorna nil, nil si no existe.
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
}
