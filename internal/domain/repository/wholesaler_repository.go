package repository

import "github.com/jhoicas/Farmalab-api/internal/domain/entity"

// WholesalerRepository acceso al catálogo de mayoristas.
type WholesalerRepository interface {
	Create(w *entity.Wholesaler) error
	// GetByID retorna nil, nil si no existe.
	GetByID(id string) (*entity.Wholesaler, error)
	List(limit, offset int) ([]*entity.Wholesaler, error)
}
