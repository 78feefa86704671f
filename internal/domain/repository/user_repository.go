package repository

import "github.com/jhoicas/Farmalab-api/internal/domain/entity"

// UserRepository acceso a usuarios del sistema.
type UserRepository interface {
	Create(u *entity.User) error
	// FindByEmail retorna nil, nil si no existe.
	FindByEmail(email string) (*entity.User, error)
	// GetByID retorna nil, nil si no existe.
	GetByID(id string) (*entity.User, error)
}
