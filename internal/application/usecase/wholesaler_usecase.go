package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmalab-api/internal/application/dto"
	"github.com/jhoicas/Farmalab-api/internal/domain"
	"github.com/jhoicas/Farmalab-api/internal/domain/entity"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// CreateWholesalerRequest alta de mayorista.
type CreateWholesalerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// WholesalerUseCase altas y consultas de mayoristas.
type WholesalerUseCase struct {
	wholesalerRepo repository.WholesalerRepository
}

// NewWholesalerUseCase construye el caso de uso.
func NewWholesalerUseCase(wholesalerRepo repository.WholesalerRepository) *WholesalerUseCase {
	return &WholesalerUseCase{wholesalerRepo: wholesalerRepo}
}

// Create registra un mayorista.
func (uc *WholesalerUseCase) Create(in CreateWholesalerRequest) (*entity.Wholesaler, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	wholesaler := &entity.Wholesaler{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		CreatedAt: time.Now(),
	}
	if err := uc.wholesalerRepo.Create(wholesaler); err != nil {
		return nil, err
	}
	return wholesaler, nil
}

// List lista mayoristas.
func (uc *WholesalerUseCase) List(page dto.PageRequest) ([]*entity.Wholesaler, error) {
	page.DefaultPage()
	return uc.wholesalerRepo.List(page.Limit, page.Offset)
}
