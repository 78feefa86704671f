package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmalab-api/internal/application/dto"
	"github.com/jhoicas/Farmalab-api/internal/domain"
	"github.com/jhoicas/Farmalab-api/internal/domain/entity"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// ChemicalUseCase altas y consultas del catálogo de químicos.
type ChemicalUseCase struct {
	txRunner     CatalogTxRunner
	chemicalRepo repository.ChemicalRepository
	stockRepo    repository.ChemicalStockRepository
}

// NewChemicalUseCase construye el caso de uso.
func NewChemicalUseCase(
	txRunner CatalogTxRunner,
	chemicalRepo repository.ChemicalRepository,
	stockRepo repository.ChemicalStockRepository,
) *ChemicalUseCase {
	return &ChemicalUseCase{txRunner: txRunner, chemicalRepo: chemicalRepo, stockRepo: stockRepo}
}

// Create registra el químico junto con su fila de stock en cero (una sola
// transacción). El químico es inmutable después del alta.
func (uc *ChemicalUseCase) Create(ctx context.Context, in dto.CreateChemicalRequest) (*dto.ChemicalResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	chemical := &entity.Chemical{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	err := uc.txRunner.RunCatalog(ctx, func(
		chemicalRepo repository.ChemicalRepository,
		_ repository.MedicineRepository,
	) error {
		return chemicalRepo.Create(chemical)
	})
	if err != nil {
		return nil, err
	}
	return &dto.ChemicalResponse{
		ID:        chemical.ID,
		Name:      chemical.Name,
		StockKg:   decimal.Zero,
		CreatedAt: chemical.CreatedAt,
	}, nil
}

// List lista los químicos con su existencia actual.
func (uc *ChemicalUseCase) List(page dto.PageRequest) ([]dto.ChemicalResponse, error) {
	page.DefaultPage()
	chemicals, err := uc.chemicalRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChemicalResponse, 0, len(chemicals))
	for _, c := range chemicals {
		resp := dto.ChemicalResponse{ID: c.ID, Name: c.Name, StockKg: decimal.Zero, CreatedAt: c.CreatedAt}
		stock, err := uc.stockRepo.Get(c.ID)
		if err != nil {
			return nil, err
		}
		if stock != nil {
			resp.StockKg = stock.Quantity
		}
		out = append(out, resp)
	}
	return out, nil
}

// GetByID retorna el químico con su existencia. ErrNotFound si no existe.
func (uc *ChemicalUseCase) GetByID(id string) (*dto.ChemicalResponse, error) {
	chemical, err := uc.chemicalRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if chemical == nil {
		return nil, domain.ErrNotFound
	}
	resp := &dto.ChemicalResponse{ID: chemical.ID, Name: chemical.Name, StockKg: decimal.Zero, CreatedAt: chemical.CreatedAt}
	stock, err := uc.stockRepo.Get(id)
	if err != nil {
		return nil, err
	}
	if stock != nil {
		resp.StockKg = stock.Quantity
	}
	return resp, nil
}
