package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmalab-api/internal/domain"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// StockUseCase consultas del ledger de materia prima.
type StockUseCase struct {
	stockRepo repository.ChemicalStockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.ChemicalStockRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo}
}

// Available retorna los kilogramos disponibles del químico.
// ErrNotFound si el químico no está registrado.
func (uc *StockUseCase) Available(chemicalID string) (decimal.Decimal, error) {
	if chemicalID == "" {
		return decimal.Zero, domain.ErrInvalidInput
	}
	stock, err := uc.stockRepo.Get(chemicalID)
	if err != nil {
		return decimal.Zero, err
	}
	if stock == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	return stock.Quantity, nil
}
