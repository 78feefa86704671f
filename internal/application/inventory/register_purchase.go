package inventory

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

// RegisterPurchaseUseCase registra compras de materia prima de forma
// transaccional: la fila en purchases y el crédito al stock del químico son
// un solo paso lógico (ambos o ninguno), con bloqueo de fila (SELECT FOR UPDATE).
type RegisterPurchaseUseCase struct {
	txRunner     TxRunner
	chemicalRepo repository.ChemicalRepository
	supplierRepo repository.SupplierRepository
}

// NewRegisterPurchaseUseCase construye el caso de uso.
func NewRegisterPurchaseUseCase(
	txRunner TxRunner,
	chemicalRepo repository.ChemicalRepository,
	supplierRepo repository.SupplierRepository,
) *RegisterPurchaseUseCase {
	return &RegisterPurchaseUseCase{
		txRunner:     txRunner,
		chemicalRepo: chemicalRepo,
		supplierRepo: supplierRepo,
	}
}

// RegisterPurchase valida la entrada, verifica químico y proveedor, e inicia
// la transacción: inserta la compra, bloquea la fila de stock y abona la
// cantidad. Cantidad <= 0 o precio < 0 retornan ErrInvalidInput antes de
// tocar estado.
func (uc *RegisterPurchaseUseCase) RegisterPurchase(ctx context.Context, userID string, in dto.RegisterPurchaseRequest) error {
	if in.ChemicalID == "" || in.SupplierID == "" {
		return domain.ErrInvalidInput
	}
	if !in.QuantityKg.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if in.PricePerKg.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}

	chemical, err := uc.chemicalRepo.GetByID(in.ChemicalID)
	if err != nil {
		return err
	}
	if chemical == nil {
		return domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return err
	}
	if supplier == nil {
		return domain.ErrNotFound
	}

	now := time.Now()
	return uc.txRunner.RunPurchase(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		stockRepo repository.ChemicalStockRepository,
	) error {
		purchase := &entity.Purchase{
			ID:         uuid.New().String(),
			ChemicalID: in.ChemicalID,
			SupplierID: in.SupplierID,
			QuantityKg: in.QuantityKg,
			PricePerKg: in.PricePerKg,
			Date:       now,
			CreatedAt:  now,
			CreatedBy:  userID,
		}
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		// Bloquea la fila de stock y abona la cantidad comprada
		stock, err := stockRepo.GetForUpdate(in.ChemicalID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.ErrNotFound
		}
		stock.Quantity = stock.Quantity.Add(in.QuantityKg)
		stock.UpdatedAt = now
		return stockRepo.Update(stock)
	})
}
