// Package sales contiene el ciclo de vida de pedidos de venta: creación con
// precio fijado al costo vigente y la transición de estado que descuenta el
// producto terminado exactamente una vez.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Farmalab-api/internal/application/dto"
	"github.com/jhoicas/Farmalab-api/internal/domain"
	"github.com/jhoicas/Farmalab-api/internal/domain/entity"
	"github.com/jhoicas/Farmalab-api/internal/domain/pricing"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// CreateOrderUseCase crea pedidos de venta en una sola transacción:
// cabecera en estado pending más todas sus líneas, con el precio de cada
// línea derivado del último costo de producción del medicamento.
type CreateOrderUseCase struct {
	txRunner       TxRunner
	wholesalerRepo repository.WholesalerRepository
	medicineRepo   repository.MedicineRepository
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(
	txRunner TxRunner,
	wholesalerRepo repository.WholesalerRepository,
	medicineRepo repository.MedicineRepository,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txRunner:       txRunner,
		wholesalerRepo: wholesalerRepo,
		medicineRepo:   medicineRepo,
	}
}

// CreateOrder valida mayorista y líneas, y dentro de la transacción lee el
// último costo de cada medicamento, fija el precio de venta
// (costo / (1 - 0.60)) y persiste cabecera + líneas.
//
// Un medicamento sin corrida de producción no tiene costo registrado:
// ErrNotFound (nunca se asume costo cero). La creación del pedido NO
// descuenta terminado; eso ocurre al despachar.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, userID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.WholesalerID == "" || len(in.Lines) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.MedicineID == "" || line.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	wholesaler, err := uc.wholesalerRepo.GetByID(in.WholesalerID)
	if err != nil {
		return nil, err
	}
	if wholesaler == nil {
		return nil, domain.ErrNotFound
	}
	for _, line := range in.Lines {
		medicine, err := uc.medicineRepo.GetByID(line.MedicineID)
		if err != nil {
			return nil, err
		}
		if medicine == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	order := &entity.Order{
		ID:           uuid.New().String(),
		WholesalerID: in.WholesalerID,
		Date:         now,
		Status:       entity.OrderStatusPending,
		CreatedAt:    now,
		CreatedBy:    userID,
	}
	var lines []*entity.OrderLine

	err = uc.txRunner.RunSales(ctx, func(
		orderRepo repository.OrderRepository,
		finishedRepo repository.FinishedStockRepository,
	) error {
		lines = lines[:0]
		for _, line := range in.Lines {
			finished, err := finishedRepo.Get(line.MedicineID)
			if err != nil {
				return err
			}
			if finished == nil {
				// Sin corrida de producción no hay costo registrado
				return domain.ErrNotFound
			}
			price, err := pricing.SellingPrice(finished.LastCost, pricing.DefaultMargin)
			if err != nil {
				return err
			}
			lines = append(lines, &entity.OrderLine{
				ID:         uuid.New().String(),
				OrderID:    order.ID,
				MedicineID: line.MedicineID,
				Quantity:   line.Quantity,
				UnitPrice:  price,
			})
		}
		return orderRepo.Create(order, lines)
	})
	if err != nil {
		return nil, err
	}

	resp := &dto.OrderResponse{
		ID:           order.ID,
		WholesalerID: order.WholesalerID,
		Date:         order.Date,
		Status:       order.Status,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.OrderLineResponse{
			MedicineID: l.MedicineID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
		})
	}
	return resp, nil
}
