package sales

import (
	"context"

	"github.com/jhoicas/Farmalab-api/internal/domain"
	"github.com/jhoicas/Farmalab-api/internal/domain/entity"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// TransitionOrderUseCase aplica el cambio de estado de un pedido.
// El estado es monótono: pending→shipped y pending→cancelled; shipped y
// cancelled son terminales.
type TransitionOrderUseCase struct {
	txRunner TxRunner
}

// NewTransitionOrderUseCase construye el caso de uso.
func NewTransitionOrderUseCase(txRunner TxRunner) *TransitionOrderUseCase {
	return &TransitionOrderUseCase{txRunner: txRunner}
}

// Transition cambia el estado del pedido con un compare-and-set sobre status
// (solo aplica si sigue en pending) y, en la primera transición a shipped,
// descuenta de finished_stock la cantidad de cada línea dentro de la misma
// transacción. El descuento no corre dos veces: si el CAS no afecta filas y
// el pedido ya está shipped, repetir shipped es un no-op idempotente.
//
// El descuento por despacho no verifica piso; el terminado puede quedar
// negativo (regla heredada del sistema original).
func (uc *TransitionOrderUseCase) Transition(ctx context.Context, orderID, target string) error {
	if orderID == "" {
		return domain.ErrInvalidInput
	}
	if target != entity.OrderStatusShipped && target != entity.OrderStatusCancelled {
		return domain.ErrInvalidTransition
	}

	return uc.txRunner.RunSales(ctx, func(
		orderRepo repository.OrderRepository,
		finishedRepo repository.FinishedStockRepository,
	) error {
		applied, err := orderRepo.UpdateStatusIfPending(orderID, target)
		if err != nil {
			return err
		}
		if !applied {
			order, err := orderRepo.GetByID(orderID)
			if err != nil {
				return err
			}
			if order == nil {
				return domain.ErrNotFound
			}
			// Reaplicar shipped sobre un pedido ya despachado es un no-op:
			// protege contra reintentos sin duplicar el descuento.
			if target == entity.OrderStatusShipped && order.Status == entity.OrderStatusShipped {
				return nil
			}
			return domain.ErrInvalidTransition
		}

		if target != entity.OrderStatusShipped {
			// cancelled no muta inventario
			return nil
		}
		lines, err := orderRepo.Lines(orderID)
		if err != nil {
			return err
		}
		for _, line := range lines {
			if err := finishedRepo.AddQuantity(line.MedicineID, -line.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}
