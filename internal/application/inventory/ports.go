package inventory

import (
	"context"

	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la compra y el abono al stock
// del químico se apliquen juntos o no se aplique ninguno.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		stockRepo repository.ChemicalStockRepository,
	) error) error
}
