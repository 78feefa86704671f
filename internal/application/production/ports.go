package production

import (
	"context"

	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es el límite transaccional de la corrida de
// producción: validación, consumo, liquidación y bitácora se aplican como una
// unidad o no se aplica nada.
type TxRunner interface {
	RunProduction(ctx context.Context, fn func(
		medicineRepo repository.MedicineRepository,
		stockRepo repository.ChemicalStockRepository,
		purchaseRepo repository.PurchaseRepository,
		finishedRepo repository.FinishedStockRepository,
		recordRepo repository.ProductionRecordRepository,
	) error) error
}
