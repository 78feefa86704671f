// Package production contiene el motor de producción: la conversión atómica
// de materia prima en unidades de producto terminado según la fórmula del
// medicamento.
package production

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmalab-api/internal/application/dto"
	"github.com/jhoicas/Farmalab-api/internal/domain"
	"github.com/jhoicas/Farmalab-api/internal/domain/costing"
	"github.com/jhoicas/Farmalab-api/internal/domain/entity"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// unitsPerKg convención de unidades: 1000 unidades = 1 kilogramo de masa de composición.
var unitsPerKg = decimal.NewFromInt(1000)

// ProduceUseCase ejecuta corridas de producción en dos fases (validar, luego
// consumir) dentro de una sola transacción con bloqueo de fila por ingrediente.
type ProduceUseCase struct {
	txRunner     TxRunner
	medicineRepo repository.MedicineRepository
}

// NewProduceUseCase construye el caso de uso.
func NewProduceUseCase(txRunner TxRunner, medicineRepo repository.MedicineRepository) *ProduceUseCase {
	return &ProduceUseCase{txRunner: txRunner, medicineRepo: medicineRepo}
}

// Produce convierte materia prima en in.Quantity unidades del medicamento.
//
// Fase de validación: por cada componente de la fórmula se bloquea la fila de
// stock (SELECT FOR UPDATE) y se calcula required = (unidades/1000) * fracción.
// Si algún ingrediente no alcanza, la operación completa aborta con
// ErrInsufficientStock y ningún ledger queda mutado. El error no identifica
// el ingrediente deficiente.
//
// Fase de ejecución: se debita cada ingrediente y se acumula
// costPerUnit += fracción * precioPromedio(químico). Un químico sin compras
// registradas aborta con ErrNoPurchaseHistory (rollback completo).
//
// Liquidación: se abona el terminado, se fija el último costo unitario y se
// escribe la fila en production_records. Todo dentro de la misma transacción.
//
// Los locks tomados durante la validación serializan corridas concurrentes que
// comparten químicos: dos Produce no pueden pasar validación sobre la misma
// fila y debitar por debajo de cero.
func (uc *ProduceUseCase) Produce(ctx context.Context, userID string, in dto.ProduceRequest) (*dto.ProduceResponse, error) {
	if in.MedicineID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	medicine, err := uc.medicineRepo.GetByID(in.MedicineID)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	quantityKg := decimal.NewFromInt(in.Quantity).Div(unitsPerKg)
	var costPerUnit decimal.Decimal

	err = uc.txRunner.RunProduction(ctx, func(
		medicineRepo repository.MedicineRepository,
		stockRepo repository.ChemicalStockRepository,
		purchaseRepo repository.PurchaseRepository,
		finishedRepo repository.FinishedStockRepository,
		recordRepo repository.ProductionRecordRepository,
	) error {
		components, err := medicineRepo.Components(in.MedicineID)
		if err != nil {
			return err
		}

		// Fase 1: validación. Bloquea cada fila de stock y verifica que el
		// requerido no exceda lo disponible. Nada se muta en esta fase.
		type consumption struct {
			stock    *entity.ChemicalStock
			required decimal.Decimal
			fraction decimal.Decimal
		}
		plan := make([]consumption, 0, len(components))
		for _, comp := range components {
			stock, err := stockRepo.GetForUpdate(comp.ChemicalID)
			if err != nil {
				return err
			}
			if stock == nil {
				return domain.ErrNotFound
			}
			required := quantityKg.Mul(comp.Fraction)
			if stock.Quantity.LessThan(required) {
				return domain.ErrInsufficientStock
			}
			plan = append(plan, consumption{stock: stock, required: required, fraction: comp.Fraction})
		}

		// Fase 2: ejecución. Debita cada ingrediente y acumula el costo unitario
		// con el precio promedio simple de compra de cada químico.
		for _, c := range plan {
			c.stock.Quantity = c.stock.Quantity.Sub(c.required)
			c.stock.UpdatedAt = now
			if err := stockRepo.Update(c.stock); err != nil {
				return err
			}
			prices, err := purchaseRepo.PricesByChemical(c.stock.ChemicalID)
			if err != nil {
				return err
			}
			avg, err := costing.AveragePrice(prices)
			if err != nil {
				return err // ErrNoPurchaseHistory: rollback completo
			}
			costPerUnit = costPerUnit.Add(c.fraction.Mul(avg))
		}

		// Liquidación: abona el terminado y congela el costo de la corrida.
		finished, err := finishedRepo.GetForUpdate(in.MedicineID)
		if err != nil {
			return err
		}
		if finished == nil {
			finished = &entity.FinishedStock{MedicineID: in.MedicineID}
		}
		finished.Quantity += in.Quantity
		finished.LastCost = costPerUnit
		finished.UpdatedAt = now
		if err := finishedRepo.Upsert(finished); err != nil {
			return err
		}

		record := &entity.ProductionRecord{
			ID:          uuid.New().String(),
			MedicineID:  in.MedicineID,
			Quantity:    in.Quantity,
			CostPerUnit: costPerUnit,
			Date:        now,
			CreatedAt:   now,
			CreatedBy:   userID,
		}
		return recordRepo.Create(record)
	})
	if err != nil {
		return nil, err
	}

	return &dto.ProduceResponse{
		MedicineID:  in.MedicineID,
		Quantity:    in.Quantity,
		CostPerUnit: costPerUnit,
		Date:        now,
	}, nil
}
