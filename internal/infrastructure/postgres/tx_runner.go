package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Farmalab-api/internal/application/inventory"
	"github.com/jhoicas/Farmalab-api/internal/application/production"
	"github.com/jhoicas/Farmalab-api/internal/application/sales"
	"github.com/jhoicas/Farmalab-api/internal/application/usecase"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// Ensure TxRunner implementa los contratos transaccionales de cada flujo.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ production.TxRunner = (*TxRunner)(nil)
var _ sales.TxRunner = (*TxRunner)(nil)
var _ usecase.CatalogTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// run inicia una transacción, ejecuta fn y hace Commit o Rollback.
func (r *TxRunner) run(ctx context.Context, fn func(tx Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPurchase transacción de compra: historial de compras + stock del químico.
func (r *TxRunner) RunPurchase(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseRepository,
	stockRepo repository.ChemicalStockRepository,
) error) error {
	return r.run(ctx, func(tx Querier) error {
		return fn(NewPurchaseRepository(tx), NewChemicalStockRepository(tx))
	})
}

// RunProduction transacción de producción: fórmula, ambos ledgers, historial
// de compras y bitácora de producción atados a la misma tx.
func (r *TxRunner) RunProduction(ctx context.Context, fn func(
	medicineRepo repository.MedicineRepository,
	stockRepo repository.ChemicalStockRepository,
	purchaseRepo repository.PurchaseRepository,
	finishedRepo repository.FinishedStockRepository,
	recordRepo repository.ProductionRecordRepository,
) error) error {
	return r.run(ctx, func(tx Querier) error {
		return fn(
			NewMedicineRepository(tx),
			NewChemicalStockRepository(tx),
			NewPurchaseRepository(tx),
			NewFinishedStockRepository(tx),
			NewProductionRecordRepository(tx),
		)
	})
}

// RunSales transacción de ventas: pedidos + ledger de terminado.
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	orderRepo repository.OrderRepository,
	finishedRepo repository.FinishedStockRepository,
) error) error {
	return r.run(ctx, func(tx Querier) error {
		return fn(NewOrderRepository(tx), NewFinishedStockRepository(tx))
	})
}

// RunCatalog transacción de catálogo: altas de químicos y medicamentos.
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	chemicalRepo repository.ChemicalRepository,
	medicineRepo repository.MedicineRepository,
) error) error {
	return r.run(ctx, func(tx Querier) error {
		return fn(NewChemicalRepository(tx), NewMedicineRepository(tx))
	})
}
