package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmalab-api/internal/domain/entity"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL
// (usable con pool o tx). La tabla purchases es append-only.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una compra.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, chemical_id, supplier_id, quantity_kg, price_per_kg, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	createdBy := (*string)(nil)
	if p.CreatedBy != "" {
		createdBy = &p.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ChemicalID, p.SupplierID, p.QuantityKg, p.PricePerKg, p.Date, p.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create purchase: %w", err)
	}
	return nil
}

// PricesByChemical retorna todos los precios por kilo del químico en orden de
// compra. El promedio se calcula en dominio (costing.AveragePrice): promedio
// simple, no ponderado por cantidad.
func (r *PurchaseRepo) PricesByChemical(chemicalID string) ([]decimal.Decimal, error) {
	query := `SELECT price_per_kg FROM purchases WHERE chemical_id = $1 ORDER BY date, created_at`
	rows, err := r.q.Query(context.Background(), query, chemicalID)
	if err != nil {
		return nil, fmt.Errorf("prices by chemical: %w", err)
	}
	defer rows.Close()
	var prices []decimal.Decimal
	for rows.Next() {
		var p decimal.Decimal
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}
