package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes. Corre directo sobre el
// pool: no participa en transacciones de escritura.
type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// StockSnapshot existencias actuales de materia prima con nombre resuelto.
func (r *ReportRepo) StockSnapshot(ctx context.Context) ([]repository.StockSnapshotRow, error) {
	query := `
		SELECT c.id, c.name, s.quantity, s.updated_at
		FROM chemical_stock s
		JOIN chemicals c ON c.id = s.chemical_id
		ORDER BY c.name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stock snapshot: %w", err)
	}
	defer rows.Close()
	var out []repository.StockSnapshotRow
	for rows.Next() {
		var row repository.StockSnapshotRow
		if err := rows.Scan(&row.ChemicalID, &row.ChemicalName, &row.QuantityKg, &row.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock snapshot: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// PurchaseHistory compras con nombres de químico y proveedor, más recientes primero.
func (r *ReportRepo) PurchaseHistory(ctx context.Context, limit, offset int) ([]repository.PurchaseHistoryRow, error) {
	query := `
		SELECT p.id, c.name, sp.name, p.date, p.quantity_kg, p.price_per_kg
		FROM purchases p
		JOIN chemicals c ON c.id = p.chemical_id
		JOIN suppliers sp ON sp.id = p.supplier_id
		ORDER BY p.date DESC, p.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("purchase history: %w", err)
	}
	defer rows.Close()
	var out []repository.PurchaseHistoryRow
	for rows.Next() {
		var row repository.PurchaseHistoryRow
		if err := rows.Scan(&row.PurchaseID, &row.ChemicalName, &row.SupplierName, &row.Date, &row.QuantityKg, &row.PricePerKg); err != nil {
			return nil, fmt.Errorf("scan purchase history: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// SalesHistory líneas de pedido aplanadas con mayorista y medicamento, más
// recientes primero.
func (r *ReportRepo) SalesHistory(ctx context.Context, limit, offset int) ([]repository.SalesHistoryRow, error) {
	query := `
		SELECT o.id, w.name, m.name, l.quantity, l.unit_price, o.status, o.date
		FROM orders o
		JOIN wholesalers w ON w.id = o.wholesaler_id
		JOIN order_lines l ON l.order_id = o.id
		JOIN medicines m ON m.id = l.medicine_id
		ORDER BY o.date DESC, o.created_at DESC, m.name
		LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("sales history: %w", err)
	}
	defer rows.Close()
	var out []repository.SalesHistoryRow
	for rows.Next() {
		var row repository.SalesHistoryRow
		if err := rows.Scan(&row.OrderID, &row.WholesalerName, &row.MedicineName, &row.Quantity, &row.UnitPrice, &row.Status, &row.Date); err != nil {
			return nil, fmt.Errorf("scan sales history: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// SurplusChemicals químicos con más de minKg en existencia cuya fórmula no
// aparece en ningún medicamento producido desde producedSince. Un químico que
// no es componente de nada también cuenta como excedente.
func (r *ReportRepo) SurplusChemicals(ctx context.Context, minKg decimal.Decimal, producedSince time.Time) ([]repository.SurplusRow, error) {
	query := `
		SELECT c.id, c.name, s.quantity
		FROM chemical_stock s
		JOIN chemicals c ON c.id = s.chemical_id
		WHERE s.quantity > $1
		  AND c.id NOT IN (
			SELECT rc.chemical_id
			FROM recipe_components rc
			JOIN production_records pr ON pr.medicine_id = rc.medicine_id
			WHERE pr.date >= $2
		  )
		ORDER BY s.quantity DESC`
	rows, err := r.pool.Query(ctx, query, minKg, producedSince)
	if err != nil {
		return nil, fmt.Errorf("surplus chemicals: %w", err)
	}
	defer rows.Close()
	var out []repository.SurplusRow
	for rows.Next() {
		var row repository.SurplusRow
		if err := rows.Scan(&row.ChemicalID, &row.ChemicalName, &row.QuantityKg); err != nil {
			return nil, fmt.Errorf("scan surplus chemical: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// MedicineCosts costo de materia prima por kilo de cada medicamento:
// suma de fracción × precio promedio simple de compra del componente.
// has_cost baja a false si algún componente no tiene compras (o si la fórmula
// está vacía); el costo parcial se reporta igual pero no sirve para precios.
func (r *ReportRepo) MedicineCosts(ctx context.Context) ([]repository.MedicineCostRow, error) {
	query := `
		SELECT m.id, m.name,
		       COALESCE(SUM(rc.fraction * ap.avg_price), 0) AS raw_cost,
		       COALESCE(BOOL_AND(ap.avg_price IS NOT NULL), false) AS has_cost
		FROM medicines m
		LEFT JOIN recipe_components rc ON rc.medicine_id = m.id
		LEFT JOIN (
			SELECT chemical_id, AVG(price_per_kg) AS avg_price
			FROM purchases GROUP BY chemical_id
		) ap ON ap.chemical_id = rc.chemical_id
		GROUP BY m.id, m.name
		ORDER BY m.name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("medicine costs: %w", err)
	}
	defer rows.Close()
	var out []repository.MedicineCostRow
	for rows.Next() {
		var row repository.MedicineCostRow
		if err := rows.Scan(&row.MedicineID, &row.MedicineName, &row.RawMaterialCost, &row.HasCost); err != nil {
			return nil, fmt.Errorf("scan medicine cost: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
