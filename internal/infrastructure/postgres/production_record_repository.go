package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Farmalab-api/internal/domain/entity"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

var _ repository.ProductionRecordRepository = (*ProductionRecordRepo)(nil)

// ProductionRecordRepo implementación de ProductionRecordRepository sobre
// PostgreSQL (usable con pool o tx). La tabla es append-only.
type ProductionRecordRepo struct {
	q Querier
}

// NewProductionRecordRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionRecordRepository(q Querier) *ProductionRecordRepo {
	return &ProductionRecordRepo{q: q}
}

// Create persiste una corrida de producción con su costo unitario congelado.
func (r *ProductionRecordRepo) Create(rec *entity.ProductionRecord) error {
	query := `
		INSERT INTO production_records (id, medicine_id, quantity, cost_per_unit, date, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	createdBy := (*string)(nil)
	if rec.CreatedBy != "" {
		createdBy = &rec.CreatedBy
	}
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.MedicineID, rec.Quantity, rec.CostPerUnit, rec.Date, rec.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create production record: %w", err)
	}
	return nil
}

// List lista corridas, más recientes primero.
func (r *ProductionRecordRepo) List(limit, offset int) ([]*entity.ProductionRecord, error) {
	query := `
		SELECT id, medicine_id, quantity, cost_per_unit, date, created_at, COALESCE(created_by, '')
		FROM production_records
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list production records: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionRecord
	for rows.Next() {
		var rec entity.ProductionRecord
		if err := rows.Scan(&rec.ID, &rec.MedicineID, &rec.Quantity, &rec.CostPerUnit, &rec.Date, &rec.CreatedAt, &rec.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan production record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
