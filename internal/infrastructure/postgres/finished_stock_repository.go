package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmalab-api/internal/domain/entity"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

var _ repository.FinishedStockRepository = (*FinishedStockRepo)(nil)

// FinishedStockRepo implementación de FinishedStockRepository sobre PostgreSQL
// (usable con pool o tx).
type FinishedStockRepo struct {
	q Querier
}

// NewFinishedStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFinishedStockRepository(q Querier) *FinishedStockRepo {
	return &FinishedStockRepo{q: q}
}

// Get obtiene el terminado de un medicamento. Retorna nil, nil si nunca se ha producido.
func (r *FinishedStockRepo) Get(medicineID string) (*entity.FinishedStock, error) {
	query := `
		SELECT medicine_id, quantity, last_cost, updated_at
		FROM finished_stock WHERE medicine_id = $1`
	var s entity.FinishedStock
	err := r.q.QueryRow(context.Background(), query, medicineID).Scan(
		&s.MedicineID, &s.Quantity, &s.LastCost, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get finished stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el terminado y bloquea la fila (SELECT ... FOR UPDATE).
func (r *FinishedStockRepo) GetForUpdate(medicineID string) (*entity.FinishedStock, error) {
	query := `
		SELECT medicine_id, quantity, last_cost, updated_at
		FROM finished_stock WHERE medicine_id = $1
		FOR UPDATE`
	var s entity.FinishedStock
	err := r.q.QueryRow(context.Background(), query, medicineID).Scan(
		&s.MedicineID, &s.Quantity, &s.LastCost, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get finished stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o reemplaza cantidad y último costo del medicamento.
func (r *FinishedStockRepo) Upsert(s *entity.FinishedStock) error {
	query := `
		INSERT INTO finished_stock (medicine_id, quantity, last_cost, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (medicine_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, last_cost = EXCLUDED.last_cost, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query, s.MedicineID, s.Quantity, s.LastCost, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert finished stock: %w", err)
	}
	return nil
}

// AddQuantity suma delta a la cantidad (negativo para despachos). Sin
// verificación de piso: un despacho puede dejar el terminado en negativo y el
// faltante se repone con la siguiente producción.
func (r *FinishedStockRepo) AddQuantity(medicineID string, delta int64) error {
	query := `
		UPDATE finished_stock SET quantity = quantity + $2, updated_at = now()
		WHERE medicine_id = $1`
	tag, err := r.q.Exec(context.Background(), query, medicineID, delta)
	if err != nil {
		return fmt.Errorf("add finished stock quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("add finished stock quantity: medicine %s sin fila de terminado", medicineID)
	}
	return nil
}
