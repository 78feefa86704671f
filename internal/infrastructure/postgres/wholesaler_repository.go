package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmalab-api/internal/domain"
	"github.com/jhoicas/Farmalab-api/internal/domain/entity"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

var _ repository.WholesalerRepository = (*WholesalerRepo)(nil)

// WholesalerRepo implementación de WholesalerRepository sobre PostgreSQL.
type WholesalerRepo struct {
	q Querier
}

func NewWholesalerRepository(q Querier) *WholesalerRepo {
	return &WholesalerRepo{q: q}
}

func (r *WholesalerRepo) Create(w *entity.Wholesaler) error {
	query := `INSERT INTO wholesalers (id, name, address, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.q.Exec(context.Background(), query, w.ID, w.Name, w.Address, w.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create wholesaler: %w", err)
	}
	return nil
}

func (r *WholesalerRepo) GetByID(id string) (*entity.Wholesaler, error) {
	query := `SELECT id, name, address, created_at FROM wholesalers WHERE id = $1`
	var w entity.Wholesaler
	err := r.q.QueryRow(context.Background(), query, id).Scan(&w.ID, &w.Name, &w.Address, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wholesaler: %w", err)
	}
	return &w, nil
}

func (r *WholesalerRepo) List(limit, offset int) ([]*entity.Wholesaler, error) {
	query := `SELECT id, name, address, created_at FROM wholesalers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list wholesalers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Wholesaler
	for rows.Next() {
		var w entity.Wholesaler
		if err := rows.Scan(&w.ID, &w.Name, &w.Address, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan wholesaler: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}
