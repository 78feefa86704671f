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

var _ repository.ChemicalRepository = (*ChemicalRepo)(nil)

// ChemicalRepo implementación de ChemicalRepository sobre PostgreSQL (usable con pool o tx).
type ChemicalRepo struct {
	q Querier
}

// NewChemicalRepository construye el adaptador. Pasar pool o tx (Querier).
func NewChemicalRepository(q Querier) *ChemicalRepo {
	return &ChemicalRepo{q: q}
}

// Create inserta el químico y su fila de stock en cero. Con una tx como
// Querier, ambas inserciones son atómicas.
func (r *ChemicalRepo) Create(c *entity.Chemical) error {
	query := `INSERT INTO chemicals (id, name, created_at) VALUES ($1, $2, $3)`
	if _, err := r.q.Exec(context.Background(), query, c.ID, c.Name, c.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create chemical: %w", err)
	}
	stockQuery := `INSERT INTO chemical_stock (chemical_id, quantity, updated_at) VALUES ($1, 0, $2)`
	if _, err := r.q.Exec(context.Background(), stockQuery, c.ID, c.CreatedAt); err != nil {
		return fmt.Errorf("create chemical stock: %w", err)
	}
	return nil
}

// GetByID obtiene un químico por ID. Retorna nil, nil si no existe.
func (r *ChemicalRepo) GetByID(id string) (*entity.Chemical, error) {
	query := `SELECT id, name, created_at FROM chemicals WHERE id = $1`
	var c entity.Chemical
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chemical: %w", err)
	}
	return &c, nil
}

// List lista químicos por nombre.
func (r *ChemicalRepo) List(limit, offset int) ([]*entity.Chemical, error) {
	query := `SELECT id, name, created_at FROM chemicals ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list chemicals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Chemical
	for rows.Next() {
		var c entity.Chemical
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chemical: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
