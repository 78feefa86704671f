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

var _ repository.ChemicalStockRepository = (*ChemicalStockRepo)(nil)

// ChemicalStockRepo implementación de ChemicalStockRepository sobre PostgreSQL
// (usable con pool o tx).
type ChemicalStockRepo struct {
	q Querier
}

// NewChemicalStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewChemicalStockRepository(q Querier) *ChemicalStockRepo {
	return &ChemicalStockRepo{q: q}
}

// Get obtiene el stock actual de un químico. Retorna nil, nil si no hay fila
// (químico no registrado).
func (r *ChemicalStockRepo) Get(chemicalID string) (*entity.ChemicalStock, error) {
	query := `
		SELECT chemical_id, quantity, updated_at
		FROM chemical_stock WHERE chemical_id = $1`
	var s entity.ChemicalStock
	err := r.q.QueryRow(context.Background(), query, chemicalID).Scan(
		&s.ChemicalID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chemical stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT ... FOR UPDATE).
// El lock serializa la secuencia validar-luego-debitar entre transacciones
// concurrentes que tocan el mismo químico.
func (r *ChemicalStockRepo) GetForUpdate(chemicalID string) (*entity.ChemicalStock, error) {
	query := `
		SELECT chemical_id, quantity, updated_at
		FROM chemical_stock WHERE chemical_id = $1
		FOR UPDATE`
	var s entity.ChemicalStock
	err := r.q.QueryRow(context.Background(), query, chemicalID).Scan(
		&s.ChemicalID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chemical stock for update: %w", err)
	}
	return &s, nil
}

// Update persiste la cantidad de la fila (previamente bloqueada con GetForUpdate).
func (r *ChemicalStockRepo) Update(stock *entity.ChemicalStock) error {
	query := `
		UPDATE chemical_stock SET quantity = $2, updated_at = $3
		WHERE chemical_id = $1`
	_, err := r.q.Exec(context.Background(), query, stock.ChemicalID, stock.Quantity, stock.UpdatedAt)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("update chemical stock: %w", domain.ErrInsufficientStock)
		}
		return fmt.Errorf("update chemical stock: %w", err)
	}
	return nil
}
