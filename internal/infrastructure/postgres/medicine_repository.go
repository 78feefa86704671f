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

var _ repository.MedicineRepository = (*MedicineRepo)(nil)

// MedicineRepo implementación de MedicineRepository sobre PostgreSQL
// (usable con pool o tx).
type MedicineRepo struct {
	q Querier
}

// NewMedicineRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMedicineRepository(q Querier) *MedicineRepo {
	return &MedicineRepo{q: q}
}

// Create inserta el medicamento y los componentes de su fórmula. Con una tx
// como Querier, todo es atómico.
func (r *MedicineRepo) Create(m *entity.Medicine, components []*entity.RecipeComponent) error {
	query := `INSERT INTO medicines (id, name, created_at) VALUES ($1, $2, $3)`
	if _, err := r.q.Exec(context.Background(), query, m.ID, m.Name, m.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("create medicine: %w", err)
	}
	compQuery := `
		INSERT INTO recipe_components (medicine_id, chemical_id, fraction)
		VALUES ($1, $2, $3)`
	for _, c := range components {
		if _, err := r.q.Exec(context.Background(), compQuery, m.ID, c.ChemicalID, c.Fraction); err != nil {
			return fmt.Errorf("create recipe component: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un medicamento por ID. Retorna nil, nil si no existe.
func (r *MedicineRepo) GetByID(id string) (*entity.Medicine, error) {
	query := `SELECT id, name, created_at FROM medicines WHERE id = $1`
	var m entity.Medicine
	err := r.q.QueryRow(context.Background(), query, id).Scan(&m.ID, &m.Name, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get medicine: %w", err)
	}
	return &m, nil
}

// List lista medicamentos por nombre.
func (r *MedicineRepo) List(limit, offset int) ([]*entity.Medicine, error) {
	query := `SELECT id, name, created_at FROM medicines ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	defer rows.Close()
	var list []*entity.Medicine
	for rows.Next() {
		var m entity.Medicine
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan medicine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Components retorna la fórmula del medicamento en orden estable por
// chemical_id. El orden estable fija el orden de locks durante producción y
// evita deadlocks entre corridas concurrentes.
func (r *MedicineRepo) Components(medicineID string) ([]*entity.RecipeComponent, error) {
	query := `
		SELECT medicine_id, chemical_id, fraction
		FROM recipe_components WHERE medicine_id = $1
		ORDER BY chemical_id`
	rows, err := r.q.Query(context.Background(), query, medicineID)
	if err != nil {
		return nil, fmt.Errorf("list recipe components: %w", err)
	}
	defer rows.Close()
	var comps []*entity.RecipeComponent
	for rows.Next() {
		var c entity.RecipeComponent
		if err := rows.Scan(&c.MedicineID, &c.ChemicalID, &c.Fraction); err != nil {
			return nil, fmt.Errorf("scan recipe component: %w", err)
		}
		comps = append(comps, &c)
	}
	return comps, rows.Err()
}
