package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Farmalab-api/internal/domain/entity"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la cabecera del pedido y sus líneas. Con una tx como Querier,
// todo es atómico.
func (r *OrderRepo) Create(o *entity.Order, lines []*entity.OrderLine) error {
	query := `
		INSERT INTO orders (id, wholesaler_id, date, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	createdBy := (*string)(nil)
	if o.CreatedBy != "" {
		createdBy = &o.CreatedBy
	}
	if _, err := r.q.Exec(context.Background(), query,
		o.ID, o.WholesalerID, o.Date, o.Status, o.CreatedAt, createdBy,
	); err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	lineQuery := `
		INSERT INTO order_lines (id, order_id, medicine_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`
	for _, l := range lines {
		if _, err := r.q.Exec(context.Background(), lineQuery,
			l.ID, l.OrderID, l.MedicineID, l.Quantity, l.UnitPrice,
		); err != nil {
			return fmt.Errorf("create order line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la cabecera de un pedido. Retorna nil, nil si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `
		SELECT id, wholesaler_id, date, status, created_at, COALESCE(created_by, '')
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.WholesalerID, &o.Date, &o.Status, &o.CreatedAt, &o.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// Lines retorna las líneas del pedido en orden estable por medicine_id.
func (r *OrderRepo) Lines(orderID string) ([]*entity.OrderLine, error) {
	query := `
		SELECT id, order_id, medicine_id, quantity, unit_price
		FROM order_lines WHERE order_id = $1
		ORDER BY medicine_id`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	defer rows.Close()
	var lines []*entity.OrderLine
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.MedicineID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		lines = append(lines, &l)
	}
	return lines, rows.Err()
}

// UpdateStatusIfPending aplica el cambio de estado solo si el pedido sigue en
// pending. El WHERE sobre status es el compare-and-set que garantiza que dos
// despachos concurrentes del mismo pedido descuenten el terminado una sola vez:
// el perdedor del lock ve la fila ya transicionada y recibe false.
func (r *OrderRepo) UpdateStatusIfPending(orderID, newStatus string) (bool, error) {
	query := `UPDATE orders SET status = $2 WHERE id = $1 AND status = 'pending'`
	tag, err := r.q.Exec(context.Background(), query, orderID, newStatus)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
