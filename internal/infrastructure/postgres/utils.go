package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgErrCode extrae el código SQLSTATE de un error de pgx, o "" si no aplica.
func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgErrCode(err) == "23505"
}

// isCheckViolation violación de CHECK (23514), p. ej. quantity >= 0 en
// chemical_stock cuando dos corridas compiten por el mismo químico.
func isCheckViolation(err error) bool {
	return pgErrCode(err) == "23514"
}
