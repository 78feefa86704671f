package migrations

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver database/sql para goose
	"github.com/pressly/goose/v3"
)

const pgDialect = "postgres"

// Up aplica todas las migraciones SQL pendientes del directorio indicado.
// Abre una conexión database/sql aparte del pool pgx; goose la necesita.
func Up(dsn, migrationsDir string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("abrir conexión para migraciones: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect(pgDialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}
