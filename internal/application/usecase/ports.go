package usecase

import (
	"context"

	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// CatalogTxRunner ejecuta altas de catálogo dentro de una transacción:
// químico + su fila de stock en cero, o medicamento + su fórmula completa.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		chemicalRepo repository.ChemicalRepository,
		medicineRepo repository.MedicineRepository,
	) error) error
}
