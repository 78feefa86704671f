package repository

import "github.com/jhoicas/Farmalab-api/internal/domain/entity"

// ProductionRecordRepository acceso a la bitácora de producción (append-only).
type ProductionRecordRepository interface {
	Create(r *entity.ProductionRecord) error
	List(limit, offset int) ([]*entity.ProductionRecord, error)
}
