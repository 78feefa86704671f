package production

import (
	"github.com/jhoicas/Farmalab-api/internal/application/dto"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// HistoryUseCase lectura de la bitácora de producción.
type HistoryUseCase struct {
	recordRepo repository.ProductionRecordRepository
}

func NewHistoryUseCase(recordRepo repository.ProductionRecordRepository) *HistoryUseCase {
	return &HistoryUseCase{recordRepo: recordRepo}
}

// List corridas de producción, más recientes primero.
func (uc *HistoryUseCase) List(page dto.PageRequest) ([]dto.ProductionRecordDTO, error) {
	page.DefaultPage()
	records, err := uc.recordRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionRecordDTO, 0, len(records))
	for _, r := range records {
		out = append(out, dto.ProductionRecordDTO{
			MedicineID:  r.MedicineID,
			Quantity:    r.Quantity,
			CostPerUnit: r.CostPerUnit,
			Date:        r.Date,
		})
	}
	return out, nil
}
