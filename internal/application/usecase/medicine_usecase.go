package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmalab-api/internal/application/dto"
	"github.com/jhoicas/Farmalab-api/internal/domain"
	"github.com/jhoicas/Farmalab-api/internal/domain/entity"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// MedicineUseCase altas y consultas del catálogo de medicamentos y fórmulas.
type MedicineUseCase struct {
	txRunner     CatalogTxRunner
	medicineRepo repository.MedicineRepository
	chemicalRepo repository.ChemicalRepository
}

// NewMedicineUseCase construye el caso de uso.
func NewMedicineUseCase(
	txRunner CatalogTxRunner,
	medicineRepo repository.MedicineRepository,
	chemicalRepo repository.ChemicalRepository,
) *MedicineUseCase {
	return &MedicineUseCase{txRunner: txRunner, medicineRepo: medicineRepo, chemicalRepo: chemicalRepo}
}

// Create registra el medicamento con su fórmula en una sola transacción.
// Cada fracción debe estar en (0, 1]; la suma de fracciones NO se valida:
// fórmulas incompletas son responsabilidad de quien las define.
func (uc *MedicineUseCase) Create(ctx context.Context, in dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	if in.Name == "" || len(in.Components) == 0 {
		return nil, domain.ErrInvalidInput
	}
	one := decimal.NewFromInt(1)
	for _, comp := range in.Components {
		if comp.ChemicalID == "" {
			return nil, domain.ErrInvalidInput
		}
		if !comp.Fraction.GreaterThan(decimal.Zero) || comp.Fraction.GreaterThan(one) {
			return nil, domain.ErrInvalidInput
		}
		chemical, err := uc.chemicalRepo.GetByID(comp.ChemicalID)
		if err != nil {
			return nil, err
		}
		if chemical == nil {
			return nil, domain.ErrNotFound
		}
	}

	medicine := &entity.Medicine{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	components := make([]*entity.RecipeComponent, 0, len(in.Components))
	for _, comp := range in.Components {
		components = append(components, &entity.RecipeComponent{
			MedicineID: medicine.ID,
			ChemicalID: comp.ChemicalID,
			Fraction:   comp.Fraction,
		})
	}

	err := uc.txRunner.RunCatalog(ctx, func(
		_ repository.ChemicalRepository,
		medicineRepo repository.MedicineRepository,
	) error {
		return medicineRepo.Create(medicine, components)
	})
	if err != nil {
		return nil, err
	}
	return toMedicineResponse(medicine, components), nil
}

// List lista los medicamentos (sin fórmula).
func (uc *MedicineUseCase) List(page dto.PageRequest) ([]dto.MedicineResponse, error) {
	page.DefaultPage()
	medicines, err := uc.medicineRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MedicineResponse, 0, len(medicines))
	for _, m := range medicines {
		out = append(out, dto.MedicineResponse{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt})
	}
	return out, nil
}

// GetByID retorna el medicamento con su fórmula. ErrNotFound si no existe.
func (uc *MedicineUseCase) GetByID(id string) (*dto.MedicineResponse, error) {
	medicine, err := uc.medicineRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if medicine == nil {
		return nil, domain.ErrNotFound
	}
	components, err := uc.medicineRepo.Components(id)
	if err != nil {
		return nil, err
	}
	return toMedicineResponse(medicine, components), nil
}

func toMedicineResponse(m *entity.Medicine, components []*entity.RecipeComponent) *dto.MedicineResponse {
	resp := &dto.MedicineResponse{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt}
	for _, comp := range components {
		resp.Components = append(resp.Components, dto.RecipeComponentRequest{
			ChemicalID: comp.ChemicalID,
			Fraction:   comp.Fraction,
		})
	}
	return resp
}
