package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmalab-api/internal/domain"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// DeliveryNoteUseCase arma la remisión de despacho de un pedido y la entrega
// como PDF. Solo lectura: no muta el pedido ni el inventario.
type DeliveryNoteUseCase struct {
	orderRepo      repository.OrderRepository
	wholesalerRepo repository.WholesalerRepository
	medicineRepo   repository.MedicineRepository
	generator      DeliveryNoteGenerator
}

// NewDeliveryNoteUseCase construye el caso de uso.
func NewDeliveryNoteUseCase(
	orderRepo repository.OrderRepository,
	wholesalerRepo repository.WholesalerRepository,
	medicineRepo repository.MedicineRepository,
	generator DeliveryNoteGenerator,
) *DeliveryNoteUseCase {
	return &DeliveryNoteUseCase{
		orderRepo:      orderRepo,
		wholesalerRepo: wholesalerRepo,
		medicineRepo:   medicineRepo,
		generator:      generator,
	}
}

// Generate resuelve pedido, mayorista y nombres de medicamentos y genera el PDF.
func (uc *DeliveryNoteUseCase) Generate(_ context.Context, orderID string) ([]byte, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	wholesaler, err := uc.wholesalerRepo.GetByID(order.WholesalerID)
	if err != nil {
		return nil, err
	}
	if wholesaler == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.orderRepo.Lines(orderID)
	if err != nil {
		return nil, err
	}

	data := DeliveryNoteData{
		OrderID:        order.ID,
		Status:         order.Status,
		Date:           order.Date.Format("2006-01-02"),
		WholesalerName: wholesaler.Name,
		Address:        wholesaler.Address,
	}
	for _, line := range lines {
		medicine, err := uc.medicineRepo.GetByID(line.MedicineID)
		if err != nil {
			return nil, err
		}
		name := line.MedicineID
		if medicine != nil {
			name = medicine.Name
		}
		subtotal := line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity))
		data.Lines = append(data.Lines, DeliveryNoteLine{
			MedicineName: name,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice.StringFixed(2),
			Subtotal:     subtotal.StringFixed(2),
		})
	}
	return uc.generator.Generate(data)
}
