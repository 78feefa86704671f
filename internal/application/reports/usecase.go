// Package reports contiene los casos de uso de solo lectura: snapshot de
// existencias, historiales, excedentes y el tablero de rentabilidad.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Farmalab-api/internal/application/dto"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// surplusMinKg umbral de excedente: químicos con más de 100 kg en stock.
var surplusMinKg = decimal.NewFromInt(100)

// surplusWindow ventana de producción reciente para el reporte de excedentes.
const surplusWindow = 6 * 30 * 24 * time.Hour // 6 meses

// ebitdaRate porcentaje plano sobre el precio derivado (no sobre la utilidad).
var ebitdaRate = decimal.NewFromFloat(0.18)

// ReportsUseCase vistas derivadas sobre los ledgers y bitácoras. No muta nada;
// los fallos del almacén se propagan al caller sin reintentos.
type ReportsUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(reportRepo repository.ReportRepository) *ReportsUseCase {
	return &ReportsUseCase{reportRepo: reportRepo}
}

// StockSnapshot lista (químico, cantidad, última actualización).
func (uc *ReportsUseCase) StockSnapshot(ctx context.Context) ([]dto.StockSnapshotDTO, error) {
	rows, err := uc.reportRepo.StockSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("reports: snapshot de stock: %w", err)
	}
	out := make([]dto.StockSnapshotDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockSnapshotDTO{
			ChemicalName: r.ChemicalName,
			QuantityKg:   r.QuantityKg,
			UpdatedAt:    r.UpdatedAt,
		})
	}
	return out, nil
}

// PurchaseHistory historial de compras, más recientes primero.
func (uc *ReportsUseCase) PurchaseHistory(ctx context.Context, page dto.PageRequest) ([]dto.PurchaseHistoryDTO, error) {
	page.DefaultPage()
	rows, err := uc.reportRepo.PurchaseHistory(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("reports: historial de compras: %w", err)
	}
	out := make([]dto.PurchaseHistoryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PurchaseHistoryDTO{
			ChemicalName: r.ChemicalName,
			SupplierName: r.SupplierName,
			Date:         r.Date,
			QuantityKg:   r.QuantityKg,
			PricePerKg:   r.PricePerKg,
		})
	}
	return out, nil
}

// SalesHistory historial de ventas, más recientes primero.
func (uc *ReportsUseCase) SalesHistory(ctx context.Context, page dto.PageRequest) ([]dto.SalesHistoryDTO, error) {
	page.DefaultPage()
	rows, err := uc.reportRepo.SalesHistory(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("reports: historial de ventas: %w", err)
	}
	out := make([]dto.SalesHistoryDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesHistoryDTO{
			OrderID:        r.OrderID,
			WholesalerName: r.WholesalerName,
			MedicineName:   r.MedicineName,
			Quantity:       r.Quantity,
			UnitPrice:      r.UnitPrice,
			Status:         r.Status,
			Date:           r.Date,
		})
	}
	return out, nil
}

// Surplus químicos con más de 100 kg que no participan en la fórmula de
// ningún medicamento producido en los últimos 6 meses.
func (uc *ReportsUseCase) Surplus(ctx context.Context) ([]dto.SurplusChemicalDTO, error) {
	since := time.Now().Add(-surplusWindow)
	rows, err := uc.reportRepo.SurplusChemicals(ctx, surplusMinKg, since)
	if err != nil {
		return nil, fmt.Errorf("reports: excedentes: %w", err)
	}
	out := make([]dto.SurplusChemicalDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SurplusChemicalDTO{
			ChemicalID:   r.ChemicalID,
			ChemicalName: r.ChemicalName,
			QuantityKg:   r.QuantityKg,
		})
	}
	return out, nil
}

// ProfitDashboard rentabilidad proyectada por medicamento:
//
//	rawMaterialCost = Σ (fracción * precioPromedio(químico))
//	sellingPrice60  = rawMaterialCost / 0.40
//	ebitda18        = sellingPrice60 * 0.18
//
// Un medicamento cuyos componentes no tienen historial de compras se lista
// con HasCost=false en lugar de tumbar el tablero completo.
func (uc *ReportsUseCase) ProfitDashboard(ctx context.Context) ([]dto.ProfitDashboardDTO, error) {
	rows, err := uc.reportRepo.MedicineCosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("reports: tablero de rentabilidad: %w", err)
	}
	pointFour := decimal.NewFromFloat(0.40)
	out := make([]dto.ProfitDashboardDTO, 0, len(rows))
	for _, r := range rows {
		item := dto.ProfitDashboardDTO{
			MedicineID:   r.MedicineID,
			MedicineName: r.MedicineName,
			HasCost:      r.HasCost,
		}
		if r.HasCost {
			item.RawMaterialCost = r.RawMaterialCost.Round(4)
			item.SellingPrice60 = r.RawMaterialCost.Div(pointFour).Round(4)
			item.EBITDA18 = item.SellingPrice60.Mul(ebitdaRate).Round(4)
		}
		out = append(out, item)
	}
	return out, nil
}
