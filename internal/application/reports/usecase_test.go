package reports_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmalab-api/internal/application/dto"
	"github.com/jhoicas/Farmalab-api/internal/application/reports"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// fakeReportRepo devuelve filas fijas; captura los argumentos del reporte de
// excedentes para verificar umbral y ventana.
type fakeReportRepo struct {
	costs       []repository.MedicineCostRow
	surplus     []repository.SurplusRow
	surplusMin  decimal.Decimal
	surplusFrom time.Time
	err         error
}

func (f *fakeReportRepo) StockSnapshot(ctx context.Context) ([]repository.StockSnapshotRow, error) {
	return nil, f.err
}
func (f *fakeReportRepo) PurchaseHistory(ctx context.Context, limit, offset int) ([]repository.PurchaseHistoryRow, error) {
	return nil, f.err
}
func (f *fakeReportRepo) SalesHistory(ctx context.Context, limit, offset int) ([]repository.SalesHistoryRow, error) {
	return nil, f.err
}
func (f *fakeReportRepo) SurplusChemicals(ctx context.Context, minKg decimal.Decimal, producedSince time.Time) ([]repository.SurplusRow, error) {
	f.surplusMin = minKg
	f.surplusFrom = producedSince
	return f.surplus, f.err
}
func (f *fakeReportRepo) MedicineCosts(ctx context.Context) ([]repository.MedicineCostRow, error) {
	return f.costs, f.err
}

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

// Tablero: costo 2.00 → precio 5.00 → ebitda 0.90 (18% plano del precio).
func TestProfitDashboard_Calculo(t *testing.T) {
	repo := &fakeReportRepo{costs: []repository.MedicineCostRow{
		{MedicineID: "m1", MedicineName: "Dolorex 500mg", RawMaterialCost: d("2.00"), HasCost: true},
	}}
	uc := reports.NewReportsUseCase(repo)

	out, err := uc.ProfitDashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.True(t, d("2").Equal(out[0].RawMaterialCost))
	assert.True(t, d("5").Equal(out[0].SellingPrice60), "2.00 / 0.40 = 5.00, obtenido %s", out[0].SellingPrice60)
	assert.True(t, d("0.9").Equal(out[0].EBITDA18), "5.00 * 0.18 = 0.90, obtenido %s", out[0].EBITDA18)
	assert.True(t, out[0].HasCost)
}

// Un medicamento sin compras en sus componentes se lista con HasCost=false
// y sin cifras: nunca se proyecta precio sobre un costo parcial.
func TestProfitDashboard_SinCostoNoProyecta(t *testing.T) {
	repo := &fakeReportRepo{costs: []repository.MedicineCostRow{
		{MedicineID: "m1", MedicineName: "Dolorex 500mg", RawMaterialCost: d("2.00"), HasCost: true},
		{MedicineID: "m2", MedicineName: "Cafedol Compuesto", RawMaterialCost: d("1.20"), HasCost: false},
	}}
	uc := reports.NewReportsUseCase(repo)

	out, err := uc.ProfitDashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.False(t, out[1].HasCost)
	assert.True(t, out[1].RawMaterialCost.IsZero(), "el costo parcial no se expone")
	assert.True(t, out[1].SellingPrice60.IsZero())
	assert.True(t, out[1].EBITDA18.IsZero())
}

// El reporte de excedentes consulta con umbral de 100 kg y ventana de ~6 meses.
func TestSurplus_UmbralYVentana(t *testing.T) {
	repo := &fakeReportRepo{surplus: []repository.SurplusRow{
		{ChemicalID: "c1", ChemicalName: "Almidón de maíz", QuantityKg: d("300")},
	}}
	uc := reports.NewReportsUseCase(repo)

	out, err := uc.Surplus(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Almidón de maíz", out[0].ChemicalName)

	assert.True(t, d("100").Equal(repo.surplusMin), "umbral de 100 kg")
	months6 := time.Now().Add(-6 * 30 * 24 * time.Hour)
	assert.WithinDuration(t, months6, repo.surplusFrom, time.Minute)
}

// Fallos del almacén se propagan envueltos, sin reintentos ni resultados parciales.
func TestReports_PropagaErrores(t *testing.T) {
	repo := &fakeReportRepo{err: errors.New("conexión perdida")}
	uc := reports.NewReportsUseCase(repo)
	ctx := context.Background()

	_, err := uc.StockSnapshot(ctx)
	assert.Error(t, err)

	_, err = uc.PurchaseHistory(ctx, dto.PageRequest{})
	assert.Error(t, err)

	_, err = uc.ProfitDashboard(ctx)
	assert.Error(t, err)
}
