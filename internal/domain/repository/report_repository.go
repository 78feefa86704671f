package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StockSnapshotRow una fila del snapshot de existencias de materia prima.
type StockSnapshotRow struct {
	ChemicalID   string
	ChemicalName string
	QuantityKg   decimal.Decimal
	UpdatedAt    time.Time
}

// PurchaseHistoryRow una fila del historial de compras (con nombres resueltos).
type PurchaseHistoryRow struct {
	PurchaseID   string
	ChemicalName string
	SupplierName string
	Date         time.Time
	QuantityKg   decimal.Decimal
	PricePerKg   decimal.Decimal
}

// SalesHistoryRow una línea del historial de ventas (pedido + línea aplanados).
type SalesHistoryRow struct {
	OrderID        string
	WholesalerName string
	MedicineName   string
	Quantity       int64
	UnitPrice      decimal.Decimal
	Status         string
	Date           time.Time
}

// SurplusRow un químico con excedente de inventario.
type SurplusRow struct {
	ChemicalID   string
	ChemicalName string
	QuantityKg   decimal.Decimal
}

// MedicineCostRow costo de materia prima por medicamento, derivado de la
// fórmula y el precio promedio de compra de cada componente.
// HasCost es false cuando algún componente no tiene historial de compras;
// en ese caso RawMaterialCost es parcial y no debe usarse para fijar precios.
type MedicineCostRow struct {
	MedicineID      string
	MedicineName    string
	RawMaterialCost decimal.Decimal
	HasCost         bool
}

// ReportRepository consultas de solo lectura para los reportes del negocio.
// Ningún método muta estado; los fallos se propagan al caller sin reintentos.
type ReportRepository interface {
	StockSnapshot(ctx context.Context) ([]StockSnapshotRow, error)
	// PurchaseHistory más recientes primero.
	PurchaseHistory(ctx context.Context, limit, offset int) ([]PurchaseHistoryRow, error)
	// SalesHistory más recientes primero.
	SalesHistory(ctx context.Context, limit, offset int) ([]SalesHistoryRow, error)
	// SurplusChemicals químicos con más de minKg en stock que no aparecen en la
	// fórmula de ningún medicamento producido desde producedSince.
	SurplusChemicals(ctx context.Context, minKg decimal.Decimal, producedSince time.Time) ([]SurplusRow, error)
	// MedicineCosts costo de materia prima por medicamento (promedio simple por componente).
	MedicineCosts(ctx context.Context) ([]MedicineCostRow, error)
}
