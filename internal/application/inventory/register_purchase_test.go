package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmalab-api/internal/application/dto"
	"github.com/jhoicas/Farmalab-api/internal/application/inventory"
	"github.com/jhoicas/Farmalab-api/internal/domain"
	"github.com/jhoicas/Farmalab-api/internal/domain/entity"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type invState struct {
	chemicals map[string]*entity.Chemical
	suppliers map[string]*entity.Supplier
	stocks    map[string]*entity.ChemicalStock
	purchases []*entity.Purchase
}

type fakeChemicalRepo struct{ s *invState }

func (r *fakeChemicalRepo) Create(c *entity.Chemical) error {
	r.s.chemicals[c.ID] = c
	r.s.stocks[c.ID] = &entity.ChemicalStock{ChemicalID: c.ID}
	return nil
}
func (r *fakeChemicalRepo) GetByID(id string) (*entity.Chemical, error) {
	return r.s.chemicals[id], nil
}
func (r *fakeChemicalRepo) List(limit, offset int) ([]*entity.Chemical, error) { return nil, nil }

type fakeSupplierRepo struct{ s *invState }

func (r *fakeSupplierRepo) Create(sp *entity.Supplier) error { r.s.suppliers[sp.ID] = sp; return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.s.suppliers[id], nil
}
func (r *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) { return nil, nil }

type fakeStockRepo struct{ s *invState }

func (r *fakeStockRepo) Get(id string) (*entity.ChemicalStock, error)          { return r.s.stocks[id], nil }
func (r *fakeStockRepo) GetForUpdate(id string) (*entity.ChemicalStock, error) { return r.s.stocks[id], nil }
func (r *fakeStockRepo) Update(st *entity.ChemicalStock) error {
	r.s.stocks[st.ChemicalID] = st
	return nil
}

type fakePurchaseRepo struct{ s *invState }

func (r *fakePurchaseRepo) Create(p *entity.Purchase) error {
	r.s.purchases = append(r.s.purchases, p)
	return nil
}
func (r *fakePurchaseRepo) PricesByChemical(id string) ([]decimal.Decimal, error) {
	var prices []decimal.Decimal
	for _, p := range r.s.purchases {
		if p.ChemicalID == id {
			prices = append(prices, p.PricePerKg)
		}
	}
	return prices, nil
}

type fakeTx struct{ s *invState }

func (t *fakeTx) RunPurchase(ctx context.Context, fn func(
	repository.PurchaseRepository,
	repository.ChemicalStockRepository,
) error) error {
	return fn(&fakePurchaseRepo{s: t.s}, &fakeStockRepo{s: t.s})
}

const (
	chemParacetamol = "chem-paracetamol"
	supAndina       = "sup-andina"
	testBodeguero   = "user-bodega"
)

func kg(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func buildInvFixture() (*invState, *inventory.RegisterPurchaseUseCase) {
	s := &invState{
		chemicals: map[string]*entity.Chemical{
			chemParacetamol: {ID: chemParacetamol, Name: "Paracetamol (API)"},
		},
		suppliers: map[string]*entity.Supplier{
			supAndina: {ID: supAndina, Name: "Química Andina S.A.S."},
		},
		stocks: map[string]*entity.ChemicalStock{
			chemParacetamol: {ChemicalID: chemParacetamol, Quantity: kg("100")},
		},
	}
	uc := inventory.NewRegisterPurchaseUseCase(&fakeTx{s: s}, &fakeChemicalRepo{s: s}, &fakeSupplierRepo{s: s})
	return s, uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Registrar la compra persiste la fila y abona el stock en un solo paso.
func TestRegisterPurchase_AbonaStock(t *testing.T) {
	s, uc := buildInvFixture()

	err := uc.RegisterPurchase(context.Background(), testBodeguero, dto.RegisterPurchaseRequest{
		ChemicalID: chemParacetamol,
		SupplierID: supAndina,
		QuantityKg: kg("250"),
		PricePerKg: kg("305"),
	})
	require.NoError(t, err)

	assert.True(t, kg("350").Equal(s.stocks[chemParacetamol].Quantity),
		"100 + 250 = 350, obtenido %s", s.stocks[chemParacetamol].Quantity)
	require.Len(t, s.purchases, 1)
	assert.Equal(t, testBodeguero, s.purchases[0].CreatedBy)
	assert.True(t, kg("305").Equal(s.purchases[0].PricePerKg))
}

// Precio cero es legal (muestras o donaciones); cantidad cero no.
func TestRegisterPurchase_Validaciones(t *testing.T) {
	s, uc := buildInvFixture()
	ctx := context.Background()

	err := uc.RegisterPurchase(ctx, testBodeguero, dto.RegisterPurchaseRequest{
		ChemicalID: chemParacetamol, SupplierID: supAndina, QuantityKg: kg("0"), PricePerKg: kg("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.RegisterPurchase(ctx, testBodeguero, dto.RegisterPurchaseRequest{
		ChemicalID: chemParacetamol, SupplierID: supAndina, QuantityKg: kg("-5"), PricePerKg: kg("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.RegisterPurchase(ctx, testBodeguero, dto.RegisterPurchaseRequest{
		ChemicalID: chemParacetamol, SupplierID: supAndina, QuantityKg: kg("5"), PricePerKg: kg("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.RegisterPurchase(ctx, testBodeguero, dto.RegisterPurchaseRequest{
		ChemicalID: chemParacetamol, SupplierID: supAndina, QuantityKg: kg("5"), PricePerKg: kg("0"),
	})
	assert.NoError(t, err, "precio cero es una compra válida")

	assert.Len(t, s.purchases, 1, "solo la compra válida debe persistir")
}

func TestRegisterPurchase_QuimicoOProveedorInexistente(t *testing.T) {
	s, uc := buildInvFixture()
	ctx := context.Background()

	err := uc.RegisterPurchase(ctx, testBodeguero, dto.RegisterPurchaseRequest{
		ChemicalID: "chem-fantasma", SupplierID: supAndina, QuantityKg: kg("5"), PricePerKg: kg("10"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.RegisterPurchase(ctx, testBodeguero, dto.RegisterPurchaseRequest{
		ChemicalID: chemParacetamol, SupplierID: "sup-fantasma", QuantityKg: kg("5"), PricePerKg: kg("10"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.True(t, kg("100").Equal(s.stocks[chemParacetamol].Quantity), "el stock no debe cambiar")
	assert.Empty(t, s.purchases)
}

// Compras sucesivas acumulan el stock y el historial de precios.
func TestRegisterPurchase_ComprasSucesivas(t *testing.T) {
	s, uc := buildInvFixture()
	ctx := context.Background()

	require.NoError(t, uc.RegisterPurchase(ctx, testBodeguero, dto.RegisterPurchaseRequest{
		ChemicalID: chemParacetamol, SupplierID: supAndina, QuantityKg: kg("50"), PricePerKg: kg("300"),
	}))
	require.NoError(t, uc.RegisterPurchase(ctx, testBodeguero, dto.RegisterPurchaseRequest{
		ChemicalID: chemParacetamol, SupplierID: supAndina, QuantityKg: kg("30"), PricePerKg: kg("310"),
	}))

	assert.True(t, kg("180").Equal(s.stocks[chemParacetamol].Quantity))

	prices, err := (&fakePurchaseRepo{s: s}).PricesByChemical(chemParacetamol)
	require.NoError(t, err)
	assert.Len(t, prices, 2)
}
