package production_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Farmalab-api/internal/application/dto"
	"github.com/jhoicas/Farmalab-api/internal/application/production"
	"github.com/jhoicas/Farmalab-api/internal/domain"
	"github.com/jhoicas/Farmalab-api/internal/domain/entity"
	"github.com/jhoicas/Farmalab-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. El txRunner toma un snapshot del estado antes del callback
// y lo restaura si falla: así los tests verifican el todo-o-nada igual que lo
// haría el rollback de PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type fakeState struct {
	medicines map[string]*entity.Medicine
	comps     map[string][]*entity.RecipeComponent
	stocks    map[string]*entity.ChemicalStock
	prices    map[string][]decimal.Decimal
	finished  map[string]*entity.FinishedStock
	records   []*entity.ProductionRecord
}

func newFakeState() *fakeState {
	return &fakeState{
		medicines: map[string]*entity.Medicine{},
		comps:     map[string][]*entity.RecipeComponent{},
		stocks:    map[string]*entity.ChemicalStock{},
		prices:    map[string][]decimal.Decimal{},
		finished:  map[string]*entity.FinishedStock{},
	}
}

func (s *fakeState) clone() *fakeState {
	c := newFakeState()
	for k, v := range s.medicines {
		m := *v
		c.medicines[k] = &m
	}
	for k, v := range s.comps {
		c.comps[k] = append([]*entity.RecipeComponent(nil), v...)
	}
	for k, v := range s.stocks {
		st := *v
		c.stocks[k] = &st
	}
	for k, v := range s.prices {
		c.prices[k] = append([]decimal.Decimal(nil), v...)
	}
	for k, v := range s.finished {
		f := *v
		c.finished[k] = &f
	}
	c.records = append([]*entity.ProductionRecord(nil), s.records...)
	return c
}

func (s *fakeState) restore(snap *fakeState) {
	s.medicines = snap.medicines
	s.comps = snap.comps
	s.stocks = snap.stocks
	s.prices = snap.prices
	s.finished = snap.finished
	s.records = snap.records
}

type fakeMedicineRepo struct{ s *fakeState }

func (r *fakeMedicineRepo) Create(m *entity.Medicine, comps []*entity.RecipeComponent) error {
	r.s.medicines[m.ID] = m
	r.s.comps[m.ID] = comps
	return nil
}
func (r *fakeMedicineRepo) GetByID(id string) (*entity.Medicine, error) {
	return r.s.medicines[id], nil
}
func (r *fakeMedicineRepo) List(limit, offset int) ([]*entity.Medicine, error) { return nil, nil }
func (r *fakeMedicineRepo) Components(medicineID string) ([]*entity.RecipeComponent, error) {
	return r.s.comps[medicineID], nil
}

type fakeStockRepo struct{ s *fakeState }

func (r *fakeStockRepo) Get(id string) (*entity.ChemicalStock, error)          { return r.s.stocks[id], nil }
func (r *fakeStockRepo) GetForUpdate(id string) (*entity.ChemicalStock, error) { return r.s.stocks[id], nil }
func (r *fakeStockRepo) Update(st *entity.ChemicalStock) error {
	r.s.stocks[st.ChemicalID] = st
	return nil
}

type fakePurchaseRepo struct{ s *fakeState }

func (r *fakePurchaseRepo) Create(p *entity.Purchase) error {
	r.s.prices[p.ChemicalID] = append(r.s.prices[p.ChemicalID], p.PricePerKg)
	return nil
}
func (r *fakePurchaseRepo) PricesByChemical(id string) ([]decimal.Decimal, error) {
	return r.s.prices[id], nil
}

type fakeFinishedRepo struct{ s *fakeState }

func (r *fakeFinishedRepo) Get(id string) (*entity.FinishedStock, error)          { return r.s.finished[id], nil }
func (r *fakeFinishedRepo) GetForUpdate(id string) (*entity.FinishedStock, error) { return r.s.finished[id], nil }
func (r *fakeFinishedRepo) Upsert(f *entity.FinishedStock) error {
	r.s.finished[f.MedicineID] = f
	return nil
}
func (r *fakeFinishedRepo) AddQuantity(id string, delta int64) error {
	r.s.finished[id].Quantity += delta
	return nil
}

type fakeRecordRepo struct{ s *fakeState }

func (r *fakeRecordRepo) Create(rec *entity.ProductionRecord) error {
	r.s.records = append(r.s.records, rec)
	return nil
}
func (r *fakeRecordRepo) List(limit, offset int) ([]*entity.ProductionRecord, error) {
	return r.s.records, nil
}

type fakeTxRunner struct{ s *fakeState }

func (t *fakeTxRunner) RunProduction(ctx context.Context, fn func(
	repository.MedicineRepository,
	repository.ChemicalStockRepository,
	repository.PurchaseRepository,
	repository.FinishedStockRepository,
	repository.ProductionRecordRepository,
) error) error {
	snap := t.s.clone()
	err := fn(
		&fakeMedicineRepo{s: t.s},
		&fakeStockRepo{s: t.s},
		&fakePurchaseRepo{s: t.s},
		&fakeFinishedRepo{s: t.s},
		&fakeRecordRepo{s: t.s},
	)
	if err != nil {
		t.s.restore(snap)
	}
	return err
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: Dolorex 50% paracetamol + 50% almidón; Cafedol usa cafeína sin stock.
// ──────────────────────────────────────────────────────────────────────────────

const (
	medDolorex      = "med-dolorex"
	medCafedol      = "med-cafedol"
	chemParacetamol = "chem-paracetamol"
	chemAlmidon     = "chem-almidon"
	chemCafeina     = "chem-cafeina"
	testUser        = "user-planta"
)

func kg(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func buildFixture() (*fakeState, *production.ProduceUseCase) {
	s := newFakeState()
	s.medicines[medDolorex] = &entity.Medicine{ID: medDolorex, Name: "Dolorex 500mg"}
	s.medicines[medCafedol] = &entity.Medicine{ID: medCafedol, Name: "Cafedol Compuesto"}
	s.comps[medDolorex] = []*entity.RecipeComponent{
		{MedicineID: medDolorex, ChemicalID: chemAlmidon, Fraction: kg("0.5")},
		{MedicineID: medDolorex, ChemicalID: chemParacetamol, Fraction: kg("0.5")},
	}
	s.comps[medCafedol] = []*entity.RecipeComponent{
		{MedicineID: medCafedol, ChemicalID: chemParacetamol, Fraction: kg("0.4")},
		{MedicineID: medCafedol, ChemicalID: chemCafeina, Fraction: kg("0.1")},
	}
	s.stocks[chemParacetamol] = &entity.ChemicalStock{ChemicalID: chemParacetamol, Quantity: kg("500")}
	s.stocks[chemAlmidon] = &entity.ChemicalStock{ChemicalID: chemAlmidon, Quantity: kg("300")}
	s.stocks[chemCafeina] = &entity.ChemicalStock{ChemicalID: chemCafeina, Quantity: kg("0")}
	s.prices[chemParacetamol] = []decimal.Decimal{kg("300"), kg("310")} // promedio 305
	s.prices[chemAlmidon] = []decimal.Decimal{kg("40")}
	s.prices[chemCafeina] = []decimal.Decimal{kg("950")}

	uc := production.NewProduceUseCase(&fakeTxRunner{s: s}, &fakeMedicineRepo{s: s})
	return s, uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Producción feliz: 1000 unidades = 1 kg de masa. Cada componente al 50%
// consume 0.5 kg y el costo unitario es 0.5*305 + 0.5*40 = 172.5.
func TestProduce_DescuentaIngredientesYCalculaCosto(t *testing.T) {
	s, uc := buildFixture()

	out, err := uc.Produce(context.Background(), testUser, dto.ProduceRequest{
		MedicineID: medDolorex,
		Quantity:   1000,
	})
	require.NoError(t, err)

	assert.True(t, kg("499.5").Equal(s.stocks[chemParacetamol].Quantity),
		"paracetamol: 500 - 0.5 = 499.5, obtenido %s", s.stocks[chemParacetamol].Quantity)
	assert.True(t, kg("299.5").Equal(s.stocks[chemAlmidon].Quantity))

	wantCost := kg("172.5")
	assert.True(t, wantCost.Equal(out.CostPerUnit), "esperado 172.5, obtenido %s", out.CostPerUnit)

	finished := s.finished[medDolorex]
	require.NotNil(t, finished, "debe crearse la fila de terminado en la primera corrida")
	assert.Equal(t, int64(1000), finished.Quantity)
	assert.True(t, wantCost.Equal(finished.LastCost))

	require.Len(t, s.records, 1)
	assert.Equal(t, testUser, s.records[0].CreatedBy)
	assert.True(t, wantCost.Equal(s.records[0].CostPerUnit))
}

// Corridas sucesivas acumulan el terminado y reemplazan el último costo.
func TestProduce_CorridasSucesivasAcumulanTerminado(t *testing.T) {
	s, uc := buildFixture()

	_, err := uc.Produce(context.Background(), testUser, dto.ProduceRequest{MedicineID: medDolorex, Quantity: 1000})
	require.NoError(t, err)
	_, err = uc.Produce(context.Background(), testUser, dto.ProduceRequest{MedicineID: medDolorex, Quantity: 500})
	require.NoError(t, err)

	assert.Equal(t, int64(1500), s.finished[medDolorex].Quantity)
	assert.Len(t, s.records, 2)
}

// El costo de una corrida queda congelado: compras posteriores mueven el
// promedio pero no la bitácora.
func TestProduce_CostoDeCorridaCongelado(t *testing.T) {
	s, uc := buildFixture()

	_, err := uc.Produce(context.Background(), testUser, dto.ProduceRequest{MedicineID: medDolorex, Quantity: 1000})
	require.NoError(t, err)
	firstCost := s.records[0].CostPerUnit

	// Una compra carísima sube el promedio del paracetamol
	s.prices[chemParacetamol] = append(s.prices[chemParacetamol], kg("1000"))

	_, err = uc.Produce(context.Background(), testUser, dto.ProduceRequest{MedicineID: medDolorex, Quantity: 1000})
	require.NoError(t, err)

	assert.True(t, firstCost.Equal(s.records[0].CostPerUnit),
		"el costo de la primera corrida no cambia con compras posteriores")
	assert.True(t, s.records[1].CostPerUnit.GreaterThan(firstCost),
		"la segunda corrida refleja el nuevo promedio")
}

// Falta un solo ingrediente: nada se muta, ni siquiera los que sí alcanzaban.
func TestProduce_StockInsuficiente_TodoONada(t *testing.T) {
	s, uc := buildFixture()
	paracetamolBefore := s.stocks[chemParacetamol].Quantity

	_, err := uc.Produce(context.Background(), testUser, dto.ProduceRequest{
		MedicineID: medCafedol, // la cafeína está en 0 kg
		Quantity:   1000,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, paracetamolBefore.Equal(s.stocks[chemParacetamol].Quantity),
		"el paracetamol no debe debitarse aunque alcanzaba")
	assert.True(t, kg("0").Equal(s.stocks[chemCafeina].Quantity))
	assert.Nil(t, s.finished[medCafedol], "no debe abonarse terminado")
	assert.Empty(t, s.records, "no debe escribirse bitácora")
}

// Pedir exactamente lo disponible sí pasa: el faltante es estricto (<).
func TestProduce_ConsumoExacto(t *testing.T) {
	s, uc := buildFixture()
	s.stocks[chemParacetamol].Quantity = kg("0.5")
	s.stocks[chemAlmidon].Quantity = kg("0.5")

	_, err := uc.Produce(context.Background(), testUser, dto.ProduceRequest{MedicineID: medDolorex, Quantity: 1000})
	require.NoError(t, err)
	assert.True(t, s.stocks[chemParacetamol].Quantity.IsZero())
	assert.True(t, s.stocks[chemAlmidon].Quantity.IsZero())
}

// Un químico con stock pero sin compras no tiene costo: rollback completo.
func TestProduce_SinHistorialDeCompras_Rollback(t *testing.T) {
	s, uc := buildFixture()
	s.prices[chemAlmidon] = nil
	before := s.stocks[chemParacetamol].Quantity

	_, err := uc.Produce(context.Background(), testUser, dto.ProduceRequest{MedicineID: medDolorex, Quantity: 1000})
	assert.ErrorIs(t, err, domain.ErrNoPurchaseHistory)

	assert.True(t, before.Equal(s.stocks[chemParacetamol].Quantity),
		"el débito previo al fallo debe revertirse")
	assert.Nil(t, s.finished[medDolorex])
	assert.Empty(t, s.records)
}

func TestProduce_EntradaInvalida(t *testing.T) {
	_, uc := buildFixture()

	_, err := uc.Produce(context.Background(), testUser, dto.ProduceRequest{MedicineID: "", Quantity: 100})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Produce(context.Background(), testUser, dto.ProduceRequest{MedicineID: medDolorex, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Produce(context.Background(), testUser, dto.ProduceRequest{MedicineID: medDolorex, Quantity: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduce_MedicamentoInexistente(t *testing.T) {
	_, uc := buildFixture()

	_, err := uc.Produce(context.Background(), testUser, dto.ProduceRequest{MedicineID: "med-fantasma", Quantity: 100})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
