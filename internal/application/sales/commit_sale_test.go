package sales_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-minimarket/internal/application/dto"
	"github.com/tu-usuario/pos-minimarket/internal/application/sales"
	"github.com/tu-usuario/pos-minimarket/internal/domain"
	"github.com/tu-usuario/pos-minimarket/internal/domain/entity"
	"github.com/tu-usuario/pos-minimarket/internal/domain/repository"
	"github.com/tu-usuario/pos-minimarket/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con semántica transaccional real: RunSale trabaja sobre una
// copia profunda del estado y solo la publica si fn termina sin error. Así los
// tests de atomicidad observan exactamente lo que vería la base de datos tras
// un rollback.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products       map[string]*entity.Product
	sales          map[string]*entity.Sale
	details        map[string][]*entity.SaleDetail
	failSaleCreate bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: map[string]*entity.Product{},
		sales:    map[string]*entity.Sale{},
		details:  map[string][]*entity.SaleDetail{},
	}
}

func (s *fakeStore) clone() *fakeStore {
	c := newFakeStore()
	c.failSaleCreate = s.failSaleCreate
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for id, sl := range s.sales {
		cs := *sl
		c.sales[id] = &cs
	}
	for id, ds := range s.details {
		for _, d := range ds {
			cd := *d
			c.details[id] = append(c.details[id], &cd)
		}
	}
	return c
}

type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) RunSale(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	work := r.store.clone()
	if err := fn(&fakeProductRepo{work}, &fakeSaleRepo{work}); err != nil {
		return err // la copia de trabajo se descarta: rollback
	}
	*r.store = *work
	return nil
}

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) DecrementStock(id string, qty decimal.Decimal) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = p.Stock.Sub(qty)
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Search(q string, limit int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(id string) error                   { delete(r.s.products, id); return nil }

type fakeSaleRepo struct{ s *fakeStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	if r.s.failSaleCreate {
		return errors.New("falla simulada de almacenamiento")
	}
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) CreateDetail(d *entity.SaleDetail) error {
	cd := *d
	r.s.details[d.SaleID] = append(r.s.details[d.SaleID], &cd)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sl, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sl
	return &cp, nil
}

func (r *fakeSaleRepo) GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error) {
	return r.s.details[saleID], nil
}

type fakeCashierRepo struct{ cashiers map[string]*entity.Cashier }

func (r *fakeCashierRepo) Create(c *entity.Cashier) error { r.cashiers[c.ID] = c; return nil }
func (r *fakeCashierRepo) GetByID(id string) (*entity.Cashier, error) {
	c, ok := r.cashiers[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeCashierRepo) GetByRUT(rut string) (*entity.Cashier, error) { return nil, nil }
func (r *fakeCashierRepo) Update(c *entity.Cashier) error               { return nil }
func (r *fakeCashierRepo) List() ([]*entity.Cashier, error)             { return nil, nil }
func (r *fakeCashierRepo) Delete(id string) error                       { return nil }

type fakeTaxRateRepo struct{ rate *entity.TaxRate }

func (r *fakeTaxRateRepo) GetActive() (*entity.TaxRate, error) { return r.rate, nil }
func (r *fakeTaxRateRepo) Upsert(rate *entity.TaxRate) error   { r.rate = rate; return nil }

// ── helpers ───────────────────────────────────────────────────────────────────

const testCashierID = "cashier-1"

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newEngine(store *fakeStore, rate *entity.TaxRate) *sales.CommitSaleUseCase {
	cashiers := &fakeCashierRepo{cashiers: map[string]*entity.Cashier{
		testCashierID: {ID: testCashierID, Name: "María", RUT: "12345678-5", Active: true},
	}}
	return sales.NewCommitSaleUseCase(
		&fakeTxRunner{store: store},
		cashiers,
		&fakeTaxRateRepo{rate: rate},
		&fakeSaleRepo{s: store},
		dec("0.19"),
		logger.Nop(),
	)
}

func seedProducts(store *fakeStore) {
	store.products["prod-a"] = &entity.Product{
		ID: "prod-a", Name: "Lomo vetado", Price: dec("1000"), Stock: dec("10"),
	}
	store.products["prod-b"] = &entity.Product{
		ID: "prod-b", Name: "Pan corriente", Price: dec("500"), Stock: dec("1"),
		IVAExempt: true,
	}
}

// ── escenarios ────────────────────────────────────────────────────────────────

// TestCommitSale_DosLineasConExento escenario de referencia: producto A
// (1000, stock 10, gravado) × 2 y producto B (500, stock 1, exento) × 1 con
// tasa 0.19. Verifica montos por línea, agregados y stocks resultantes.
func TestCommitSale_DosLineasConExento(t *testing.T) {
	store := newFakeStore()
	seedProducts(store)
	uc := newEngine(store, &entity.TaxRate{Name: entity.TaxRateStandardName, Rate: dec("0.19")})

	resp, err := uc.CommitSale(context.Background(), dto.CommitSaleRequest{
		CashierID: testCashierID,
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-a", Quantity: dec("2")},
			{ProductID: "prod-b", Quantity: dec("1")},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Details, 2)

	lineA, lineB := resp.Details[0], resp.Details[1]
	assert.True(t, lineA.Subtotal.Equal(dec("2000")), "subtotal línea A: %s", lineA.Subtotal)
	assert.True(t, lineA.IVAAmount.Equal(dec("380.00")), "IVA línea A: %s", lineA.IVAAmount)
	assert.True(t, lineA.PriceAtSale.Equal(dec("1000")))
	assert.True(t, lineB.Subtotal.Equal(dec("500")))
	assert.True(t, lineB.IVAAmount.Equal(decimal.Zero))
	assert.True(t, lineB.IVAPercentageAtSale.Equal(decimal.Zero))

	assert.True(t, resp.NetAmount.Equal(dec("2500")), "neto: %s", resp.NetAmount)
	assert.True(t, resp.IVATotal.Equal(dec("380.00")), "IVA total: %s", resp.IVATotal)
	assert.True(t, resp.TotalAmount.Equal(dec("2880.00")), "total: %s", resp.TotalAmount)
	assert.True(t, resp.IsCompleted)

	assert.True(t, store.products["prod-a"].Stock.Equal(dec("8")), "stock A: %s", store.products["prod-a"].Stock)
	assert.True(t, store.products["prod-b"].Stock.Equal(dec("0")), "stock B: %s", store.products["prod-b"].Stock)
}

// TestCommitSale_StockInsuficienteRollback mismo escenario pero con stock 0 en
// el producto B: la venta entera falla y el stock de A queda intacto aunque A
// se procesó primero (rollback completo, sin descuentos parciales).
func TestCommitSale_StockInsuficienteRollback(t *testing.T) {
	store := newFakeStore()
	seedProducts(store)
	store.products["prod-b"].Stock = decimal.Zero
	uc := newEngine(store, &entity.TaxRate{Name: entity.TaxRateStandardName, Rate: dec("0.19")})

	_, err := uc.CommitSale(context.Background(), dto.CommitSaleRequest{
		CashierID: testCashierID,
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-a", Quantity: dec("2")},
			{ProductID: "prod-b", Quantity: dec("1")},
		},
	})
	require.Error(t, err)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "prod-b", stockErr.ProductID)
	assert.True(t, stockErr.Available.Equal(decimal.Zero))
	assert.True(t, stockErr.Requested.Equal(dec("1")))

	assert.True(t, store.products["prod-a"].Stock.Equal(dec("10")), "stock A debe quedar intacto")
	assert.Empty(t, store.sales, "no debe quedar ninguna venta")
	assert.Empty(t, store.details, "no deben quedar detalles huérfanos")
}

// TestCommitSale_ProductoInexistenteRollback una línea con producto desconocido
// aborta todo y deja el catálogo como estaba.
func TestCommitSale_ProductoInexistenteRollback(t *testing.T) {
	store := newFakeStore()
	seedProducts(store)
	uc := newEngine(store, &entity.TaxRate{Name: entity.TaxRateStandardName, Rate: dec("0.19")})

	_, err := uc.CommitSale(context.Background(), dto.CommitSaleRequest{
		CashierID: testCashierID,
		Items: []dto.SaleItemRequest{
			{ProductID: "prod-a", Quantity: dec("1")},
			{ProductID: "no-existe", Quantity: dec("1")},
		},
	})
	require.Error(t, err)

	var nfErr *domain.ProductNotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, "no-existe", nfErr.ProductID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "el error tipado debe mapear a ErrNotFound")

	assert.True(t, store.products["prod-a"].Stock.Equal(dec("10")))
	assert.Empty(t, store.sales)
}

// TestCommitSale_FallaAlmacenamientoRollback un fallo al persistir la cabecera
// también revierte los descuentos de stock ya aplicados en la transacción.
func TestCommitSale_FallaAlmacenamientoRollback(t *testing.T) {
	store := newFakeStore()
	seedProducts(store)
	store.failSaleCreate = true
	uc := newEngine(store, &entity.TaxRate{Name: entity.TaxRateStandardName, Rate: dec("0.19")})

	_, err := uc.CommitSale(context.Background(), dto.CommitSaleRequest{
		CashierID: testCashierID,
		Items:     []dto.SaleItemRequest{{ProductID: "prod-a", Quantity: dec("3")}},
	})
	require.Error(t, err)
	assert.True(t, store.products["prod-a"].Stock.Equal(dec("10")), "stock debe quedar intacto tras falla de persistencia")
	assert.Empty(t, store.sales)
}

// TestCommitSale_TasaPorDefecto sin fila IVA_ESTANDAR el motor aplica la tasa
// por defecto configurada en vez de fallar.
func TestCommitSale_TasaPorDefecto(t *testing.T) {
	store := newFakeStore()
	seedProducts(store)
	uc := newEngine(store, nil) // sin configuración de IVA

	resp, err := uc.CommitSale(context.Background(), dto.CommitSaleRequest{
		CashierID: testCashierID,
		Items:     []dto.SaleItemRequest{{ProductID: "prod-a", Quantity: dec("1")}},
	})
	require.NoError(t, err)
	assert.True(t, resp.IVATotal.Equal(dec("190.00")), "IVA con tasa por defecto 0.19: %s", resp.IVATotal)
	assert.True(t, resp.Details[0].IVAPercentageAtSale.Equal(dec("0.19")))
}

// TestCommitSale_TasaComoPorcentaje una tasa guardada como 19 (porcentaje) se
// normaliza a 0.19 antes de aplicarse.
func TestCommitSale_TasaComoPorcentaje(t *testing.T) {
	store := newFakeStore()
	seedProducts(store)
	uc := newEngine(store, &entity.TaxRate{Name: entity.TaxRateStandardName, Rate: dec("19")})

	resp, err := uc.CommitSale(context.Background(), dto.CommitSaleRequest{
		CashierID: testCashierID,
		Items:     []dto.SaleItemRequest{{ProductID: "prod-a", Quantity: dec("1")}},
	})
	require.NoError(t, err)
	assert.True(t, resp.IVATotal.Equal(dec("190.00")))
}

// TestCommitSale_ExentoIgnoraTasaVigente un producto exento siempre lleva tasa
// y monto 0, sin importar la tasa configurada.
func TestCommitSale_ExentoIgnoraTasaVigente(t *testing.T) {
	store := newFakeStore()
	seedProducts(store)
	uc := newEngine(store, &entity.TaxRate{Name: entity.TaxRateStandardName, Rate: dec("0.50")})

	resp, err := uc.CommitSale(context.Background(), dto.CommitSaleRequest{
		CashierID: testCashierID,
		Items:     []dto.SaleItemRequest{{ProductID: "prod-b", Quantity: dec("1")}},
	})
	require.NoError(t, err)
	assert.True(t, resp.Details[0].IVAPercentageAtSale.Equal(decimal.Zero))
	assert.True(t, resp.Details[0].IVAAmount.Equal(decimal.Zero))
	assert.True(t, resp.TotalAmount.Equal(dec("500")))
}

// TestCommitSale_CantidadFraccionaria productos pesables: 1.5 kg a 2990 el kilo.
// Verifica conservación exacta de totales con redondeo por línea.
func TestCommitSale_CantidadFraccionaria(t *testing.T) {
	store := newFakeStore()
	store.products["carne"] = &entity.Product{
		ID: "carne", Name: "Posta negra", Price: dec("2990"), Stock: dec("8.25"),
	}
	uc := newEngine(store, &entity.TaxRate{Name: entity.TaxRateStandardName, Rate: dec("0.19")})

	resp, err := uc.CommitSale(context.Background(), dto.CommitSaleRequest{
		CashierID: testCashierID,
		Items:     []dto.SaleItemRequest{{ProductID: "carne", Quantity: dec("1.5")}},
	})
	require.NoError(t, err)

	// 1.5 × 2990 = 4485; IVA = round(4485 × 0.19, 2) = 852.15
	assert.True(t, resp.NetAmount.Equal(dec("4485")), "neto: %s", resp.NetAmount)
	assert.True(t, resp.IVATotal.Equal(dec("852.15")), "IVA: %s", resp.IVATotal)
	assert.True(t, resp.TotalAmount.Equal(resp.NetAmount.Add(resp.IVATotal)))
	assert.True(t, store.products["carne"].Stock.Equal(dec("6.75")))
}

// TestCommitSale_ConservacionTotales los agregados deben igualar las sumas por
// línea, incluyendo el redondeo línea a línea.
func TestCommitSale_ConservacionTotales(t *testing.T) {
	store := newFakeStore()
	store.products["p1"] = &entity.Product{ID: "p1", Price: dec("333"), Stock: dec("100")}
	store.products["p2"] = &entity.Product{ID: "p2", Price: dec("777"), Stock: dec("100")}
	store.products["p3"] = &entity.Product{ID: "p3", Price: dec("1.01"), Stock: dec("100")}
	uc := newEngine(store, &entity.TaxRate{Name: entity.TaxRateStandardName, Rate: dec("0.19")})

	resp, err := uc.CommitSale(context.Background(), dto.CommitSaleRequest{
		CashierID: testCashierID,
		Items: []dto.SaleItemRequest{
			{ProductID: "p1", Quantity: dec("3")},
			{ProductID: "p2", Quantity: dec("0.5")},
			{ProductID: "p3", Quantity: dec("7")},
		},
	})
	require.NoError(t, err)

	sumNet, sumIVA := decimal.Zero, decimal.Zero
	for _, d := range resp.Details {
		assert.True(t, d.Subtotal.Equal(d.Quantity.Mul(d.PriceAtSale).Round(2)), "subtotal == round(qty × precio, 2)")
		assert.True(t, d.IVAAmount.Equal(d.Subtotal.Mul(d.IVAPercentageAtSale).Round(2)), "IVA de línea redondeado a 2")
		sumNet = sumNet.Add(d.Subtotal)
		sumIVA = sumIVA.Add(d.IVAAmount)
	}
	assert.True(t, resp.NetAmount.Equal(sumNet))
	assert.True(t, resp.IVATotal.Equal(sumIVA))
	assert.True(t, resp.TotalAmount.Equal(sumNet.Add(sumIVA)))
}

// TestCommitSale_SubtotalRedondeadoPorLinea cantidades fraccionarias pueden
// producir subtotales con más de 2 decimales (0.125 × 999 = 124.875); el motor
// los redondea línea a línea antes de acumular, de modo que la cabecera suma
// exactamente los mismos valores que quedan en los detalles.
func TestCommitSale_SubtotalRedondeadoPorLinea(t *testing.T) {
	store := newFakeStore()
	store.products["queso"] = &entity.Product{
		ID: "queso", Name: "Queso mantecoso", Price: dec("999"), Stock: dec("5"),
	}
	uc := newEngine(store, &entity.TaxRate{Name: entity.TaxRateStandardName, Rate: dec("0.19")})

	resp, err := uc.CommitSale(context.Background(), dto.CommitSaleRequest{
		CashierID: testCashierID,
		Items: []dto.SaleItemRequest{
			{ProductID: "queso", Quantity: dec("0.125")},
			{ProductID: "queso", Quantity: dec("0.125")},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Details, 2)

	for _, d := range resp.Details {
		assert.True(t, d.Subtotal.Equal(dec("124.88")), "subtotal de línea: %s", d.Subtotal)
	}
	// 124.88 + 124.88, no round(249.75) de los valores sin redondear
	assert.True(t, resp.NetAmount.Equal(dec("249.76")), "neto: %s", resp.NetAmount)
	assert.True(t, resp.TotalAmount.Equal(resp.NetAmount.Add(resp.IVATotal)))
}

// TestCommitSale_DetallesNumeradosEnOrden las líneas conservan el orden de
// entrada del carro: line_no correlativo 1..n tanto al confirmar como al
// releer la venta.
func TestCommitSale_DetallesNumeradosEnOrden(t *testing.T) {
	store := newFakeStore()
	store.products["p1"] = &entity.Product{ID: "p1", Price: dec("100"), Stock: dec("10")}
	store.products["p2"] = &entity.Product{ID: "p2", Price: dec("200"), Stock: dec("10")}
	store.products["p3"] = &entity.Product{ID: "p3", Price: dec("300"), Stock: dec("10")}
	uc := newEngine(store, &entity.TaxRate{Name: entity.TaxRateStandardName, Rate: dec("0.19")})

	resp, err := uc.CommitSale(context.Background(), dto.CommitSaleRequest{
		CashierID: testCashierID,
		Items: []dto.SaleItemRequest{
			{ProductID: "p3", Quantity: dec("1")},
			{ProductID: "p1", Quantity: dec("1")},
			{ProductID: "p2", Quantity: dec("1")},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Details, 3)

	wantOrder := []string{"p3", "p1", "p2"}
	for i, d := range resp.Details {
		assert.Equal(t, i+1, d.LineNo)
		assert.Equal(t, wantOrder[i], d.ProductID)
	}

	got, err := uc.GetSale(context.Background(), resp.ID)
	require.NoError(t, err)
	require.Len(t, got.Details, 3)
	for i, d := range got.Details {
		assert.Equal(t, i+1, d.LineNo)
		assert.Equal(t, wantOrder[i], d.ProductID)
	}
}

// ── validaciones previas ──────────────────────────────────────────────────────

func TestCommitSale_EntradaInvalida(t *testing.T) {
	store := newFakeStore()
	seedProducts(store)
	uc := newEngine(store, nil)

	cases := []dto.CommitSaleRequest{
		{CashierID: "", Items: []dto.SaleItemRequest{{ProductID: "prod-a", Quantity: dec("1")}}},
		{CashierID: testCashierID, Items: nil},
		{CashierID: testCashierID, Items: []dto.SaleItemRequest{{ProductID: "prod-a", Quantity: decimal.Zero}}},
		{CashierID: testCashierID, Items: []dto.SaleItemRequest{{ProductID: "prod-a", Quantity: dec("-1")}}},
		{CashierID: testCashierID, Items: []dto.SaleItemRequest{{ProductID: "", Quantity: dec("1")}}},
	}
	for _, in := range cases {
		_, err := uc.CommitSale(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, store.sales, "ninguna validación debe dejar rastro")
}

func TestCommitSale_CajeroInexistente(t *testing.T) {
	store := newFakeStore()
	seedProducts(store)
	uc := newEngine(store, nil)

	_, err := uc.CommitSale(context.Background(), dto.CommitSaleRequest{
		CashierID: "fantasma",
		Items:     []dto.SaleItemRequest{{ProductID: "prod-a", Quantity: dec("1")}},
	})
	assert.ErrorIs(t, err, domain.ErrCashierNotFound)
	assert.True(t, store.products["prod-a"].Stock.Equal(dec("10")))
}

// ── lectura ───────────────────────────────────────────────────────────────────

func TestGetSale(t *testing.T) {
	store := newFakeStore()
	seedProducts(store)
	uc := newEngine(store, &entity.TaxRate{Name: entity.TaxRateStandardName, Rate: dec("0.19")})

	created, err := uc.CommitSale(context.Background(), dto.CommitSaleRequest{
		CashierID: testCashierID,
		Items:     []dto.SaleItemRequest{{ProductID: "prod-a", Quantity: dec("2")}},
	})
	require.NoError(t, err)

	got, err := uc.GetSale(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Len(t, got.Details, 1)
	assert.True(t, got.TotalAmount.Equal(created.TotalAmount))

	_, err = uc.GetSale(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
