package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	ownerID    = "00000000-0000-0000-0000-000000000001"
	ownerEmail = "dueno@example.com"
	otherOwner = "00000000-0000-0000-0000-000000000099"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByIDAndOwner(id, owner string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.UserID != owner {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) ListByOwner(owner string, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if p.UserID == owner {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) DeleteByIDAndOwner(id, owner string) error {
	delete(r.products, id)
	return nil
}

type fakeStockRepo struct {
	// una fila por (productID, userID), indexada por productID para el test
	rows map[string]*entity.Stock
}

func (r *fakeStockRepo) Create(s *entity.Stock) error {
	r.rows[s.ProductID] = s
	return nil
}

func (r *fakeStockRepo) GetByIDAndOwner(id, owner string) (*entity.Stock, error) {
	for _, s := range r.rows {
		if s.ID == id && s.UserID == owner {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStockRepo) GetByProductAndOwner(productID, owner string) (*entity.Stock, error) {
	s, ok := r.rows[productID]
	if !ok || s.UserID != owner {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeStockRepo) GetForUpdate(productID, owner string) (*entity.Stock, error) {
	return r.GetByProductAndOwner(productID, owner)
}

func (r *fakeStockRepo) Upsert(s *entity.Stock) error {
	cp := *s
	r.rows[s.ProductID] = &cp
	return nil
}

func (r *fakeStockRepo) ListByOwner(owner string, limit, offset int) ([]*entity.Stock, error) {
	var list []*entity.Stock
	for _, s := range r.rows {
		if s.UserID == owner {
			cp := *s
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeStockRepo) ListDetailByOwner(owner string) ([]*entity.StockDetail, error) {
	return nil, nil
}

func (r *fakeStockRepo) Update(s *entity.Stock) error {
	return r.Upsert(s)
}

func (r *fakeStockRepo) DeleteByIDAndOwner(id, owner string) error {
	for pid, s := range r.rows {
		if s.ID == id && s.UserID == owner {
			delete(r.rows, pid)
		}
	}
	return nil
}

type fakeSaleRepo struct {
	sales    map[string]*entity.Sale
	products *fakeProductRepo
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) GetByIDAndOwner(id, owner string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok || s.UserID != owner {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) ListByOwner(owner string, limit, offset int) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for _, s := range r.sales {
		if s.UserID == owner {
			cp := *s
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeSaleRepo) ListDetailByOwner(owner string) ([]*entity.SaleDetail, error) {
	var list []*entity.SaleDetail
	for _, s := range r.sales {
		if s.UserID != owner {
			continue
		}
		d := &entity.SaleDetail{Sale: *s}
		if p, ok := r.products.products[s.ProductID]; ok {
			d.ProductName = p.Name
		}
		list = append(list, d)
	}
	return list, nil
}

func (r *fakeSaleRepo) Update(s *entity.Sale) error {
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) DeleteByIDAndOwner(id, owner string) error {
	delete(r.sales, id)
	return nil
}

// fakeTxRunner pasa los fakes directamente al callback; los caminos de error
// del caso de uso verifican antes de escribir, así que no hay rollback que
// simular.
type fakeTxRunner struct {
	saleRepo    *fakeSaleRepo
	stockRepo   *fakeStockRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.saleRepo, r.stockRepo, r.productRepo)
}

type notifiedAlert struct {
	recipient string
	product   string
	quantity  int64
	minimum   int64
}

type fakeNotifier struct {
	alerts []notifiedAlert
}

func (n *fakeNotifier) NotifyLowStock(recipient, productName string, quantity, minimum int64) {
	n.alerts = append(n.alerts, notifiedAlert{recipient, productName, quantity, minimum})
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del escenario
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc       *sales.SaleUseCase
	sales    *fakeSaleRepo
	stock    *fakeStockRepo
	products *fakeProductRepo
	notifier *fakeNotifier
}

func newFixture() *fixture {
	products := &fakeProductRepo{products: map[string]*entity.Product{}}
	stock := &fakeStockRepo{rows: map[string]*entity.Stock{}}
	saleRepo := &fakeSaleRepo{sales: map[string]*entity.Sale{}, products: products}
	notifier := &fakeNotifier{}
	runner := &fakeTxRunner{saleRepo: saleRepo, stockRepo: stock, productRepo: products}
	return &fixture{
		uc:       sales.NewSaleUseCase(runner, saleRepo, notifier),
		sales:    saleRepo,
		stock:    stock,
		products: products,
		notifier: notifier,
	}
}

// addProduct registra un producto con su fila de stock.
func (f *fixture) addProduct(id, name string, price int64, qty, minimum int64) {
	f.products.products[id] = &entity.Product{
		ID:     id,
		UserID: ownerID,
		Name:   name,
		Price:  decimal.NewFromInt(price),
	}
	f.stock.rows[id] = &entity.Stock{
		ID:              "stock-" + id,
		UserID:          ownerID,
		ProductID:       id,
		Quantity:        qty,
		MinimumQuantity: minimum,
		UpdatedAt:       time.Now(),
	}
}

func (f *fixture) stockQty(productID string) int64 {
	return f.stock.rows[productID].Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo: crear → editar → borrar (precio 100, stock inicial 20)
// ──────────────────────────────────────────────────────────────────────────────

func TestVentas_CicloCrearEditarBorrar(t *testing.T) {
	f := newFixture()
	f.addProduct("prod-1", "Tornillos", 100, 20, 2)
	ctx := context.Background()

	// Crear venta de 10 → stock 10, total 1000
	created, err := f.uc.Create(ctx, ownerID, ownerEmail, dto.CreateSaleRequest{ProductID: "prod-1", Quantity: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 10, created.Quantity)
	assert.True(t, created.TotalPrice.Equal(decimal.NewFromInt(1000)),
		"total debe ser precio × cantidad: %s", created.TotalPrice)
	assert.EqualValues(t, 10, f.stockQty("prod-1"))

	// Editar a 15 → stock 5, total 1500
	edited, err := f.uc.Edit(ctx, ownerID, ownerEmail, created.ID, dto.UpdateSaleRequest{ProductID: "prod-1", Quantity: 15})
	require.NoError(t, err)
	assert.EqualValues(t, 15, edited.Quantity)
	assert.True(t, edited.TotalPrice.Equal(decimal.NewFromInt(1500)))
	assert.EqualValues(t, 5, f.stockQty("prod-1"))

	// Borrar → stock vuelve a 20
	require.NoError(t, f.uc.Delete(ctx, ownerID, created.ID))
	assert.EqualValues(t, 20, f.stockQty("prod-1"))
	assert.Empty(t, f.sales.sales, "la venta debe desaparecer")
}

func TestVentas_EditarReducirCantidadDevuelveStock(t *testing.T) {
	f := newFixture()
	f.addProduct("prod-1", "Tuercas", 50, 20, 2)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, ownerID, ownerEmail, dto.CreateSaleRequest{ProductID: "prod-1", Quantity: 15})
	require.NoError(t, err)
	assert.EqualValues(t, 5, f.stockQty("prod-1"))

	// Reducir de 15 a 5 → stock sube a 15
	edited, err := f.uc.Edit(ctx, ownerID, ownerEmail, created.ID, dto.UpdateSaleRequest{ProductID: "prod-1", Quantity: 5})
	require.NoError(t, err)
	assert.EqualValues(t, 15, f.stockQty("prod-1"))
	assert.True(t, edited.TotalPrice.Equal(decimal.NewFromInt(250)))
}

func TestVentas_EditarCambioDeProducto(t *testing.T) {
	f := newFixture()
	f.addProduct("prod-1", "Tornillos", 100, 20, 2)
	f.addProduct("prod-2", "Clavos", 30, 8, 2)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, ownerID, ownerEmail, dto.CreateSaleRequest{ProductID: "prod-1", Quantity: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 10, f.stockQty("prod-1"))

	// Cambiar la venta a prod-2 con cantidad 6: prod-1 recupera sus 10,
	// prod-2 pierde 6 y el total se recalcula con el precio nuevo.
	edited, err := f.uc.Edit(ctx, ownerID, ownerEmail, created.ID, dto.UpdateSaleRequest{ProductID: "prod-2", Quantity: 6})
	require.NoError(t, err)
	assert.EqualValues(t, 20, f.stockQty("prod-1"), "el producto anterior recupera la cantidad vendida")
	assert.EqualValues(t, 2, f.stockQty("prod-2"))
	assert.Equal(t, "prod-2", edited.ProductID)
	assert.True(t, edited.TotalPrice.Equal(decimal.NewFromInt(180)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock insuficiente
// ──────────────────────────────────────────────────────────────────────────────

func TestVentas_CrearSinStockSuficiente_NoOp(t *testing.T) {
	f := newFixture()
	f.addProduct("prod-1", "Tornillos", 100, 5, 2)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, ownerID, ownerEmail, dto.CreateSaleRequest{ProductID: "prod-1", Quantity: 10})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.EqualValues(t, 5, f.stockQty("prod-1"), "el stock no debe cambiar")
	assert.Empty(t, f.sales.sales, "no debe quedar venta registrada")
}

func TestVentas_EditarAumentoSinStockParaElDelta_NoOp(t *testing.T) {
	f := newFixture()
	f.addProduct("prod-1", "Tornillos", 100, 10, 2)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, ownerID, ownerEmail, dto.CreateSaleRequest{ProductID: "prod-1", Quantity: 8})
	require.NoError(t, err)
	assert.EqualValues(t, 2, f.stockQty("prod-1"))

	// Delta = 5, stock actual = 2 → rechazo; venta y stock intactos
	_, err = f.uc.Edit(ctx, ownerID, ownerEmail, created.ID, dto.UpdateSaleRequest{ProductID: "prod-1", Quantity: 13})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.EqualValues(t, 2, f.stockQty("prod-1"))
	assert.EqualValues(t, 8, f.sales.sales[created.ID].Quantity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento por dueño
// ──────────────────────────────────────────────────────────────────────────────

func TestVentas_ProductoDeOtroDueno_NotFound(t *testing.T) {
	f := newFixture()
	f.products.products["ajeno"] = &entity.Product{
		ID: "ajeno", UserID: otherOwner, Name: "Ajeno", Price: decimal.NewFromInt(10),
	}
	f.stock.rows["ajeno"] = &entity.Stock{
		ID: "stock-ajeno", UserID: otherOwner, ProductID: "ajeno", Quantity: 100, MinimumQuantity: 2,
	}

	_, err := f.uc.Create(context.Background(), ownerID, ownerEmail,
		dto.CreateSaleRequest{ProductID: "ajeno", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVentas_BorrarVentaInexistente_NotFound(t *testing.T) {
	f := newFixture()
	err := f.uc.Delete(context.Background(), ownerID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas de stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestVentas_AlertaUnicaAlCruzarElMinimo(t *testing.T) {
	f := newFixture()
	f.addProduct("prod-1", "Tornillos", 100, 12, 10)
	ctx := context.Background()

	// 12 − 5 = 7 < 10 → exactamente una alerta
	_, err := f.uc.Create(ctx, ownerID, ownerEmail, dto.CreateSaleRequest{ProductID: "prod-1", Quantity: 5})
	require.NoError(t, err)

	require.Len(t, f.notifier.alerts, 1)
	a := f.notifier.alerts[0]
	assert.Equal(t, ownerEmail, a.recipient)
	assert.Equal(t, "Tornillos", a.product)
	assert.EqualValues(t, 7, a.quantity)
	assert.EqualValues(t, 10, a.minimum)
}

func TestVentas_SinAlertaSiQuedaSobreElMinimo(t *testing.T) {
	f := newFixture()
	f.addProduct("prod-1", "Tornillos", 100, 20, 5)

	_, err := f.uc.Create(context.Background(), ownerID, ownerEmail,
		dto.CreateSaleRequest{ProductID: "prod-1", Quantity: 10})
	require.NoError(t, err)
	assert.Empty(t, f.notifier.alerts, "10 ≥ 5: no debe alertar")
}

func TestVentas_SinDestinatarioNoSeEncolaAlerta(t *testing.T) {
	f := newFixture()
	f.addProduct("prod-1", "Tornillos", 100, 12, 10)

	_, err := f.uc.Create(context.Background(), ownerID, "", // usuario sin email
		dto.CreateSaleRequest{ProductID: "prod-1", Quantity: 5})
	require.NoError(t, err)
	assert.Empty(t, f.notifier.alerts)
}

func TestVentas_EditarConCambioDeProductoAlertaAmbos(t *testing.T) {
	f := newFixture()
	// Tras la edición: prod-1 vuelve a 20 pero su mínimo es 25 → alerta;
	// prod-2 queda en 1 con mínimo 5 → alerta.
	f.addProduct("prod-1", "Tornillos", 100, 20, 25)
	f.addProduct("prod-2", "Clavos", 30, 4, 5)
	ctx := context.Background()

	created, err := f.uc.Create(ctx, ownerID, ownerEmail, dto.CreateSaleRequest{ProductID: "prod-1", Quantity: 10})
	require.NoError(t, err)
	f.notifier.alerts = nil

	_, err = f.uc.Edit(ctx, ownerID, ownerEmail, created.ID, dto.UpdateSaleRequest{ProductID: "prod-2", Quantity: 3})
	require.NoError(t, err)

	require.Len(t, f.notifier.alerts, 2)
	products := []string{f.notifier.alerts[0].product, f.notifier.alerts[1].product}
	assert.Contains(t, products, "Tornillos")
	assert.Contains(t, products, "Clavos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado
// ──────────────────────────────────────────────────────────────────────────────

func TestVentas_ListarConNombreDeProducto(t *testing.T) {
	f := newFixture()
	f.addProduct("prod-1", "Tornillos", 100, 50, 2)
	ctx := context.Background()

	_, err := f.uc.Create(ctx, ownerID, ownerEmail, dto.CreateSaleRequest{ProductID: "prod-1", Quantity: 3})
	require.NoError(t, err)

	out, err := f.uc.List(ownerID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Tornillos", out.Items[0].ProductName)
	assert.True(t, out.Items[0].TotalPrice.Equal(decimal.NewFromInt(300)))
}
