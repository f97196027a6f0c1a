package backup_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/application/backup"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// store guarda las cinco colecciones y el orden de los tipos insertados.
type store struct {
	categories map[string]*entity.Category
	products   map[string]*entity.Product
	purchases  map[string]*entity.Purchase
	sales      map[string]*entity.Sale
	expenses   map[string]*entity.Expense
	insertions []string
}

func newStore() *store {
	return &store{
		categories: map[string]*entity.Category{},
		products:   map[string]*entity.Product{},
		purchases:  map[string]*entity.Purchase{},
		sales:      map[string]*entity.Sale{},
		expenses:   map[string]*entity.Expense{},
	}
}

type memCategoryRepo struct{ s *store }

func (r *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.s.insertions = append(r.s.insertions, "category")
	r.s.categories[c.ID] = c
	return nil
}
func (r *memCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return r.s.categories[id], nil
}
func (r *memCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	return out, nil
}
func (r *memCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.s.categories[c.ID] = c
	return nil
}
func (r *memCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.s.categories, id)
	return nil
}

type memProductRepo struct{ s *store }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.insertions = append(r.s.insertions, "product")
	r.s.products[p.ID] = p
	return nil
}
func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *memProductRepo) GetForUpdate(_ context.Context, id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *memProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return r.ListAll(context.Background())
}
func (r *memProductRepo) ListAll(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}
func (r *memProductRepo) UpdateStockAndCost(_ context.Context, id string, stock int64, avgCost decimal.Decimal) error {
	r.s.products[id].Stock = stock
	r.s.products[id].AverageCost = avgCost
	return nil
}
func (r *memProductRepo) UpdateStock(_ context.Context, id string, stock int64) error {
	r.s.products[id].Stock = stock
	return nil
}
func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.s.products, id)
	return nil
}

type memPurchaseRepo struct{ s *store }

func (r *memPurchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	r.s.insertions = append(r.s.insertions, "purchase")
	r.s.purchases[p.ID] = p
	return nil
}
func (r *memPurchaseRepo) GetByID(_ context.Context, id string) (*entity.Purchase, error) {
	return r.s.purchases[id], nil
}
func (r *memPurchaseRepo) List(_ context.Context, _, _ int) ([]*entity.Purchase, error) {
	return r.ListAll(context.Background())
}
func (r *memPurchaseRepo) ListAll(_ context.Context) ([]*entity.Purchase, error) {
	out := make([]*entity.Purchase, 0, len(r.s.purchases))
	for _, p := range r.s.purchases {
		out = append(out, p)
	}
	return out, nil
}
func (r *memPurchaseRepo) Delete(_ context.Context, id string) error {
	delete(r.s.purchases, id)
	return nil
}

type memSaleRepo struct{ s *store }

func (r *memSaleRepo) Create(_ context.Context, sl *entity.Sale) error {
	r.s.insertions = append(r.s.insertions, "sale")
	r.s.sales[sl.ID] = sl
	return nil
}
func (r *memSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	return r.s.sales[id], nil
}
func (r *memSaleRepo) List(_ context.Context, _, _ int) ([]*entity.Sale, error) {
	return r.ListAll(context.Background())
}
func (r *memSaleRepo) ListAll(_ context.Context) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.s.sales))
	for _, sl := range r.s.sales {
		out = append(out, sl)
	}
	return out, nil
}
func (r *memSaleRepo) Delete(_ context.Context, id string) error {
	delete(r.s.sales, id)
	return nil
}

type memExpenseRepo struct{ s *store }

func (r *memExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.s.insertions = append(r.s.insertions, "expense")
	r.s.expenses[e.ID] = e
	return nil
}
func (r *memExpenseRepo) GetByID(_ context.Context, id string) (*entity.Expense, error) {
	return r.s.expenses[id], nil
}
func (r *memExpenseRepo) List(_ context.Context, _, _ int) ([]*entity.Expense, error) {
	return r.ListAll(context.Background())
}
func (r *memExpenseRepo) ListAll(_ context.Context) ([]*entity.Expense, error) {
	out := make([]*entity.Expense, 0, len(r.s.expenses))
	for _, e := range r.s.expenses {
		out = append(out, e)
	}
	return out, nil
}
func (r *memExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
	r.s.expenses[e.ID] = e
	return nil
}
func (r *memExpenseRepo) Delete(_ context.Context, id string) error {
	delete(r.s.expenses, id)
	return nil
}

type fakeTxRunner struct{ s *store }

func (tr *fakeTxRunner) RunImport(_ context.Context, fn func(
	repository.CategoryRepository,
	repository.ProductRepository,
	repository.PurchaseRepository,
	repository.SaleRepository,
	repository.ExpenseRepository,
) error) error {
	return fn(
		&memCategoryRepo{s: tr.s},
		&memProductRepo{s: tr.s},
		&memPurchaseRepo{s: tr.s},
		&memSaleRepo{s: tr.s},
		&memExpenseRepo{s: tr.s},
	)
}

func newUseCase(s *store) *backup.BackupUseCase {
	return backup.NewBackupUseCase(
		&fakeTxRunner{s: s},
		&memCategoryRepo{s: s},
		&memProductRepo{s: s},
		&memPurchaseRepo{s: s},
		&memSaleRepo{s: s},
		&memExpenseRepo{s: s},
	)
}

func seedStore(s *store) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.categories["c1"] = &entity.Category{ID: "c1", Name: "Bebidas", CreatedAt: now}
	s.products["p1"] = &entity.Product{
		ID: "p1", CategoryID: "c1", Name: "Café", Stock: 7,
		Price: d("15"), AverageCost: d("6.33"), CreatedAt: now, UpdatedAt: now,
	}
	s.purchases["bu1"] = &entity.Purchase{
		ID: "bu1", Date: now, Supplier: "Proveedor A", ProductID: "p1",
		Quantity: 10, Cost: d("6"), CreatedAt: now,
	}
	s.sales["s1"] = &entity.Sale{
		ID: "s1", Date: now, Customer: "Generic", ProductID: "p1",
		Quantity: 3, Price: d("15"), Cost: d("6"), CreatedAt: now,
	}
	s.expenses["e1"] = &entity.Expense{
		ID: "e1", Date: now, Amount: d("80"), Description: "Arriendo", CreatedAt: now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Export
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_DocumentoCompleto(t *testing.T) {
	s := newStore()
	seedStore(s)
	uc := newUseCase(s)

	doc, err := uc.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dto.BackupSchemaVersion, doc.SchemaVersion)
	assert.Equal(t, 5, doc.RecordCount)
	assert.False(t, doc.ExportedAt.IsZero())
	require.Len(t, doc.Products, 1)
	assert.Equal(t, int64(7), doc.Products[0].Stock)
	assert.True(t, doc.Products[0].AverageCost.Equal(d("6.33")),
		"el estado derivado viaja en el respaldo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Import
// ──────────────────────────────────────────────────────────────────────────────

// Ciclo completo: exportar, importar en una base vacía y quedar idéntico.
func TestImport_RoundTrip(t *testing.T) {
	source := newStore()
	seedStore(source)

	doc, err := newUseCase(source).Export(context.Background())
	require.NoError(t, err)
	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	target := newStore()
	summary, err := newUseCase(target).Import(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 1, summary.Categories)
	assert.Equal(t, 1, summary.Products)

	// El producto entra tal cual, sin recalcular la valoración
	p := target.products["p1"]
	require.NotNil(t, p)
	assert.Equal(t, int64(7), p.Stock)
	assert.True(t, p.AverageCost.Equal(d("6.33")))
	assert.Equal(t, "Arriendo", target.expenses["e1"].Description)
}

// Las inserciones respetan el orden de dependencias:
// categorías → productos → compras → ventas → gastos.
func TestImport_OrdenDeDependencias(t *testing.T) {
	source := newStore()
	seedStore(source)
	doc, err := newUseCase(source).Export(context.Background())
	require.NoError(t, err)
	payload, _ := json.Marshal(doc)

	target := newStore()
	_, err = newUseCase(target).Import(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, []string{"category", "product", "purchase", "sale", "expense"}, target.insertions)
}

// Payload que no parsea: ErrInvalidInput y ninguna escritura.
func TestImport_PayloadMalformado(t *testing.T) {
	target := newStore()
	_, err := newUseCase(target).Import(context.Background(), []byte("{esto no es json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, target.insertions, "no debe escribirse nada")
}

// Versión de esquema desconocida: se rechaza antes de tocar la base.
func TestImport_VersionDeEsquemaNoSoportada(t *testing.T) {
	target := newStore()
	payload := []byte(`{"schema_version": 99, "categories": [], "products": [], "purchases": [], "sales": [], "expenses": []}`)
	_, err := newUseCase(target).Import(context.Background(), payload)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, target.insertions)
}
