package reporting

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// fakeReportRepo implementación en memoria de repository.ReportRepository.
// Los campos func permiten variar la respuesta según la ventana consultada;
// los demás devuelven el valor configurado tal cual.
type fakeReportRepo struct {
	salesTotals   func(start, end time.Time) repository.SalesTotals
	purchaseTotal func(start, end time.Time) decimal.Decimal
	expenseTotal  func(start, end time.Time) decimal.Decimal

	salesTotalsByDate repository.SalesTotals
	expenseByDate     decimal.Decimal
	byDateStart       time.Time // captura los límites recibidos
	byDateEnd         time.Time

	topProducts    []repository.ProductSalesResult
	topCategories  []repository.CategorySalesResult
	inventoryValue decimal.Decimal
	lowStock       []repository.StockLevelResult
	outOfStock     []repository.StockLevelResult
	velocity       []repository.ProductVelocityResult
	daily          []repository.DailyIncomeResult
	valuation      []repository.ValuationRow
}

var _ repository.ReportRepository = (*fakeReportRepo)(nil)

func (f *fakeReportRepo) GetSalesTotals(_ context.Context, start, end time.Time) (repository.SalesTotals, error) {
	if f.salesTotals == nil {
		return repository.SalesTotals{Income: decimal.Zero, Cost: decimal.Zero, Margin: decimal.Zero}, nil
	}
	return f.salesTotals(start, end), nil
}

func (f *fakeReportRepo) GetPurchaseTotal(_ context.Context, start, end time.Time) (decimal.Decimal, error) {
	if f.purchaseTotal == nil {
		return decimal.Zero, nil
	}
	return f.purchaseTotal(start, end), nil
}

func (f *fakeReportRepo) GetExpenseTotal(_ context.Context, start, end time.Time) (decimal.Decimal, error) {
	if f.expenseTotal == nil {
		return decimal.Zero, nil
	}
	return f.expenseTotal(start, end), nil
}

func (f *fakeReportRepo) GetTopProducts(_ context.Context, _, _ time.Time, limit int) ([]repository.ProductSalesResult, error) {
	if len(f.topProducts) > limit {
		return f.topProducts[:limit], nil
	}
	return f.topProducts, nil
}

func (f *fakeReportRepo) GetTopCategories(_ context.Context, _, _ time.Time, limit int) ([]repository.CategorySalesResult, error) {
	if len(f.topCategories) > limit {
		return f.topCategories[:limit], nil
	}
	return f.topCategories, nil
}

func (f *fakeReportRepo) GetInventoryValue(_ context.Context) (decimal.Decimal, error) {
	return f.inventoryValue, nil
}

func (f *fakeReportRepo) GetLowStock(_ context.Context, _ int64, _ int) ([]repository.StockLevelResult, error) {
	return f.lowStock, nil
}

func (f *fakeReportRepo) GetOutOfStock(_ context.Context, _ int) ([]repository.StockLevelResult, error) {
	return f.outOfStock, nil
}

func (f *fakeReportRepo) GetSalesVelocity(_ context.Context, _ time.Time) ([]repository.ProductVelocityResult, error) {
	return f.velocity, nil
}

func (f *fakeReportRepo) GetDailyIncome(_ context.Context, _, _ time.Time) ([]repository.DailyIncomeResult, error) {
	return f.daily, nil
}

func (f *fakeReportRepo) GetSalesTotalsByDate(_ context.Context, start, end time.Time) (repository.SalesTotals, error) {
	f.byDateStart, f.byDateEnd = start, end
	return f.salesTotalsByDate, nil
}

func (f *fakeReportRepo) GetExpenseTotalByDate(_ context.Context, _, _ time.Time) (decimal.Decimal, error) {
	return f.expenseByDate, nil
}

func (f *fakeReportRepo) GetValuationRows(_ context.Context) ([]repository.ValuationRow, error) {
	return f.valuation, nil
}
