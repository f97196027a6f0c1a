package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// El resumen junta ventanas, crecimientos, compras/gastos del mes, listados y
// series de gráfico sobre un instante fijo.
func TestDashboard_GetSummary(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)
	todayStart := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	repo := &fakeReportRepo{
		// Ingresos por ventana: hoy 150, ayer 100, mes 900, mes anterior 600
		salesTotals: func(start, end time.Time) repository.SalesTotals {
			switch {
			case start.Equal(todayStart) && end.Equal(now):
				return repository.SalesTotals{Income: dec("150"), Cost: dec("90"), Margin: dec("60"), Count: 3}
			case end.Equal(todayStart): // ayer
				return repository.SalesTotals{Income: dec("100"), Cost: dec("70"), Margin: dec("30"), Count: 2}
			case start.Equal(monthStart):
				return repository.SalesTotals{Income: dec("900"), Cost: dec("500"), Margin: dec("400"), Count: 20}
			case end.Equal(monthStart): // mes anterior
				return repository.SalesTotals{Income: dec("600"), Cost: dec("350"), Margin: dec("250"), Count: 15}
			default:
				return repository.SalesTotals{Income: dec("50"), Cost: dec("30"), Margin: dec("20"), Count: 1}
			}
		},
		purchaseTotal: func(start, _ time.Time) decimal.Decimal {
			if start.Equal(monthStart) {
				return dec("400")
			}
			return dec("200")
		},
		expenseTotal: func(start, _ time.Time) decimal.Decimal {
			if start.Equal(monthStart) {
				return dec("80")
			}
			return dec("0")
		},
		inventoryValue: dec("12500.50"),
		topProducts: []repository.ProductSalesResult{
			{ProductID: "p1", ProductName: "Café", TotalSold: 40, TotalRevenue: dec("400")},
		},
		topCategories: []repository.CategorySalesResult{
			{CategoryID: "c1", CategoryName: "Bebidas", TotalSold: 40, TotalRevenue: dec("400")},
			{CategoryID: "c2", CategoryName: "Snacks", TotalSold: 10, TotalRevenue: dec("120")},
		},
		lowStock:   []repository.StockLevelResult{{ProductID: "p9", ProductName: "Té", Stock: 1}},
		outOfStock: []repository.StockLevelResult{{ProductID: "p8", ProductName: "Leche", Stock: 0}},
		velocity: []repository.ProductVelocityResult{
			{ProductID: "p1", ProductName: "Café", Stock: 10, Sold: 365},
		},
		daily: []repository.DailyIncomeResult{
			{Day: todayStart, Income: dec("150")},
			{Day: todayStart.AddDate(0, 0, -2), Income: dec("75")},
		},
	}
	uc := NewDashboardUseCase(repo)

	out, err := uc.getSummaryAt(context.Background(), now)
	require.NoError(t, err)

	// Ventanas
	assert.True(t, out.Today.Income.Equal(dec("150")))
	assert.Equal(t, int64(3), out.Today.SaleCount)
	assert.True(t, out.Yesterday.Income.Equal(dec("100")))
	assert.True(t, out.CurrentMonth.Income.Equal(dec("900")))
	assert.True(t, out.PreviousMonth.Income.Equal(dec("600")))

	// Crecimientos: 100→150 = 50%, 600→900 = 50%
	assert.True(t, out.IncomeGrowthToday.Equal(dec("50")))
	assert.True(t, out.IncomeGrowthMonth.Equal(dec("50")))

	// Compras y gastos del mes vs anterior
	assert.True(t, out.MonthPurchases.Equal(dec("400")))
	assert.True(t, out.PrevMonthPurchases.Equal(dec("200")))
	assert.True(t, out.PurchasesGrowth.Equal(dec("100")))
	assert.True(t, out.MonthExpenses.Equal(dec("80")))
	assert.True(t, out.ExpensesGrowth.Equal(dec("100")), "gasto previo cero con actual positivo")

	assert.True(t, out.InventoryValue.Equal(dec("12500.5")))

	// Listados
	require.Len(t, out.TopProducts, 1)
	assert.Equal(t, "Café", out.TopProducts[0].ProductName)
	require.Len(t, out.LowStock, 1)
	require.Len(t, out.OutOfStock, 1)
	require.Len(t, out.Runout, 1)
	assert.True(t, out.Runout[0].DaysToRunout.Equal(dec("10")))

	assert.Equal(t, "Marzo 2024", out.DateLabel)
}

// La serie semanal rellena con cero los días sin ventas y va del más antiguo
// al más reciente.
func TestDashboard_SerieSemanalRellenaConCero(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)
	todayStart := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	repo := &fakeReportRepo{
		daily: []repository.DailyIncomeResult{
			{Day: todayStart.AddDate(0, 0, -3), Income: dec("200")},
		},
	}
	uc := NewDashboardUseCase(repo)

	out, err := uc.getSummaryAt(context.Background(), now)
	require.NoError(t, err)

	chart := out.WeeklyIncomeChart
	require.Len(t, chart.Labels, 7)
	require.Len(t, chart.Values, 7)

	assert.Equal(t, "2024-03-09", chart.Labels[0])
	assert.Equal(t, "2024-03-15", chart.Labels[6])

	for i, label := range chart.Labels {
		if label == "2024-03-12" {
			assert.True(t, chart.Values[i].Equal(dec("200")))
		} else {
			assert.True(t, chart.Values[i].IsZero(), "día %s debe ir en cero", label)
		}
	}
}

// El gráfico de categorías refleja el ranking de los últimos 30 días.
func TestDashboard_GraficoDeCategorias(t *testing.T) {
	repo := &fakeReportRepo{
		topCategories: []repository.CategorySalesResult{
			{CategoryID: "c1", CategoryName: "Bebidas", TotalRevenue: dec("400")},
			{CategoryID: "c2", CategoryName: "Snacks", TotalRevenue: dec("120")},
		},
	}
	uc := NewDashboardUseCase(repo)

	out, err := uc.getSummaryAt(context.Background(), time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, []string{"Bebidas", "Snacks"}, out.CategoryRevenueChart.Labels)
	require.Len(t, out.CategoryRevenueChart.Values, 2)
	assert.True(t, out.CategoryRevenueChart.Values[0].Equal(dec("400")))
}
