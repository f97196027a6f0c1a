package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

const (
	dashboardTopN       = 5  // rankings de los últimos 30 días
	dashboardGlobalTopN = 10 // ranking histórico
	dashboardListLimit  = 10 // listados de stock y proyección
	lowStockThreshold   = 2  // stock < 2 se considera bajo
	chartDays           = 7  // serie de ingreso diario
)

// DashboardUseCase genera el resumen financiero completo del negocio.
//
// Fuente de datos: ReportRepository (consultas read-only). No cachea nada:
// cada resumen se recalcula desde el libro.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetSummary construye el DashboardSummaryDTO al instante actual.
//
// Cuatro grupos de consultas en paralelo:
//  1. agregados de ventas por ventana de tiempo
//  2. compras y gastos del mes vs mes anterior
//  3. rankings, listados de stock, valoración y velocidad de venta
//  4. serie de ingreso diario para el gráfico semanal
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	return uc.getSummaryAt(ctx, time.Now())
}

type windowTotals struct {
	today, yesterday, last7, prev7 repository.SalesTotals
	month, prevMonth               repository.SalesTotals
	last30, last365, allTime       repository.SalesTotals
}

func (uc *DashboardUseCase) getSummaryAt(ctx context.Context, now time.Time) (*dto.DashboardSummaryDTO, error) {
	w := WindowsAt(now)

	type totalsResult struct {
		totals windowTotals
		err    error
	}
	type spendResult struct {
		monthPurchases, prevMonthPurchases decimal.Decimal
		monthExpenses, prevMonthExpenses   decimal.Decimal
		err                                error
	}
	type listsResult struct {
		inventoryValue    decimal.Decimal
		topProducts       []repository.ProductSalesResult
		topCategories     []repository.CategorySalesResult
		globalTopProducts []repository.ProductSalesResult
		lowStock          []repository.StockLevelResult
		outOfStock        []repository.StockLevelResult
		velocity          []repository.ProductVelocityResult
		err               error
	}
	type chartResult struct {
		daily []repository.DailyIncomeResult
		err   error
	}

	totalsCh := make(chan totalsResult, 1)
	spendCh := make(chan spendResult, 1)
	listsCh := make(chan listsResult, 1)
	chartCh := make(chan chartResult, 1)

	go func() {
		var r totalsResult
		r.totals, r.err = uc.collectWindowTotals(ctx, w)
		totalsCh <- r
	}()
	go func() {
		var r spendResult
		r.monthPurchases, r.err = uc.reportRepo.GetPurchaseTotal(ctx, w.CurrentMonth.Start, w.CurrentMonth.End)
		if r.err == nil {
			r.prevMonthPurchases, r.err = uc.reportRepo.GetPurchaseTotal(ctx, w.PreviousMonth.Start, w.PreviousMonth.End)
		}
		if r.err == nil {
			r.monthExpenses, r.err = uc.reportRepo.GetExpenseTotal(ctx, w.CurrentMonth.Start, w.CurrentMonth.End)
		}
		if r.err == nil {
			r.prevMonthExpenses, r.err = uc.reportRepo.GetExpenseTotal(ctx, w.PreviousMonth.Start, w.PreviousMonth.End)
		}
		spendCh <- r
	}()
	go func() {
		var r listsResult
		r.inventoryValue, r.err = uc.reportRepo.GetInventoryValue(ctx)
		if r.err == nil {
			r.topProducts, r.err = uc.reportRepo.GetTopProducts(ctx, w.Last30Days.Start, w.Last30Days.End, dashboardTopN)
		}
		if r.err == nil {
			r.topCategories, r.err = uc.reportRepo.GetTopCategories(ctx, w.Last30Days.Start, w.Last30Days.End, dashboardTopN)
		}
		if r.err == nil {
			r.globalTopProducts, r.err = uc.reportRepo.GetTopProducts(ctx, w.AllTime.Start, w.AllTime.End, dashboardGlobalTopN)
		}
		if r.err == nil {
			r.lowStock, r.err = uc.reportRepo.GetLowStock(ctx, lowStockThreshold, dashboardListLimit)
		}
		if r.err == nil {
			r.outOfStock, r.err = uc.reportRepo.GetOutOfStock(ctx, dashboardListLimit)
		}
		if r.err == nil {
			r.velocity, r.err = uc.reportRepo.GetSalesVelocity(ctx, w.Last365Days.Start)
		}
		listsCh <- r
	}()
	go func() {
		var r chartResult
		r.daily, r.err = uc.reportRepo.GetDailyIncome(ctx, w.Last7Days.Start, w.Last7Days.End)
		chartCh <- r
	}()

	totals := <-totalsCh
	spend := <-spendCh
	lists := <-listsCh
	chart := <-chartCh

	if totals.err != nil {
		return nil, fmt.Errorf("dashboard: agregados por ventana: %w", totals.err)
	}
	if spend.err != nil {
		return nil, fmt.Errorf("dashboard: compras y gastos: %w", spend.err)
	}
	if lists.err != nil {
		return nil, fmt.Errorf("dashboard: rankings y listados: %w", lists.err)
	}
	if chart.err != nil {
		return nil, fmt.Errorf("dashboard: serie diaria: %w", chart.err)
	}

	t := totals.totals
	summary := &dto.DashboardSummaryDTO{
		Today:         toWindowMetrics(t.today),
		Yesterday:     toWindowMetrics(t.yesterday),
		Last7Days:     toWindowMetrics(t.last7),
		Prev7Days:     toWindowMetrics(t.prev7),
		CurrentMonth:  toWindowMetrics(t.month),
		PreviousMonth: toWindowMetrics(t.prevMonth),
		Last30Days:    toWindowMetrics(t.last30),
		Last365Days:   toWindowMetrics(t.last365),
		AllTime:       toWindowMetrics(t.allTime),

		IncomeGrowthToday: Growth(t.today.Income, t.yesterday.Income),
		IncomeGrowthWeek:  Growth(t.last7.Income, t.prev7.Income),
		IncomeGrowthMonth: Growth(t.month.Income, t.prevMonth.Income),

		MonthPurchases:     spend.monthPurchases.Round(2),
		PrevMonthPurchases: spend.prevMonthPurchases.Round(2),
		PurchasesGrowth:    Growth(spend.monthPurchases, spend.prevMonthPurchases),
		MonthExpenses:      spend.monthExpenses.Round(2),
		PrevMonthExpenses:  spend.prevMonthExpenses.Round(2),
		ExpensesGrowth:     Growth(spend.monthExpenses, spend.prevMonthExpenses),

		InventoryValue: lists.inventoryValue.Round(2),

		TopProducts:       toProductRanking(lists.topProducts),
		TopCategories:     toCategoryRanking(lists.topCategories),
		GlobalTopProducts: toProductRanking(lists.globalTopProducts),
		LowStock:          toStockLevels(lists.lowStock),
		OutOfStock:        toStockLevels(lists.outOfStock),
		Runout:            BuildRunoutProjection(lists.velocity, dashboardListLimit),

		WeeklyIncomeChart:    buildWeeklyIncomeChart(now, chart.daily),
		CategoryRevenueChart: buildCategoryRevenueChart(lists.topCategories),

		DateLabel: MonthLabel(now),
	}
	return summary, nil
}

func (uc *DashboardUseCase) collectWindowTotals(ctx context.Context, w Windows) (windowTotals, error) {
	var t windowTotals
	var err error

	fetch := func(dst *repository.SalesTotals, win Window) {
		if err != nil {
			return
		}
		*dst, err = uc.reportRepo.GetSalesTotals(ctx, win.Start, win.End)
	}
	fetch(&t.today, w.Today)
	fetch(&t.yesterday, w.Yesterday)
	fetch(&t.last7, w.Last7Days)
	fetch(&t.prev7, w.Prev7Days)
	fetch(&t.month, w.CurrentMonth)
	fetch(&t.prevMonth, w.PreviousMonth)
	fetch(&t.last30, w.Last30Days)
	fetch(&t.last365, w.Last365Days)
	fetch(&t.allTime, w.AllTime)
	return t, err
}

// buildWeeklyIncomeChart produce la serie de ingreso diario de los últimos
// `chartDays` días, del más antiguo al más reciente, rellenando con cero los
// días sin ventas.
func buildWeeklyIncomeChart(now time.Time, daily []repository.DailyIncomeResult) dto.ChartSeriesDTO {
	byDay := make(map[string]decimal.Decimal, len(daily))
	for _, d := range daily {
		byDay[d.Day.Format("2006-01-02")] = d.Income
	}

	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	series := dto.ChartSeriesDTO{
		Labels: make([]string, 0, chartDays),
		Values: make([]decimal.Decimal, 0, chartDays),
	}
	for i := chartDays - 1; i >= 0; i-- {
		day := todayStart.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		income, ok := byDay[key]
		if !ok {
			income = decimal.Zero
		}
		series.Labels = append(series.Labels, key)
		series.Values = append(series.Values, income.Round(2))
	}
	return series
}

// buildCategoryRevenueChart reprojecta el ranking de categorías de los
// últimos 30 días como pares etiqueta/valor de ingreso.
func buildCategoryRevenueChart(categories []repository.CategorySalesResult) dto.ChartSeriesDTO {
	series := dto.ChartSeriesDTO{
		Labels: make([]string, 0, len(categories)),
		Values: make([]decimal.Decimal, 0, len(categories)),
	}
	for _, c := range categories {
		series.Labels = append(series.Labels, c.CategoryName)
		series.Values = append(series.Values, c.TotalRevenue.Round(2))
	}
	return series
}

func toWindowMetrics(t repository.SalesTotals) dto.WindowMetricsDTO {
	return dto.WindowMetricsDTO{
		Income:    t.Income.Round(2),
		Cost:      t.Cost.Round(2),
		Margin:    t.Margin.Round(2),
		SaleCount: t.Count,
	}
}

func toProductRanking(rows []repository.ProductSalesResult) []dto.ProductRankingDTO {
	out := make([]dto.ProductRankingDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ProductRankingDTO{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			TotalSold:    r.TotalSold,
			TotalRevenue: r.TotalRevenue.Round(2),
		})
	}
	return out
}

func toCategoryRanking(rows []repository.CategorySalesResult) []dto.CategoryRankingDTO {
	out := make([]dto.CategoryRankingDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategoryRankingDTO{
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			TotalSold:    r.TotalSold,
			TotalRevenue: r.TotalRevenue.Round(2),
		})
	}
	return out
}

func toStockLevels(rows []repository.StockLevelResult) []dto.StockLevelDTO {
	out := make([]dto.StockLevelDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockLevelDTO{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Stock:       r.Stock,
		})
	}
	return out
}
