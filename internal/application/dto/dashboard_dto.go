package dto

import "github.com/shopspring/decimal"

// WindowMetricsDTO agregados de ventas de una ventana de tiempo.
// Siempre en cero cuando la ventana no tiene ventas (nunca null).
type WindowMetricsDTO struct {
	Income    decimal.Decimal `json:"income"`     // Σ(quantity × price)
	Cost      decimal.Decimal `json:"cost"`       // Σ(quantity × cost)
	Margin    decimal.Decimal `json:"margin"`     // Σ((price − cost) × quantity)
	SaleCount int64           `json:"sale_count"` // número de ventas
}

// ProductRankingDTO fila del ranking de productos más vendidos.
type ProductRankingDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	TotalSold    int64           `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// CategoryRankingDTO fila del ranking de categorías más vendidas.
type CategoryRankingDTO struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	TotalSold    int64           `json:"total_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// StockLevelDTO fila de los listados de stock bajo / agotado.
type StockLevelDTO struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int64  `json:"stock"`
}

// RunoutProjectionDTO proyección de agotamiento de un producto.
// Extrapolación lineal del consumo de los últimos 365 días; los productos
// sin ventas en ese período no aparecen (proyección indefinida, no cero).
type RunoutProjectionDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Stock        int64           `json:"stock"`
	SoldLast365  int64           `json:"sold_last_365"`
	DaysPerUnit  decimal.Decimal `json:"days_per_unit"`
	DaysToRunout decimal.Decimal `json:"days_to_runout"`
}

// ChartSeriesDTO serie etiqueta/valor lista para graficar.
type ChartSeriesDTO struct {
	Labels []string          `json:"labels"`
	Values []decimal.Decimal `json:"values"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	// Ventanas de tiempo (ver reporting.WindowsAt para los límites exactos)
	Today         WindowMetricsDTO `json:"today"`
	Yesterday     WindowMetricsDTO `json:"yesterday"`
	Last7Days     WindowMetricsDTO `json:"last_7_days"`
	Prev7Days     WindowMetricsDTO `json:"prev_7_days"`
	CurrentMonth  WindowMetricsDTO `json:"current_month"`
	PreviousMonth WindowMetricsDTO `json:"previous_month"`
	Last30Days    WindowMetricsDTO `json:"last_30_days"`
	Last365Days   WindowMetricsDTO `json:"last_365_days"`
	AllTime       WindowMetricsDTO `json:"all_time"`

	// Crecimientos porcentuales de ingreso (ver reporting.Growth)
	IncomeGrowthToday decimal.Decimal `json:"income_growth_today"` // hoy vs ayer
	IncomeGrowthWeek  decimal.Decimal `json:"income_growth_week"`  // últimos 7 días vs 7 anteriores
	IncomeGrowthMonth decimal.Decimal `json:"income_growth_month"` // mes en curso vs mes anterior

	// Compras y gastos del mes con su comparativo
	MonthPurchases     decimal.Decimal `json:"month_purchases"`
	PrevMonthPurchases decimal.Decimal `json:"prev_month_purchases"`
	PurchasesGrowth    decimal.Decimal `json:"purchases_growth"`
	MonthExpenses      decimal.Decimal `json:"month_expenses"`
	PrevMonthExpenses  decimal.Decimal `json:"prev_month_expenses"`
	ExpensesGrowth     decimal.Decimal `json:"expenses_growth"`

	// Valoración de inventario: Σ(stock × average_cost) con stock > 0
	InventoryValue decimal.Decimal `json:"inventory_value"`

	// Rankings y listados
	TopProducts       []ProductRankingDTO   `json:"top_products"`        // top 5, últimos 30 días
	TopCategories     []CategoryRankingDTO  `json:"top_categories"`      // top 5, últimos 30 días
	GlobalTopProducts []ProductRankingDTO   `json:"global_top_products"` // top 10, histórico
	LowStock          []StockLevelDTO       `json:"low_stock"`           // stock < 2, ascendente
	OutOfStock        []StockLevelDTO       `json:"out_of_stock"`        // stock == 0, por nombre
	Runout            []RunoutProjectionDTO `json:"runout"`              // agotamiento más próximo primero

	// Series para gráficos
	WeeklyIncomeChart    ChartSeriesDTO `json:"weekly_income_chart"`    // ingreso diario, 7 días, más antiguo primero
	CategoryRevenueChart ChartSeriesDTO `json:"category_revenue_chart"` // ingreso por categoría, últimos 30 días

	DateLabel string `json:"date_label"` // ej: "Agosto 2026"
}
