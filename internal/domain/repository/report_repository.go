package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesTotals agregados de ventas en una ventana de tiempo.
// Todos los valores son 0 cuando la ventana no contiene filas (nunca null).
type SalesTotals struct {
	Income decimal.Decimal // Σ(quantity × price)
	Cost   decimal.Decimal // Σ(quantity × cost), COGS
	Margin decimal.Decimal // Σ((price − cost) × quantity)
	Count  int64           // número de ventas
}

// ProductSalesResult fila del ranking de ventas por producto.
type ProductSalesResult struct {
	ProductID    string
	ProductName  string
	TotalSold    int64
	TotalRevenue decimal.Decimal
}

// CategorySalesResult fila del ranking de ventas por categoría.
type CategorySalesResult struct {
	CategoryID   string
	CategoryName string
	TotalSold    int64
	TotalRevenue decimal.Decimal
}

// StockLevelResult fila de los listados de stock bajo / agotado.
type StockLevelResult struct {
	ProductID   string
	ProductName string
	Stock       int64
}

// ProductVelocityResult unidades vendidas por producto desde una fecha,
// junto con el stock actual. Insumo de la proyección de agotamiento.
type ProductVelocityResult struct {
	ProductID   string
	ProductName string
	Stock       int64
	Sold        int64
}

// DailyIncomeResult ingreso agregado de un día calendario.
type DailyIncomeResult struct {
	Day    time.Time
	Income decimal.Decimal
}

// ValuationRow fila del reporte de valoración de inventario.
type ValuationRow struct {
	ProductID    string
	ProductName  string
	CategoryName string
	Stock        int64
	AverageCost  decimal.Decimal
	Price        decimal.Decimal
}

// ReportRepository consultas de solo lectura para el motor de reportes.
//
// Convenciones de ventana: los métodos Get*Totals / GetTop* / GetDailyIncome
// filtran por created_at en el rango semiabierto [start, end); un start en
// cero equivale a "desde siempre". Las variantes *ByDate filtran por el campo
// date en el rango cerrado [start, end] (reporte de resultado mensual).
type ReportRepository interface {
	GetSalesTotals(ctx context.Context, start, end time.Time) (SalesTotals, error)
	GetPurchaseTotal(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	GetExpenseTotal(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// GetTopProducts agrupa ventas por producto, ordena por unidades vendidas
	// descendente (empates por nombre ascendente) y devuelve las primeras limit.
	GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]ProductSalesResult, error)
	GetTopCategories(ctx context.Context, start, end time.Time, limit int) ([]CategorySalesResult, error)

	// GetInventoryValue devuelve Σ(stock × average_cost) sobre productos con stock > 0.
	GetInventoryValue(ctx context.Context) (decimal.Decimal, error)
	GetLowStock(ctx context.Context, threshold int64, limit int) ([]StockLevelResult, error)
	GetOutOfStock(ctx context.Context, limit int) ([]StockLevelResult, error)

	// GetSalesVelocity devuelve, por producto con stock > 0, las unidades
	// vendidas desde `since`. Incluye productos sin ventas (Sold == 0).
	GetSalesVelocity(ctx context.Context, since time.Time) ([]ProductVelocityResult, error)

	GetDailyIncome(ctx context.Context, start, end time.Time) ([]DailyIncomeResult, error)

	GetSalesTotalsByDate(ctx context.Context, start, end time.Time) (SalesTotals, error)
	GetExpenseTotalByDate(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	GetValuationRows(ctx context.Context) ([]ValuationRow, error)
}
