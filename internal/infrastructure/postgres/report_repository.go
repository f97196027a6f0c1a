package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el motor de reportes.
// Todas las agregaciones usan COALESCE para devolver cero en ventanas vacías.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetSalesTotals devuelve ingresos, COGS, margen bruto y número de ventas
// en la ventana semiabierta [start, end) sobre created_at.
func (r *ReportRepo) GetSalesTotals(ctx context.Context, start, end time.Time) (repository.SalesTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(quantity * price),          0) AS income,
	    COALESCE(SUM(quantity * cost),           0) AS cost,
	    COALESCE(SUM(quantity * (price - cost)), 0) AS margin,
	    COUNT(*)                                    AS sale_count
	FROM sales
	WHERE created_at >= $1 AND created_at < $2`

	var t repository.SalesTotals
	err := r.pool.QueryRow(ctx, query, start, end).
		Scan(&t.Income, &t.Cost, &t.Margin, &t.Count)
	if err != nil {
		return repository.SalesTotals{}, fmt.Errorf("report.GetSalesTotals: %w", err)
	}
	return t, nil
}

// GetPurchaseTotal devuelve Σ(quantity × cost) sobre compras de la ventana [start, end).
func (r *ReportRepo) GetPurchaseTotal(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(quantity * cost), 0)
	FROM purchases
	WHERE created_at >= $1 AND created_at < $2`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("report.GetPurchaseTotal: %w", err)
	}
	return total, nil
}

// GetExpenseTotal devuelve Σ(amount) sobre gastos de la ventana [start, end).
func (r *ReportRepo) GetExpenseTotal(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(amount), 0)
	FROM expenses
	WHERE created_at >= $1 AND created_at < $2`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("report.GetExpenseTotal: %w", err)
	}
	return total, nil
}

// GetTopProducts agrupa las ventas de la ventana por producto y devuelve las
// `limit` primeras por unidades vendidas. Empates: nombre ascendente.
func (r *ReportRepo) GetTopProducts(ctx context.Context, start, end time.Time, limit int) ([]repository.ProductSalesResult, error) {
	const query = `
	SELECT
	    p.id                              AS product_id,
	    p.name                            AS product_name,
	    SUM(s.quantity)                   AS total_sold,
	    SUM(s.quantity * s.price)         AS total_revenue
	FROM sales s
	JOIN products p ON p.id = s.product_id
	WHERE s.created_at >= $1 AND s.created_at < $2
	GROUP BY p.id, p.name
	ORDER BY total_sold DESC, p.name ASC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("report.GetTopProducts: %w", err)
	}
	defer rows.Close()

	results := []repository.ProductSalesResult{}
	for rows.Next() {
		var row repository.ProductSalesResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.TotalSold, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("report.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopCategories agrupa las ventas de la ventana por la categoría del
// producto. Mismo criterio de orden que GetTopProducts.
func (r *ReportRepo) GetTopCategories(ctx context.Context, start, end time.Time, limit int) ([]repository.CategorySalesResult, error) {
	const query = `
	SELECT
	    c.id                              AS category_id,
	    c.name                            AS category_name,
	    SUM(s.quantity)                   AS total_sold,
	    SUM(s.quantity * s.price)         AS total_revenue
	FROM sales s
	JOIN products   p ON p.id = s.product_id
	JOIN categories c ON c.id = p.category_id
	WHERE s.created_at >= $1 AND s.created_at < $2
	GROUP BY c.id, c.name
	ORDER BY total_sold DESC, c.name ASC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("report.GetTopCategories: %w", err)
	}
	defer rows.Close()

	results := []repository.CategorySalesResult{}
	for rows.Next() {
		var row repository.CategorySalesResult
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.TotalSold, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("report.GetTopCategories scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetInventoryValue devuelve Σ(stock × average_cost) sobre productos con stock positivo.
func (r *ReportRepo) GetInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(stock * average_cost), 0)
	FROM products
	WHERE stock > 0`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("report.GetInventoryValue: %w", err)
	}
	return total, nil
}

// GetLowStock devuelve productos con stock < threshold, del más bajo al más alto.
func (r *ReportRepo) GetLowStock(ctx context.Context, threshold int64, limit int) ([]repository.StockLevelResult, error) {
	const query = `
	SELECT id, name, stock
	FROM products
	WHERE stock < $1
	ORDER BY stock ASC, name ASC
	LIMIT $2`

	return r.collectStockLevels(ctx, query, threshold, limit)
}

// GetOutOfStock devuelve productos con stock exactamente cero, ordenados por nombre.
func (r *ReportRepo) GetOutOfStock(ctx context.Context, limit int) ([]repository.StockLevelResult, error) {
	const query = `
	SELECT id, name, stock
	FROM products
	WHERE stock = 0
	ORDER BY name ASC
	LIMIT $1`

	return r.collectStockLevels(ctx, query, limit)
}

func (r *ReportRepo) collectStockLevels(ctx context.Context, query string, args ...any) ([]repository.StockLevelResult, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report.stock levels: %w", err)
	}
	defer rows.Close()

	results := []repository.StockLevelResult{}
	for rows.Next() {
		var row repository.StockLevelResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Stock); err != nil {
			return nil, fmt.Errorf("report.stock levels scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetSalesVelocity devuelve, por producto con stock positivo, las unidades
// vendidas desde `since`. El LEFT JOIN conserva productos sin ventas (Sold = 0)
// para que el caso de uso decida excluirlos de la proyección.
func (r *ReportRepo) GetSalesVelocity(ctx context.Context, since time.Time) ([]repository.ProductVelocityResult, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    p.stock,
	    COALESCE(SUM(s.quantity), 0) AS sold
	FROM products p
	LEFT JOIN sales s ON s.product_id = p.id AND s.created_at >= $1
	WHERE p.stock > 0
	GROUP BY p.id, p.name, p.stock`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("report.GetSalesVelocity: %w", err)
	}
	defer rows.Close()

	results := []repository.ProductVelocityResult{}
	for rows.Next() {
		var row repository.ProductVelocityResult
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Stock, &row.Sold); err != nil {
			return nil, fmt.Errorf("report.GetSalesVelocity scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetDailyIncome agrupa el ingreso de ventas por día calendario dentro de
// [start, end). Solo devuelve los días con ventas; el caso de uso completa
// con ceros los días faltantes de la serie.
func (r *ReportRepo) GetDailyIncome(ctx context.Context, start, end time.Time) ([]repository.DailyIncomeResult, error) {
	const query = `
	SELECT
	    date_trunc('day', created_at)          AS day,
	    COALESCE(SUM(quantity * price), 0)     AS income
	FROM sales
	WHERE created_at >= $1 AND created_at < $2
	GROUP BY day
	ORDER BY day ASC`

	rows, err := r.pool.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("report.GetDailyIncome: %w", err)
	}
	defer rows.Close()

	results := []repository.DailyIncomeResult{}
	for rows.Next() {
		var row repository.DailyIncomeResult
		if err := rows.Scan(&row.Day, &row.Income); err != nil {
			return nil, fmt.Errorf("report.GetDailyIncome scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetSalesTotalsByDate es la variante del resultado mensual: filtra por el
// campo date (no created_at) en rango cerrado [start, end].
func (r *ReportRepo) GetSalesTotalsByDate(ctx context.Context, start, end time.Time) (repository.SalesTotals, error) {
	const query = `
	SELECT
	    COALESCE(SUM(quantity * price),          0) AS income,
	    COALESCE(SUM(quantity * cost),           0) AS cost,
	    COALESCE(SUM(quantity * (price - cost)), 0) AS margin,
	    COUNT(*)                                    AS sale_count
	FROM sales
	WHERE date >= $1 AND date <= $2`

	var t repository.SalesTotals
	err := r.pool.QueryRow(ctx, query, start, end).
		Scan(&t.Income, &t.Cost, &t.Margin, &t.Count)
	if err != nil {
		return repository.SalesTotals{}, fmt.Errorf("report.GetSalesTotalsByDate: %w", err)
	}
	return t, nil
}

// GetExpenseTotalByDate suma gastos por su campo date en rango cerrado [start, end].
func (r *ReportRepo) GetExpenseTotalByDate(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	const query = `
	SELECT COALESCE(SUM(amount), 0)
	FROM expenses
	WHERE date >= $1 AND date <= $2`

	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, start, end).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("report.GetExpenseTotalByDate: %w", err)
	}
	return total, nil
}

// GetValuationRows devuelve el detalle de valoración por producto (reporte XLSX).
func (r *ReportRepo) GetValuationRows(ctx context.Context) ([]repository.ValuationRow, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    c.name AS category_name,
	    p.stock,
	    p.average_cost,
	    p.price
	FROM products p
	JOIN categories c ON c.id = p.category_id
	ORDER BY c.name ASC, p.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report.GetValuationRows: %w", err)
	}
	defer rows.Close()

	results := []repository.ValuationRow{}
	for rows.Next() {
		var row repository.ValuationRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.CategoryName,
			&row.Stock, &row.AverageCost, &row.Price); err != nil {
			return nil, fmt.Errorf("report.GetValuationRows scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
