package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/backup"
	"github.com/jhoicas/stock-ledger-api/internal/application/ledger"
	"github.com/jhoicas/stock-ledger-api/internal/application/reporting"
	"github.com/jhoicas/stock-ledger-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC    *usecase.CategoryUseCase
	ProductUC     *usecase.ProductUseCase
	ExpenseUC     *usecase.ExpenseUseCase
	LedgerUC      *ledger.LedgerUseCase
	DashboardUC   *reporting.DashboardUseCase
	MonthResultUC *reporting.MonthResultUseCase
	ProjectionUC  *reporting.ProjectionUseCase
	ValuationUC   *reporting.ValuationUseCase
	PDFGenerator  reporting.MonthResultPDFGenerator
	BackupUC      *backup.BackupUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Purchases (libro: crear y revertir, sin edición)
	purchases := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.LedgerUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Delete("/:id", purchaseHandler.Delete)

	// Sales (libro: crear y revertir, sin edición)
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.LedgerUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Delete("/:id", saleHandler.Delete)

	// Expenses
	expenses := api.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.MonthResultUC, deps.ProjectionUC, deps.ValuationUC, deps.PDFGenerator)
	reports.Get("/month-result", reportHandler.MonthResult)
	reports.Get("/month-result/pdf", reportHandler.MonthResultPDF)
	reports.Get("/runout", reportHandler.Runout)
	reports.Get("/valuation.xlsx", reportHandler.ValuationXLSX)

	// Backup
	backupGroup := api.Group("/backup")
	backupHandler := NewBackupHandler(deps.BackupUC)
	backupGroup.Get("/export", backupHandler.Export)
	backupGroup.Post("/import", backupHandler.Import)
}
