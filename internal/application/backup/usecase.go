// Package backup exporta e importa instantáneas completas del libro en JSON.
//
// La exportación es una lectura de las cinco colecciones; la importación
// reinserta cada registro por su clave primaria dentro de una transacción, en
// orden de dependencias (categorías → productos → compras → ventas → gastos)
// y SIN pasar por el motor de valoración: stock y average_cost viajan tal
// cual dentro de los productos del documento.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// BackupUseCase exportación e importación de respaldos.
type BackupUseCase struct {
	txRunner     TxRunner
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	saleRepo     repository.SaleRepository
	expenseRepo  repository.ExpenseRepository
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(
	txRunner TxRunner,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	expenseRepo repository.ExpenseRepository,
) *BackupUseCase {
	return &BackupUseCase{
		txRunner:     txRunner,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
	}
}

// Export arma el documento de respaldo con todas las colecciones.
func (uc *BackupUseCase) Export(ctx context.Context) (*dto.BackupDocument, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("backup: exportar categorías: %w", err)
	}
	products, err := uc.productRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("backup: exportar productos: %w", err)
	}
	purchases, err := uc.purchaseRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("backup: exportar compras: %w", err)
	}
	sales, err := uc.saleRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("backup: exportar ventas: %w", err)
	}
	expenses, err := uc.expenseRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("backup: exportar gastos: %w", err)
	}

	doc := &dto.BackupDocument{
		ExportedAt:    time.Now().UTC(),
		SchemaVersion: dto.BackupSchemaVersion,
		Categories:    make([]dto.BackupCategory, 0, len(categories)),
		Products:      make([]dto.BackupProduct, 0, len(products)),
		Purchases:     make([]dto.BackupPurchase, 0, len(purchases)),
		Sales:         make([]dto.BackupSale, 0, len(sales)),
		Expenses:      make([]dto.BackupExpense, 0, len(expenses)),
	}
	for _, c := range categories {
		doc.Categories = append(doc.Categories, dto.BackupCategory{
			ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt,
		})
	}
	for _, p := range products {
		doc.Products = append(doc.Products, dto.BackupProduct{
			ID:          p.ID,
			CategoryID:  p.CategoryID,
			Name:        p.Name,
			Description: p.Description,
			Stock:       p.Stock,
			Price:       p.Price,
			AverageCost: p.AverageCost,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		})
	}
	for _, p := range purchases {
		doc.Purchases = append(doc.Purchases, dto.BackupPurchase{
			ID:        p.ID,
			Date:      p.Date,
			Supplier:  p.Supplier,
			ProductID: p.ProductID,
			Quantity:  p.Quantity,
			Cost:      p.Cost,
			CreatedAt: p.CreatedAt,
		})
	}
	for _, s := range sales {
		doc.Sales = append(doc.Sales, dto.BackupSale{
			ID:        s.ID,
			Date:      s.Date,
			Customer:  s.Customer,
			ProductID: s.ProductID,
			Quantity:  s.Quantity,
			Price:     s.Price,
			Cost:      s.Cost,
			CreatedAt: s.CreatedAt,
		})
	}
	for _, e := range expenses {
		doc.Expenses = append(doc.Expenses, dto.BackupExpense{
			ID:          e.ID,
			Date:        e.Date,
			Amount:      e.Amount,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		})
	}
	doc.RecordCount = len(doc.Categories) + len(doc.Products) +
		len(doc.Purchases) + len(doc.Sales) + len(doc.Expenses)
	return doc, nil
}

// Import restaura un respaldo desde su representación JSON. Si el payload no
// parsea o la versión de esquema no coincide no se escribe nada.
func (uc *BackupUseCase) Import(ctx context.Context, payload []byte) (*dto.ImportSummary, error) {
	var doc dto.BackupDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("%w: respaldo malformado: %v", domain.ErrInvalidInput, err)
	}
	if doc.SchemaVersion != dto.BackupSchemaVersion {
		return nil, fmt.Errorf("%w: versión de esquema %d no soportada", domain.ErrInvalidInput, doc.SchemaVersion)
	}
	return uc.ImportDocument(ctx, &doc)
}

// ImportDocument reinserta el documento completo en una transacción, en orden
// de dependencias. No recalcula nada: los campos derivados de producto entran
// tal cual vienen en el respaldo.
func (uc *BackupUseCase) ImportDocument(ctx context.Context, doc *dto.BackupDocument) (*dto.ImportSummary, error) {
	err := uc.txRunner.RunImport(ctx, func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
		expenseRepo repository.ExpenseRepository,
	) error {
		for _, c := range doc.Categories {
			category := &entity.Category{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
			if err := categoryRepo.Create(ctx, category); err != nil {
				return fmt.Errorf("importar categoría %s: %w", c.ID, err)
			}
		}
		for _, p := range doc.Products {
			product := &entity.Product{
				ID:          p.ID,
				CategoryID:  p.CategoryID,
				Name:        p.Name,
				Description: p.Description,
				Stock:       p.Stock,
				Price:       p.Price,
				AverageCost: p.AverageCost,
				CreatedAt:   p.CreatedAt,
				UpdatedAt:   p.UpdatedAt,
			}
			if err := productRepo.Create(ctx, product); err != nil {
				return fmt.Errorf("importar producto %s: %w", p.ID, err)
			}
		}
		for _, p := range doc.Purchases {
			purchase := &entity.Purchase{
				ID:        p.ID,
				Date:      p.Date,
				Supplier:  p.Supplier,
				ProductID: p.ProductID,
				Quantity:  p.Quantity,
				Cost:      p.Cost,
				CreatedAt: p.CreatedAt,
			}
			if err := purchaseRepo.Create(ctx, purchase); err != nil {
				return fmt.Errorf("importar compra %s: %w", p.ID, err)
			}
		}
		for _, s := range doc.Sales {
			sale := &entity.Sale{
				ID:        s.ID,
				Date:      s.Date,
				Customer:  s.Customer,
				ProductID: s.ProductID,
				Quantity:  s.Quantity,
				Price:     s.Price,
				Cost:      s.Cost,
				CreatedAt: s.CreatedAt,
			}
			if err := saleRepo.Create(ctx, sale); err != nil {
				return fmt.Errorf("importar venta %s: %w", s.ID, err)
			}
		}
		for _, e := range doc.Expenses {
			expense := &entity.Expense{
				ID:          e.ID,
				Date:        e.Date,
				Amount:      e.Amount,
				Description: e.Description,
				CreatedAt:   e.CreatedAt,
			}
			if err := expenseRepo.Create(ctx, expense); err != nil {
				return fmt.Errorf("importar gasto %s: %w", e.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary := &dto.ImportSummary{
		Categories: len(doc.Categories),
		Products:   len(doc.Products),
		Purchases:  len(doc.Purchases),
		Sales:      len(doc.Sales),
		Expenses:   len(doc.Expenses),
	}
	summary.Total = summary.Categories + summary.Products + summary.Purchases +
		summary.Sales + summary.Expenses
	return summary, nil
}
