package backup

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// TxRunner ejecuta la importación de un respaldo dentro de una única
// transacción: o entra todo el documento o no entra nada.
type TxRunner interface {
	RunImport(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
		expenseRepo repository.ExpenseRepository,
	) error) error
}
