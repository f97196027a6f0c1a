package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos.
//
// Update nunca escribe Stock ni AverageCost: esos campos son estado derivado
// del libro y solo los modifican UpdateStockAndCost / UpdateStock (motor de
// valoración) o Create durante la importación de un respaldo.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT ... FOR UPDATE) dentro
	// de la transacción en curso. Devuelve (nil, nil) si no existe.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateStockAndCost(ctx context.Context, id string, stock int64, avgCost decimal.Decimal) error
	UpdateStock(ctx context.Context, id string, stock int64) error
	Delete(ctx context.Context, id string) error
}
