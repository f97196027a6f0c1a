package repository

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// PurchaseRepository puerto de persistencia para compras.
// Las compras no se editan: solo se crean y se eliminan (reversa).
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id string) (*entity.Purchase, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Purchase, error)
	ListAll(ctx context.Context) ([]*entity.Purchase, error)
	Delete(ctx context.Context, id string) error
}
