// Package ledger implementa el motor de valoración del inventario: registrar
// y revertir compras y ventas manteniendo Product.Stock y Product.AverageCost
// consistentes con el efecto acumulado del libro (costo promedio ponderado).
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
	"github.com/jhoicas/stock-ledger-api/internal/domain/valuation"
)

// LedgerUseCase registra y revierte asientos del libro de forma transaccional,
// con bloqueo de fila del producto (SELECT FOR UPDATE) y Commit/Rollback.
type LedgerUseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseRepository // lecturas fuera de tx
	saleRepo     repository.SaleRepository     // lecturas fuera de tx
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	txRunner TxRunner,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:     txRunner,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
	}
}

// RecordPurchase registra una compra y actualiza la valoración del producto:
//
//	NuevoCosto = ((Stock × CostoPromedio) + (Cantidad × CostoUnitario)) / (Stock + Cantidad)
//	Stock += Cantidad
//
// El producto se persiste antes que la compra: el asiento no es visible hasta
// que la valoración lo refleja.
func (uc *LedgerUseCase) RecordPurchase(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvariantViolation
	}
	if in.Cost.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	purchase := &entity.Purchase{
		ID:        uuid.New().String(),
		Date:      date,
		Supplier:  in.Supplier,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Cost:      in.Cost,
		CreatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.SaleRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newCost := valuation.AverageCostAfterPurchase(product.Stock, product.AverageCost, in.Quantity, in.Cost)
		newStock := product.Stock + in.Quantity

		// Primero el producto, después el asiento
		if err := productRepo.UpdateStockAndCost(ctx, product.ID, newStock, newCost); err != nil {
			return err
		}
		return purchaseRepo.Create(ctx, purchase)
	})
	if err != nil {
		return nil, err
	}
	return purchaseToDTO(purchase), nil
}

// DeletePurchase elimina una compra y revierte su efecto sobre el producto.
// Si el stock restante queda en cero o negativo, la base de costo colapsa a 0
// (el promedio ponderado no es reversible sin historial completo); el stock
// se descuenta incondicionalmente y puede quedar negativo.
func (uc *LedgerUseCase) DeletePurchase(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
		_ repository.SaleRepository,
	) error {
		purchase, err := purchaseRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetForUpdate(ctx, purchase.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		newCost := valuation.AverageCostAfterPurchaseReversal(product.Stock, product.AverageCost, purchase.Quantity, purchase.Cost)
		newStock := product.Stock - purchase.Quantity

		if err := productRepo.UpdateStockAndCost(ctx, product.ID, newStock, newCost); err != nil {
			return err
		}
		return purchaseRepo.Delete(ctx, id)
	})
}

// RecordSale registra una venta congelando precio y costo desde el producto
// y descontando el stock. No hay guarda contra sobreventa: el stock puede
// quedar negativo. El costo promedio no cambia (solo cambia en adquisiciones).
func (uc *LedgerUseCase) RecordSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvariantViolation
	}

	now := time.Now()
	date := now
	if in.Date != nil {
		date = *in.Date
	}
	customer := in.Customer
	if customer == "" {
		customer = "Generic"
	}
	sale := &entity.Sale{
		ID:        uuid.New().String(),
		Date:      date,
		Customer:  customer,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		CreatedAt: now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		// Snapshots congelados al momento de la venta
		sale.Price = product.Price
		sale.Cost = product.AverageCost

		if err := productRepo.UpdateStock(ctx, product.ID, product.Stock-in.Quantity); err != nil {
			return err
		}
		return saleRepo.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	return saleToDTO(sale), nil
}

// DeleteSale elimina una venta devolviendo su cantidad al stock.
// El costo promedio NO se restaura (reversa asimétrica respecto a la compra):
// si hubo compras posteriores con otro costo, la valoración deriva en silencio.
func (uc *LedgerUseCase) DeleteSale(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.PurchaseRepository,
		saleRepo repository.SaleRepository,
	) error {
		sale, err := saleRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		product, err := productRepo.GetForUpdate(ctx, sale.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		if err := productRepo.UpdateStock(ctx, product.ID, product.Stock+sale.Quantity); err != nil {
			return err
		}
		return saleRepo.Delete(ctx, id)
	})
}

// GetPurchase obtiene una compra por ID (nil si no existe).
func (uc *LedgerUseCase) GetPurchase(ctx context.Context, id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, nil
	}
	return purchaseToDTO(purchase), nil
}

// ListPurchases lista compras con paginación.
func (uc *LedgerUseCase) ListPurchases(ctx context.Context, page dto.PageRequest) (*dto.PurchaseListResponse, error) {
	page.DefaultPage()
	purchases, err := uc.purchaseRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		items = append(items, *purchaseToDTO(p))
	}
	return &dto.PurchaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetSale obtiene una venta por ID (nil si no existe).
func (uc *LedgerUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return saleToDTO(sale), nil
}

// ListSales lista ventas con paginación.
func (uc *LedgerUseCase) ListSales(ctx context.Context, page dto.PageRequest) (*dto.SaleListResponse, error) {
	page.DefaultPage()
	sales, err := uc.saleRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *saleToDTO(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func purchaseToDTO(p *entity.Purchase) *dto.PurchaseResponse {
	return &dto.PurchaseResponse{
		ID:        p.ID,
		Date:      p.Date,
		Supplier:  p.Supplier,
		ProductID: p.ProductID,
		Quantity:  p.Quantity,
		Cost:      p.Cost,
		Total:     p.Total(),
		CreatedAt: p.CreatedAt,
	}
}

func saleToDTO(s *entity.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:        s.ID,
		Date:      s.Date,
		Customer:  s.Customer,
		ProductID: s.ProductID,
		Quantity:  s.Quantity,
		Price:     s.Price,
		Cost:      s.Cost,
		Total:     s.Total(),
		CreatedAt: s.CreatedAt,
	}
}
