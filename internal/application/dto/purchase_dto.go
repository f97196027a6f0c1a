package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest cuerpo de POST /api/purchases.
// Date es opcional; por defecto se usa el momento del registro.
type CreatePurchaseRequest struct {
	ProductID string          `json:"product_id"`
	Supplier  string          `json:"supplier"`
	Quantity  int64           `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"`
	Date      *time.Time      `json:"date,omitempty"`
}

// PurchaseResponse representación HTTP de una compra.
type PurchaseResponse struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Supplier  string          `json:"supplier"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Cost      decimal.Decimal `json:"cost"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// PurchaseListResponse respuesta de GET /api/purchases.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
