package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest cuerpo de POST /api/sales.
// Precio y costo no se aceptan: se congelan desde el producto al registrar.
type CreateSaleRequest struct {
	ProductID string     `json:"product_id"`
	Customer  string     `json:"customer"`
	Quantity  int64      `json:"quantity"`
	Date      *time.Time `json:"date,omitempty"`
}

// SaleResponse representación HTTP de una venta.
type SaleResponse struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Customer  string          `json:"customer"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaleListResponse respuesta de GET /api/sales.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
