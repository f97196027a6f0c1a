package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest cuerpo de POST /api/expenses.
type CreateExpenseRequest struct {
	Date        *time.Time      `json:"date,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// UpdateExpenseRequest cuerpo de PUT /api/expenses/:id.
type UpdateExpenseRequest struct {
	Date        *time.Time      `json:"date,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ExpenseResponse representación HTTP de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ExpenseListResponse respuesta de GET /api/expenses.
type ExpenseListResponse struct {
	Items []ExpenseResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
