package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthResultDTO respuesta de GET /api/reports/month-result.
// El mes se determina retrocediendo `offset` meses calendario desde hoy;
// las ventas y gastos se filtran por su campo date (no created_at) en el
// rango cerrado [Start, End].
type MonthResultDTO struct {
	Year   int       `json:"year"`
	Month  int       `json:"month"`
	Label  string    `json:"label"` // ej: "Febrero 2024"
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Offset int       `json:"offset"`

	Income      decimal.Decimal `json:"income"`
	Cost        decimal.Decimal `json:"cost"`
	Expenses    decimal.Decimal `json:"expenses"`
	GrossProfit decimal.Decimal `json:"gross_profit"` // income − cost
	NetProfit   decimal.Decimal `json:"net_profit"`   // gross_profit − expenses
}

// RunoutListResponse respuesta de GET /api/reports/runout.
type RunoutListResponse struct {
	Items []RunoutProjectionDTO `json:"items"`
}
