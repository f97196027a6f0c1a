package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense representa un gasto operativo, independiente del inventario.
// Solo interviene en el cálculo de utilidad neta.
type Expense struct {
	ID          string
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}
