package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una entrada de stock (compra a proveedor).
type Purchase struct {
	ID        string
	Date      time.Time // fecha efectiva (por defecto, el momento del registro)
	Supplier  string
	ProductID string
	Quantity  int64           // siempre > 0
	Cost      decimal.Decimal // costo unitario de adquisición
	CreatedAt time.Time
}

// Total devuelve el costo total de la compra (cantidad × costo unitario).
func (p Purchase) Total() decimal.Decimal {
	return decimal.NewFromInt(p.Quantity).Mul(p.Cost)
}
