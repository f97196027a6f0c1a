package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una salida de stock (venta a cliente).
//
// Price y Cost se congelan al momento de crear la venta con el precio y el
// costo promedio vigentes del producto; cambios posteriores del producto
// no los afectan.
type Sale struct {
	ID        string
	Date      time.Time
	Customer  string
	ProductID string
	Quantity  int64           // siempre > 0
	Price     decimal.Decimal // snapshot de Product.Price al crear
	Cost      decimal.Decimal // snapshot de Product.AverageCost al crear
	CreatedAt time.Time
}

// Total devuelve el ingreso total de la venta (cantidad × precio).
func (s Sale) Total() decimal.Decimal {
	return decimal.NewFromInt(s.Quantity).Mul(s.Price)
}

// Margin devuelve el margen bruto de la venta ((precio − costo) × cantidad).
func (s Sale) Margin() decimal.Decimal {
	return s.Price.Sub(s.Cost).Mul(decimal.NewFromInt(s.Quantity))
}
