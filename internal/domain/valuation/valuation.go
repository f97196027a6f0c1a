// Package valuation implementa la regla de costo promedio ponderado
// (moving average cost) del inventario: el costo unitario se recalcula como
// promedio ponderado en cada adquisición; las ventas consumen al promedio
// vigente sin modificarlo.
package valuation

import "github.com/shopspring/decimal"

// AverageCostAfterPurchase devuelve el nuevo costo promedio tras una compra.
// NuevoCosto = ((Stock × CostoPromedio) + (Cantidad × CostoUnitario)) / (Stock + Cantidad)
func AverageCostAfterPurchase(stock int64, avgCost decimal.Decimal, quantity int64, unitCost decimal.Decimal) decimal.Decimal {
	total := stock + quantity
	if total <= 0 {
		return decimal.Zero
	}
	num := decimal.NewFromInt(stock).Mul(avgCost).
		Add(decimal.NewFromInt(quantity).Mul(unitCost))
	return num.Div(decimal.NewFromInt(total))
}

// AverageCostAfterPurchaseReversal devuelve el costo promedio tras eliminar
// una compra. Si el stock restante queda en cero o negativo, la base de costo
// colapsa a 0: el promedio ponderado no es exactamente reversible sin el
// historial completo, así que se asume base vacía.
func AverageCostAfterPurchaseReversal(stock int64, avgCost decimal.Decimal, quantity int64, unitCost decimal.Decimal) decimal.Decimal {
	remaining := stock - quantity
	if remaining <= 0 {
		return decimal.Zero
	}
	num := decimal.NewFromInt(stock).Mul(avgCost).
		Sub(decimal.NewFromInt(quantity).Mul(unitCost))
	return num.Div(decimal.NewFromInt(remaining))
}
