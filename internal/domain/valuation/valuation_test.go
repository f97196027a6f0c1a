package valuation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain/valuation"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ──────────────────────────────────────────────────────────────────────────────
// Costo promedio tras compra
// ──────────────────────────────────────────────────────────────────────────────

// Dos compras iguales a costos 5 y 15 deben promediar exactamente 10.
func TestAverageCostAfterPurchase_PromedioDeDosCompras(t *testing.T) {
	// Primera compra: 10 unidades a $5 sobre inventario vacío
	avg := valuation.AverageCostAfterPurchase(0, decimal.Zero, 10, d("5"))
	require.True(t, avg.Equal(d("5")), "sobre inventario vacío el promedio es el costo de la compra")

	// Segunda compra: 10 unidades a $15
	avg = valuation.AverageCostAfterPurchase(10, avg, 10, d("15"))
	assert.True(t, avg.Equal(d("10")), "promedio esperado 10, obtenido %s", avg)
}

// El promedio pondera por cantidades, no es un promedio simple de costos.
func TestAverageCostAfterPurchase_PonderaPorCantidad(t *testing.T) {
	// 30 unidades a $10 en inventario, entran 10 a $30:
	// (30×10 + 10×30) / 40 = 600/40 = 15
	avg := valuation.AverageCostAfterPurchase(30, d("10"), 10, d("30"))
	assert.True(t, avg.Equal(d("15")), "promedio esperado 15, obtenido %s", avg)
}

// Secuencia de compras: el promedio acumula cada entrada correctamente.
func TestAverageCostAfterPurchase_Secuencia(t *testing.T) {
	stock := int64(0)
	avg := decimal.Zero

	compras := []struct {
		qty  int64
		cost string
		want string
	}{
		{10, "100", "100"},
		{5, "130", "110"},  // (10×100 + 5×130) / 15 = 1650/15
		{15, "110", "110"}, // entrar al mismo promedio no lo mueve
	}
	for _, c := range compras {
		avg = valuation.AverageCostAfterPurchase(stock, avg, c.qty, d(c.cost))
		stock += c.qty
		assert.True(t, avg.Equal(d(c.want)),
			"tras comprar %d a %s: promedio esperado %s, obtenido %s", c.qty, c.cost, c.want, avg)
	}
}

// Con stock negativo previo (sobreventa) el divisor puede quedar en cero o
// negativo; el promedio colapsa a cero en vez de dividir por cero.
func TestAverageCostAfterPurchase_DivisorNoPositivo(t *testing.T) {
	avg := valuation.AverageCostAfterPurchase(-5, d("10"), 5, d("20"))
	assert.True(t, avg.IsZero())

	avg = valuation.AverageCostAfterPurchase(-10, d("10"), 5, d("20"))
	assert.True(t, avg.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Reversa de compra
// ──────────────────────────────────────────────────────────────────────────────

// Revertir la última compra deja el promedio exactamente como estaba.
func TestAverageCostAfterPurchaseReversal_EsInversaDeLaCompra(t *testing.T) {
	stock := int64(20)
	avgBefore := d("8")

	// Compra: 10 unidades a $14 → (20×8 + 10×14) / 30 = 300/30 = 10
	avgAfter := valuation.AverageCostAfterPurchase(stock, avgBefore, 10, d("14"))
	require.True(t, avgAfter.Equal(d("10")))

	// Reversa de esa misma compra sobre el nuevo estado
	restored := valuation.AverageCostAfterPurchaseReversal(stock+10, avgAfter, 10, d("14"))
	assert.True(t, restored.Equal(avgBefore),
		"promedio restaurado esperado %s, obtenido %s", avgBefore, restored)
}

// Si la reversa deja el inventario vacío el promedio colapsa a cero.
func TestAverageCostAfterPurchaseReversal_InventarioVacioColapsaACero(t *testing.T) {
	avg := valuation.AverageCostAfterPurchaseReversal(10, d("12"), 10, d("12"))
	assert.True(t, avg.IsZero())
}

// Reversa que dejaría stock negativo también colapsa a cero.
func TestAverageCostAfterPurchaseReversal_StockNegativoColapsaACero(t *testing.T) {
	avg := valuation.AverageCostAfterPurchaseReversal(5, d("12"), 10, d("12"))
	assert.True(t, avg.IsZero())
}
