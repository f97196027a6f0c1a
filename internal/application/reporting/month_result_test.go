package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

func dec(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// offset=1 el 15 de marzo de 2024: el reporte cubre febrero completo y el
// cálculo encadena utilidad bruta y neta.
func TestMonthResult_MesAnterior(t *testing.T) {
	repo := &fakeReportRepo{
		salesTotalsByDate: repository.SalesTotals{
			Income: dec("1000"),
			Cost:   dec("400"),
			Margin: dec("600"),
			Count:  12,
		},
		expenseByDate: dec("100"),
	}
	uc := NewMonthResultUseCase(repo)

	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	out, err := uc.getAt(context.Background(), now, 1)
	require.NoError(t, err)

	assert.Equal(t, 2024, out.Year)
	assert.Equal(t, 2, out.Month)
	assert.Equal(t, "Febrero 2024", out.Label)
	assert.Equal(t, 1, out.Offset)

	// El repositorio recibió los límites de febrero (rango cerrado)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), repo.byDateStart)
	assert.Equal(t, time.February, repo.byDateEnd.Month())
	assert.Equal(t, 29, repo.byDateEnd.Day())

	assert.True(t, out.GrossProfit.Equal(dec("600")), "utilidad bruta = ingresos − costo")
	assert.True(t, out.NetProfit.Equal(dec("500")), "utilidad neta = bruta − gastos")
}

// Un mes con pérdida: la utilidad neta queda negativa, no se recorta a cero.
func TestMonthResult_PerdidaNeta(t *testing.T) {
	repo := &fakeReportRepo{
		salesTotalsByDate: repository.SalesTotals{Income: dec("300"), Cost: dec("250")},
		expenseByDate:     dec("120"),
	}
	uc := NewMonthResultUseCase(repo)

	out, err := uc.getAt(context.Background(), time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), 0)
	require.NoError(t, err)
	assert.True(t, out.NetProfit.Equal(dec("-70")))
}

// Offset negativo se rechaza antes de tocar el repositorio.
func TestMonthResult_OffsetNegativo(t *testing.T) {
	uc := NewMonthResultUseCase(&fakeReportRepo{})
	_, err := uc.Get(context.Background(), -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
