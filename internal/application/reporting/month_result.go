package reporting

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// MonthResultUseCase resultado financiero de un mes calendario.
type MonthResultUseCase struct {
	reportRepo repository.ReportRepository
}

// NewMonthResultUseCase construye el caso de uso.
func NewMonthResultUseCase(reportRepo repository.ReportRepository) *MonthResultUseCase {
	return &MonthResultUseCase{reportRepo: reportRepo}
}

// Get calcula el resultado del mes que queda `offset` meses atrás de hoy
// (0 = mes en curso). Ventas y gastos se filtran por su campo date (no
// created_at) dentro del rango cerrado del mes.
func (uc *MonthResultUseCase) Get(ctx context.Context, offset int) (*dto.MonthResultDTO, error) {
	if offset < 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.getAt(ctx, time.Now(), offset)
}

func (uc *MonthResultUseCase) getAt(ctx context.Context, now time.Time, offset int) (*dto.MonthResultDTO, error) {
	start, end := MonthBounds(now, offset)

	totals, err := uc.reportRepo.GetSalesTotalsByDate(ctx, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.reportRepo.GetExpenseTotalByDate(ctx, start, end)
	if err != nil {
		return nil, err
	}

	grossProfit := totals.Income.Sub(totals.Cost)
	return &dto.MonthResultDTO{
		Year:        start.Year(),
		Month:       int(start.Month()),
		Label:       MonthLabel(start),
		Start:       start,
		End:         end,
		Offset:      offset,
		Income:      totals.Income.Round(2),
		Cost:        totals.Cost.Round(2),
		Expenses:    expenses.Round(2),
		GrossProfit: grossProfit.Round(2),
		NetProfit:   grossProfit.Sub(expenses).Round(2),
	}, nil
}
