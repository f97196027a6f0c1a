package reporting

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

const (
	projectionHorizonDays = 365
	projectionLimit       = 10
)

// ProjectionUseCase proyección de agotamiento de stock por producto.
//
// Extrapolación lineal: con las unidades vendidas en los últimos 365 días se
// estima días-por-unidad y de ahí los días hasta agotar el stock actual. No
// contempla estacionalidad; es una limitación conocida del modelo, no un bug.
type ProjectionUseCase struct {
	reportRepo repository.ReportRepository
}

// NewProjectionUseCase construye el caso de uso.
func NewProjectionUseCase(reportRepo repository.ReportRepository) *ProjectionUseCase {
	return &ProjectionUseCase{reportRepo: reportRepo}
}

// List devuelve los productos con agotamiento proyectado más próximo
// (ascendente por días restantes, hasta projectionLimit).
func (uc *ProjectionUseCase) List(ctx context.Context) ([]dto.RunoutProjectionDTO, error) {
	since := time.Now().AddDate(0, 0, -projectionHorizonDays)
	rows, err := uc.reportRepo.GetSalesVelocity(ctx, since)
	if err != nil {
		return nil, err
	}
	return BuildRunoutProjection(rows, projectionLimit), nil
}

// BuildRunoutProjection calcula la proyección sobre filas de velocidad de
// venta. Productos sin ventas en el horizonte quedan fuera (proyección
// indefinida, no cero).
//
//	daysPerUnit  = 365 / vendidas365
//	daysToRunout = stock × daysPerUnit
func BuildRunoutProjection(rows []repository.ProductVelocityResult, limit int) []dto.RunoutProjectionDTO {
	horizon := decimal.NewFromInt(projectionHorizonDays)

	projections := make([]dto.RunoutProjectionDTO, 0, len(rows))
	for _, row := range rows {
		if row.Sold <= 0 || row.Stock <= 0 {
			continue
		}
		daysPerUnit := horizon.Div(decimal.NewFromInt(row.Sold))
		projections = append(projections, dto.RunoutProjectionDTO{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			Stock:        row.Stock,
			SoldLast365:  row.Sold,
			DaysPerUnit:  daysPerUnit.Round(2),
			DaysToRunout: daysPerUnit.Mul(decimal.NewFromInt(row.Stock)).Round(2),
		})
	}

	// Agotamiento más próximo primero; empates por nombre para un orden estable
	sort.SliceStable(projections, func(i, j int) bool {
		if !projections[i].DaysToRunout.Equal(projections[j].DaysToRunout) {
			return projections[i].DaysToRunout.LessThan(projections[j].DaysToRunout)
		}
		return projections[i].ProductName < projections[j].ProductName
	})

	if len(projections) > limit {
		projections = projections[:limit]
	}
	return projections
}
