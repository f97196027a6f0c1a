package reporting

import (
	"context"
	"fmt"

	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// ValuationUseCase reporte de valoración de inventario: una fila por producto
// con su stock, costo promedio y valor total, exportado como hoja de cálculo.
type ValuationUseCase struct {
	reportRepo repository.ReportRepository
	exporter   ValuationExporter
}

// NewValuationUseCase construye el caso de uso.
func NewValuationUseCase(reportRepo repository.ReportRepository, exporter ValuationExporter) *ValuationUseCase {
	return &ValuationUseCase{reportRepo: reportRepo, exporter: exporter}
}

// ExportXLSX genera el archivo XLSX del reporte de valoración.
func (uc *ValuationUseCase) ExportXLSX(ctx context.Context) ([]byte, error) {
	rows, err := uc.reportRepo.GetValuationRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("valoración: leer filas: %w", err)
	}
	return uc.exporter.GenerateValuationXLSX(ctx, rows)
}
