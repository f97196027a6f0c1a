package reporting

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// MonthResultPDFGenerator puerto de generación del PDF de resultado mensual.
// La implementación vive en infrastructure/pdf.
type MonthResultPDFGenerator interface {
	GenerateMonthResultPDF(ctx context.Context, result *dto.MonthResultDTO) ([]byte, error)
}

// ValuationExporter puerto de exportación del reporte de valoración de
// inventario. La implementación vive en infrastructure/excel.
type ValuationExporter interface {
	GenerateValuationXLSX(ctx context.Context, rows []repository.ValuationRow) ([]byte, error)
}
