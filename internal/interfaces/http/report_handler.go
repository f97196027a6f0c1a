package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/reporting"
)

// ReportHandler expone los reportes: resultado mensual (JSON y PDF),
// proyección de agotamiento y valoración de inventario (XLSX).
type ReportHandler struct {
	monthResultUC *reporting.MonthResultUseCase
	projectionUC  *reporting.ProjectionUseCase
	valuationUC   *reporting.ValuationUseCase
	pdfGenerator  reporting.MonthResultPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(
	monthResultUC *reporting.MonthResultUseCase,
	projectionUC *reporting.ProjectionUseCase,
	valuationUC *reporting.ValuationUseCase,
	pdfGenerator reporting.MonthResultPDFGenerator,
) *ReportHandler {
	return &ReportHandler{
		monthResultUC: monthResultUC,
		projectionUC:  projectionUC,
		valuationUC:   valuationUC,
		pdfGenerator:  pdfGenerator,
	}
}

// MonthResult godoc
// @Summary      Resultado financiero de un mes calendario
// @Tags         reports
// @Produce      json
// @Param        offset  query  int  false  "Meses atrás (0 = mes en curso)"  default(0)
// @Success      200  {object}  dto.MonthResultDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/month-result [get]
func (h *ReportHandler) MonthResult(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	out, err := h.monthResultUC.Get(c.Context(), offset)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// MonthResultPDF godoc
// @Summary      Resultado mensual en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        offset  query  int  false  "Meses atrás (0 = mes en curso)"  default(0)
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/month-result/pdf [get]
func (h *ReportHandler) MonthResultPDF(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	result, err := h.monthResultUC.Get(c.Context(), offset)
	if err != nil {
		return handleError(c, err)
	}
	pdfBytes, err := h.pdfGenerator.GenerateMonthResultPDF(c.Context(), result)
	if err != nil {
		return handleError(c, err)
	}
	filename := fmt.Sprintf("resultado_%04d_%02d.pdf", result.Year, result.Month)
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

// Runout godoc
// @Summary      Proyección de agotamiento de stock
// @Description  Extrapolación lineal sobre las ventas de los últimos 365 días;
// @Description  productos sin ventas en el horizonte quedan fuera.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.RunoutListResponse
// @Router       /api/reports/runout [get]
func (h *ReportHandler) Runout(c *fiber.Ctx) error {
	items, err := h.projectionUC.List(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(dto.RunoutListResponse{Items: items})
}

// ValuationXLSX godoc
// @Summary      Valoración de inventario en XLSX
// @Description  Una fila por producto con stock, costo promedio y valor total.
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/reports/valuation.xlsx [get]
func (h *ReportHandler) ValuationXLSX(c *fiber.Ctx) error {
	xlsxBytes, err := h.valuationUC.ExportXLSX(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="valoracion_inventario.xlsx"`)
	return c.Send(xlsxBytes)
}
