package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/reporting"
)

// DashboardHandler expone el resumen financiero del negocio.
type DashboardHandler struct {
	uc *reporting.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *reporting.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen financiero completo del negocio
// @Description  Agregados de ventas por ventana de tiempo, compras y gastos
// @Description  del mes, rankings, niveles de stock, valoración de inventario,
// @Description  proyección de agotamiento y series para gráficos.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
