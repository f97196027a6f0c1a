package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/backup"
)

// BackupHandler exporta e importa respaldos completos del libro.
type BackupHandler struct {
	uc *backup.BackupUseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar respaldo completo
// @Description  Instantánea JSON de las cinco colecciones con metadatos.
// @Tags         backup
// @Produce      json
// @Success      200  {object}  dto.BackupDocument
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/backup/export [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	doc, err := h.uc.Export(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	filename := "respaldo_" + time.Now().Format("2006-01-02") + ".json"
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.JSON(doc)
}

// Import godoc
// @Summary      Importar respaldo
// @Description  Reinserta el documento completo en una transacción, en orden
// @Description  de dependencias y sin recalcular stock ni costo promedio. Si
// @Description  el payload no parsea no se escribe nada.
// @Tags         backup
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BackupDocument  true  "Documento de respaldo"
// @Success      200   {object}  dto.ImportSummary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/backup/import [post]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	summary, err := h.uc.Import(c.Context(), c.Body())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(summary)
}
