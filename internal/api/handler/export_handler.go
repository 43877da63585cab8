package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DraymeM/tiomi/internal/service"
	"github.com/DraymeM/tiomi/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves spreadsheet downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportTetelek streams the catalog as an xlsx workbook.
// GET /api/v1/export/tetelek
func (h *ExportHandler) ExportTetelek(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportTetelek(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNoTetelek) {
			response.NotFound(c, 12002, "nothing to export")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
