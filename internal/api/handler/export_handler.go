package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ExportHandler is the placeholder for spreadsheet export of reports.
type ExportHandler struct{}

func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// ReportsExcel handles GET /api/export/reports/excel.
func (h *ExportHandler) ReportsExcel(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Export functionality will be implemented here",
	})
}
