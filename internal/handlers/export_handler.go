package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExportHandler serves workbooks written by the profile exporter
type ExportHandler struct {
	exporter ProfileExporter
}

func NewExportHandler(exporter ProfileExporter) *ExportHandler {
	return &ExportHandler{exporter: exporter}
}

// DownloadExport handles GET /api/v1/exports/:filename
// @Summary Download Excel export
// @Description Download a previously exported workbook of scraped profiles
// @Tags scrape
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security ApiKeyAuth
// @Param filename path string true "Excel filename"
// @Success 200 {file} binary "Excel file"
// @Failure 404 {object} map[string]interface{} "success: false, error: error message"
// @Router /api/v1/exports/{filename} [get]
func (h *ExportHandler) DownloadExport(c *gin.Context) {
	filename := c.Param("filename")

	filePath, err := h.exporter.ResolveExport(filename)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "File not found",
		})
		return
	}

	// Set headers for file download
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")
	c.Header("Cache-Control", "must-revalidate")
	c.Header("Pragma", "public")

	c.File(filePath)
}
