package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edusight/dropsight-backend/internal/response"
	"github.com/edusight/dropsight-backend/internal/service"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ReportHandler handles report download endpoints.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// PDF godoc
// GET /api/v1/students/report/pdf
func (h *ReportHandler) PDF(c *gin.Context) {
	data, err := h.reportService.BuildPDF(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrReportUnavailable)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=student_dropout_report.pdf`)
	c.Data(http.StatusOK, pdfContentType, data)
}

// Excel godoc
// GET /api/v1/students/report/excel
func (h *ReportHandler) Excel(c *gin.Context) {
	data, err := h.reportService.BuildExcel(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrReportUnavailable)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=student_dropout_report.xlsx`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
