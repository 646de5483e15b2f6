package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gdugdh24/healthlog-backend/internal/usecase/report"
	"github.com/gin-gonic/gin"
)

type ReportService interface {
	ExportPDF(ctx context.Context, userID int, w io.Writer) error
	ExportCSV(ctx context.Context, userID int, w io.Writer) error
}

type ReportHandler struct {
	reportService ReportService
}

func NewReportHandler(reportService ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// DownloadPDF handles GET /report/pdf
// @Summary Download PDF report
// @Tags report
// @Security BearerAuth
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /report/pdf [get]
func (h *ReportHandler) DownloadPDF(c *gin.Context) {
	h.download(c, "application/pdf", report.PDFFilename, h.reportService.ExportPDF)
}

// DownloadCSV handles GET /report/csv
// @Summary Download CSV report
// @Tags report
// @Security BearerAuth
// @Produce text/csv
// @Success 200 {file} file
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /report/csv [get]
func (h *ReportHandler) DownloadCSV(c *gin.Context) {
	h.download(c, "text/csv; charset=utf-8", report.CSVFilename, h.reportService.ExportCSV)
}

// download renders into memory first so a failed export still gets a JSON error.
func (h *ReportHandler) download(c *gin.Context, contentType, filename string, export func(context.Context, int, io.Writer) error) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var output bytes.Buffer
	if err := export(c.Request.Context(), userID, &output); err != nil {
		respondError(c, err, "failed to generate report")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, output.Bytes())
}
