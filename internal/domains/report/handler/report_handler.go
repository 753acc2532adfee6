package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"news-backend/internal/domains/report"
	"news-backend/internal/shared/response"
	"news-backend/pkg/logger"
)

type ReportHandler struct {
	service report.Service
}

func NewReportHandler(svc report.Service) *ReportHandler {
	return &ReportHandler{
		service: svc,
	}
}

func parsePeriod(c *gin.Context) (report.PeriodFilter, bool) {
	var period report.PeriodFilter

	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, "invalid query parameter: from")
			return period, false
		}
		period.From = &t
	}

	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(c, "invalid query parameter: to")
			return period, false
		}
		period.To = &t
	}

	return period, true
}

// ════════════════════════════════════════════════════════════════
// READ: Dashboard - GET /v1/reports/dashboard
// ════════════════════════════════════════════════════════════════

func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		logger.Error("dashboard report failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// ════════════════════════════════════════════════════════════════
// READ: ByCategory - GET /v1/reports/by-category?from=&to=
// ════════════════════════════════════════════════════════════════

func (h *ReportHandler) ByCategory(c *gin.Context) {
	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	stats, err := h.service.ByCategory(c.Request.Context(), period)
	if err != nil {
		logger.Error("by-category report failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// ════════════════════════════════════════════════════════════════
// READ: ByAuthor - GET /v1/reports/by-author?from=&to=
// ════════════════════════════════════════════════════════════════

func (h *ReportHandler) ByAuthor(c *gin.Context) {
	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	stats, err := h.service.ByAuthor(c.Request.Context(), period)
	if err != nil {
		logger.Error("by-author report failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// ════════════════════════════════════════════════════════════════
// READ: Statistics - GET /v1/reports/statistics?from=&to=
// ════════════════════════════════════════════════════════════════

func (h *ReportHandler) Statistics(c *gin.Context) {
	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	stats, err := h.service.Statistics(c.Request.Context(), period)
	if err != nil {
		logger.Error("statistics report failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, stats)
}

// ════════════════════════════════════════════════════════════════
// READ: ExportArticles - GET /v1/reports/export?from=&to=
// ════════════════════════════════════════════════════════════════

func (h *ReportHandler) ExportArticles(c *gin.Context) {
	period, ok := parsePeriod(c)
	if !ok {
		return
	}

	f, err := h.service.ExportArticles(c.Request.Context(), period)
	if err != nil {
		logger.Error("article export failed", err)
		response.InternalServerError(c, "Internal server error")
		return
	}

	filename := fmt.Sprintf("articles_%s.xlsx", time.Now().Format("20060102_150405"))

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	if err := f.Write(c.Writer); err != nil {
		logger.Error("failed to stream excel file", err)
	}
}
