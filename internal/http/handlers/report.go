package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	reportdomain "github.com/cobramax/backend/internal/domain/report"
)

type ReportService interface {
	Daily(ctx context.Context, collectorID string, date time.Time) (*reportdomain.DailyReport, error)
	ClientVisits(ctx context.Context, date time.Time) (*reportdomain.VisitReport, error)
}

type ReportHandler struct {
	reportService ReportService
	logger        *slog.Logger
	now           func() time.Time
}

func NewReportHandler(reportService ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (h *ReportHandler) Daily(c *gin.Context) {
	date, ok := h.reportDate(c)
	if !ok {
		return
	}

	out, err := h.reportService.Daily(c.Request.Context(), c.GetString("collector_id"), date)
	if err != nil {
		h.logger.Error("daily report failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) ClientVisits(c *gin.Context) {
	date, ok := h.reportDate(c)
	if !ok {
		return
	}

	out, err := h.reportService.ClientVisits(c.Request.Context(), date)
	if err != nil {
		h.logger.Error("client visits report failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) reportDate(c *gin.Context) (time.Time, bool) {
	raw := strings.TrimSpace(c.Query("fecha"))
	if raw == "" {
		return h.now(), true
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha inválida, use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date.UTC(), true
}
