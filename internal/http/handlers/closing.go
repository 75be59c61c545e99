package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	closingdomain "github.com/cobramax/backend/internal/domain/closing"
)

type ClosingService interface {
	Statement(ctx context.Context, date time.Time) (*closingdomain.Statement, error)
	Close(ctx context.Context, date time.Time) (*closingdomain.Entity, error)
}

type ClosingHandler struct {
	closingService ClosingService
	logger         *slog.Logger
	now            func() time.Time
}

func NewClosingHandler(closingService ClosingService, logger *slog.Logger) *ClosingHandler {
	return &ClosingHandler{
		closingService: closingService,
		logger:         logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

type closeDayRequest struct {
	Fecha string `json:"fecha"`
}

// CloseDay persists the day's closing. Closing twice is a conflict,
// never an overwrite.
func (h *ClosingHandler) CloseDay(c *gin.Context) {
	var req closeDayRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cuerpo de solicitud inválido"})
		return
	}

	date := h.now()
	if strings.TrimSpace(req.Fecha) != "" {
		parsed, err := time.Parse("2006-01-02", strings.TrimSpace(req.Fecha))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "fecha inválida, use YYYY-MM-DD"})
			return
		}
		date = parsed.UTC()
	}

	created, err := h.closingService.Close(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, closingdomain.ErrAlreadyClosed) {
			c.JSON(http.StatusConflict, gin.H{"error": "El día ya fue cerrado"})
			return
		}
		h.logger.Error("close day failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetStatement projects a day's cash movement without writing.
func (h *ClosingHandler) GetStatement(c *gin.Context) {
	raw := strings.TrimSpace(c.Param("fecha"))
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fecha inválida, use YYYY-MM-DD"})
		return
	}

	st, err := h.closingService.Statement(c.Request.Context(), date.UTC())
	if err != nil {
		h.logger.Error("day statement failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, st)
}
