package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	loandomain "github.com/cobramax/backend/internal/domain/loan"
)

type LoanService interface {
	Create(ctx context.Context, collectorID string, req loandomain.CreateRequest) (*loandomain.Entity, error)
	ListGrouped(ctx context.Context, withBalance bool) ([]loandomain.ClientBundle, error)
}

type LoanHandler struct {
	loanService LoanService
	logger      *slog.Logger
}

func NewLoanHandler(loanService LoanService, logger *slog.Logger) *LoanHandler {
	return &LoanHandler{loanService: loanService, logger: logger}
}

// ListLoans returns active loans grouped per client, most recent
// activity first. conSaldo=true keeps only clients still owing money.
func (h *LoanHandler) ListLoans(c *gin.Context) {
	withBalance := c.Query("conSaldo") == "true"

	bundles, err := h.loanService.ListGrouped(c.Request.Context(), withBalance)
	if err != nil {
		h.logger.Error("list loans failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}
	c.JSON(http.StatusOK, bundles)
}

func (h *LoanHandler) CreateLoan(c *gin.Context) {
	var req loandomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cuerpo de solicitud inválido"})
		return
	}

	collectorID := c.GetString("collector_id")
	created, err := h.loanService.Create(c.Request.Context(), collectorID, req)
	if err != nil {
		var ve *loandomain.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Field + " " + ve.Message})
		case errors.Is(err, loandomain.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cliente no encontrado"})
		default:
			h.logger.Error("create loan failed", "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Préstamo creado exitosamente",
		"prestamo": created,
	})
}
