package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	loandomain "github.com/cobramax/backend/internal/domain/loan"
)

type stubLoanService struct {
	created *loandomain.Entity
	err     error
	bundles []loandomain.ClientBundle
}

func (s *stubLoanService) Create(ctx context.Context, collectorID string, req loandomain.CreateRequest) (*loandomain.Entity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubLoanService) ListGrouped(ctx context.Context, withBalance bool) ([]loandomain.ClientBundle, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.bundles, nil
}

func newLoanRouter(svc LoanService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewLoanHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	r.GET("/v1/loans", h.ListLoans)
	r.POST("/v1/loans", h.CreateLoan)
	return r
}

func TestCreateLoanValidationError(t *testing.T) {
	svc := &stubLoanService{err: &loandomain.ValidationError{Field: "monto", Message: "es obligatorio"}}
	r := newLoanRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/v1/loans", strings.NewReader(`{"clienteId":"c1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "monto") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestCreateLoanUnknownClient(t *testing.T) {
	svc := &stubLoanService{err: loandomain.ErrClientNotFound}
	r := newLoanRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/v1/loans", strings.NewReader(`{"clienteId":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCreateLoanSuccess(t *testing.T) {
	svc := &stubLoanService{created: &loandomain.Entity{ID: "l1", Status: loandomain.StatusActive}}
	r := newLoanRouter(svc)

	body := `{"clienteId":"c1","monto":"1000","interes":20,"cuotas":10,"fechaInicio":"2024-03-01"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/loans", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Préstamo creado exitosamente") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestListLoansInternalError(t *testing.T) {
	svc := &stubLoanService{err: context.DeadlineExceeded}
	r := newLoanRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/v1/loans", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "deadline") {
		t.Error("internal error detail must not leak to the client")
	}
}
