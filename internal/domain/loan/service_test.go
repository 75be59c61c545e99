package loan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cobramax/backend/internal/domain/client"
)

type stubClientRepo struct {
	client *client.Entity
	err    error
}

func (s *stubClientRepo) GetByID(ctx context.Context, id string) (*client.Entity, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.client, nil
}

type stubLoanRepo struct {
	created *CreateInput
	active  []Entity
	err     error
}

func (s *stubLoanRepo) Create(ctx context.Context, in CreateInput) (*Entity, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &in
	return &Entity{
		ID:               "loan-1",
		ClientID:         in.ClientID,
		CollectorID:      in.CollectorID,
		Principal:        in.Principal,
		InterestRate:     in.InterestRate,
		InterestAmount:   in.InterestAmount,
		Installments:     in.Installments,
		InstallmentValue: in.InstallmentValue,
		Frequency:        in.Frequency,
		Channel:          in.Channel,
		StartDate:        in.StartDate,
		MaturityDate:     in.MaturityDate,
		Status:           StatusActive,
	}, nil
}

func (s *stubLoanRepo) GetByID(ctx context.Context, id string) (*Entity, error) {
	return nil, ErrNotFound
}

func (s *stubLoanRepo) ListActive(ctx context.Context) ([]Entity, error) {
	return s.active, s.err
}

func (s *stubLoanRepo) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]Entity, error) {
	return nil, nil
}

func (s *stubLoanRepo) CountByClient(ctx context.Context) (map[string]int64, error) {
	return nil, nil
}

func (s *stubLoanRepo) CountActiveTransfersCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return 0, nil
}

func validRequest() CreateRequest {
	return CreateRequest{
		ClienteID:   "c1",
		Monto:       "1000",
		Interes:     "20",
		TipoPago:    "DIARIO",
		Cuotas:      "10",
		FechaInicio: "2024-03-01",
	}
}

func newTestService(clients *stubClientRepo, loans *stubLoanRepo) *Service {
	return NewService(clients, loans)
}

func TestCreateDerivesFinancialFields(t *testing.T) {
	clients := &stubClientRepo{client: &client.Entity{ID: "c1"}}
	loans := &stubLoanRepo{}
	svc := newTestService(clients, loans)

	created, err := svc.Create(context.Background(), "collector-1", validRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	in := loans.created
	if in == nil {
		t.Fatal("repository was not called")
	}
	if !in.InterestAmount.Equal(dec("200")) {
		t.Errorf("InterestAmount = %s, want 200", in.InterestAmount)
	}
	if !in.InstallmentValue.Equal(dec("120")) {
		t.Errorf("InstallmentValue = %s, want 120", in.InstallmentValue)
	}
	if !in.MaturityDate.Equal(day("2024-03-11")) {
		t.Errorf("MaturityDate = %s, want 2024-03-11", in.MaturityDate)
	}
	if in.CollectorID != "collector-1" {
		t.Errorf("CollectorID = %q", in.CollectorID)
	}
	if in.Channel != ChannelCash {
		t.Errorf("Channel = %q, want default EFECTIVO", in.Channel)
	}
	if created.Status != StatusActive {
		t.Errorf("Status = %q, want ACTIVO", created.Status)
	}
}

func TestCreateWeeklyMaturity(t *testing.T) {
	clients := &stubClientRepo{client: &client.Entity{ID: "c1"}}
	loans := &stubLoanRepo{}
	svc := newTestService(clients, loans)

	req := validRequest()
	req.TipoPago = "SEMANAL"
	req.Cuotas = "4"
	if _, err := svc.Create(context.Background(), "u1", req); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !loans.created.MaturityDate.Equal(day("2024-03-29")) {
		t.Errorf("MaturityDate = %s, want 2024-03-29", loans.created.MaturityDate)
	}
}

func TestCreateAcceptsStringOrNumberFields(t *testing.T) {
	clients := &stubClientRepo{client: &client.Entity{ID: "c1"}}
	loans := &stubLoanRepo{}
	svc := newTestService(clients, loans)

	req := validRequest()
	req.Monto = "1500.50"
	req.MoraCredito = "5"
	if _, err := svc.Create(context.Background(), "u1", req); err != nil {
		t.Fatalf("create: %v", err)
	}
	if !loans.created.LateFeePerDay.Equal(dec("5")) {
		t.Errorf("LateFeePerDay = %s, want 5", loans.created.LateFeePerDay)
	}
}

func TestCreateValidationRejectsBeforePersisting(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateRequest)
		field  string
	}{
		{"missing client", func(r *CreateRequest) { r.ClienteID = " " }, "clienteId"},
		{"missing amount", func(r *CreateRequest) { r.Monto = "" }, "monto"},
		{"non numeric amount", func(r *CreateRequest) { r.Monto = "abc" }, "monto"},
		{"zero amount", func(r *CreateRequest) { r.Monto = "0" }, "monto"},
		{"negative interest", func(r *CreateRequest) { r.Interes = "-1" }, "interes"},
		{"zero installments", func(r *CreateRequest) { r.Cuotas = "0" }, "cuotas"},
		{"non numeric installments", func(r *CreateRequest) { r.Cuotas = "diez" }, "cuotas"},
		{"missing start date", func(r *CreateRequest) { r.FechaInicio = "" }, "fechaInicio"},
		{"bad start date", func(r *CreateRequest) { r.FechaInicio = "01/03/2024" }, "fechaInicio"},
		{"unknown channel", func(r *CreateRequest) { r.TipoCredito = "CHEQUE" }, "tipoCredito"},
		{"unknown insurance", func(r *CreateRequest) { r.MicroseguroTipo = "OTRO" }, "microseguroTipo"},
		{"negative grace days", func(r *CreateRequest) { r.DiasGracia = "-3" }, "diasGracia"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clients := &stubClientRepo{client: &client.Entity{ID: "c1"}}
			loans := &stubLoanRepo{}
			svc := newTestService(clients, loans)

			req := validRequest()
			c.mutate(&req)

			_, err := svc.Create(context.Background(), "u1", req)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if ve.Field != c.field {
				t.Errorf("field = %q, want %q", ve.Field, c.field)
			}
			if loans.created != nil {
				t.Error("repository was called despite invalid input")
			}
		})
	}
}

func TestCreateClientNotFound(t *testing.T) {
	clients := &stubClientRepo{err: ErrClientNotFound}
	loans := &stubLoanRepo{}
	svc := newTestService(clients, loans)

	_, err := svc.Create(context.Background(), "u1", validRequest())
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
	if loans.created != nil {
		t.Error("repository was called for unknown client")
	}
}

func TestCreateClientLookupFailurePassesThrough(t *testing.T) {
	lookupErr := errors.New("connection refused")
	clients := &stubClientRepo{err: lookupErr}
	loans := &stubLoanRepo{}
	svc := newTestService(clients, loans)

	// A storage failure is not a missing client; it must reach the
	// handler unchanged so it maps to 500, not 404.
	_, err := svc.Create(context.Background(), "u1", validRequest())
	if errors.Is(err, ErrClientNotFound) {
		t.Fatal("storage failure was reported as ErrClientNotFound")
	}
	if !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup error to pass through, got %v", err)
	}
	if loans.created != nil {
		t.Error("repository was called despite lookup failure")
	}
}

func TestListGroupedWithBalanceFilter(t *testing.T) {
	paidOff := &client.Entity{ID: "c1"}
	owing := &client.Entity{ID: "c2"}
	loans := &stubLoanRepo{active: []Entity{
		{
			ID: "l1", ClientID: "c1", Client: paidOff,
			Principal: dec("100"), InterestRate: dec("0"),
			CreatedAt: day("2024-03-01"),
			Payments:  []Payment{{Amount: dec("100"), Date: day("2024-03-05")}},
		},
		{
			ID: "l2", ClientID: "c2", Client: owing,
			Principal: dec("200"), InterestRate: dec("0"),
			CreatedAt: day("2024-03-02"),
		},
	}}
	svc := newTestService(&stubClientRepo{}, loans)

	all, err := svc.ListGrouped(context.Background(), false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 bundles, got %d", len(all))
	}

	owingOnly, err := svc.ListGrouped(context.Background(), true)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(owingOnly) != 1 || owingOnly[0].Client.ID != "c2" {
		t.Fatalf("expected only c2, got %+v", owingOnly)
	}
}

func TestRawNumberUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want RawNumber
	}{
		{`"1000"`, "1000"},
		{`1000`, "1000"},
		{`12.5`, "12.5"},
		{`null`, ""},
		{`""`, ""},
	}
	for _, c := range cases {
		var r RawNumber
		if err := r.UnmarshalJSON([]byte(c.in)); err != nil {
			t.Fatalf("unmarshal %s: %v", c.in, err)
		}
		if r != c.want {
			t.Errorf("unmarshal %s = %q, want %q", c.in, r, c.want)
		}
	}
}
