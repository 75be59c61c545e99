package loan

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cobramax/backend/internal/domain/client"
	"github.com/cobramax/backend/internal/money"
)

type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*client.Entity, error)
}

type Service struct {
	clients ClientRepository
	loans   Repository
}

func NewService(clients ClientRepository, loans Repository) *Service {
	return &Service{clients: clients, loans: loans}
}

// RawNumber accepts a JSON number or a JSON string holding a number;
// the mobile client sends form values as strings.
type RawNumber string

func (r *RawNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*r = ""
		return nil
	}
	s = strings.Trim(s, `"`)
	*r = RawNumber(s)
	return nil
}

type CreateRequest struct {
	ClienteID        string    `json:"clienteId"`
	Monto            RawNumber `json:"monto"`
	Interes          RawNumber `json:"interes"`
	TipoPago         string    `json:"tipoPago"`
	Cuotas           RawNumber `json:"cuotas"`
	FechaInicio      string    `json:"fechaInicio"`
	Observaciones    string    `json:"observaciones"`
	TipoCredito      string    `json:"tipoCredito"`
	DiasGracia       RawNumber `json:"diasGracia"`
	MoraCredito      RawNumber `json:"moraCredito"`
	MicroseguroTipo  string    `json:"microseguroTipo"`
	MicroseguroValor RawNumber `json:"microseguroValor"`
	MicroseguroTotal RawNumber `json:"microseguroTotal"`
}

// Create validates a new-loan request, derives the financial fields and
// the maturity date, and persists the loan. Validation is fail-fast:
// nothing is written until every check passes.
func (s *Service) Create(ctx context.Context, collectorID string, req CreateRequest) (*Entity, error) {
	if strings.TrimSpace(req.ClienteID) == "" {
		return nil, &ValidationError{Field: "clienteId", Message: "es obligatorio"}
	}
	if strings.TrimSpace(req.FechaInicio) == "" {
		return nil, &ValidationError{Field: "fechaInicio", Message: "es obligatoria"}
	}

	principal, err := requirePositiveDecimal("monto", req.Monto)
	if err != nil {
		return nil, err
	}
	rate, err := requireNonNegativeDecimal("interes", req.Interes)
	if err != nil {
		return nil, err
	}
	installments, err := requirePositiveInt("cuotas", req.Cuotas)
	if err != nil {
		return nil, err
	}
	graceDays, err := optionalNonNegativeInt("diasGracia", req.DiasGracia)
	if err != nil {
		return nil, err
	}
	lateFee, err := optionalNonNegativeDecimal("moraCredito", req.MoraCredito)
	if err != nil {
		return nil, err
	}
	insValue, err := optionalNonNegativeDecimal("microseguroValor", req.MicroseguroValor)
	if err != nil {
		return nil, err
	}
	insTotal, err := optionalNonNegativeDecimal("microseguroTotal", req.MicroseguroTotal)
	if err != nil {
		return nil, err
	}

	frequency := FreqDaily
	if strings.TrimSpace(req.TipoPago) != "" {
		frequency = PaymentFrequency(strings.TrimSpace(req.TipoPago))
	}

	channel := ChannelCash
	if strings.TrimSpace(req.TipoCredito) != "" {
		channel = FundingChannel(strings.TrimSpace(req.TipoCredito))
		if channel != ChannelCash && channel != ChannelTransfer {
			return nil, &ValidationError{Field: "tipoCredito", Message: "valor desconocido"}
		}
	}

	insKind := InsuranceNone
	if strings.TrimSpace(req.MicroseguroTipo) != "" {
		insKind = InsuranceType(strings.TrimSpace(req.MicroseguroTipo))
		if insKind != InsuranceNone && insKind != InsuranceFixed && insKind != InsurancePercentage {
			return nil, &ValidationError{Field: "microseguroTipo", Message: "valor desconocido"}
		}
	}

	startDate, err := parseDate(req.FechaInicio)
	if err != nil {
		return nil, &ValidationError{Field: "fechaInicio", Message: "fecha inválida"}
	}

	if _, err := s.clients.GetByID(ctx, req.ClienteID); err != nil {
		if errors.Is(err, ErrClientNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	interestAmount := money.Percent(principal, rate)
	totalOwed := principal.Add(interestAmount)
	installmentValue := money.Round(totalOwed.Div(decimal.NewFromInt32(installments)))
	maturity := startDate.AddDate(0, 0, int(installments)*DaysPerPeriod(frequency))

	return s.loans.Create(ctx, CreateInput{
		ClientID:         req.ClienteID,
		CollectorID:      collectorID,
		Principal:        principal,
		InterestRate:     rate,
		InterestAmount:   interestAmount,
		Installments:     installments,
		InstallmentValue: installmentValue,
		Frequency:        frequency,
		Channel:          channel,
		StartDate:        startDate,
		MaturityDate:     maturity,
		GraceDays:        graceDays,
		LateFeePerDay:    lateFee,
		InsuranceKind:    insKind,
		InsuranceValue:   insValue,
		InsuranceTotal:   insTotal,
		Notes:            strings.TrimSpace(req.Observaciones),
	})
}

// ListGrouped returns active loans bundled per client, newest activity
// first. withBalance keeps only clients still owing money.
func (s *Service) ListGrouped(ctx context.Context, withBalance bool) ([]ClientBundle, error) {
	loans, err := s.loans.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	bundles := GroupByClient(loans)
	if withBalance {
		bundles = FilterWithBalance(bundles)
	}
	return bundles, nil
}

func parseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func requirePositiveDecimal(field string, raw RawNumber) (decimal.Decimal, error) {
	d, ok, empty := money.Parse(string(raw))
	if empty {
		return decimal.Zero, &ValidationError{Field: field, Message: "es obligatorio"}
	}
	if !ok {
		return decimal.Zero, &ValidationError{Field: field, Message: "no es numérico"}
	}
	if !d.IsPositive() {
		return decimal.Zero, &ValidationError{Field: field, Message: "debe ser mayor que cero"}
	}
	return d, nil
}

func requireNonNegativeDecimal(field string, raw RawNumber) (decimal.Decimal, error) {
	d, ok, empty := money.Parse(string(raw))
	if empty {
		return decimal.Zero, &ValidationError{Field: field, Message: "es obligatorio"}
	}
	if !ok {
		return decimal.Zero, &ValidationError{Field: field, Message: "no es numérico"}
	}
	if d.IsNegative() {
		return decimal.Zero, &ValidationError{Field: field, Message: "no puede ser negativo"}
	}
	return d, nil
}

func optionalNonNegativeDecimal(field string, raw RawNumber) (decimal.Decimal, error) {
	d, ok, empty := money.Parse(string(raw))
	if empty {
		return decimal.Zero, nil
	}
	if !ok {
		return decimal.Zero, &ValidationError{Field: field, Message: "no es numérico"}
	}
	if d.IsNegative() {
		return decimal.Zero, &ValidationError{Field: field, Message: "no puede ser negativo"}
	}
	return d, nil
}

func requirePositiveInt(field string, raw RawNumber) (int32, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return 0, &ValidationError{Field: field, Message: "es obligatorio"}
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: "no es numérico"}
	}
	if n <= 0 {
		return 0, &ValidationError{Field: field, Message: "debe ser mayor que cero"}
	}
	return int32(n), nil
}

func optionalNonNegativeInt(field string, raw RawNumber) (int32, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: "no es numérico"}
	}
	if n < 0 {
		return 0, &ValidationError{Field: field, Message: "no puede ser negativo"}
	}
	return int32(n), nil
}
