package loan

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cobramax/backend/internal/domain/client"
)

type Status string

const (
	StatusActive    Status = "ACTIVO"
	StatusCancelled Status = "CANCELADO"
	StatusPaid      Status = "PAGADO"
)

type FundingChannel string

const (
	ChannelCash     FundingChannel = "EFECTIVO"
	ChannelTransfer FundingChannel = "TRANSFERENCIA"
)

type InsuranceType string

const (
	InsuranceNone       InsuranceType = "NINGUNO"
	InsuranceFixed      InsuranceType = "MONTO_FIJO"
	InsurancePercentage InsuranceType = "PORCENTAJE"
)

var ErrClientNotFound = errors.New("client not found")
var ErrNotFound = errors.New("loan not found")

// ValidationError carries the failing field so handlers can return a
// message per field instead of a blanket rejection.
type ValidationError struct {
	Field   string `json:"campo"`
	Message string `json:"mensaje"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

type Payment struct {
	ID     string          `json:"id"`
	LoanID string          `json:"prestamoId"`
	Amount decimal.Decimal `json:"monto"`
	Date   time.Time       `json:"fecha"`
	Notes  string          `json:"observaciones,omitempty"`

	// Loan is attached by range queries so the late-fee accumulator and
	// the visit classifier can reach maturity dates and owning clients.
	Loan *Entity `json:"-"`
}

type Entity struct {
	ID               string          `json:"id"`
	ClientID         string          `json:"clienteId"`
	CollectorID      string          `json:"userId"`
	Principal        decimal.Decimal `json:"monto"`
	InterestRate     decimal.Decimal `json:"interes"`
	InterestAmount   decimal.Decimal `json:"interesTotal"`
	Installments     int32           `json:"cuotas"`
	InstallmentValue decimal.Decimal `json:"valorCuota"`
	Frequency        PaymentFrequency `json:"tipoPago"`
	Channel          FundingChannel  `json:"tipoCredito"`
	StartDate        time.Time       `json:"fechaInicio"`
	MaturityDate     time.Time       `json:"fechaFin"`
	Status           Status          `json:"estado"`
	GraceDays        int32           `json:"diasGracia"`
	LateFeePerDay    decimal.Decimal `json:"moraCredito"`
	InsuranceKind    InsuranceType   `json:"microseguroTipo"`
	InsuranceValue   decimal.Decimal `json:"microseguroValor"`
	InsuranceTotal   decimal.Decimal `json:"microseguroTotal"`
	Notes            string          `json:"observaciones,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`

	Client   *client.Entity `json:"cliente,omitempty"`
	Payments []Payment      `json:"-"` // ordered most-recent-first
}

type CreateInput struct {
	ClientID         string
	CollectorID      string
	Principal        decimal.Decimal
	InterestRate     decimal.Decimal
	InterestAmount   decimal.Decimal
	Installments     int32
	InstallmentValue decimal.Decimal
	Frequency        PaymentFrequency
	Channel          FundingChannel
	StartDate        time.Time
	MaturityDate     time.Time
	GraceDays        int32
	LateFeePerDay    decimal.Decimal
	InsuranceKind    InsuranceType
	InsuranceValue   decimal.Decimal
	InsuranceTotal   decimal.Decimal
	Notes            string
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*Entity, error)
	GetByID(ctx context.Context, id string) (*Entity, error)
	// ListActive returns loans in ACTIVO state with client and payments
	// (payments ordered most-recent-first) attached.
	ListActive(ctx context.Context) ([]Entity, error)
	// ListCreatedBetween returns loans created inside the window with
	// their client attached.
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]Entity, error)
	// CountByClient returns the all-time loan count per client id,
	// regardless of state. Feeds the renewal classifier.
	CountByClient(ctx context.Context) (map[string]int64, error)
	CountActiveTransfersCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
}

type PaymentRepository interface {
	// ListBetween returns payments inside the window with owning loan
	// and client attached.
	ListBetween(ctx context.Context, from, to time.Time) ([]Payment, error)
}
