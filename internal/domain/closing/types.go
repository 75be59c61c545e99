package closing

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrAlreadyClosed is returned when a close is attempted for a date
// that already holds a closing row. The existing row is never touched:
// overwriting it would corrupt the opening balance of every later day.
var ErrAlreadyClosed = errors.New("day already closed")

var ErrNotFound = errors.New("closing not found")

// Entity is the once-per-day persisted cash snapshot.
type Entity struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"fecha"`
	OpeningCash decimal.Decimal `json:"saldoInicial"`
	ClosingCash decimal.Decimal `json:"saldoEfectivo"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Statement is the pure projection of a day's cash movement. It exists
// whether or not the day has been closed.
type Statement struct {
	Date        time.Time       `json:"fecha"`
	OpeningCash decimal.Decimal `json:"saldoInicial"`
	Collected   decimal.Decimal `json:"totalCobrado"`
	Lent        decimal.Decimal `json:"totalPrestado"`
	Expenses    decimal.Decimal `json:"totalGastos"`
	ClosingCash decimal.Decimal `json:"saldoEfectivo"`
	Closed      bool            `json:"cerrado"`
	ClosingID   string          `json:"cierreId,omitempty"`
}

type Repository interface {
	// GetByDate returns the closing for the exact calendar date, or
	// ErrNotFound. Dates are compared at day granularity.
	GetByDate(ctx context.Context, date time.Time) (*Entity, error)
	// Create inserts the closing for the date. The storage layer must
	// enforce uniqueness on the date and report a duplicate as
	// ErrAlreadyClosed; a read-then-write check in the service would
	// race between two concurrent close requests.
	Create(ctx context.Context, date time.Time, opening, closingCash decimal.Decimal) (*Entity, error)
}
