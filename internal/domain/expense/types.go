package expense

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Entity is a standalone cash outflow, not tied to any loan.
type Entity struct {
	ID      string          `json:"id"`
	Concept string          `json:"concepto"`
	Amount  decimal.Decimal `json:"monto"`
	Date    time.Time       `json:"fecha"`
	Notes   string          `json:"observaciones,omitempty"`
}

type Repository interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]Entity, error)
}
