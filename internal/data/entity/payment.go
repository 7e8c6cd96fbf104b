package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "Cash"
	PaymentMethodGCash PaymentMethod = "GCash"
	PaymentMethodCard  PaymentMethod = "Card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodGCash, PaymentMethodCard:
		return true
	}
	return false
}

// Payment rows are append-only: written once when a receipt is generated,
// never updated or deleted.
type Payment struct {
	ID            uuid.UUID       `db:"id"`
	AppointmentID uuid.UUID       `db:"appointment_id"`
	Amount        decimal.Decimal `db:"amount"`
	Method        PaymentMethod   `db:"method"`
	DatePaid      time.Time       `db:"date_paid"`
}
