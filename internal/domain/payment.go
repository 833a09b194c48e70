package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentApproved PaymentStatus = "APPROVED"
)

// Payment records the capture for a booking. There is no gateway call;
// the row is written already approved together with the booking.
type Payment struct {
	ID           int64           `json:"id" gorm:"column:id;primaryKey"`
	BookingID    int64           `json:"booking_id" gorm:"column:booking_id;index;not null"`
	Status       PaymentStatus   `json:"status" gorm:"column:status;not null"`
	Provider     string          `json:"provider,omitempty" gorm:"column:provider"`
	ProviderTxID string          `json:"provider_tx_id,omitempty" gorm:"column:provider_tx_id"`
	Amount       decimal.Decimal `json:"amount" gorm:"column:amount;type:numeric(12,2);not null"`
	Currency     string          `json:"currency" gorm:"column:currency;size:3;not null"`
	ApprovedAt   *time.Time      `json:"approved_at,omitempty" gorm:"column:approved_at"`
	CreatedAt    time.Time       `json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
