package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RefundStatus string

const (
	RefundApproved RefundStatus = "APPROVED"
)

// Refund is written exactly once per idempotency key; the unique index on
// the key turns a replayed or racing cancellation into a read of this row.
type Refund struct {
	ID               int64           `json:"id" gorm:"column:id;primaryKey"`
	BookingID        int64           `json:"booking_id" gorm:"column:booking_id;index;not null"`
	IdempotencyKey   string          `json:"idempotency_key" gorm:"column:idempotency_key;uniqueIndex:uq_refunds_idempotency_key;not null"`
	Status           RefundStatus    `json:"status" gorm:"column:status;not null"`
	RequestedAmount  decimal.Decimal `json:"requested_amount" gorm:"column:requested_amount;type:numeric(12,2);not null"`
	ApprovedAmount   decimal.Decimal `json:"approved_amount" gorm:"column:approved_amount;type:numeric(12,2);not null"`
	Currency         string          `json:"currency" gorm:"column:currency;size:3;not null"`
	Reason           string          `json:"reason,omitempty" gorm:"column:reason;type:text"`
	ProviderRefundID string          `json:"provider_refund_id,omitempty" gorm:"column:provider_refund_id"`
	CreatedAt        time.Time       `json:"created_at"`
}

func (Refund) TableName() string { return "refunds" }
