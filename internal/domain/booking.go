package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// CanTransitionTo rejects anything but the forward path
// PENDING -> CONFIRMED -> CANCELLED. CANCELLED is terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingPending:
		return next == BookingConfirmed || next == BookingCancelled
	case BookingConfirmed:
		return next == BookingCancelled
	default:
		return false
	}
}

type Booking struct {
	ID          int64         `json:"id" gorm:"column:id;primaryKey"`
	BookingCode string        `json:"booking_code" gorm:"column:booking_code;uniqueIndex;not null"`
	CustomerID  int64         `json:"customer_id" gorm:"column:customer_id;index;not null"`
	CampID      int64         `json:"camp_id" gorm:"column:camp_id;not null"`
	SiteID      int64         `json:"site_id" gorm:"column:site_id;index;not null"`
	HeadCount   int           `json:"head_count" gorm:"column:head_count;not null;default:1"`
	CheckIn     time.Time     `json:"check_in_date" gorm:"column:check_in_date;not null"`
	CheckOut    time.Time     `json:"check_out_date" gorm:"column:check_out_date;not null"`
	NightsCount int           `json:"nights_count" gorm:"column:nights_count;not null"`
	Status      BookingStatus `json:"status" gorm:"column:status;not null"`

	// Frozen amount snapshot, immutable after creation.
	Subtotal decimal.Decimal `json:"subtotal" gorm:"column:amount_snapshot_subtotal;type:numeric(12,2);not null"`
	Discount decimal.Decimal `json:"discount" gorm:"column:amount_snapshot_discount;type:numeric(12,2);not null"`
	Total    decimal.Decimal `json:"total" gorm:"column:amount_snapshot_total;type:numeric(12,2);not null"`
	Currency string          `json:"currency" gorm:"column:currency;size:3;not null"`

	// Frozen refund policy snapshot. Cancellation reads these, never the
	// live policy table.
	RefundPolicyVersionID *int64 `json:"refund_policy_version_id,omitempty" gorm:"column:refund_policy_version_id"`
	RefundRuleSnapshot    string `json:"-" gorm:"column:refund_rule_snapshot_json;type:text"`

	CancellationReason string     `json:"cancellation_reason,omitempty" gorm:"column:cancellation_reason;type:text"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty" gorm:"column:cancelled_at"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }

// BookingNight claims one site for one calendar date. The composite unique
// index is the only synchronization primitive behind the no-double-booking
// guarantee: the second writer of the same (site, night) loses at commit.
type BookingNight struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	BookingID int64     `json:"booking_id" gorm:"column:booking_id;index;not null"`
	SiteID    int64     `json:"site_id" gorm:"column:site_id;uniqueIndex:uq_booking_nights_site_night;not null"`
	NightDate time.Time `json:"night_date" gorm:"column:night_date;uniqueIndex:uq_booking_nights_site_night;not null"`
}

func (BookingNight) TableName() string { return "booking_nights" }
