package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"campground/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

type CustomerBookingRow struct {
	ID          int64     `json:"id" gorm:"column:id"`
	BookingCode string    `json:"booking_code" gorm:"column:booking_code"`
	Status      string    `json:"status" gorm:"column:status"`
	CheckIn     time.Time `json:"check_in_date" gorm:"column:check_in_date"`
	CheckOut    time.Time `json:"check_out_date" gorm:"column:check_out_date"`
	NightsCount int       `json:"nights_count" gorm:"column:nights_count"`
	Total       string    `json:"total" gorm:"column:total"`
	Currency    string    `json:"currency" gorm:"column:currency"`

	SiteID   int64  `json:"site_id" gorm:"column:site_id"`
	SiteName string `json:"site_name" gorm:"column:site_name"`

	CampID   int64  `json:"camp_id" gorm:"column:camp_id"`
	CampName string `json:"camp_name" gorm:"column:camp_name"`
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]CustomerBookingRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var rows []CustomerBookingRow
	q := `
SELECT
  b.id,
  b.booking_code,
  b.status,
  b.check_in_date,
  b.check_out_date,
  b.nights_count,
  b.amount_snapshot_total AS total,
  b.currency,
  b.site_id,
  s.name AS site_name,
  b.camp_id,
  c.name AS camp_name
FROM bookings b
JOIN sites s ON s.id = b.site_id
JOIN camps c ON c.id = b.camp_id
WHERE b.customer_id = ?
ORDER BY b.created_at DESC
LIMIT ? OFFSET ?
`
	tx := r.db.WithContext(ctx).Raw(q, customerID, limit, offset).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// GetRefundByKey is the idempotent-replay read path.
func (r *BookingRepository) GetRefundByKey(ctx context.Context, idempotencyKey string) (*domain.Refund, error) {
	var ref domain.Refund
	if err := r.db.WithContext(ctx).
		Where("idempotency_key = ?", idempotencyKey).
		First(&ref).Error; err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *BookingRepository) CountNightsForSite(ctx context.Context, siteID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.BookingNight{}).
		Where("site_id = ?", siteID).
		Count(&count).Error
	return count, err
}
