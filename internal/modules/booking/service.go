package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"campground/internal/domain"
	"campground/internal/pkg/refund"
	"campground/internal/repository"
)

type Service struct {
	db       *gorm.DB
	camps    CampRepository
	sites    SiteRepository
	policies PolicyReader
	quotes   Quoter
	bookings BookingReader
}

func NewService(
	db *gorm.DB,
	camps CampRepository,
	sites SiteRepository,
	policies PolicyReader,
	quotes Quoter,
	bookings BookingReader,
) *Service {
	return &Service{
		db:       db,
		camps:    camps,
		sites:    sites,
		policies: policies,
		quotes:   quotes,
		bookings: bookings,
	}
}

type CreateBookingParams struct {
	CustomerID   int64
	CampID       int64
	SiteID       int64
	CheckIn      time.Time
	CheckOut     time.Time
	HeadCount    int
	Provider     string
	ProviderTxID string
}

// CreateBooking reserves the site for every night in [CheckIn, CheckOut).
// The booking row, its night claims and the mock-approved payment are
// written in one transaction; a collision on any (site, night) claim rolls
// the whole attempt back and surfaces as ErrAlreadyReserved. The unique
// index is the only arbiter between racing writers; there is no
// application-level lock.
func (s *Service) CreateBooking(ctx context.Context, p CreateBookingParams) (*domain.Booking, error) {
	if !p.CheckIn.Before(p.CheckOut) {
		return nil, ErrValidation
	}

	camp, err := s.camps.GetByID(ctx, p.CampID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !camp.IsActive {
		return nil, ErrValidation
	}

	site, err := s.sites.GetByID(ctx, p.SiteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !site.IsActive || site.CampID != p.CampID {
		return nil, ErrValidation
	}

	headCount := p.HeadCount
	if headCount == 0 {
		headCount = 1
	}
	if headCount < 1 || headCount > site.Capacity {
		return nil, ErrValidation
	}

	q, err := s.quotes.Quote(ctx, p.SiteID, p.CheckIn, p.CheckOut)
	if err != nil {
		return nil, err
	}

	policy, err := s.policies.ActiveVersion(ctx, p.CampID)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		BookingCode: newBookingCode(),
		CustomerID:  p.CustomerID,
		CampID:      p.CampID,
		SiteID:      p.SiteID,
		HeadCount:   headCount,
		CheckIn:     domain.DateOnly(p.CheckIn),
		CheckOut:    domain.DateOnly(p.CheckOut),
		NightsCount: q.Nights,
		Status:      domain.BookingConfirmed,
		Subtotal:    q.Subtotal,
		Discount:    q.Discount,
		Total:       q.Total,
		Currency:    q.Currency,
	}
	if policy != nil {
		b.RefundPolicyVersionID = &policy.ID
		b.RefundRuleSnapshot = policy.RuleJSON
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(b).Error; err != nil {
			return err
		}

		for d := b.CheckIn; d.Before(b.CheckOut); d = d.AddDate(0, 0, 1) {
			night := domain.BookingNight{
				BookingID: b.ID,
				SiteID:    b.SiteID,
				NightDate: d,
			}
			if err := tx.Create(&night).Error; err != nil {
				if repository.IsUniqueViolation(err, "booking_nights") {
					return ErrAlreadyReserved
				}
				return err
			}
		}

		now := time.Now().UTC()
		payment := domain.Payment{
			BookingID:    b.ID,
			Status:       domain.PaymentApproved,
			Provider:     p.Provider,
			ProviderTxID: p.ProviderTxID,
			Amount:       b.Total,
			Currency:     b.Currency,
			ApprovedAt:   &now,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

// CancelBooking records the cancellation exactly once per idempotency key
// and computes the refund from the policy snapshot frozen at booking time.
//
// The idempotency lookup runs before any other check on purpose: a replay
// must return the original record even though the booking is CANCELLED by
// then. A race between two fresh cancellations with the same key is settled
// by the unique index on the key; the loser rolls back and reads the
// winner's record.
func (s *Service) CancelBooking(ctx context.Context, customerID, bookingID int64, idempotencyKey, reason string, cancelDate time.Time) (*domain.Refund, error) {
	if idempotencyKey == "" {
		return nil, ErrValidation
	}

	var out *domain.Refund
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Refund
		err := tx.Where("idempotency_key = ?", idempotencyKey).First(&existing).Error
		if err == nil {
			out = &existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var b domain.Booking
		if err := tx.First(&b, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if b.CustomerID != customerID {
			return ErrForbidden
		}
		if b.Status != domain.BookingConfirmed || !b.Status.CanTransitionTo(domain.BookingCancelled) {
			return ErrInvalidState
		}
		if len(b.RefundRuleSnapshot) == 0 {
			return ErrInvalidState
		}

		approved, err := refund.Calculate([]byte(b.RefundRuleSnapshot), b.Total, cancelDate, b.CheckIn)
		if err != nil {
			return err
		}

		rec := domain.Refund{
			BookingID:        b.ID,
			IdempotencyKey:   idempotencyKey,
			Status:           domain.RefundApproved,
			RequestedAmount:  b.Total,
			ApprovedAmount:   approved,
			Currency:         b.Currency,
			Reason:           reason,
			ProviderRefundID: "mock-" + idempotencyKey,
		}
		if err := tx.Create(&rec).Error; err != nil {
			if repository.IsUniqueViolation(err, "idempotency_key") {
				return errDuplicateIdempotencyKey
			}
			return err
		}

		now := time.Now().UTC()
		res := tx.Model(&domain.Booking{}).
			Where("id = ?", b.ID).
			Updates(map[string]any{
				"status":              domain.BookingCancelled,
				"cancellation_reason": reason,
				"cancelled_at":        &now,
			})
		if res.Error != nil {
			return res.Error
		}

		if err := tx.Where("booking_id = ?", b.ID).Delete(&domain.BookingNight{}).Error; err != nil {
			return err
		}

		out = &rec
		return nil
	})
	if errors.Is(err, errDuplicateIdempotencyKey) {
		return s.bookings.GetRefundByKey(ctx, idempotencyKey)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, customerID, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.CustomerID != customerID {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) ListMyBookings(ctx context.Context, customerID int64, limit, offset int) ([]repository.CustomerBookingRow, error) {
	return s.bookings.ListByCustomer(ctx, customerID, limit, offset)
}
