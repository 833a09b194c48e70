package booking

import (
	"context"
	"time"

	"campground/internal/domain"
	"campground/internal/modules/quote"
	"campground/internal/repository"
)

type CampRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Camp, error)
}

type SiteRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Site, error)
}

// PolicyReader supplies the active refund policy to freeze onto a new
// reservation. It is never consulted on cancellation.
type PolicyReader interface {
	ActiveVersion(ctx context.Context, campID int64) (*domain.RefundPolicyVersion, error)
}

type Quoter interface {
	Quote(ctx context.Context, siteID int64, checkIn, checkOut time.Time) (*quote.Result, error)
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID int64, limit, offset int) ([]repository.CustomerBookingRow, error)
	GetRefundByKey(ctx context.Context, idempotencyKey string) (*domain.Refund, error)
}
