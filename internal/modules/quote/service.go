package quote

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"campground/internal/domain"
)

// Result is the priced stay. Amounts are frozen onto the booking at
// reservation time; the quote itself persists nothing.
type Result struct {
	Nights   int
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
	Currency string
}

type Service struct {
	sites SiteRepository
}

func NewService(sites SiteRepository) *Service {
	return &Service{sites: sites}
}

func (s *Service) Quote(ctx context.Context, siteID int64, checkIn, checkOut time.Time) (*Result, error) {
	nights := domain.Nights(checkIn, checkOut)
	if nights <= 0 {
		return nil, ErrValidation
	}

	site, err := s.sites.GetByID(ctx, siteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	subtotal := site.BasePrice.Mul(decimal.NewFromInt(int64(nights)))
	discount := decimal.Zero

	return &Result{
		Nights:   nights,
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal.Sub(discount),
		Currency: site.Currency,
	}, nil
}
