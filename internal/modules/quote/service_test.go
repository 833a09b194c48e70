package quote

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"campground/internal/domain"
)

type MockSiteRepository struct {
	mock.Mock
}

func (m *MockSiteRepository) GetByID(ctx context.Context, id int64) (*domain.Site, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Site), args.Error(1)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestQuote_PricesPerNight(t *testing.T) {
	sites := new(MockSiteRepository)
	sites.On("GetByID", mock.Anything, int64(1)).Return(&domain.Site{
		ID:        1,
		CampID:    1,
		BasePrice: decimal.NewFromInt(100000),
		Currency:  "KRW",
		IsActive:  true,
	}, nil)

	svc := NewService(sites)

	q, err := svc.Quote(context.Background(), 1, date(2026, 9, 18), date(2026, 9, 20))
	require.NoError(t, err)

	assert.Equal(t, 2, q.Nights)
	assert.Equal(t, "200000.00", q.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", q.Discount.StringFixed(2))
	assert.Equal(t, "200000.00", q.Total.StringFixed(2))
	assert.Equal(t, "KRW", q.Currency)

	sites.AssertExpectations(t)
}

func TestQuote_RejectsEmptyStay(t *testing.T) {
	svc := NewService(new(MockSiteRepository))

	_, err := svc.Quote(context.Background(), 1, date(2026, 9, 20), date(2026, 9, 20))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Quote(context.Background(), 1, date(2026, 9, 21), date(2026, 9, 20))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestQuote_SiteNotFound(t *testing.T) {
	sites := new(MockSiteRepository)
	sites.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(sites)

	_, err := svc.Quote(context.Background(), 42, date(2026, 9, 18), date(2026, 9, 20))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQuote_FractionalPriceRounds(t *testing.T) {
	sites := new(MockSiteRepository)
	price, _ := decimal.NewFromString("99999.99")
	sites.On("GetByID", mock.Anything, int64(1)).Return(&domain.Site{
		ID:        1,
		BasePrice: price,
		Currency:  "KRW",
		IsActive:  true,
	}, nil)

	svc := NewService(sites)

	q, err := svc.Quote(context.Background(), 1, date(2026, 9, 17), date(2026, 9, 20))
	require.NoError(t, err)
	assert.Equal(t, 3, q.Nights)
	assert.Equal(t, "299999.97", q.Total.StringFixed(2))
}
