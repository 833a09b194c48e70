package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"campground/internal/database"
	"campground/internal/domain"
	"campground/internal/repository"
)

func setupService(t *testing.T) (*gorm.DB, *Service) {
	t.Helper()

	dsn := fmt.Sprintf("file:catalog_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, database.Migrate(db,
		&domain.User{},
		&domain.Camp{},
		&domain.Site{},
	))

	svc := NewService(
		repository.NewCampRepository(db),
		repository.NewSiteRepository(db),
	)
	return db, svc
}

func TestCreateCamp(t *testing.T) {
	_, svc := setupService(t)

	camp, err := svc.CreateCamp(context.Background(), 1, CreateCampRequest{
		Name:    "Sunrise Valley",
		Address: "12 Valley Road",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), camp.OwnerID)
	assert.True(t, camp.IsActive)

	_, err = svc.CreateCamp(context.Background(), 1, CreateCampRequest{Name: ""})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateSite(t *testing.T) {
	_, svc := setupService(t)

	camp, err := svc.CreateCamp(context.Background(), 1, CreateCampRequest{Name: "Sunrise Valley"})
	require.NoError(t, err)

	t.Run("defaults applied", func(t *testing.T) {
		site, err := svc.CreateSite(context.Background(), 1, camp.ID, CreateSiteRequest{
			Name:      "A-1",
			BasePrice: "100000",
		})
		require.NoError(t, err)
		assert.Equal(t, "KRW", site.Currency)
		assert.Equal(t, 4, site.Capacity)
		assert.Equal(t, "100000.00", site.BasePrice.StringFixed(2))
	})

	t.Run("bad price is a typed error", func(t *testing.T) {
		_, err := svc.CreateSite(context.Background(), 1, camp.ID, CreateSiteRequest{
			Name:      "A-2",
			BasePrice: "not-a-number",
		})
		assert.ErrorIs(t, err, ErrInvalidPrice)

		_, err = svc.CreateSite(context.Background(), 1, camp.ID, CreateSiteRequest{
			Name:      "A-2",
			BasePrice: "-5",
		})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("duplicate name within camp", func(t *testing.T) {
		_, err := svc.CreateSite(context.Background(), 1, camp.ID, CreateSiteRequest{
			Name:      "A-1",
			BasePrice: "100000",
		})
		assert.ErrorIs(t, err, ErrDuplicateSite)
	})

	t.Run("ownership enforced", func(t *testing.T) {
		_, err := svc.CreateSite(context.Background(), 2, camp.ID, CreateSiteRequest{
			Name:      "B-1",
			BasePrice: "100000",
		})
		assert.ErrorIs(t, err, ErrForbidden)

		_, err = svc.CreateSite(context.Background(), 1, 9999, CreateSiteRequest{
			Name:      "B-1",
			BasePrice: "100000",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
