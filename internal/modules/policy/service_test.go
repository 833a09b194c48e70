package policy

import (
	"context"
	"fmt"
	"sync"
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

	dsn := fmt.Sprintf("file:policy_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, database.Migrate(db,
		&domain.User{},
		&domain.Camp{},
		&domain.RefundPolicyVersion{},
	))

	svc := NewService(
		repository.NewRefundPolicyRepository(db),
		repository.NewCampRepository(db),
	)
	return db, svc
}

func seedCamp(t *testing.T, db *gorm.DB, ownerID int64) int64 {
	t.Helper()
	camp := domain.Camp{OwnerID: ownerID, Name: "Sunrise Valley", IsActive: true}
	require.NoError(t, db.Create(&camp).Error)
	return camp.ID
}

func TestActivate_VersionsAreMonotonic(t *testing.T) {
	db, svc := setupService(t)
	campID := seedCamp(t, db, 1)

	v1, err := svc.Activate(context.Background(), 1, campID, []byte(`{"rules":[{"daysBefore":7,"refundRate":1.0}]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, v1.Version)
	assert.True(t, v1.IsActive)

	v2, err := svc.Activate(context.Background(), 1, campID, []byte(`{"rules":[{"daysBefore":3,"refundRate":0.5}]}`))
	require.NoError(t, err)
	assert.Equal(t, 2, v2.Version)
	assert.True(t, v2.IsActive)

	// exactly one active version per camp
	var activeCount int64
	require.NoError(t, db.Model(&domain.RefundPolicyVersion{}).
		Where("camp_id = ? AND is_active = ?", campID, true).
		Count(&activeCount).Error)
	assert.EqualValues(t, 1, activeCount)

	active, err := svc.ActiveVersion(context.Background(), campID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, v2.ID, active.ID)
}

func TestActivate_ConcurrentActivationsKeepOneActive(t *testing.T) {
	db, svc := setupService(t)
	campID := seedCamp(t, db, 1)

	const writers = 5
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Activate(context.Background(), 1, campID, []byte(`{"rules":[{"daysBefore":7,"refundRate":1.0}]}`))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	var activeCount int64
	require.NoError(t, db.Model(&domain.RefundPolicyVersion{}).
		Where("camp_id = ? AND is_active = ?", campID, true).
		Count(&activeCount).Error)
	assert.EqualValues(t, 1, activeCount, "concurrent activations must leave one active version")

	// versions are dense and monotonic regardless of interleaving
	var versions []int
	require.NoError(t, db.Model(&domain.RefundPolicyVersion{}).
		Where("camp_id = ?", campID).
		Order("version").
		Pluck("version", &versions).Error)
	require.Len(t, versions, writers)
	for i, v := range versions {
		assert.Equal(t, i+1, v)
	}

	active, err := svc.ActiveVersion(context.Background(), campID)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, writers, active.Version)
}

func TestActivate_RejectsStructurallyInvalidJSON(t *testing.T) {
	db, svc := setupService(t)
	campID := seedCamp(t, db, 1)

	_, err := svc.Activate(context.Background(), 1, campID, []byte(`{"rules": [`))
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestActivate_ToleratesOddButValidJSON(t *testing.T) {
	db, svc := setupService(t)
	campID := seedCamp(t, db, 1)

	// bad field values are the calculator's problem, not activation's
	v, err := svc.Activate(context.Background(), 1, campID, []byte(`{"rules":[{"daysBefore":"soon","refundRate":null}]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, v.Version)
}

func TestActivate_OwnershipEnforced(t *testing.T) {
	db, svc := setupService(t)
	campID := seedCamp(t, db, 1)

	_, err := svc.Activate(context.Background(), 2, campID, []byte(`{"rules":[]}`))
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Activate(context.Background(), 1, 9999, []byte(`{"rules":[]}`))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActiveVersion_NoneActivated(t *testing.T) {
	db, svc := setupService(t)
	campID := seedCamp(t, db, 1)

	active, err := svc.ActiveVersion(context.Background(), campID)
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestListVersions(t *testing.T) {
	db, svc := setupService(t)
	campID := seedCamp(t, db, 1)

	for i := 0; i < 3; i++ {
		_, err := svc.Activate(context.Background(), 1, campID, []byte(`{"rules":[]}`))
		require.NoError(t, err)
	}

	versions, err := svc.ListVersions(context.Background(), 1, campID)
	require.NoError(t, err)
	require.Len(t, versions, 3)
	assert.Equal(t, 3, versions[0].Version)
	assert.Equal(t, 1, versions[2].Version)

	_, err = svc.ListVersions(context.Background(), 2, campID)
	assert.ErrorIs(t, err, ErrForbidden)
}
