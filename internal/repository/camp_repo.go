package repository

import (
	"context"

	"gorm.io/gorm"

	"campground/internal/domain"
)

type CampRepository struct {
	db *gorm.DB
}

func NewCampRepository(db *gorm.DB) *CampRepository {
	return &CampRepository{db: db}
}

func (r *CampRepository) Create(ctx context.Context, c *domain.Camp) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CampRepository) GetByID(ctx context.Context, id int64) (*domain.Camp, error) {
	var c domain.Camp
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampRepository) ListActive(ctx context.Context) ([]domain.Camp, error) {
	var camps []domain.Camp
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id").
		Find(&camps).Error
	return camps, err
}

func (r *CampRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Camp, error) {
	var camps []domain.Camp
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&camps).Error
	return camps, err
}
