package repository

import (
	"context"

	"gorm.io/gorm"

	"campground/internal/domain"
)

type SiteRepository struct {
	db *gorm.DB
}

func NewSiteRepository(db *gorm.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

func (r *SiteRepository) Create(ctx context.Context, s *domain.Site) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SiteRepository) GetByID(ctx context.Context, id int64) (*domain.Site, error) {
	var s domain.Site
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SiteRepository) ListByCamp(ctx context.Context, campID int64) ([]domain.Site, error) {
	var sites []domain.Site
	err := r.db.WithContext(ctx).
		Where("camp_id = ? AND is_active = ?", campID, true).
		Order("id").
		Find(&sites).Error
	return sites, err
}
