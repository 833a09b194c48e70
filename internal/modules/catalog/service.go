package catalog

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"campground/internal/domain"
	"campground/internal/pkg/validator"
	"campground/internal/repository"
)

type CampRepository interface {
	Create(ctx context.Context, c *domain.Camp) error
	GetByID(ctx context.Context, id int64) (*domain.Camp, error)
	ListActive(ctx context.Context) ([]domain.Camp, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Camp, error)
}

type SiteRepository interface {
	Create(ctx context.Context, s *domain.Site) error
	GetByID(ctx context.Context, id int64) (*domain.Site, error)
	ListByCamp(ctx context.Context, campID int64) ([]domain.Site, error)
}

type Service struct {
	camps CampRepository
	sites SiteRepository
}

func NewService(camps CampRepository, sites SiteRepository) *Service {
	return &Service{camps: camps, sites: sites}
}

func (s *Service) CreateCamp(ctx context.Context, ownerID int64, req CreateCampRequest) (*domain.Camp, error) {
	camp := &domain.Camp{
		OwnerID:     ownerID,
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		Description: req.Description,
		IsActive:    true,
	}
	if errs := validator.Validate(camp); errs != nil {
		return nil, ErrValidation
	}
	if err := s.camps.Create(ctx, camp); err != nil {
		return nil, err
	}
	return camp, nil
}

// ListMyCamps returns every camp the owner manages, active or not.
func (s *Service) ListMyCamps(ctx context.Context, ownerID int64) ([]domain.Camp, error) {
	return s.camps.ListByOwner(ctx, ownerID)
}

func (s *Service) CreateSite(ctx context.Context, ownerID, campID int64, req CreateSiteRequest) (*domain.Site, error) {
	camp, err := s.camps.GetByID(ctx, campID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if camp.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	basePrice, err := decimal.NewFromString(req.BasePrice)
	if err != nil || basePrice.IsNegative() {
		return nil, ErrInvalidPrice
	}

	currency := req.Currency
	if currency == "" {
		currency = "KRW"
	}
	capacity := req.Capacity
	if capacity == 0 {
		capacity = 4
	}

	site := &domain.Site{
		CampID:    campID,
		Name:      req.Name,
		BasePrice: basePrice,
		Currency:  currency,
		Capacity:  capacity,
		IsActive:  true,
	}
	if errs := validator.Validate(site); errs != nil {
		return nil, ErrValidation
	}
	if err := s.sites.Create(ctx, site); err != nil {
		if repository.IsUniqueViolation(err, "sites") {
			return nil, ErrDuplicateSite
		}
		return nil, err
	}
	return site, nil
}

func (s *Service) ListCamps(ctx context.Context) ([]domain.Camp, error) {
	return s.camps.ListActive(ctx)
}

func (s *Service) GetCamp(ctx context.Context, id int64) (*domain.Camp, error) {
	camp, err := s.camps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return camp, nil
}

func (s *Service) ListSites(ctx context.Context, campID int64) ([]domain.Site, error) {
	if _, err := s.GetCamp(ctx, campID); err != nil {
		return nil, err
	}
	return s.sites.ListByCamp(ctx, campID)
}
