package policy

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"campground/internal/domain"
)

type Service struct {
	policies PolicyRepository
	camps    CampRepository
}

func NewService(policies PolicyRepository, camps CampRepository) *Service {
	return &Service{policies: policies, camps: camps}
}

// Activate publishes a new refund-policy version for the camp and makes it
// the single active one. Only structural validity of the rule document is
// checked here; malformed individual rules are tolerated by the refund
// calculator and simply never match.
func (s *Service) Activate(ctx context.Context, ownerID, campID int64, ruleJSON []byte) (*domain.RefundPolicyVersion, error) {
	if !json.Valid(ruleJSON) {
		return nil, ErrInvalidPolicy
	}

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

	return s.policies.Activate(ctx, campID, ruleJSON)
}

// ActiveVersion is consulted only when a reservation is created; the
// version in force is frozen onto the booking and cancellation never reads
// the live table again.
func (s *Service) ActiveVersion(ctx context.Context, campID int64) (*domain.RefundPolicyVersion, error) {
	return s.policies.ActiveVersion(ctx, campID)
}

func (s *Service) ListVersions(ctx context.Context, ownerID, campID int64) ([]domain.RefundPolicyVersion, error) {
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
	return s.policies.ListByCamp(ctx, campID)
}
