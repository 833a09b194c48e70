package policy

import (
	"context"

	"campground/internal/domain"
)

type PolicyRepository interface {
	Activate(ctx context.Context, campID int64, ruleJSON []byte) (*domain.RefundPolicyVersion, error)
	ActiveVersion(ctx context.Context, campID int64) (*domain.RefundPolicyVersion, error)
	ListByCamp(ctx context.Context, campID int64) ([]domain.RefundPolicyVersion, error)
}

type CampRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Camp, error)
}
