package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campground/internal/domain"
)

type RefundPolicyRepository struct {
	db *gorm.DB
}

func NewRefundPolicyRepository(db *gorm.DB) *RefundPolicyRepository {
	return &RefundPolicyRepository{db: db}
}

// Activate deactivates the current active version and inserts the next one
// in a single transaction, so at most one version per camp is ever active.
// Two concurrent activations compute the same next version; the loser hits
// the unique (camp_id, version) index and the transaction is retried.
func (r *RefundPolicyRepository) Activate(ctx context.Context, campID int64, ruleJSON []byte) (*domain.RefundPolicyVersion, error) {
	const maxAttempts = 3

	var created domain.RefundPolicyVersion
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&domain.RefundPolicyVersion{}).
				Where("camp_id = ? AND is_active = ?", campID, true).
				Update("is_active", false)
			if res.Error != nil {
				return res.Error
			}

			var maxVersion int
			if err := tx.Model(&domain.RefundPolicyVersion{}).
				Where("camp_id = ?", campID).
				Select("COALESCE(MAX(version), 0)").
				Scan(&maxVersion).Error; err != nil {
				return err
			}

			created = domain.RefundPolicyVersion{
				CampID:   campID,
				Version:  maxVersion + 1,
				IsActive: true,
				RuleJSON: string(ruleJSON),
			}
			return tx.Create(&created).Error
		})
		if err == nil {
			return &created, nil
		}
		if !IsUniqueViolation(err, "refund_policy") {
			return nil, err
		}
	}
	return nil, err
}

// ActiveVersion returns the currently active version for the camp, or nil
// when the owner has never activated a policy.
func (r *RefundPolicyRepository) ActiveVersion(ctx context.Context, campID int64) (*domain.RefundPolicyVersion, error) {
	var pv domain.RefundPolicyVersion
	err := r.db.WithContext(ctx).
		Where("camp_id = ? AND is_active = ?", campID, true).
		Order("version DESC").
		First(&pv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pv, nil
}

func (r *RefundPolicyRepository) ListByCamp(ctx context.Context, campID int64) ([]domain.RefundPolicyVersion, error) {
	var versions []domain.RefundPolicyVersion
	err := r.db.WithContext(ctx).
		Where("camp_id = ?", campID).
		Order("version DESC").
		Find(&versions).Error
	return versions, err
}
