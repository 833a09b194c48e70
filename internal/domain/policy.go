package domain

import "time"

// RefundPolicyVersion is an immutable, versioned refund-rule document.
// At most one version per camp is active at any instant; activating a new
// version deactivates the previous one in the same transaction.
type RefundPolicyVersion struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	CampID    int64     `json:"camp_id" gorm:"column:camp_id;uniqueIndex:uq_refund_policy_camp_version;not null"`
	Version   int       `json:"version" gorm:"column:version;uniqueIndex:uq_refund_policy_camp_version;not null"`
	IsActive  bool      `json:"is_active" gorm:"column:is_active;not null;default:true"`
	RuleJSON  string    `json:"rule_json" gorm:"column:rule_json;type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (RefundPolicyVersion) TableName() string { return "refund_policy_versions" }
