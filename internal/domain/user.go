package domain

import "time"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleOwner    Role = "OWNER"
)

func ValidRole(r string) bool {
	return r == string(RoleCustomer) || r == string(RoleOwner)
}

type User struct {
	ID           int64     `json:"id" gorm:"column:id;primaryKey"`
	Email        string    `json:"email" gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         string    `json:"role" gorm:"column:role;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }

// RefreshToken stores only the sha256 hex of the issued token.
type RefreshToken struct {
	ID        int64     `json:"id" gorm:"column:id;primaryKey"`
	UserID    int64     `json:"user_id" gorm:"column:user_id;index;not null"`
	TokenHash string    `json:"-" gorm:"column:token_hash;size:64;uniqueIndex:uq_refresh_tokens_token_hash;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"column:expires_at;not null"`
	Revoked   bool      `json:"revoked" gorm:"column:revoked;not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }
