package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Camp struct {
	ID          int64     `json:"id" gorm:"column:id;primaryKey"`
	OwnerID     int64     `json:"owner_id" gorm:"column:owner_id;index;not null"`
	Name        string    `json:"name" gorm:"column:name;not null" validate:"required"`
	Address     string    `json:"address,omitempty" gorm:"column:address"`
	Phone       string    `json:"phone,omitempty" gorm:"column:phone"`
	Description string    `json:"description,omitempty" gorm:"column:description;type:text"`
	IsActive    bool      `json:"is_active" gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Camp) TableName() string { return "camps" }

// Site is the bookable unit. Base price is per night.
type Site struct {
	ID        int64           `json:"id" gorm:"column:id;primaryKey"`
	CampID    int64           `json:"camp_id" gorm:"column:camp_id;uniqueIndex:uq_sites_camp_name;not null"`
	Name      string          `json:"name" gorm:"column:name;uniqueIndex:uq_sites_camp_name;not null" validate:"required"`
	BasePrice decimal.Decimal `json:"base_price" gorm:"column:base_price;type:numeric(12,2);not null"`
	Currency  string          `json:"currency" gorm:"column:currency;size:3;not null;default:KRW"`
	Capacity  int             `json:"capacity" gorm:"column:capacity;not null;default:4"`
	IsActive  bool            `json:"is_active" gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Site) TableName() string { return "sites" }
