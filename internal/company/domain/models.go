package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Company is a legal entity issuing sales documents. Commission amounts are
// compared at the precision of the company currency.
type Company struct {
	ID           snowflake.ID `json:"id" gorm:"primaryKey"`
	Name         string       `json:"name" gorm:"type:text;not null"`
	CurrencyCode string       `json:"currency_code" gorm:"type:char(3);not null"`
	CreatedAt    time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Company) TableName() string { return "companies" }
