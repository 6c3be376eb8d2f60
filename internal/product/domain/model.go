package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          snowflake.ID `json:"id" gorm:"primaryKey"`
	Code        string       `json:"code" gorm:"type:text;not null;uniqueIndex:ux_products_code"`
	Name        string       `json:"name" gorm:"type:text;not null"`
	Description *string      `json:"description,omitempty" gorm:"type:text"`
	Active      bool         `json:"active" gorm:"not null;default:true"`

	// CommissionRate is a percentage of the line subtotal credited to the
	// salesperson. Zero or negative disables commission for the product.
	CommissionRate decimal.Decimal `json:"commission_rate" gorm:"type:numeric(8,4);not null;default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }

// Commissionable reports whether sales of the product accrue commission.
func (p Product) Commissionable() bool {
	return p.CommissionRate.Sign() > 0
}
