package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/komisi/internal/numcmp"
)

type Currency struct {
	Code      string    `json:"code" gorm:"type:char(3);primaryKey;column:code"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Symbol    *string   `json:"symbol,omitempty" gorm:"type:text"`
	MinorUnit int16     `json:"minor_unit" gorm:"type:smallint;not null"`
	IsActive  bool      `json:"is_active,omitempty" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at,omitempty" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Currency) TableName() string { return "currencies" }

// Rounding returns the currency's smallest representable increment,
// e.g. 0.01 for a minor unit of 2.
func (c Currency) Rounding() decimal.Decimal {
	return decimal.New(1, -int32(c.MinorUnit))
}

// IsZero reports whether the amount rounds to zero at the currency precision.
func (c Currency) IsZero(amount decimal.Decimal) bool {
	return numcmp.RoundToIncrement(amount, c.Rounding()).IsZero()
}

// EqualAmounts reports whether two amounts are equal within the currency's
// zero tolerance.
func (c Currency) EqualAmounts(a, b decimal.Decimal) bool {
	return c.IsZero(a.Sub(b))
}
