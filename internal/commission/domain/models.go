// Package domain contains the engine-owned commission ledger models.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// CommissionRecord mirrors one eligible document line. The engine owns the
// full lifecycle; at most one record ever exists per source line.
type CommissionRecord struct {
	ID           snowflake.ID `json:"id" gorm:"primaryKey"`
	SourceLineID snowflake.ID `json:"source_line_id" gorm:"column:source_line_id;not null;uniqueIndex:ux_commission_records_source_line"`

	DocumentID    snowflake.ID  `json:"document_id" gorm:"not null;index"`
	ProductID     snowflake.ID  `json:"product_id" gorm:"not null;index"`
	SalespersonID *snowflake.ID `json:"salesperson_id,omitempty" gorm:"index"`
	CompanyID     snowflake.ID  `json:"company_id" gorm:"not null;index"`

	Quantity       decimal.Decimal `json:"quantity" gorm:"type:numeric(16,6);not null;default:0"`
	CommissionRate decimal.Decimal `json:"commission_rate" gorm:"type:numeric(8,4);not null;default:0"`
	// CommissionAmount is signed: negative for credit notes.
	CommissionAmount decimal.Decimal `json:"commission_amount" gorm:"type:numeric(16,4);not null;default:0"`
	LineSubtotal     decimal.Decimal `json:"line_subtotal" gorm:"type:numeric(16,4);not null;default:0"`

	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (CommissionRecord) TableName() string { return "commission_records" }
