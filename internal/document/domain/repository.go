package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EligibleLine is one row of the commission eligibility scan: a sold-product
// line on a posted document, joined with its commission rate and the rounding
// metadata needed by the diff.
type EligibleLine struct {
	LineID         snowflake.ID     `gorm:"column:line_id"`
	DocumentID     snowflake.ID     `gorm:"column:document_id"`
	DocumentType   DocumentType     `gorm:"column:doc_type"`
	ProductID      snowflake.ID     `gorm:"column:product_id"`
	Quantity       decimal.Decimal  `gorm:"column:quantity"`
	Subtotal       decimal.Decimal  `gorm:"column:subtotal"`
	CommissionRate decimal.Decimal  `gorm:"column:commission_rate"`
	SalespersonID  *snowflake.ID    `gorm:"column:salesperson_id"`
	CompanyID      snowflake.ID     `gorm:"column:company_id"`
	UomRounding    *decimal.Decimal `gorm:"column:uom_rounding"`
}

// LineDocument carries the document fields needed to re-validate a line
// before its commission record is deleted.
type LineDocument struct {
	DocumentType DocumentType  `gorm:"column:doc_type"`
	State        DocumentState `gorm:"column:state"`
	PaymentState PaymentState  `gorm:"column:payment_state"`
}

type Repository interface {
	// ListEligibleLines returns every line satisfying the commission
	// eligibility predicate: posted document, product line with a product
	// set, paid invoice or any credit note, product rate > 0.
	ListEligibleLines(ctx context.Context, db *gorm.DB) ([]EligibleLine, error)

	// LineExists reports whether the line is still present in the store.
	LineExists(ctx context.Context, db *gorm.DB, lineID int64) (bool, error)

	// FindLineDocument returns the parent document state for a line, or nil
	// when the line no longer exists.
	FindLineDocument(ctx context.Context, db *gorm.DB, lineID int64) (*LineDocument, error)
}
