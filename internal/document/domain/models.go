// Package domain contains persistence models for the source sales ledger.
// Documents and their lines are read-only to the commission engine.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// DocumentType distinguishes customer invoices from credit notes.
type DocumentType string

const (
	DocumentTypeInvoice    DocumentType = "invoice"
	DocumentTypeCreditNote DocumentType = "credit_note"
)

// DocumentState represents document lifecycle states.
type DocumentState string

const (
	DocumentStateDraft     DocumentState = "draft"
	DocumentStatePosted    DocumentState = "posted"
	DocumentStateCancelled DocumentState = "cancelled"
)

// PaymentState tracks how much of a posted document has been settled.
type PaymentState string

const (
	PaymentStateNotPaid   PaymentState = "not_paid"
	PaymentStateInPayment PaymentState = "in_payment"
	PaymentStatePaid      PaymentState = "paid"
	PaymentStatePartial   PaymentState = "partial"
	PaymentStateReversed  PaymentState = "reversed"
)

// LineKind separates sold-product lines from layout lines.
type LineKind string

const (
	LineKindProduct LineKind = "product"
	LineKindSection LineKind = "section"
	LineKindNote    LineKind = "note"
)

// Document represents a posted or draft sales document.
type Document struct {
	ID            snowflake.ID  `json:"id" gorm:"primaryKey"`
	Number        string        `json:"number" gorm:"type:text;not null"`
	Type          DocumentType  `json:"type" gorm:"column:doc_type;type:text;not null"`
	State         DocumentState `json:"state" gorm:"type:text;not null;default:'draft'"`
	PaymentState  PaymentState  `json:"payment_state" gorm:"type:text;not null;default:'not_paid'"`
	SalespersonID *snowflake.ID `json:"salesperson_id,omitempty" gorm:"index"`
	CompanyID     snowflake.ID  `json:"company_id" gorm:"not null;index"`
	CurrencyCode  string        `json:"currency_code" gorm:"type:char(3);not null"`
	IssuedAt      *time.Time    `json:"issued_at,omitempty" gorm:""`
	CreatedAt     time.Time     `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time     `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Document) TableName() string { return "documents" }

// DocumentLine represents one line on a document.
type DocumentLine struct {
	ID          snowflake.ID    `json:"id" gorm:"primaryKey"`
	DocumentID  snowflake.ID    `json:"document_id" gorm:"not null;index"`
	ProductID   *snowflake.ID   `json:"product_id,omitempty" gorm:"index"`
	Kind        LineKind        `json:"kind" gorm:"type:text;not null;default:'product'"`
	Description string          `json:"description" gorm:"type:text"`
	Quantity    decimal.Decimal `json:"quantity" gorm:"type:numeric(16,6);not null;default:0"`
	Subtotal    decimal.Decimal `json:"subtotal" gorm:"type:numeric(16,4);not null;default:0"`
	UomID       *snowflake.ID   `json:"uom_id,omitempty" gorm:""`
	CreatedAt   time.Time       `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (DocumentLine) TableName() string { return "document_lines" }

// Uom is a unit of measure carrying a rounding increment for quantity
// comparisons.
type Uom struct {
	ID       snowflake.ID    `json:"id" gorm:"primaryKey"`
	Name     string          `json:"name" gorm:"type:text;not null"`
	Rounding decimal.Decimal `json:"rounding" gorm:"type:numeric(12,6);not null;default:0.01"`
}

func (Uom) TableName() string { return "uoms" }
