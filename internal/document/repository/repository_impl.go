package repository

import (
	"context"

	"github.com/smallbiznis/komisi/internal/document/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ListEligibleLines(ctx context.Context, db *gorm.DB) ([]domain.EligibleLine, error) {
	var rows []domain.EligibleLine
	err := db.WithContext(ctx).Raw(
		`SELECT l.id AS line_id,
		        d.id AS document_id,
		        d.doc_type AS doc_type,
		        l.product_id AS product_id,
		        l.quantity AS quantity,
		        l.subtotal AS subtotal,
		        p.commission_rate AS commission_rate,
		        d.salesperson_id AS salesperson_id,
		        d.company_id AS company_id,
		        u.rounding AS uom_rounding
		 FROM document_lines l
		 JOIN documents d ON d.id = l.document_id
		 JOIN products p ON p.id = l.product_id
		 LEFT JOIN uoms u ON u.id = l.uom_id
		 WHERE d.state = ?
		   AND l.kind = ?
		   AND l.product_id IS NOT NULL
		   AND (d.doc_type = ? OR (d.doc_type = ? AND d.payment_state = ?))
		   AND p.commission_rate > 0
		 ORDER BY l.id ASC`,
		domain.DocumentStatePosted,
		domain.LineKindProduct,
		domain.DocumentTypeCreditNote,
		domain.DocumentTypeInvoice,
		domain.PaymentStatePaid,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) LineExists(ctx context.Context, db *gorm.DB, lineID int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(1) FROM document_lines WHERE id = ?`,
		lineID,
	).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repo) FindLineDocument(ctx context.Context, db *gorm.DB, lineID int64) (*domain.LineDocument, error) {
	var row struct {
		LineID       int64                `gorm:"column:line_id"`
		DocumentType domain.DocumentType  `gorm:"column:doc_type"`
		State        domain.DocumentState `gorm:"column:state"`
		PaymentState domain.PaymentState  `gorm:"column:payment_state"`
	}
	err := db.WithContext(ctx).Raw(
		`SELECT l.id AS line_id, d.doc_type AS doc_type, d.state AS state, d.payment_state AS payment_state
		 FROM document_lines l
		 JOIN documents d ON d.id = l.document_id
		 WHERE l.id = ?`,
		lineID,
	).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.LineID == 0 {
		return nil, nil
	}
	return &domain.LineDocument{
		DocumentType: row.DocumentType,
		State:        row.State,
		PaymentState: row.PaymentState,
	}, nil
}
