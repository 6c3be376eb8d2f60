package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/komisi/internal/commission/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

const recordColumns = `id, source_line_id, document_id, product_id, salesperson_id, company_id,
	quantity, commission_rate, commission_amount, line_subtotal, created_at, updated_at`

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.CommissionRecord, error) {
	var records []domain.CommissionRecord
	err := db.WithContext(ctx).Raw(
		`SELECT ` + recordColumns + ` FROM commission_records ORDER BY id ASC`,
	).Scan(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, req domain.ListRequest) ([]domain.CommissionRecord, error) {
	stmt := db.WithContext(ctx).Model(&domain.CommissionRecord{})

	if req.CompanyID != 0 {
		stmt = stmt.Where("company_id = ?", req.CompanyID)
	}
	if req.DocumentID != 0 {
		stmt = stmt.Where("document_id = ?", req.DocumentID)
	}

	var records []domain.CommissionRecord
	if err := stmt.Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repo) UpdateFields(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Model(&domain.CommissionRecord{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *repo) DeleteByIDs(ctx context.Context, db *gorm.DB, ids []snowflake.ID) error {
	if len(ids) == 0 {
		return nil
	}
	return db.WithContext(ctx).Exec(
		`DELETE FROM commission_records WHERE id IN ?`,
		ids,
	).Error
}

func (r *repo) CreateBatch(ctx context.Context, db *gorm.DB, records []domain.CommissionRecord, batchSize int) error {
	if len(records) == 0 {
		return nil
	}
	return db.WithContext(ctx).CreateInBatches(records, batchSize).Error
}
