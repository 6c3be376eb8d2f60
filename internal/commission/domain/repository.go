package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]CommissionRecord, error)
	List(ctx context.Context, db *gorm.DB, req ListRequest) ([]CommissionRecord, error)

	// UpdateFields writes only the given columns on one record.
	UpdateFields(ctx context.Context, db *gorm.DB, id snowflake.ID, fields map[string]any) error

	// DeleteByIDs removes the given records; a nil or empty slice is a no-op.
	DeleteByIDs(ctx context.Context, db *gorm.DB, ids []snowflake.ID) error

	// CreateBatch inserts records chunked into batches of batchSize.
	CreateBatch(ctx context.Context, db *gorm.DB, records []CommissionRecord, batchSize int) error
}
