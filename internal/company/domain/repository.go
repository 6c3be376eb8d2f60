package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context, db *gorm.DB) ([]Company, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Company, error)
}
