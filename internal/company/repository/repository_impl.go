package repository

import (
	"context"

	"github.com/smallbiznis/komisi/internal/company/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Company, error) {
	var items []domain.Company
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, currency_code, created_at, updated_at FROM companies ORDER BY id`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Company, error) {
	var c domain.Company
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, currency_code, created_at, updated_at FROM companies WHERE id = ?`,
		id,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}
