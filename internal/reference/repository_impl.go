package reference

import (
	"context"
	"strings"

	"github.com/smallbiznis/komisi/internal/reference/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var currencies []domain.Currency
	err := r.db.WithContext(ctx).
		Raw(`SELECT code, name, symbol, minor_unit, is_active FROM currencies WHERE is_active = true ORDER BY code`).
		Scan(&currencies).Error
	if err != nil {
		return nil, err
	}
	return currencies, nil
}

func (r *repository) FindCurrency(ctx context.Context, code string) (*domain.Currency, error) {
	var currency domain.Currency
	err := r.db.WithContext(ctx).
		Raw(`SELECT code, name, symbol, minor_unit, is_active FROM currencies WHERE code = ?`, strings.ToUpper(strings.TrimSpace(code))).
		Scan(&currency).Error
	if err != nil {
		return nil, err
	}
	if currency.Code == "" {
		return nil, nil
	}
	return &currency, nil
}
