package domain

import "context"

type Repository interface {
	ListCurrencies(ctx context.Context) ([]Currency, error)
	FindCurrency(ctx context.Context, code string) (*Currency, error)
}
