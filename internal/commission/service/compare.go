package service

import (
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/komisi/internal/commission/domain"
	"github.com/smallbiznis/komisi/internal/numcmp"
	referencedomain "github.com/smallbiznis/komisi/internal/reference/domain"
)

const (
	// ratePrecisionDigits is the comparison precision for commission rates.
	ratePrecisionDigits = 4
	// quantityFallbackDigits applies when a line has no unit of measure.
	quantityFallbackDigits = 6
)

// compareEnv supplies the tolerance-aware equality functions for one record:
// quantity tolerance comes from the line's unit of measure, monetary
// tolerance from the company currency.
type compareEnv struct {
	qtyEqual    func(a, b decimal.Decimal) bool
	amountEqual func(a, b decimal.Decimal) bool
}

// fieldComparator declares how one mirrored column is dirty-checked and what
// value an update writes. Adding a mirrored field is one new entry here.
type fieldComparator struct {
	column string
	equal  func(old, next domain.CommissionRecord, env compareEnv) bool
	value  func(next domain.CommissionRecord) any
}

var recordComparators = []fieldComparator{
	{
		column: "salesperson_id",
		equal: func(old, next domain.CommissionRecord, _ compareEnv) bool {
			return idPtrEqual(old.SalespersonID, next.SalespersonID)
		},
		value: func(next domain.CommissionRecord) any { return next.SalespersonID },
	},
	{
		column: "document_id",
		equal: func(old, next domain.CommissionRecord, _ compareEnv) bool {
			return old.DocumentID == next.DocumentID
		},
		value: func(next domain.CommissionRecord) any { return next.DocumentID },
	},
	{
		column: "product_id",
		equal: func(old, next domain.CommissionRecord, _ compareEnv) bool {
			return old.ProductID == next.ProductID
		},
		value: func(next domain.CommissionRecord) any { return next.ProductID },
	},
	{
		column: "company_id",
		equal: func(old, next domain.CommissionRecord, _ compareEnv) bool {
			return old.CompanyID == next.CompanyID
		},
		value: func(next domain.CommissionRecord) any { return next.CompanyID },
	},
	{
		column: "quantity",
		equal: func(old, next domain.CommissionRecord, env compareEnv) bool {
			return env.qtyEqual(old.Quantity, next.Quantity)
		},
		value: func(next domain.CommissionRecord) any { return next.Quantity },
	},
	{
		column: "commission_rate",
		equal: func(old, next domain.CommissionRecord, _ compareEnv) bool {
			return numcmp.EqualDigits(old.CommissionRate, next.CommissionRate, ratePrecisionDigits)
		},
		value: func(next domain.CommissionRecord) any { return next.CommissionRate },
	},
	{
		column: "commission_amount",
		equal: func(old, next domain.CommissionRecord, env compareEnv) bool {
			return env.amountEqual(old.CommissionAmount, next.CommissionAmount)
		},
		value: func(next domain.CommissionRecord) any { return next.CommissionAmount },
	},
	{
		column: "line_subtotal",
		equal: func(old, next domain.CommissionRecord, env compareEnv) bool {
			return env.amountEqual(old.LineSubtotal, next.LineSubtotal)
		},
		value: func(next domain.CommissionRecord) any { return next.LineSubtotal },
	},
}

// diffFields returns the update payload for columns whose fresh value differs
// beyond tolerance. An empty map means the record needs no write.
func diffFields(old, next domain.CommissionRecord, env compareEnv) map[string]any {
	fields := make(map[string]any)
	for _, cmp := range recordComparators {
		if cmp.equal(old, next, env) {
			continue
		}
		fields[cmp.column] = cmp.value(next)
	}
	return fields
}

func qtyEqualFor(rounding *decimal.Decimal) func(a, b decimal.Decimal) bool {
	if rounding != nil && rounding.Sign() > 0 {
		increment := *rounding
		return func(a, b decimal.Decimal) bool {
			return numcmp.EqualRounding(a, b, increment)
		}
	}
	return func(a, b decimal.Decimal) bool {
		return numcmp.EqualDigits(a, b, quantityFallbackDigits)
	}
}

func idPtrEqual(a, b *snowflake.ID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// fallbackCurrency applies when a company references an unknown currency;
// two minor units matches the bulk of circulating currencies.
var fallbackCurrency = referencedomain.Currency{MinorUnit: 2}

func amountEqualFor(currencies map[snowflake.ID]referencedomain.Currency, companyID snowflake.ID) func(a, b decimal.Decimal) bool {
	currency, ok := currencies[companyID]
	if !ok {
		currency = fallbackCurrency
	}
	return currency.EqualAmounts
}
