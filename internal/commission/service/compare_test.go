package service

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/komisi/internal/commission/domain"
	referencedomain "github.com/smallbiznis/komisi/internal/reference/domain"
)

func exactEnv() compareEnv {
	return compareEnv{
		qtyEqual:    func(a, b decimal.Decimal) bool { return a.Equal(b) },
		amountEqual: func(a, b decimal.Decimal) bool { return a.Equal(b) },
	}
}

func baseRecord() domain.CommissionRecord {
	salesperson := snowflake.ID(42)
	return domain.CommissionRecord{
		SourceLineID:     snowflake.ID(1),
		DocumentID:       snowflake.ID(2),
		ProductID:        snowflake.ID(3),
		SalespersonID:    &salesperson,
		CompanyID:        snowflake.ID(4),
		Quantity:         dec("2"),
		CommissionRate:   dec("10"),
		CommissionAmount: dec("20"),
		LineSubtotal:     dec("200"),
	}
}

func TestDiffFieldsEqualRecordsProduceNoPayload(t *testing.T) {
	old := baseRecord()
	next := baseRecord()

	fields := diffFields(old, next, exactEnv())
	if len(fields) != 0 {
		t.Fatalf("expected empty payload, got %v", fields)
	}
}

func TestDiffFieldsContainsOnlyChangedColumns(t *testing.T) {
	old := baseRecord()
	next := baseRecord()
	next.CommissionRate = dec("15")
	next.CommissionAmount = dec("30")

	fields := diffFields(old, next, exactEnv())
	if len(fields) != 2 {
		t.Fatalf("expected 2 changed columns, got %v", fields)
	}
	if _, ok := fields["commission_rate"]; !ok {
		t.Fatalf("expected commission_rate in payload, got %v", fields)
	}
	if _, ok := fields["commission_amount"]; !ok {
		t.Fatalf("expected commission_amount in payload, got %v", fields)
	}
}

func TestDiffFieldsSalespersonNilToSetIsAChange(t *testing.T) {
	old := baseRecord()
	old.SalespersonID = nil
	next := baseRecord()

	fields := diffFields(old, next, exactEnv())
	if _, ok := fields["salesperson_id"]; !ok {
		t.Fatalf("expected salesperson_id in payload, got %v", fields)
	}
}

func TestRateComparedAtFourDigits(t *testing.T) {
	old := baseRecord()
	next := baseRecord()
	next.CommissionRate = dec("10.00001")

	fields := diffFields(old, next, exactEnv())
	if _, ok := fields["commission_rate"]; ok {
		t.Fatalf("sub-precision rate drift must not be a change, got %v", fields)
	}

	next.CommissionRate = dec("10.001")
	fields = diffFields(old, next, exactEnv())
	if _, ok := fields["commission_rate"]; !ok {
		t.Fatalf("expected rate change at 4-digit precision, got %v", fields)
	}
}

func TestQtyEqualForUsesUomRoundingWhenPresent(t *testing.T) {
	rounding := dec("0.01")
	equal := qtyEqualFor(&rounding)

	if !equal(dec("2"), dec("2.001")) {
		t.Fatalf("drift below rounding increment must compare equal")
	}
	if equal(dec("2"), dec("2.02")) {
		t.Fatalf("drift above rounding increment must compare unequal")
	}
}

func TestQtyEqualForFallsBackToSixDigits(t *testing.T) {
	equal := qtyEqualFor(nil)

	if !equal(dec("2"), dec("2.0000001")) {
		t.Fatalf("drift beyond 6 digits must compare equal")
	}
	if equal(dec("2"), dec("2.00001")) {
		t.Fatalf("drift within 6 digits must compare unequal")
	}
}

func TestAmountEqualForResolvesCompanyCurrency(t *testing.T) {
	companyID := snowflake.ID(4)
	currencies := map[snowflake.ID]referencedomain.Currency{
		companyID: {Code: "JPY", MinorUnit: 0},
	}

	equal := amountEqualFor(currencies, companyID)
	if !equal(dec("20"), dec("20.4")) {
		t.Fatalf("zero-decimal currency must tolerate sub-unit drift")
	}
	if equal(dec("20"), dec("21")) {
		t.Fatalf("whole-unit difference must compare unequal")
	}
}

func TestAmountEqualForUnknownCompanyUsesTwoDecimals(t *testing.T) {
	equal := amountEqualFor(nil, snowflake.ID(99))

	if !equal(dec("20"), dec("20.004")) {
		t.Fatalf("sub-cent drift must compare equal")
	}
	if equal(dec("20"), dec("20.01")) {
		t.Fatalf("one-cent difference must compare unequal")
	}
}
