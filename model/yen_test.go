package model

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"
)

func TestParseYen(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Yen
	}{
		{"integer", "10000000", 10_000_000},
		{"surrounding whitespace", "  1234 \n", 1234},
		{"negative", "-500000", -500_000},
		{"empty", "", 0},
		{"blank", "   ", 0},
		{"non-numeric", "abc", 0},
		{"fraction truncates", "1234.99", 1234},
		{"negative fraction truncates toward zero", "-1234.99", -1234},
		{"exponent", "1e3", 1000},
		{"max", "999999999999999", MaxYen},
		{"above max", "1000000000000000", MaxYen},
		{"above int64", "9223372036854775808", MaxYen},
		{"above uint64", "18446744073709551617", MaxYen},
		{"huge exponent", "1e30", MaxYen},
		{"below min", "-18446744073709551617", -MaxYen},
		{"fraction above max", "999999999999999.9", MaxYen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseYen(tt.raw))
		})
	}
}

func TestNewYenTruncates(t *testing.T) {
	assert.Equal(t, Yen(2), NewYen(decimal.RequireFromString("2.9")))
	assert.Equal(t, Yen(-2), NewYen(decimal.RequireFromString("-2.9")))
}

func TestNewYenClamps(t *testing.T) {
	assert.Equal(t, MaxYen, NewYen(decimal.RequireFromString("1e100")))
	assert.Equal(t, -MaxYen, NewYen(decimal.RequireFromString("-1e100")))

	// Clamped amounts can be summed without wrapping.
	assert.True(t, Sum(MaxYen, MaxYen, MaxYen) > MaxYen)
}

func TestYenString(t *testing.T) {
	tests := []struct {
		amount Yen
		want   string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1_234_567, "1,234,567"},
		{-500_000, "-500,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.amount.String())
		})
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, Yen(0), Sum())
	assert.Equal(t, Yen(600), Sum(100, 200, 300))
	assert.Equal(t, Yen(-100), Sum(100, -200))
}

func TestExpenseBreakdownTotal(t *testing.T) {
	e := ExpenseBreakdown{
		Rent:          300_000,
		Taxes:         50_000,
		Consumables:   100_000,
		Utilities:     60_000,
		Travel:        40_000,
		Communication: 50_000,
	}

	assert.Equal(t, Yen(600_000), e.Total())
	assert.Equal(t, 18, len(e.Items()))
}

func TestTaxFormBTotals(t *testing.T) {
	b := TaxFormB{
		IncomeDetails: []IncomeDetail{
			{Type: "給与", Amount: 5_000_000, Withheld: 120_000},
			{Type: "給与", Amount: 1_000_000, Withheld: 30_000},
		},
		SocialInsurance: 200_000,
		LifeInsurance:   40_000,
		BasicDeduction:  480_000,
	}

	assert.Equal(t, Yen(720_000), b.DeductionsTotal())
	assert.Equal(t, Yen(150_000), b.WithheldTotal())
}

func TestNewCorporateInfo(t *testing.T) {
	small := NewCorporateInfo(10_000_000)
	assert.True(t, small.IsSmallCorp)
	assert.Equal(t, 12, small.FiscalYearMonths)
	assert.Equal(t, 1, small.OfficerCount)

	large := NewCorporateInfo(10_000_001)
	assert.False(t, large.IsSmallCorp)
}
