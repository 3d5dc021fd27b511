package rules

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/zeicheck/model"
)

func TestCorporateBSEquation(t *testing.T) {
	r := validCorporate()
	assert.Equal(t, 0, len(check(CorporateBSEquation, r, nil)))

	r.BalanceSheet.EquityTotal.Closing = 8_000_000
	got := check(CorporateBSEquation, r, nil)
	assert.Equal(t, []string{"期末残高: 資産合計(10,000,000) ≠ 負債合計(1,500,000) + 純資産合計(8,000,000)"}, messages(got))
	assert.Equal(t, "資産合計 = 9,500,000", got[0].Expected)
}

func TestCorporatePLChain(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.CorporateIncomeStatement)
		want   []string
	}{
		{
			name:   "consistent",
			mutate: func(*model.CorporateIncomeStatement) {},
		},
		{
			name: "ordinary income",
			mutate: func(pl *model.CorporateIncomeStatement) {
				pl.NonOperatingIncome = 50_000
			},
			want: []string{"経常利益(5,000,000) ≠ 営業利益(5,000,000) + 営業外収益(50,000) - 営業外費用(10,000)"},
		},
		{
			name: "net income",
			mutate: func(pl *model.CorporateIncomeStatement) {
				pl.CorporateTax = 900_000
			},
			want: []string{"当期純利益(4,000,000) ≠ 税引前当期純利益(5,000,000) - 法人税等(900,000)"},
		},
		{
			name: "extraordinary items",
			mutate: func(pl *model.CorporateIncomeStatement) {
				pl.ExtraordinaryLoss = 200_000
			},
			want: []string{"税引前当期純利益(5,000,000) ≠ 経常利益(5,000,000) + 特別利益(0) - 特別損失(200,000)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validCorporate()
			tt.mutate(&r.IncomeStatement)

			got := messages(check(CorporatePLChain, r, nil))
			if tt.want == nil {
				assert.Equal(t, 0, len(got))
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCorporateExpenseTotal(t *testing.T) {
	r := validCorporate()
	assert.Equal(t, 0, len(check(CorporateExpenseTotal, r, nil)))

	r.IncomeStatement.Expenses.Travel = 100_000
	assert.Equal(t, []string{"販管費合計(7,000,000) ≠ 各費目の合計(7,100,000)"}, messages(check(CorporateExpenseTotal, r, nil)))
}

func TestCorporateBSPLBridge(t *testing.T) {
	r := validCorporate()
	r.BalanceSheet.NetIncome = 3_900_000

	got := check(CorporateBSPLBridge, r, nil)
	assert.Equal(t, []string{"B/S当期純利益(3,900,000) ≠ P/L当期純利益(4,000,000)"}, messages(got))
	assert.Equal(t, "両方とも同一の値であるべき: 4,000,000", got[0].Expected)
}

func TestBetsuForms(t *testing.T) {
	tests := []struct {
		name   string
		rule   Rule
		mutate func(*model.CorporateReturn)
		want   string
	}{
		{
			name: "accounting profit",
			rule: Betsu4AccountingProfit,
			mutate: func(r *model.CorporateReturn) {
				r.IncomeAdjustment.AccountingProfit = 4_000_000
			},
			want: "別表四の当期利益(4,000,000) ≠ P/L税引前当期純利益(5,000,000)",
		},
		{
			name: "taxable income",
			rule: Betsu4TaxableIncome,
			mutate: func(r *model.CorporateReturn) {
				r.IncomeAdjustment.DeductionTotal = 100_000
			},
			want: "別表四の所得金額(5,300,000) ≠ 当期利益(5,000,000) + 加算(300,000) - 減算(100,000)",
		},
		{
			name: "betsu1 match",
			rule: Betsu1Match,
			mutate: func(r *model.CorporateReturn) {
				r.CorporateTaxForm.TaxableIncome = 5_000_000
			},
			want: "別表一の所得金額(5,000,000) ≠ 別表四の所得金額(5,300,000)",
		},
		{
			name: "tax due",
			rule: CorporateTaxDue,
			mutate: func(r *model.CorporateReturn) {
				r.CorporateTaxForm.TaxCredits = 45_000
			},
			want: "差引確定法人税額(795,000) ≠ 法人税額計(795,000) - 控除税額(45,000)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validCorporate()
			assert.Equal(t, 0, len(check(tt.rule, r, nil)))

			tt.mutate(r)
			got := check(tt.rule, r, nil)
			assert.Equal(t, []string{tt.want}, messages(got))
			assert.Equal(t, Error, got[0].Severity)
		})
	}
}

func TestCorporateTaxDueSkipsEmptyForm(t *testing.T) {
	r := validCorporate()
	r.CorporateTaxForm = model.CorporateTaxForm{TaxableIncome: 5_300_000}
	assert.Equal(t, 0, len(check(CorporateTaxDue, r, nil)))
}

func TestCapitalUnder10M(t *testing.T) {
	r := validCorporate()
	r.CorporateInfo = model.NewCorporateInfo(10_000_000)
	assert.Equal(t, 0, len(check(CapitalUnder10M, r, nil)))

	r.CorporateInfo = model.NewCorporateInfo(10_000_001)
	got := check(CapitalUnder10M, r, nil)
	assert.Equal(t, []string{"資本金(10,000,001)が1,000万円を超えています"}, messages(got))
	assert.Equal(t, "資本金 ≤ 10,000,000", got[0].Expected)
	assert.Equal(t, Warning, got[0].Severity)
}

func TestOfficerCompensation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.CorporateIncomeStatement)
		want   []string
	}{
		{
			name:   "reasonable",
			mutate: func(*model.CorporateIncomeStatement) {},
		},
		{
			name: "no salaries",
			mutate: func(pl *model.CorporateIncomeStatement) {
				pl.Expenses.Salaries = 0
				pl.OrdinaryIncome = -1
			},
		},
		{
			name: "exceeds revenue",
			mutate: func(pl *model.CorporateIncomeStatement) {
				pl.Revenue = 4_000_000
			},
			want: []string{"役員報酬(4,800,000)が売上高(4,000,000)を超えています"},
		},
		{
			name: "turns profit into loss",
			mutate: func(pl *model.CorporateIncomeStatement) {
				pl.OrdinaryIncome = -300_000
			},
			want: []string{"役員報酬控除前は黒字(4,500,000)ですが、役員報酬(4,800,000)により経常赤字(-300,000)となっています"},
		},
		{
			name: "loss regardless of pay",
			mutate: func(pl *model.CorporateIncomeStatement) {
				pl.OrdinaryIncome = -5_000_000
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validCorporate()
			tt.mutate(&r.IncomeStatement)

			got := messages(check(OfficerCompensation, r, nil))
			if tt.want == nil {
				assert.Equal(t, 0, len(got))
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntertainmentLimit(t *testing.T) {
	tests := []struct {
		name          string
		entertainment model.Yen
		months        int
		want          string
		details       string
	}{
		{name: "within annual limit", entertainment: 8_000_000, months: 12},
		{
			name:          "over annual limit",
			entertainment: 8_000_001,
			months:        12,
			want:          "交際費(8,000,001)が損金算入限度額(8,000,000)を超えています",
			details:       "中小法人の交際費の損金算入限度額は年800万円です。超過分は損金不算入となります。",
		},
		{name: "within prorated limit", entertainment: 4_000_000, months: 6},
		{
			name:          "over prorated limit",
			entertainment: 4_500_000,
			months:        6,
			want:          "交際費(4,500,000)が損金算入限度額(4,000,000)を超えています",
			details:       "事業年度6ヶ月のため、限度額は800万円×6/12で計算しています。超過分は損金不算入となります。",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validCorporate()
			r.IncomeStatement.Expenses.Entertainment = tt.entertainment
			r.CorporateInfo.FiscalYearMonths = tt.months

			got := check(EntertainmentLimit, r, nil)
			if tt.want == "" {
				assert.Equal(t, 0, len(got))
				return
			}
			assert.Equal(t, []string{tt.want}, messages(got))
			assert.Equal(t, tt.details, got[0].Details)
		})
	}
}

func TestSmallCorpTaxRate(t *testing.T) {
	r := validCorporate()
	assert.Equal(t, 0, len(check(SmallCorpTaxRate, r, nil)))

	// Only the 別表四 income decides; 別表一 is compared by betsu1-match.
	r.CorporateTaxForm.TaxableIncome = 9_000_000
	assert.Equal(t, 0, len(check(SmallCorpTaxRate, r, nil)))

	r.IncomeAdjustment.TaxableIncome = 9_000_000
	got := check(SmallCorpTaxRate, r, nil)
	assert.Equal(t, 1, len(got))
	assert.Equal(t, Info, got[0].Severity)
	assert.Equal(t, "軽減税率適用分: 8,000,000、通常税率適用分: 1,000,000", got[0].Details)

	r.CorporateInfo.IsSmallCorp = false
	assert.Equal(t, 0, len(check(SmallCorpTaxRate, r, nil)))
}

func TestRetainedEarningsContinuity(t *testing.T) {
	r := validCorporate()
	assert.Equal(t, 0, len(check(RetainedEarningsContinuity, r, nil)))

	r.BalanceSheet.RetainedEarnings.Closing = 5_000_000
	got := check(RetainedEarningsContinuity, r, nil)
	assert.Equal(t, []string{"利益剰余金の期末残高(5,000,000) ≠ 期首残高(1,500,000) + 当期純利益(4,000,000)"}, messages(got))
	assert.Equal(t, "利益剰余金の期末残高 = 5,500,000", got[0].Expected)
}

func TestCorporateRulesSkipOtherArchetypes(t *testing.T) {
	for _, rule := range Default().All() {
		if !rule.Applies(model.Corporate) || rule.Applies(model.SoleProprietor) {
			continue
		}
		assert.Equal(t, 0, len(check(rule, validIndividual(), nil)), rule.ID)
	}
}
