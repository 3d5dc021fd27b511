package rules

import (
	"fmt"

	"github.com/robinvdvleuten/zeicheck/model"
)

var corporateOnly = []model.ReturnType{model.Corporate}

// corporate narrows the context to a corporate return.
func corporate(c *Context) (*model.CorporateReturn, bool) {
	r, ok := c.TaxReturn.(*model.CorporateReturn)
	return r, ok
}

var CorporateBSEquation = Rule{
	ID:          "corporate/bs-equation",
	Name:        "法人B/S等式",
	Description: "資産合計 = 負債合計 + 純資産合計 を検証する",
	Severity:    Error,
	AppliesTo:   corporateOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := corporate(c)
		if !ok {
			return nil
		}
		bs := r.BalanceSheet

		var out []Diagnostic
		check := func(label string, assets, liabilities, equity model.Yen) {
			if assets == liabilities+equity {
				return
			}
			out = append(out, Diagnostic{
				Message:  fmt.Sprintf("%s: 資産合計(%s) ≠ 負債合計(%s) + 純資産合計(%s)", label, assets, liabilities, equity),
				Expected: fmt.Sprintf("資産合計 = %s", liabilities+equity),
			})
		}
		check("期末残高", bs.AssetsTotal.Closing, bs.LiabilitiesTotal.Closing, bs.EquityTotal.Closing)
		check("期首残高", bs.AssetsTotal.Opening, bs.LiabilitiesTotal.Opening, bs.EquityTotal.Opening)
		return out
	},
}

var CorporatePLChain = Rule{
	ID:          "corporate/pl-chain",
	Name:        "法人P/L計算連鎖",
	Description: "営業利益 + 営業外収益 - 営業外費用 = 経常利益、経常利益 + 特別利益 - 特別損失 = 税引前当期純利益、税引前当期純利益 - 法人税等 = 当期純利益 を検証する",
	Severity:    Error,
	AppliesTo:   corporateOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := corporate(c)
		if !ok {
			return nil
		}
		pl := r.IncomeStatement

		steps := []struct {
			label    string
			actual   model.Yen
			expected model.Yen
			formula  string
		}{
			{
				"売上総利益", pl.GrossProfit, pl.Revenue - pl.COGS.Total,
				fmt.Sprintf("売上高(%s) - 売上原価(%s)", pl.Revenue, pl.COGS.Total),
			},
			{
				"営業利益", pl.OperatingIncome, pl.GrossProfit - pl.TotalExpenses,
				fmt.Sprintf("売上総利益(%s) - 販管費(%s)", pl.GrossProfit, pl.TotalExpenses),
			},
			{
				"経常利益", pl.OrdinaryIncome, pl.OperatingIncome + pl.NonOperatingIncome - pl.NonOperatingExpenses,
				fmt.Sprintf("営業利益(%s) + 営業外収益(%s) - 営業外費用(%s)", pl.OperatingIncome, pl.NonOperatingIncome, pl.NonOperatingExpenses),
			},
			{
				"税引前当期純利益", pl.PreTaxIncome, pl.OrdinaryIncome + pl.ExtraordinaryGain - pl.ExtraordinaryLoss,
				fmt.Sprintf("経常利益(%s) + 特別利益(%s) - 特別損失(%s)", pl.OrdinaryIncome, pl.ExtraordinaryGain, pl.ExtraordinaryLoss),
			},
			{
				"当期純利益", pl.NetIncome, pl.PreTaxIncome - pl.CorporateTax,
				fmt.Sprintf("税引前当期純利益(%s) - 法人税等(%s)", pl.PreTaxIncome, pl.CorporateTax),
			},
		}

		var out []Diagnostic
		for _, step := range steps {
			if step.actual == step.expected {
				continue
			}
			out = append(out, Diagnostic{
				Message:  fmt.Sprintf("%s(%s) ≠ %s", step.label, step.actual, step.formula),
				Expected: fmt.Sprintf("%s = %s", step.label, step.expected),
			})
		}
		return out
	},
}

var CorporateExpenseTotal = Rule{
	ID:          "corporate/expense-total",
	Name:        "法人販管費合計チェック",
	Description: "販売費及び一般管理費の合計が各費目の合計と一致するか検証する",
	Severity:    Error,
	AppliesTo:   corporateOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := corporate(c)
		if !ok {
			return nil
		}

		total := r.IncomeStatement.TotalExpenses
		computed := r.IncomeStatement.Expenses.Total()
		if total == computed {
			return nil
		}
		return []Diagnostic{{
			Message:  fmt.Sprintf("販管費合計(%s) ≠ 各費目の合計(%s)", total, computed),
			Expected: fmt.Sprintf("販管費合計 = %s", computed),
		}}
	},
}

var CorporateBSPLBridge = Rule{
	ID:          "corporate/bs-pl-bridge",
	Name:        "法人B/S↔P/L整合性",
	Description: "貸借対照表の当期純利益と損益計算書の当期純利益が一致するか検証する",
	Severity:    Error,
	AppliesTo:   corporateOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := corporate(c)
		if !ok {
			return nil
		}

		bs := r.BalanceSheet.NetIncome
		pl := r.IncomeStatement.NetIncome
		if bs == pl {
			return nil
		}
		return []Diagnostic{{
			Message:  fmt.Sprintf("B/S当期純利益(%s) ≠ P/L当期純利益(%s)", bs, pl),
			Expected: fmt.Sprintf("両方とも同一の値であるべき: %s", pl),
		}}
	},
}

var Betsu4AccountingProfit = Rule{
	ID:          "corporate/betsu4-accounting-profit",
	Name:        "別表四↔P/L整合性",
	Description: "別表四の当期利益又は当期欠損の額が損益計算書の税引前当期純利益と一致するか検証する",
	Severity:    Error,
	AppliesTo:   corporateOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := corporate(c)
		if !ok {
			return nil
		}

		profit := r.IncomeAdjustment.AccountingProfit
		preTax := r.IncomeStatement.PreTaxIncome
		if profit == preTax {
			return nil
		}
		return []Diagnostic{{
			Message:  fmt.Sprintf("別表四の当期利益(%s) ≠ P/L税引前当期純利益(%s)", profit, preTax),
			Expected: fmt.Sprintf("別表四の当期利益 = %s", preTax),
		}}
	},
}

var Betsu4TaxableIncome = Rule{
	ID:          "corporate/betsu4-taxable-income",
	Name:        "別表四所得金額計算",
	Description: "別表四の所得金額 = 当期利益 + 加算項目合計 - 減算項目合計 を検証する",
	Severity:    Error,
	AppliesTo:   corporateOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := corporate(c)
		if !ok {
			return nil
		}
		adj := r.IncomeAdjustment

		expected := adj.AccountingProfit + adj.AddBackTotal - adj.DeductionTotal
		if adj.TaxableIncome == expected {
			return nil
		}
		return []Diagnostic{{
			Message: fmt.Sprintf("別表四の所得金額(%s) ≠ 当期利益(%s) + 加算(%s) - 減算(%s)",
				adj.TaxableIncome, adj.AccountingProfit, adj.AddBackTotal, adj.DeductionTotal),
			Expected: fmt.Sprintf("所得金額 = %s", expected),
		}}
	},
}

var Betsu1Match = Rule{
	ID:          "corporate/betsu1-match",
	Name:        "別表一↔別表四整合性",
	Description: "別表一（法人税申告書）の所得金額が別表四の所得金額と一致するか検証する",
	Severity:    Error,
	AppliesTo:   corporateOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := corporate(c)
		if !ok {
			return nil
		}

		betsu1 := r.CorporateTaxForm.TaxableIncome
		betsu4 := r.IncomeAdjustment.TaxableIncome
		if betsu1 == betsu4 {
			return nil
		}
		return []Diagnostic{{
			Message:  fmt.Sprintf("別表一の所得金額(%s) ≠ 別表四の所得金額(%s)", betsu1, betsu4),
			Expected: fmt.Sprintf("別表一の所得金額 = %s", betsu4),
		}}
	},
}

var CorporateTaxDue = Rule{
	ID:          "corporate/tax-due",
	Name:        "差引確定法人税額チェック",
	Description: "別表一の差引確定法人税額 = 法人税額計 - 控除税額 を検証する",
	Severity:    Error,
	AppliesTo:   corporateOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := corporate(c)
		if !ok {
			return nil
		}
		f := r.CorporateTaxForm

		if f.CorporateTaxAmount == 0 && f.TaxCredits == 0 && f.TaxDue == 0 {
			return nil
		}
		expected := f.CorporateTaxAmount - f.TaxCredits
		if f.TaxDue == expected {
			return nil
		}
		return []Diagnostic{{
			Message:  fmt.Sprintf("差引確定法人税額(%s) ≠ 法人税額計(%s) - 控除税額(%s)", f.TaxDue, f.CorporateTaxAmount, f.TaxCredits),
			Expected: fmt.Sprintf("差引確定法人税額 = %s", expected),
		}}
	},
}

var CapitalUnder10M = Rule{
	ID:          "corporate/capital-under-10m",
	Name:        "資本金1000万以下チェック",
	Description: "マイクロ法人として資本金が1,000万円以下であることを確認する。消費税の免税事業者要件にも関連します。",
	Severity:    Warning,
	AppliesTo:   corporateOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := corporate(c)
		if !ok {
			return nil
		}

		capital := r.CorporateInfo.CapitalAmount
		if capital <= model.SmallCorpCapitalLimit {
			return nil
		}
		return []Diagnostic{{
			Message:  fmt.Sprintf("資本金(%s)が1,000万円を超えています", capital),
			Details:  "資本金1,000万円超の場合、設立初年度から消費税の課税事業者となります。マイクロ法人では通常1,000万円以下に設定します。",
			Expected: fmt.Sprintf("資本金 ≤ %s", model.SmallCorpCapitalLimit),
		}}
	},
}

// OfficerCompensation treats 給料賃金 as officer pay, which holds for a
// one-person corporation.
var OfficerCompensation = Rule{
	ID:          "corporate/officer-compensation",
	Name:        "役員報酬妥当性チェック",
	Description: "役員報酬（給料賃金）が売上に対して妥当な範囲内かチェックする。一人法人では給料賃金 = 役員報酬として検証する。",
	Severity:    Warning,
	AppliesTo:   corporateOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := corporate(c)
		if !ok {
			return nil
		}
		pl := r.IncomeStatement
		salaries := pl.Expenses.Salaries
		if salaries == 0 {
			return nil
		}

		var out []Diagnostic
		if pl.Revenue > 0 && salaries > pl.Revenue {
			out = append(out, Diagnostic{
				Message: fmt.Sprintf("役員報酬(%s)が売上高(%s)を超えています", salaries, pl.Revenue),
				Details: "役員報酬が売上を超える状態が継続すると債務超過のリスクがあります。",
			})
		}
		if before := pl.OrdinaryIncome + salaries; pl.OrdinaryIncome < 0 && before > 0 {
			out = append(out, Diagnostic{
				Message: fmt.Sprintf("役員報酬控除前は黒字(%s)ですが、役員報酬(%s)により経常赤字(%s)となっています", before, salaries, pl.OrdinaryIncome),
				Details: "役員報酬の金額が適正か見直しを検討してください。定期同額給与の要件にもご注意ください。",
			})
		}
		return out
	},
}

const annualEntertainmentLimit model.Yen = 8_000_000

var EntertainmentLimit = Rule{
	ID:          "corporate/entertainment-limit",
	Name:        "交際費損金算入限度",
	Description: "中小法人の交際費の損金算入限度額（年800万円）を超えていないかチェックする。事業年度が12ヶ月未満の場合は月割計算する。",
	Severity:    Warning,
	AppliesTo:   corporateOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := corporate(c)
		if !ok {
			return nil
		}
		entertainment := r.IncomeStatement.Expenses.Entertainment
		if entertainment == 0 {
			return nil
		}

		months := r.CorporateInfo.FiscalYearMonths
		limit := annualEntertainmentLimit * model.Yen(months) / 12
		if entertainment <= limit {
			return nil
		}

		details := "中小法人の交際費の損金算入限度額は年800万円です。超過分は損金不算入となります。"
		if months < 12 {
			details = fmt.Sprintf("事業年度%dヶ月のため、限度額は800万円×%d/12で計算しています。超過分は損金不算入となります。", months, months)
		}
		return []Diagnostic{{
			Message:  fmt.Sprintf("交際費(%s)が損金算入限度額(%s)を超えています", entertainment, limit),
			Details:  details,
			Expected: fmt.Sprintf("交際費 ≤ %s", limit),
		}}
	},
}

const reducedRateLimit model.Yen = 8_000_000

var SmallCorpTaxRate = Rule{
	ID:          "corporate/small-corp-tax-rate",
	Name:        "軽減税率適用チェック",
	Description: "中小法人の所得800万円以下の部分に軽減税率(15%)が適用可能か確認する。資本金1億円以下の法人が対象。",
	Severity:    Info,
	AppliesTo:   corporateOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := corporate(c)
		if !ok || !r.CorporateInfo.IsSmallCorp {
			return nil
		}

		taxable := r.IncomeAdjustment.TaxableIncome
		if taxable <= reducedRateLimit {
			return nil
		}
		return []Diagnostic{{
			Message: fmt.Sprintf("所得金額(%s)が800万円を超えています。800万円以下の部分に軽減税率15%%、超過分に23.2%%が適用されます。", taxable),
			Details: fmt.Sprintf("軽減税率適用分: %s、通常税率適用分: %s", reducedRateLimit, taxable-reducedRateLimit),
		}}
	},
}

// RetainedEarningsContinuity assumes no dividends or share buybacks.
var RetainedEarningsContinuity = Rule{
	ID:          "corporate/retained-earnings-continuity",
	Name:        "利益剰余金繰越チェック",
	Description: "利益剰余金の期末残高 = 期首残高 + 当期純利益 であることを検証する（配当なしを前提）",
	Severity:    Error,
	AppliesTo:   corporateOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := corporate(c)
		if !ok {
			return nil
		}
		bs := r.BalanceSheet

		expected := bs.RetainedEarnings.Opening + bs.NetIncome
		if bs.RetainedEarnings.Closing == expected {
			return nil
		}
		return []Diagnostic{{
			Message:  fmt.Sprintf("利益剰余金の期末残高(%s) ≠ 期首残高(%s) + 当期純利益(%s)", bs.RetainedEarnings.Closing, bs.RetainedEarnings.Opening, bs.NetIncome),
			Details:  "配当や自己株式取得がある場合はその分を考慮してください。",
			Expected: fmt.Sprintf("利益剰余金の期末残高 = %s", expected),
		}}
	},
}
