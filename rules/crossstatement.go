package rules

import (
	"fmt"

	"github.com/robinvdvleuten/zeicheck/model"
)

var BSPLBridge = Rule{
	ID:          "cross-statement/bs-pl-bridge",
	Name:        "BS-PL Bridge",
	Description: "貸借対照表の青色申告特別控除前の所得金額と損益計算書の所得金額の一致を検証する",
	Severity:    Error,
	AppliesTo:   soleProprietorOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := c.TaxReturn.(*model.SoleProprietorReturn)
		if !ok {
			return nil
		}

		pl := r.IncomeStatement.OperatingIncome
		bs := r.BalanceSheet.RetainedEarnings
		if pl == bs {
			return nil
		}
		return []Diagnostic{{
			Message:  fmt.Sprintf("損益計算書の所得金額(%s) ≠ 貸借対照表の青色申告特別控除前の所得金額(%s)", pl, bs),
			Expected: fmt.Sprintf("両方とも同一の値であるべき: %s", pl),
		}}
	},
}

var DecisionToReturn = Rule{
	ID:          "cross-statement/decision-to-return",
	Name:        "決算書→申告書 転記一致",
	Description: "青色申告決算書の売上金額・所得金額が申告書第一表に正しく転記されているか確認します。",
	Severity:    Error,
	AppliesTo:   soleProprietorOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := c.TaxReturn.(*model.SoleProprietorReturn)
		if !ok {
			return nil
		}
		pl := r.IncomeStatement
		a := r.TaxFormA

		var out []Diagnostic
		if pl.Revenue != a.BusinessIncome {
			out = append(out, Diagnostic{
				Message:  fmt.Sprintf("決算書の売上金額(%s) ≠ 申告書の営業等収入(%s)", pl.Revenue, a.BusinessIncome),
				Expected: fmt.Sprintf("申告書の営業等収入 = %s", pl.Revenue),
			})
		}
		if expected := pl.OperatingIncome - a.BlueReturnDeduction; a.BusinessProfit != expected {
			out = append(out, Diagnostic{
				Message:  fmt.Sprintf("申告書の営業等所得(%s) ≠ 決算書所得(%s) - 青色控除(%s)", a.BusinessProfit, pl.OperatingIncome, a.BlueReturnDeduction),
				Expected: fmt.Sprintf("申告書の営業等所得 = %s", expected),
			})
		}
		return out
	},
}

// DepreciationSum is not applicable while the return carries no
// depreciation schedule.
var DepreciationSum = Rule{
	ID:          "cross-statement/depreciation-sum",
	Name:        "減価償却費合計の一致",
	Description: "減価償却明細の必要経費算入額合計が損益計算書の減価償却費と一致するか確認します。",
	Severity:    Error,
	AppliesTo:   soleProprietorOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := c.TaxReturn.(*model.SoleProprietorReturn)
		if !ok || r.DepreciationSchedule.IsEmpty() {
			return nil
		}

		schedule := r.DepreciationSchedule.TotalBusinessDepreciation
		pl := r.IncomeStatement.Expenses.Depreciation
		if schedule == pl {
			return nil
		}
		return []Diagnostic{{
			Message:  fmt.Sprintf("減価償却明細の合計(%s) ≠ P/L減価償却費(%s)", schedule, pl),
			Expected: fmt.Sprintf("両方とも同一の値であるべき: %s", schedule),
		}}
	},
}
