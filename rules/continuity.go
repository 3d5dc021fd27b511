package rules

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/zeicheck/model"
)

type namedBalance struct {
	label   string
	balance model.AccountBalance
}

// carriedBalances lists the balances that carry over from one period to
// the next, in reporting order.
func carriedBalances(r model.TaxReturn) []namedBalance {
	switch r := r.(type) {
	case *model.SoleProprietorReturn:
		bs := r.BalanceSheet
		return append(commonBalances(bs.Cash, bs.Deposits, bs.AccountsReceivable, bs.Inventory, bs.Buildings,
			bs.Vehicles, bs.Tools, bs.Land, bs.AccountsPayable, bs.Borrowings),
			namedBalance{"元入金", bs.OwnerEquity},
		)
	case *model.CorporateReturn:
		bs := r.BalanceSheet
		return append(commonBalances(bs.Cash, bs.Deposits, bs.AccountsReceivable, bs.Inventory, bs.Buildings,
			bs.Vehicles, bs.Tools, bs.Land, bs.AccountsPayable, bs.Borrowings),
			namedBalance{"資本金", bs.CapitalStock},
			namedBalance{"資本剰余金", bs.CapitalSurplus},
			namedBalance{"利益剰余金", bs.RetainedEarnings},
		)
	}
	return nil
}

var commonBalanceLabels = []string{"現金", "預金", "売掛金", "棚卸資産", "建物", "車両運搬具", "工具器具備品", "土地", "買掛金", "借入金"}

func commonBalances(balances ...model.AccountBalance) []namedBalance {
	out := make([]namedBalance, len(balances))
	for i, b := range balances {
		out[i] = namedBalance{commonBalanceLabels[i], b}
	}
	return out
}

// Returns of different archetypes are never compared.
func comparablePrior(c *Context) (model.TaxReturn, bool) {
	if c.PriorYear == nil || c.PriorYear.ReturnType() != c.TaxReturn.ReturnType() {
		return nil, false
	}
	return c.PriorYear, true
}

var OpeningClosingMatch = Rule{
	ID:          "continuity/opening-closing-match",
	Name:        "期首=前期末 一致チェック",
	Description: "当期の期首残高が前期の期末残高と一致するか確認します。前年データが必要です。",
	Severity:    Error,
	AppliesTo:   withBalanceSheet,
	Check: func(c *Context) []Diagnostic {
		prior, ok := comparablePrior(c)
		if !ok {
			return nil
		}

		current := carriedBalances(c.TaxReturn)
		previous := carriedBalances(prior)

		var out []Diagnostic
		for i, cur := range current {
			closing := previous[i].balance.Closing
			if cur.balance.Opening == closing {
				continue
			}
			out = append(out, Diagnostic{
				Message:  fmt.Sprintf("%s: 当期首(%s) ≠ 前期末(%s)", cur.label, cur.balance.Opening, closing),
				Expected: fmt.Sprintf("%sの期首残高 = %s", cur.label, closing),
			})
		}
		return out
	},
}

var (
	yoyIncreaseLimit = decimal.NewFromInt(3)
	yoyDecreaseLimit = decimal.RequireFromString("0.2")
)

type namedAmount struct {
	label  string
	amount model.Yen
}

func trendAmounts(r model.TaxReturn) []namedAmount {
	switch r := r.(type) {
	case *model.SoleProprietorReturn:
		pl := r.IncomeStatement
		return []namedAmount{{"売上", pl.Revenue}, {"経費合計", pl.TotalExpenses}, {"所得金額", pl.OperatingIncome}}
	case *model.CorporateReturn:
		pl := r.IncomeStatement
		return []namedAmount{{"売上", pl.Revenue}, {"経費合計", pl.TotalExpenses}, {"所得金額", pl.OperatingIncome}}
	}
	return nil
}

var YearOverYearChange = Rule{
	ID:          "continuity/year-over-year-change",
	Name:        "前年比変動チェック",
	Description: "売上・経費・所得が前年比で200%超の増加または80%超の減少がある場合に警告します。前年データが必要です。",
	Severity:    Warning,
	AppliesTo:   withBalanceSheet,
	Check: func(c *Context) []Diagnostic {
		prior, ok := comparablePrior(c)
		if !ok {
			return nil
		}

		current := trendAmounts(c.TaxReturn)
		previous := trendAmounts(prior)

		var out []Diagnostic
		for i, cur := range current {
			before := previous[i].amount
			if before == 0 {
				continue
			}

			ratio := cur.amount.Decimal().Div(before.Decimal())
			var details string
			switch {
			case ratio.GreaterThan(yoyIncreaseLimit):
				details = "200%を超える大幅な増加があります。記帳内容をご確認ください。"
			case ratio.LessThan(yoyDecreaseLimit):
				details = "80%を超える大幅な減少があります。記帳内容をご確認ください。"
			default:
				continue
			}

			out = append(out, Diagnostic{
				Message: fmt.Sprintf("%sが前年比%s%%です（%s → %s）", cur.label, percent(ratio), before, cur.amount),
				Details: details,
			})
		}
		return out
	},
}
