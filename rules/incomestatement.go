package rules

import (
	"fmt"

	"github.com/robinvdvleuten/zeicheck/model"
)

var PLChain = Rule{
	ID:          "income-statement/pl-chain",
	Name:        "P/L Arithmetic Chain",
	Description: "損益計算書の計算連鎖を検証する",
	Severity:    Error,
	AppliesTo:   soleProprietorOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := c.TaxReturn.(*model.SoleProprietorReturn)
		if !ok {
			return nil
		}
		pl := r.IncomeStatement

		var out []Diagnostic
		if gross := pl.Revenue - pl.COGS.Total; pl.GrossProfit != gross {
			out = append(out, Diagnostic{
				Message:  fmt.Sprintf("売上総利益(%s) ≠ 売上(%s) - 売上原価(%s)", pl.GrossProfit, pl.Revenue, pl.COGS.Total),
				Expected: fmt.Sprintf("売上総利益 = %s", gross),
			})
		}
		if operating := pl.GrossProfit - pl.TotalExpenses; pl.OperatingIncome != operating {
			out = append(out, Diagnostic{
				Message:  fmt.Sprintf("所得金額(%s) ≠ 売上総利益(%s) - 経費合計(%s)", pl.OperatingIncome, pl.GrossProfit, pl.TotalExpenses),
				Expected: fmt.Sprintf("所得金額 = %s", operating),
			})
		}
		return out
	},
}

var COGSCalculation = Rule{
	ID:          "income-statement/cogs",
	Name:        "COGS Calculation",
	Description: "売上原価の計算を検証する",
	Severity:    Error,
	AppliesTo:   withBalanceSheet,
	Check: func(c *Context) []Diagnostic {
		var cogs model.CostOfGoodsSold
		switch r := c.TaxReturn.(type) {
		case *model.SoleProprietorReturn:
			cogs = r.IncomeStatement.COGS
		case *model.CorporateReturn:
			cogs = r.IncomeStatement.COGS
		default:
			return nil
		}

		if cogs == (model.CostOfGoodsSold{}) {
			return nil
		}

		expected := cogs.OpeningInventory + cogs.Purchases - cogs.ClosingInventory
		if cogs.Total == expected {
			return nil
		}
		return []Diagnostic{{
			Message: fmt.Sprintf("売上原価合計(%s) ≠ 期首棚卸高(%s) + 仕入金額(%s) - 期末棚卸高(%s)",
				cogs.Total, cogs.OpeningInventory, cogs.Purchases, cogs.ClosingInventory),
			Expected: fmt.Sprintf("売上原価 = %s", expected),
		}}
	},
}

var ExpenseTotal = Rule{
	ID:          "income-statement/expense-total",
	Name:        "Expense Total",
	Description: "経費合計が各経費項目の合計と一致するか検証する",
	Severity:    Error,
	AppliesTo:   soleProprietorOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := c.TaxReturn.(*model.SoleProprietorReturn)
		if !ok {
			return nil
		}
		pl := r.IncomeStatement

		computed := pl.Expenses.Total()
		if pl.TotalExpenses == computed {
			return nil
		}
		return []Diagnostic{{
			Message:  fmt.Sprintf("経費合計(%s) ≠ 各経費項目の合計(%s)", pl.TotalExpenses, computed),
			Expected: fmt.Sprintf("経費合計 = %s", computed),
		}}
	},
}
