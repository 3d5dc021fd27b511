package rules

import (
	"fmt"

	"github.com/robinvdvleuten/zeicheck/model"
)

const (
	blueDeductionPaper model.Yen = 550_000
	blueDeductionETax  model.Yen = 650_000
)

var BlueDeductionCap = Rule{
	ID:          "deductions/blue-deduction-cap",
	Name:        "青色控除上限チェック",
	Description: "青色申告特別控除額は、控除前の所得金額を超えることはできません。所得を超える場合は所得金額が上限となります。",
	Severity:    Warning,
	AppliesTo:   soleProprietorOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := c.TaxReturn.(*model.SoleProprietorReturn)
		if !ok {
			return nil
		}

		deduction := r.TaxFormA.BlueReturnDeduction
		income := r.IncomeStatement.OperatingIncome
		if deduction <= income {
			return nil
		}
		return []Diagnostic{{
			Message: fmt.Sprintf("青色申告特別控除額(%s) > 控除前所得(%s)", deduction, income),
			Details: "青色申告特別控除額は控除前所得金額が上限です。所得が少ない場合は所得金額までしか控除できません。",
		}}
	},
}

var BlueDeductionEligibility = Rule{
	ID:          "deductions/blue-deduction-eligibility",
	Name:        "青色控除65万円適用要件",
	Description: "65万円の青色申告特別控除にはe-Taxによる申告または電子帳簿保存が必要です（令和2年分以降）。要件を満たさない場合は55万円が上限です。",
	Severity:    Info,
	AppliesTo:   soleProprietorOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := c.TaxReturn.(*model.SoleProprietorReturn)
		if !ok {
			return nil
		}

		deduction := r.TaxFormA.BlueReturnDeduction
		if deduction <= blueDeductionPaper || deduction > blueDeductionETax {
			return nil
		}
		return []Diagnostic{{
			Message: fmt.Sprintf("青色申告特別控除額が%sです。e-Tax申告または電子帳簿保存の要件を確認してください。", blueDeductionETax),
			Details: "令和2年分以降、65万円控除にはe-Taxによる確定申告の送信、または電子帳簿保存法に基づく電子帳簿の備付けおよび保存が必要です。要件を満たさない場合は55万円が上限となります。",
		}}
	},
}
