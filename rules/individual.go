package rules

import (
	"fmt"

	"github.com/robinvdvleuten/zeicheck/model"
)

var individualOnly = []model.ReturnType{model.Individual}

const standardBasicDeduction model.Yen = 480_000

var BasicDeduction = Rule{
	ID:          "individual/basic-deduction",
	Name:        "基礎控除額確認",
	Description: "基礎控除が標準額（48万円）であるか確認します。合計所得金額が2,400万円以下の場合は48万円が適用されます。",
	Severity:    Info,
	AppliesTo:   individualOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := c.TaxReturn.(*model.IndividualReturn)
		if !ok {
			return nil
		}

		basic := r.TaxFormB.BasicDeduction
		if basic == standardBasicDeduction || basic == 0 {
			return nil
		}
		return []Diagnostic{{
			Message:  fmt.Sprintf("基礎控除額(%s)が標準額(%s)と異なります。合計所得金額が2,400万円超の場合は逓減されます。", basic, standardBasicDeduction),
			Expected: fmt.Sprintf("基礎控除 = %s（合計所得2,400万円以下の場合）", standardBasicDeduction),
		}}
	},
}

var DeductionTotal = Rule{
	ID:          "individual/deduction-total",
	Name:        "所得控除合計チェック",
	Description: "申告書第二表の各控除項目の合計が第一表の所得控除合計と一致するか確認します。",
	Severity:    Error,
	AppliesTo:   individualOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := c.TaxReturn.(*model.IndividualReturn)
		if !ok {
			return nil
		}

		computed := r.TaxFormB.DeductionsTotal()
		declared := r.TaxFormA.TotalDeductions
		if computed == declared {
			return nil
		}
		return []Diagnostic{{
			Message:  fmt.Sprintf("所得控除合計(%s) ≠ 各控除項目の合算(%s)", declared, computed),
			Expected: fmt.Sprintf("所得控除合計 = %s", computed),
		}}
	},
}

var TaxableIncome = Rule{
	ID:          "individual/taxable-income",
	Name:        "課税所得計算チェック",
	Description: "課税される所得金額が合計所得金額から所得控除合計を差し引いた値と一致するか確認します。",
	Severity:    Error,
	AppliesTo:   individualOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := c.TaxReturn.(*model.IndividualReturn)
		if !ok {
			return nil
		}
		a := r.TaxFormA

		expected := max(0, a.TotalIncome-a.TotalDeductions)
		if a.TaxableIncome == expected {
			return nil
		}
		return []Diagnostic{{
			Message:  fmt.Sprintf("課税所得金額(%s) ≠ 合計所得(%s) − 所得控除(%s)", a.TaxableIncome, a.TotalIncome, a.TotalDeductions),
			Expected: fmt.Sprintf("課税所得金額 = %s", expected),
		}}
	},
}

var WithholdingTotal = Rule{
	ID:          "individual/withholding-total",
	Name:        "源泉徴収税額チェック",
	Description: "所得の内訳に記載された源泉徴収税額の整合性を確認します。給与所得者は通常、源泉徴収税額が記載されます。",
	Severity:    Warning,
	AppliesTo:   individualOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := c.TaxReturn.(*model.IndividualReturn)
		if !ok {
			return nil
		}

		if len(r.TaxFormB.IncomeDetails) == 0 {
			return []Diagnostic{{
				Message: "所得の内訳が未記載です。給与所得者の場合は源泉徴収票の情報を記載してください。",
			}}
		}
		if r.TaxFormB.WithheldTotal() == 0 {
			return []Diagnostic{{
				Message:  "源泉徴収税額の合計が0円です。給与所得者の場合は源泉徴収税額が通常存在します。",
				Expected: fmt.Sprintf("源泉徴収税額合計 > %s", model.Yen(0)),
			}}
		}
		return nil
	},
}
