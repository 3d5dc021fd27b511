package rules

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var defaultMaxBusinessUseRatio = decimal.RequireFromString("0.9")

var hundred = decimal.NewFromInt(100)

// ReasonableRatio reads its limit from the maxRatio rule parameter.
var ReasonableRatio = Rule{
	ID:          "home-office/reasonable-ratio",
	Name:        "家事按分率の妥当性",
	Description: "減価償却資産の事業専用割合（家事按分率）が妥当な範囲内かチェックします。デフォルトの上限は90%です。",
	Severity:    Warning,
	AppliesTo:   withBalanceSheet,
	Check: func(c *Context) []Diagnostic {
		maxRatio := c.Setting("home-office/reasonable-ratio").Decimal("maxRatio", defaultMaxBusinessUseRatio)

		var out []Diagnostic
		for _, asset := range depreciationAssets(c.TaxReturn) {
			if !asset.BusinessUseRatio.GreaterThan(maxRatio) {
				continue
			}
			out = append(out, Diagnostic{
				Message: fmt.Sprintf("「%s」の事業専用割合(%s%%)が上限(%s%%)を超えています",
					asset.Name, percent(asset.BusinessUseRatio), percent(maxRatio)),
				Details: "家事按分率が高すぎる場合、税務調査で否認される可能性があります。実態に即した割合を設定してください。",
			})
		}
		return out
	},
}

// percent renders a ratio as a rounded whole percentage.
func percent(ratio decimal.Decimal) string {
	return ratio.Mul(hundred).Round(0).String()
}
