package rules

import (
	"fmt"

	"github.com/robinvdvleuten/zeicheck/model"
)

var soleProprietorOnly = []model.ReturnType{model.SoleProprietor}

var BalanceSheetEquation = Rule{
	ID:          "balance-sheet/equation",
	Name:        "Balance Sheet Equation",
	Description: "資産合計 = 負債合計 + 資本合計 を検証する",
	Severity:    Error,
	AppliesTo:   soleProprietorOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := c.TaxReturn.(*model.SoleProprietorReturn)
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
				Message:  fmt.Sprintf("%s: 資産合計(%s) ≠ 負債合計(%s) + 資本合計(%s)", label, assets, liabilities, equity),
				Expected: fmt.Sprintf("資産合計 = %s", liabilities+equity),
			})
		}
		check("期末残高", bs.AssetsTotal.Closing, bs.LiabilitiesTotal.Closing, bs.EquityTotal.Closing)
		check("期首残高", bs.AssetsTotal.Opening, bs.LiabilitiesTotal.Opening, bs.EquityTotal.Opening)
		return out
	},
}

// 事業主貸 and 事業主借 are closed into 元入金 at every period start.
var OpeningOwnerEquity = Rule{
	ID:          "balance-sheet/opening-owner-equity",
	Name:        "事業主貸借 期首残高ゼロ",
	Description: "事業主貸と事業主借は毎期首に元入金へ振替されるため、期首残高は0円であるべきです。",
	Severity:    Error,
	AppliesTo:   soleProprietorOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := c.TaxReturn.(*model.SoleProprietorReturn)
		if !ok {
			return nil
		}

		var out []Diagnostic
		for _, account := range []struct {
			label   string
			opening model.Yen
		}{
			{"事業主貸", r.BalanceSheet.OwnerDrawings.Opening},
			{"事業主借", r.BalanceSheet.OwnerContributions.Opening},
		} {
			if account.opening != 0 {
				out = append(out, Diagnostic{
					Message:  fmt.Sprintf("%sの期首残高が0ではありません: %s", account.label, account.opening),
					Expected: fmt.Sprintf("%sの期首残高 = ¥0", account.label),
				})
			}
		}
		return out
	},
}

var MotoireKinFormula = Rule{
	ID:          "balance-sheet/motoire-kin-formula",
	Name:        "元入金繰越計算",
	Description: "元入金(当期) = 元入金(前期) + 青色申告特別控除前所得(前期) + 事業主借(前期末) - 事業主貸(前期末) であるべきです。前年データが必要です。",
	Severity:    Error,
	AppliesTo:   soleProprietorOnly,
	Check: func(c *Context) []Diagnostic {
		r, ok := c.TaxReturn.(*model.SoleProprietorReturn)
		if !ok {
			return nil
		}
		prior, ok := c.PriorYear.(*model.SoleProprietorReturn)
		if !ok {
			return nil
		}

		pbs := prior.BalanceSheet
		income := prior.IncomeStatement.OperatingIncome
		expected := pbs.OwnerEquity.Opening + income + pbs.OwnerContributions.Closing - pbs.OwnerDrawings.Closing
		actual := r.BalanceSheet.OwnerEquity.Opening
		if actual == expected {
			return nil
		}

		return []Diagnostic{{
			Message: fmt.Sprintf("元入金の期首残高(%s) ≠ 繰越計算額(%s)", actual, expected),
			Details: fmt.Sprintf("計算式: 元入金(前期首)(%s) + 所得(前期)(%s) + 事業主借(前期末)(%s) - 事業主貸(前期末)(%s)",
				pbs.OwnerEquity.Opening, income, pbs.OwnerContributions.Closing, pbs.OwnerDrawings.Closing),
			Expected: fmt.Sprintf("元入金の期首残高 = %s", expected),
		}}
	},
}

var NonNegativeCash = Rule{
	ID:          "balance-sheet/non-negative-cash",
	Name:        "現金残高の非負チェック",
	Description: "現金残高は0以上であるべきです。マイナス残高は記帳ミスの可能性があります。",
	Severity:    Warning,
	AppliesTo:   withBalanceSheet,
	Check: func(c *Context) []Diagnostic {
		cash, ok := cashBalance(c.TaxReturn)
		if !ok {
			return nil
		}

		var out []Diagnostic
		if cash.Opening < 0 {
			out = append(out, Diagnostic{Message: fmt.Sprintf("現金の期首残高がマイナスです: %s", cash.Opening)})
		}
		if cash.Closing < 0 {
			out = append(out, Diagnostic{Message: fmt.Sprintf("現金の期末残高がマイナスです: %s", cash.Closing)})
		}
		return out
	},
}

// withBalanceSheet are the archetypes that carry financial statements.
var withBalanceSheet = []model.ReturnType{model.SoleProprietor, model.Corporate}

func cashBalance(r model.TaxReturn) (model.AccountBalance, bool) {
	switch r := r.(type) {
	case *model.SoleProprietorReturn:
		return r.BalanceSheet.Cash, true
	case *model.CorporateReturn:
		return r.BalanceSheet.Cash, true
	}
	return model.AccountBalance{}, false
}
