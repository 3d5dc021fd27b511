package rules

import (
	"fmt"
	"strings"

	"github.com/robinvdvleuten/zeicheck/model"
)

// statutoryLives maps an asset-name keyword to its statutory useful life
// in years. Keywords are matched in this order.
var statutoryLives = []struct {
	keyword string
	years   int
}{
	{"パソコン", 4},
	{"サーバー", 5},
	{"普通自動車", 6},
	{"軽自動車", 4},
	{"木造建物", 22},
	{"鉄筋コンクリート建物", 47},
	{"金属製家具", 15},
}

const (
	fullyExpensableLimit model.Yen = 100_000
	smallAssetLimit      model.Yen = 300_000
)

func depreciationAssets(r model.TaxReturn) []model.DepreciationAsset {
	switch r := r.(type) {
	case *model.SoleProprietorReturn:
		return r.DepreciationSchedule.Assets
	case *model.CorporateReturn:
		return r.DepreciationSchedule.Assets
	}
	return nil
}

// statutoryLife returns the life of the first keyword contained in name.
func statutoryLife(name string) (int, bool) {
	for _, life := range statutoryLives {
		if strings.Contains(name, life.keyword) {
			return life.years, true
		}
	}
	return 0, false
}

var UsefulLifeRates = Rule{
	ID:          "depreciation/useful-life-rates",
	Name:        "法定耐用年数チェック",
	Description: "減価償却資産の耐用年数が法定耐用年数テーブルと一致するか確認します。",
	Severity:    Warning,
	AppliesTo:   withBalanceSheet,
	Check: func(c *Context) []Diagnostic {
		var out []Diagnostic
		for _, asset := range depreciationAssets(c.TaxReturn) {
			years, ok := statutoryLife(asset.Name)
			if !ok || asset.UsefulLife == years {
				continue
			}
			out = append(out, Diagnostic{
				Message: fmt.Sprintf("「%s」の耐用年数(%d年)が法定耐用年数(%d年)と異なります", asset.Name, asset.UsefulLife, years),
			})
		}
		return out
	},
}

var SmallAssetThreshold = Rule{
	ID:          "depreciation/small-asset-threshold",
	Name:        "少額資産の償却方法チェック",
	Description: "取得価額10万円以下は全額経費、10万円超30万円以下は少額減価償却資産の特例（青色申告者）が適用可能です。",
	Severity:    Warning,
	AppliesTo:   withBalanceSheet,
	Check: func(c *Context) []Diagnostic {
		var out []Diagnostic
		for _, asset := range depreciationAssets(c.TaxReturn) {
			cost := asset.AcquisitionCost
			switch {
			case cost <= fullyExpensableLimit && asset.UsefulLife > 1:
				out = append(out, Diagnostic{
					Message: fmt.Sprintf("「%s」(取得価額%s)は10万円以下のため、全額経費計上が可能です", asset.Name, cost),
				})
			case cost > fullyExpensableLimit && cost <= smallAssetLimit && asset.DepreciationMethod != model.LumpSum:
				out = append(out, Diagnostic{
					Message: fmt.Sprintf("「%s」(取得価額%s)は30万円以下のため、少額減価償却資産の特例（一括経費計上）が適用可能です", asset.Name, cost),
					Details: "青色申告者は取得価額30万円未満の減価償却資産について、年間合計300万円まで全額経費に計上できます。",
				})
			}
		}
		return out
	},
}
