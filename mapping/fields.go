// Package mapping holds the static dictionaries that tie e-Tax field codes
// and HOT010 account codes to the normalized model.
package mapping

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/zeicheck/model"
)

// Pair holds the opening and closing field codes of one balance-sheet line.
type Pair struct {
	Opening string
	Closing string
}

// 青色申告決算書 損益計算書.
const (
	VCARevenue          = "ITA_VCA0010"
	VCAOpeningInventory = "ITA_VCA0020"
	VCAPurchases        = "ITA_VCA0030"
	VCAClosingInventory = "ITA_VCA0040"
	VCACOGSTotal        = "ITA_VCA0050"
	VCAGrossProfit      = "ITA_VCA0060"

	VCATaxes         = "ITA_VCA0100"
	VCAInsurance     = "ITA_VCA0110"
	VCARepairs       = "ITA_VCA0120"
	VCADepreciation  = "ITA_VCA0130"
	VCAWelfare       = "ITA_VCA0140"
	VCASalaries      = "ITA_VCA0150"
	VCAOutsourcing   = "ITA_VCA0160"
	VCAInterest      = "ITA_VCA0170"
	VCARent          = "ITA_VCA0180"
	VCARetirement    = "ITA_VCA0190"
	VCAUtilities     = "ITA_VCA0200"
	VCATravel        = "ITA_VCA0210"
	VCACommunication = "ITA_VCA0220"
	VCAAdvertising   = "ITA_VCA0230"
	VCAEntertainment = "ITA_VCA0240"
	VCAConsumables   = "ITA_VCA0250"
	VCAMiscellaneous = "ITA_VCA0260"
	VCAOther         = "ITA_VCA0270"

	VCATotalExpenses   = "ITA_VCA0280"
	VCAOperatingIncome = "ITA_VCA0290"

	VCARetainedEarnings = "ITA_VCA1640"
)

// 青色申告決算書 貸借対照表.
var (
	VCACash                 = Pair{"ITA_VCA1010", "ITA_VCA1210"}
	VCADeposits             = Pair{"ITA_VCA1020", "ITA_VCA1220"}
	VCAAccountsReceivable   = Pair{"ITA_VCA1030", "ITA_VCA1230"}
	VCAInventory            = Pair{"ITA_VCA1040", "ITA_VCA1240"}
	VCAOtherCurrentAssets   = Pair{"ITA_VCA1050", "ITA_VCA1250"}
	VCABuildings            = Pair{"ITA_VCA1060", "ITA_VCA1260"}
	VCABuildingImprovements = Pair{"ITA_VCA1070", "ITA_VCA1270"}
	VCAMachinery            = Pair{"ITA_VCA1080", "ITA_VCA1280"}
	VCAVehicles             = Pair{"ITA_VCA1090", "ITA_VCA1290"}
	VCATools                = Pair{"ITA_VCA1100", "ITA_VCA1300"}
	VCALand                 = Pair{"ITA_VCA1110", "ITA_VCA1310"}
	VCAOtherFixedAssets     = Pair{"ITA_VCA1120", "ITA_VCA1320"}
	VCAAccumulatedDepr      = Pair{"ITA_VCA1130", "ITA_VCA1330"}
	VCAAssetsTotal          = Pair{"ITA_VCA1140", "ITA_VCA1340"}

	VCAAccountsPayable         = Pair{"ITA_VCA1410", "ITA_VCA1510"}
	VCABorrowings              = Pair{"ITA_VCA1420", "ITA_VCA1520"}
	VCAOtherCurrentLiabilities = Pair{"ITA_VCA1430", "ITA_VCA1530"}
	VCALiabilitiesTotal        = Pair{"ITA_VCA1440", "ITA_VCA1540"}

	VCAOwnerEquity        = Pair{"ITA_VCA1610", "ITA_VCA1710"} // 元入金
	VCAOwnerDrawings      = Pair{"ITA_VCA1620", "ITA_VCA1720"} // 事業主貸
	VCAOwnerContributions = Pair{"ITA_VCA1630", "ITA_VCA1730"} // 事業主借
	VCAEquityTotal        = Pair{"ITA_VCA1650", "ITA_VCA1750"}
)

// 申告書第一表.
const (
	ABABusinessIncome      = "ITA_ABA0010"
	ABARealEstateIncome    = "ITA_ABA0020"
	ABAOtherIncome         = "ITA_ABA0030"
	ABABusinessProfit      = "ITA_ABA0110"
	ABARealEstateProfit    = "ITA_ABA0120"
	ABATotalIncome         = "ITA_ABA0130"
	ABATotalDeductions     = "ITA_ABA0280"
	ABABlueReturnDeduction = "ITA_ABA0290"
	ABATaxableIncome       = "ITA_ABA0310"
	ABAIncomeTax           = "ITA_ABA0320"
	ABATaxDue              = "ITA_ABA0360"
)

// 申告書第二表.
const (
	ABBIncomeType             = "ITA_ABB0010"
	ABBPayer                  = "ITA_ABB0020"
	ABBIncomeAmount           = "ITA_ABB0030"
	ABBWithheld               = "ITA_ABB0040"
	ABBSocialInsurance        = "ITA_ABB0110"
	ABBSmallBusinessMutualAid = "ITA_ABB0120"
	ABBLifeInsurance          = "ITA_ABB0130"
	ABBEarthquakeInsurance    = "ITA_ABB0140"
	ABBSpouseDeduction        = "ITA_ABB0210"
	ABBDependentDeduction     = "ITA_ABB0220"
	ABBBasicDeduction         = "ITA_ABB0230"
)

// 別表一(一), e-tax10.CAB field codes.
const (
	HOA110TaxableIncome      = "AAB00010"
	HOA110CorporateTax       = "AAB00020"
	HOA110CorporateTaxAmount = "AAB00140"
	HOA110TaxCredits         = "AAB00160"
	HOA110TaxDue             = "AAB00190"
)

// 別表四, e-tax10.CAB field codes.
const (
	HOA410AccountingProfit = "AQB00010"
	HOA410AddBackTotal     = "AQC00330"
	HOA410DeductionTotal   = "AQD00290"
	HOA410TaxableIncome    = "AQV00010"
)

// 法人決算書 attributes of the business year.
const (
	HOKFiscalYearMonths = "ITA_HOK9010"
	HOKOfficerCount     = "ITA_HOK9020"
)

// Provisional 別表一 codes, used until a filing carries HOA110.
const (
	HOATaxableIncome = "ITA_HOA0010"
	HOACorporateTax  = "ITA_HOA0020"
	HOATaxCredits    = "ITA_HOA0030"
	HOALocalTax      = "ITA_HOA0040"
	HOATaxDue        = "ITA_HOA0050"
)

// Provisional 別表四 codes, used until a filing carries HOA410.
const (
	HODAccountingProfit = "ITA_HOD0010"
	HODAddBackTotal     = "ITA_HOD0020"
	HODDeductionTotal   = "ITA_HOD0030"
	HODTaxableIncome    = "ITA_HOD0040"
)

var vcaBalanceLabels = []struct {
	pair  Pair
	label string
}{
	{VCACash, "現金"},
	{VCADeposits, "預金"},
	{VCAAccountsReceivable, "売掛金"},
	{VCAInventory, "棚卸資産"},
	{VCAOtherCurrentAssets, "その他流動資産"},
	{VCABuildings, "建物"},
	{VCABuildingImprovements, "建物附属設備"},
	{VCAMachinery, "機械装置"},
	{VCAVehicles, "車両運搬具"},
	{VCATools, "工具器具備品"},
	{VCALand, "土地"},
	{VCAOtherFixedAssets, "その他固定資産"},
	{VCAAccumulatedDepr, "減価償却累計額"},
	{VCAAssetsTotal, "資産合計"},
	{VCAAccountsPayable, "買掛金"},
	{VCABorrowings, "借入金"},
	{VCAOtherCurrentLiabilities, "その他流動負債"},
	{VCALiabilitiesTotal, "負債合計"},
	{VCAOwnerEquity, "元入金"},
	{VCAOwnerDrawings, "事業主貸"},
	{VCAOwnerContributions, "事業主借"},
	{VCAEquityTotal, "資本合計"},
}

var fieldLabels = map[model.FormType]map[string]string{
	model.FormVCA: vcaLabels(),
	model.FormABA: {
		ABABusinessIncome:      "収入金額等 営業等",
		ABARealEstateIncome:    "収入金額等 不動産",
		ABAOtherIncome:         "収入金額等 その他",
		ABABusinessProfit:      "所得金額等 営業等",
		ABARealEstateProfit:    "所得金額等 不動産",
		ABATotalIncome:         "合計所得金額",
		ABATotalDeductions:     "所得から差し引かれる金額の合計",
		ABABlueReturnDeduction: "青色申告特別控除額",
		ABATaxableIncome:       "課税される所得金額",
		ABAIncomeTax:           "上の所得に対する税額",
		ABATaxDue:              "申告納税額",
	},
	model.FormABB: {
		ABBIncomeType:             "所得の種類",
		ABBPayer:                  "支払者",
		ABBIncomeAmount:           "収入金額",
		ABBWithheld:               "源泉徴収税額",
		ABBSocialInsurance:        "社会保険料控除",
		ABBSmallBusinessMutualAid: "小規模企業共済等掛金控除",
		ABBLifeInsurance:          "生命保険料控除",
		ABBEarthquakeInsurance:    "地震保険料控除",
		ABBSpouseDeduction:        "配偶者控除",
		ABBDependentDeduction:     "扶養控除",
		ABBBasicDeduction:         "基礎控除",
	},
	model.FormHOA110: {
		HOA110TaxableIncome:      "所得金額又は欠損金額",
		HOA110CorporateTax:       "法人税額",
		HOA110CorporateTaxAmount: "法人税額計",
		HOA110TaxCredits:         "控除税額",
		HOA110TaxDue:             "差引確定法人税額",
	},
	model.FormHOA410: {
		HOA410AccountingProfit: "当期利益又は当期欠損の額",
		HOA410AddBackTotal:     "加算項目合計",
		HOA410DeductionTotal:   "減算項目合計",
		HOA410TaxableIncome:    "所得金額又は欠損金額",
	},
	model.FormHOK: {
		HOKFiscalYearMonths: "事業年度の月数",
		HOKOfficerCount:     "役員数",
	},
	model.FormHOA: {
		HOATaxableIncome: "所得金額又は欠損金額",
		HOACorporateTax:  "法人税額",
		HOATaxCredits:    "控除税額",
		HOALocalTax:      "地方法人税額",
		HOATaxDue:        "差引確定法人税額",
	},
	model.FormHOD: {
		HODAccountingProfit: "当期利益又は当期欠損の額",
		HODAddBackTotal:     "加算項目合計",
		HODDeductionTotal:   "減算項目合計",
		HODTaxableIncome:    "所得金額又は欠損金額",
	},
}

func vcaLabels() map[string]string {
	labels := map[string]string{
		VCARevenue:          "売上(収入)金額",
		VCAOpeningInventory: "期首商品棚卸高",
		VCAPurchases:        "仕入金額",
		VCAClosingInventory: "期末商品棚卸高",
		VCACOGSTotal:        "差引原価",
		VCAGrossProfit:      "差引金額",
		VCATotalExpenses:    "経費計",
		VCAOperatingIncome:  "差引金額(所得)",
		VCARetainedEarnings: "青色申告特別控除前の所得金額",
	}

	expenses := map[string]string{
		VCATaxes:         "租税公課",
		VCAInsurance:     "損害保険料",
		VCARepairs:       "修繕費",
		VCADepreciation:  "減価償却費",
		VCAWelfare:       "福利厚生費",
		VCASalaries:      "給料賃金",
		VCAOutsourcing:   "外注工賃",
		VCAInterest:      "利子割引料",
		VCARent:          "地代家賃",
		VCARetirement:    "退職金",
		VCAUtilities:     "水道光熱費",
		VCATravel:        "旅費交通費",
		VCACommunication: "通信費",
		VCAAdvertising:   "広告宣伝費",
		VCAEntertainment: "接待交際費",
		VCAConsumables:   "消耗品費",
		VCAMiscellaneous: "雑費",
		VCAOther:         "その他の経費",
	}
	maps.Copy(labels, expenses)

	for _, l := range vcaBalanceLabels {
		labels[l.pair.Opening] = l.label + "(期首)"
		labels[l.pair.Closing] = l.label + "(期末)"
	}
	return labels
}

// FieldLabel returns the Japanese label of a field code within a form,
// falling back to the code itself.
func FieldLabel(form model.FormType, code string) string {
	if label, ok := fieldLabels[form][code]; ok {
		return label
	}
	return code
}

// FieldLabels returns the known field codes of a form in sorted order.
func FieldLabels(form model.FormType) []string {
	codes := maps.Keys(fieldLabels[form])
	slices.Sort(codes)
	return codes
}
