package mapping

import "strings"

// Statement tells which financial statement an account code feeds.
type Statement int

const (
	BalanceSheet Statement = iota
	IncomeStatement
)

func (s Statement) String() string {
	if s == BalanceSheet {
		return "bs"
	}
	return "pl"
}

// Target names the line an account code is placed on.
type Target string

// Balance-sheet targets.
const (
	Cash                    Target = "cash"
	Deposits                Target = "deposits"
	AccountsReceivable      Target = "accountsReceivable"
	Inventory               Target = "inventory"
	OtherCurrentAssets      Target = "otherCurrentAssets"
	Buildings               Target = "buildings"
	BuildingImprovements    Target = "buildingImprovements"
	Machinery               Target = "machinery"
	Vehicles                Target = "vehicles"
	Tools                   Target = "tools"
	Land                    Target = "land"
	OtherFixedAssets        Target = "otherFixedAssets"
	AccumulatedDepreciation Target = "accumulatedDepreciation"
	AssetsTotal             Target = "assetsTotal"

	AccountsPayable         Target = "accountsPayable"
	Borrowings              Target = "borrowings"
	AccruedExpenses         Target = "accruedExpenses"
	CorporateTaxPayable     Target = "corporateTaxPayable"
	OtherCurrentLiabilities Target = "otherCurrentLiabilities"
	LiabilitiesTotal        Target = "liabilitiesTotal"

	CapitalStock     Target = "capitalStock"
	CapitalSurplus   Target = "capitalSurplus"
	RetainedEarnings Target = "retainedEarnings"
	EquityTotal      Target = "equityTotal"
)

// Income-statement targets.
const (
	Revenue              Target = "revenue"
	COGSOpeningInventory Target = "cogsOpeningInventory"
	COGSPurchases        Target = "cogsPurchases"
	COGSClosingInventory Target = "cogsClosingInventory"
	COGSTotal            Target = "cogsTotal"
	GrossProfit          Target = "grossProfit"

	ExpTaxes         Target = "expTaxes"
	ExpInsurance     Target = "expInsurance"
	ExpRepairs       Target = "expRepairs"
	ExpDepreciation  Target = "expDepreciation"
	ExpWelfare       Target = "expWelfare"
	ExpSalaries      Target = "expSalaries"
	ExpOutsourcing   Target = "expOutsourcing"
	ExpInterest      Target = "expInterest"
	ExpRent          Target = "expRent"
	ExpRetirement    Target = "expRetirement"
	ExpUtilities     Target = "expUtilities"
	ExpTravel        Target = "expTravel"
	ExpCommunication Target = "expCommunication"
	ExpAdvertising   Target = "expAdvertising"
	ExpEntertainment Target = "expEntertainment"
	ExpConsumables   Target = "expConsumables"
	ExpMiscellaneous Target = "expMiscellaneous"
	ExpOther         Target = "expOther"
	TotalExpenses    Target = "totalExpenses"
	OperatingIncome  Target = "operatingIncome"

	NonOperatingIncome   Target = "nonOperatingIncome"
	NonOperatingExpenses Target = "nonOperatingExpenses"
	OrdinaryIncome       Target = "ordinaryIncome"
	ExtraordinaryGain    Target = "extraordinaryGain"
	ExtraordinaryLoss    Target = "extraordinaryLoss"
	PreTaxIncome         Target = "preTaxIncome"
	CorporateTax         Target = "corporateTax"
	NetIncome            Target = "netIncome"
)

// AccountTarget places a HOT010 account on a statement line.
type AccountTarget struct {
	Statement Statement
	Target    Target
}

func bs(t Target) AccountTarget { return AccountTarget{BalanceSheet, t} }
func pl(t Target) AccountTarget { return AccountTarget{IncomeStatement, t} }

// Account codes are 業種番号(2) + 区分(3) + 整数(4). The industry prefix is
// ignored; only the trailing seven digits are looked up. The coding is only
// partially standardized, so unknown codes are skipped.
var accountCodes = map[string]AccountTarget{
	// 資産
	"1000001": bs(Cash),
	"1000002": bs(Deposits),
	"1000003": bs(AccountsReceivable),
	"1000004": bs(Inventory),
	"1000005": bs(OtherCurrentAssets),
	"1000006": bs(Buildings),
	"1000007": bs(BuildingImprovements),
	"1000008": bs(Machinery),
	"1000009": bs(Vehicles),
	"1000010": bs(Tools),
	"1000011": bs(Land),
	"1000012": bs(OtherFixedAssets),
	"1000013": bs(AccumulatedDepreciation),
	"1000099": bs(AssetsTotal),

	// 負債
	"2000001": bs(AccountsPayable),
	"2000002": bs(Borrowings),
	"2000003": bs(AccruedExpenses),
	"2000004": bs(CorporateTaxPayable),
	"2000005": bs(OtherCurrentLiabilities),
	"2000099": bs(LiabilitiesTotal),

	// 純資産
	"3000001": bs(CapitalStock),
	"3000002": bs(CapitalSurplus),
	"3000003": bs(RetainedEarnings),
	"3000099": bs(EquityTotal),

	// 売上・原価
	"4000001": pl(Revenue),
	"4000002": pl(COGSOpeningInventory),
	"4000003": pl(COGSPurchases),
	"4000004": pl(COGSClosingInventory),
	"4000005": pl(COGSTotal),
	"4000006": pl(GrossProfit),

	// 販管費
	"5000001": pl(ExpTaxes),
	"5000002": pl(ExpInsurance),
	"5000003": pl(ExpRepairs),
	"5000004": pl(ExpDepreciation),
	"5000005": pl(ExpWelfare),
	"5000006": pl(ExpSalaries),
	"5000007": pl(ExpOutsourcing),
	"5000008": pl(ExpInterest),
	"5000009": pl(ExpRent),
	"5000010": pl(ExpRetirement),
	"5000011": pl(ExpUtilities),
	"5000012": pl(ExpTravel),
	"5000013": pl(ExpCommunication),
	"5000014": pl(ExpAdvertising),
	"5000015": pl(ExpEntertainment),
	"5000016": pl(ExpConsumables),
	"5000017": pl(ExpMiscellaneous),
	"5000018": pl(ExpOther),
	"5000099": pl(TotalExpenses),
	"5000100": pl(OperatingIncome),

	// 営業外・特別
	"6000001": pl(NonOperatingIncome),
	"6000002": pl(NonOperatingExpenses),
	"6000003": pl(OrdinaryIncome),
	"6000004": pl(ExtraordinaryGain),
	"6000005": pl(ExtraordinaryLoss),
	"6000006": pl(PreTaxIncome),
	"6000007": pl(CorporateTax),
	"6000008": pl(NetIncome),
}

// LookupAccount resolves a 9-digit HOT010 account code. The second result
// is false for codes that are malformed or not in the table.
func LookupAccount(code string) (AccountTarget, bool) {
	code = strings.TrimSpace(code)
	if len(code) != 9 {
		return AccountTarget{}, false
	}
	t, ok := accountCodes[code[2:]]
	return t, ok
}
