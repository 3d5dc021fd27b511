package model

// BalanceSheet is the sole proprietor's 貸借対照表 from the blue-return
// decision statement.
type BalanceSheet struct {
	// Assets
	Cash                    AccountBalance // 現金
	Deposits                AccountBalance // 預金
	AccountsReceivable      AccountBalance // 売掛金
	Inventory               AccountBalance // 棚卸資産
	OtherCurrentAssets      AccountBalance // その他流動資産
	Buildings               AccountBalance // 建物
	BuildingImprovements    AccountBalance // 建物附属設備
	Machinery               AccountBalance // 機械装置
	Vehicles                AccountBalance // 車両運搬具
	Tools                   AccountBalance // 工具器具備品
	Land                    AccountBalance // 土地
	OtherFixedAssets        AccountBalance // その他固定資産
	AccumulatedDepreciation AccountBalance // 減価償却累計額
	AssetsTotal             AccountBalance // 資産合計

	// Liabilities
	AccountsPayable         AccountBalance // 買掛金
	Borrowings              AccountBalance // 借入金
	OtherCurrentLiabilities AccountBalance // その他流動負債
	LiabilitiesTotal        AccountBalance // 負債合計

	// Equity
	OwnerEquity        AccountBalance // 元入金
	OwnerDrawings      AccountBalance // 事業主貸
	OwnerContributions AccountBalance // 事業主借
	RetainedEarnings   Yen            // 青色申告特別控除前の所得金額
	EquityTotal        AccountBalance // 資本合計
}

// CorporateBalanceSheet is a corporation's 貸借対照表, using a net-assets
// structure instead of owner equity.
type CorporateBalanceSheet struct {
	// Assets
	Cash                    AccountBalance
	Deposits                AccountBalance
	AccountsReceivable      AccountBalance
	Inventory               AccountBalance
	OtherCurrentAssets      AccountBalance
	Buildings               AccountBalance
	BuildingImprovements    AccountBalance
	Machinery               AccountBalance
	Vehicles                AccountBalance
	Tools                   AccountBalance
	Land                    AccountBalance
	OtherFixedAssets        AccountBalance
	AccumulatedDepreciation AccountBalance
	AssetsTotal             AccountBalance

	// Liabilities
	AccountsPayable         AccountBalance // 買掛金
	Borrowings              AccountBalance // 借入金
	AccruedExpenses         AccountBalance // 未払費用
	CorporateTaxPayable     AccountBalance // 未払法人税等
	OtherCurrentLiabilities AccountBalance // その他流動負債
	LiabilitiesTotal        AccountBalance // 負債合計

	// Net assets
	CapitalStock     AccountBalance // 資本金
	CapitalSurplus   AccountBalance // 資本剰余金
	RetainedEarnings AccountBalance // 利益剰余金
	NetIncome        Yen            // 当期純利益
	EquityTotal      AccountBalance // 純資産合計
}

// CostOfGoodsSold is the 売上原価 block of an income statement.
type CostOfGoodsSold struct {
	OpeningInventory Yen // 期首商品棚卸高
	Purchases        Yen // 仕入金額
	ClosingInventory Yen // 期末商品棚卸高
	Total            Yen // 差引原価
}

// ExpenseBreakdown lists the itemized expenses (経費 / 販管費).
type ExpenseBreakdown struct {
	Salaries      Yen // 給料賃金
	Outsourcing   Yen // 外注工賃
	Retirement    Yen // 退職金
	Rent          Yen // 地代家賃
	Interest      Yen // 利子割引料
	Taxes         Yen // 租税公課
	Insurance     Yen // 損害保険料
	Repairs       Yen // 修繕費
	Consumables   Yen // 消耗品費
	Depreciation  Yen // 減価償却費
	Welfare       Yen // 福利厚生費
	Utilities     Yen // 水道光熱費
	Travel        Yen // 旅費交通費
	Communication Yen // 通信費
	Advertising   Yen // 広告宣伝費
	Entertainment Yen // 接待交際費
	Miscellaneous Yen // 雑費
	OtherExpenses Yen // その他の経費
}

// ExpenseItem is a single labelled line of an ExpenseBreakdown.
type ExpenseItem struct {
	Label  string
	Amount Yen
}

// Items returns every expense line in statement order.
func (e ExpenseBreakdown) Items() []ExpenseItem {
	return []ExpenseItem{
		{"給料賃金", e.Salaries},
		{"外注工賃", e.Outsourcing},
		{"退職金", e.Retirement},
		{"地代家賃", e.Rent},
		{"利子割引料", e.Interest},
		{"租税公課", e.Taxes},
		{"損害保険料", e.Insurance},
		{"修繕費", e.Repairs},
		{"消耗品費", e.Consumables},
		{"減価償却費", e.Depreciation},
		{"福利厚生費", e.Welfare},
		{"水道光熱費", e.Utilities},
		{"旅費交通費", e.Travel},
		{"通信費", e.Communication},
		{"広告宣伝費", e.Advertising},
		{"接待交際費", e.Entertainment},
		{"雑費", e.Miscellaneous},
		{"その他の経費", e.OtherExpenses},
	}
}

// Total sums every itemized expense.
func (e ExpenseBreakdown) Total() Yen {
	var total Yen
	for _, item := range e.Items() {
		total += item.Amount
	}
	return total
}

// IncomeStatement is the sole proprietor's 損益計算書.
type IncomeStatement struct {
	Revenue         Yen // 売上（収入）金額
	COGS            CostOfGoodsSold
	GrossProfit     Yen // 差引金額
	Expenses        ExpenseBreakdown
	TotalExpenses   Yen // 経費計
	OperatingIncome Yen // 所得金額（青色申告特別控除前）
}

// CorporateIncomeStatement is a corporation's 損益計算書.
type CorporateIncomeStatement struct {
	Revenue              Yen // 売上高
	COGS                 CostOfGoodsSold
	GrossProfit          Yen // 売上総利益
	Expenses             ExpenseBreakdown
	TotalExpenses        Yen // 販売費及び一般管理費
	OperatingIncome      Yen // 営業利益
	NonOperatingIncome   Yen // 営業外収益
	NonOperatingExpenses Yen // 営業外費用
	OrdinaryIncome       Yen // 経常利益
	ExtraordinaryGain    Yen // 特別利益
	ExtraordinaryLoss    Yen // 特別損失
	PreTaxIncome         Yen // 税引前当期純利益
	CorporateTax         Yen // 法人税等
	NetIncome            Yen // 当期純利益
}
