package model

// TaxFormA is 申告書第一表, the principal computation of an individual filing.
type TaxFormA struct {
	BusinessIncome      Yen // 収入金額等 営業等
	RealEstateIncome    Yen // 収入金額等 不動産
	OtherIncome         Yen // 収入金額等 その他
	BusinessProfit      Yen // 所得金額等 営業等
	RealEstateProfit    Yen // 所得金額等 不動産
	TotalIncome         Yen // 合計所得金額
	TotalDeductions     Yen // 所得から差し引かれる金額の合計
	BlueReturnDeduction Yen // 青色申告特別控除額
	TaxableIncome       Yen // 課税される所得金額
	IncomeTax           Yen // 上の所得に対する税額
	TaxDue              Yen // 申告納税額
}

// IncomeDetail is one row of 所得の内訳 on 申告書第二表.
type IncomeDetail struct {
	Type     string // 所得の種類
	Payer    string // 支払者
	Amount   Yen    // 収入金額
	Withheld Yen    // 源泉徴収税額
}

// TaxFormB is 申告書第二表, the itemized detail of an individual filing.
type TaxFormB struct {
	IncomeDetails          []IncomeDetail
	SocialInsurance        Yen // 社会保険料控除
	SmallBusinessMutualAid Yen // 小規模企業共済等掛金控除
	LifeInsurance          Yen // 生命保険料控除
	EarthquakeInsurance    Yen // 地震保険料控除
	SpouseDeduction        Yen // 配偶者控除
	DependentDeduction     Yen // 扶養控除
	BasicDeduction         Yen // 基礎控除
}

// DeductionsTotal sums every deduction listed on the form.
func (b TaxFormB) DeductionsTotal() Yen {
	return Sum(
		b.SocialInsurance,
		b.SmallBusinessMutualAid,
		b.LifeInsurance,
		b.EarthquakeInsurance,
		b.SpouseDeduction,
		b.DependentDeduction,
		b.BasicDeduction,
	)
}

// WithheldTotal sums the withholding of every income row.
func (b TaxFormB) WithheldTotal() Yen {
	var total Yen
	for _, d := range b.IncomeDetails {
		total += d.Withheld
	}
	return total
}

// CorporateTaxForm is 別表一(一), the principal corporate tax computation.
type CorporateTaxForm struct {
	TaxableIncome      Yen // 所得金額又は欠損金額
	CorporateTaxAmount Yen // 法人税額計
	TaxCredits         Yen // 控除税額
	TaxDue             Yen // 差引確定法人税額
}

// IncomeAdjustment is 別表四, reconciling accounting profit to taxable income.
type IncomeAdjustment struct {
	AccountingProfit Yen // 当期利益又は当期欠損の額
	AddBackTotal     Yen // 加算項目合計
	DeductionTotal   Yen // 減算項目合計
	TaxableIncome    Yen // 所得金額又は欠損金額
}

// SmallCorpCapitalLimit is the capital ceiling for 中小法人 treatment.
const SmallCorpCapitalLimit Yen = 10_000_000

// CorporateInfo holds the basic attributes of a corporation.
type CorporateInfo struct {
	CapitalAmount    Yen
	FiscalYearMonths int
	IsSmallCorp      bool
	OfficerCount     int
}

// NewCorporateInfo derives the attributes from the capital amount, assuming a
// 12-month fiscal year and a single officer.
func NewCorporateInfo(capital Yen) CorporateInfo {
	return CorporateInfo{
		CapitalAmount:    capital,
		FiscalYearMonths: 12,
		IsSmallCorp:      capital <= SmallCorpCapitalLimit,
		OfficerCount:     1,
	}
}
