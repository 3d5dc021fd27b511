package model

// TaxReturn is a normalized filing. It is one of *SoleProprietorReturn,
// *IndividualReturn or *CorporateReturn; narrow it with a type switch.
type TaxReturn interface {
	ReturnType() ReturnType
	Fiscal() FiscalYear
	Meta() Metadata

	isTaxReturn()
}

// SoleProprietorReturn is a blue-return business filing.
type SoleProprietorReturn struct {
	FiscalYear           FiscalYear
	BalanceSheet         BalanceSheet
	IncomeStatement      IncomeStatement
	DepreciationSchedule DepreciationSchedule
	TaxFormA             TaxFormA
	TaxFormB             TaxFormB
	Metadata             Metadata
}

func (*SoleProprietorReturn) ReturnType() ReturnType { return SoleProprietor }
func (r *SoleProprietorReturn) Fiscal() FiscalYear  { return r.FiscalYear }
func (r *SoleProprietorReturn) Meta() Metadata      { return r.Metadata }
func (*SoleProprietorReturn) isTaxReturn()          {}

// IndividualReturn is a wage earner's filing. It has no financial statements.
type IndividualReturn struct {
	FiscalYear FiscalYear
	TaxFormA   TaxFormA
	TaxFormB   TaxFormB
	Metadata   Metadata
}

func (*IndividualReturn) ReturnType() ReturnType { return Individual }
func (r *IndividualReturn) Fiscal() FiscalYear  { return r.FiscalYear }
func (r *IndividualReturn) Meta() Metadata      { return r.Metadata }
func (*IndividualReturn) isTaxReturn()          {}

// CorporateReturn is a micro-corporation filing.
type CorporateReturn struct {
	FiscalYear           FiscalYear
	BalanceSheet         CorporateBalanceSheet
	IncomeStatement      CorporateIncomeStatement
	DepreciationSchedule DepreciationSchedule
	CorporateTaxForm     CorporateTaxForm
	IncomeAdjustment     IncomeAdjustment
	CorporateInfo        CorporateInfo
	Metadata             Metadata
}

func (*CorporateReturn) ReturnType() ReturnType { return Corporate }
func (r *CorporateReturn) Fiscal() FiscalYear  { return r.FiscalYear }
func (r *CorporateReturn) Meta() Metadata      { return r.Metadata }
func (*CorporateReturn) isTaxReturn()          {}

var (
	_ TaxReturn = (*SoleProprietorReturn)(nil)
	_ TaxReturn = (*IndividualReturn)(nil)
	_ TaxReturn = (*CorporateReturn)(nil)
)
