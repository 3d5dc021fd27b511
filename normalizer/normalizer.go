// Package normalizer turns decoded documents into typed tax returns.
//
// Absent field codes read as zero; the builders never fail on missing data.
// The only error is a corporate filing without its ledger export, since the
// corporate statements are taken from the HOT010 rows alone.
package normalizer

import (
	"errors"
	"fmt"

	"github.com/robinvdvleuten/zeicheck/mapping"
	"github.com/robinvdvleuten/zeicheck/model"
	"github.com/robinvdvleuten/zeicheck/parser"
)

// MissingInputError reports a corporate filing normalized without ledger
// rows.
type MissingInputError struct {
	Filename string
	Input    string
}

func (e *MissingInputError) Error() string {
	msg := fmt.Sprintf("法人の財務諸表には %s の指定が必要です", e.Input)
	if e.Filename == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Filename, msg)
}

// Option configures Normalize.
type Option func(*options)

type options struct {
	filePath     string
	filingMethod string
}

// WithFilePath records the source path in the return's metadata.
func WithFilePath(path string) Option {
	return func(o *options) {
		o.filePath = path
	}
}

// WithFilingMethod records how the return was filed, e.g. "e-Tax".
func WithFilingMethod(method string) Option {
	return func(o *options) {
		o.filingMethod = method
	}
}

// Normalize classifies the document and builds the matching return. rows
// are the decoded ledger export; nil means none was supplied.
func Normalize(doc *parser.DecodedDocument, rows []parser.LedgerRow, opts ...Option) (model.TaxReturn, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	switch parser.DetectArchetype(doc) {
	case model.Corporate:
		r, err := BuildCorporate(doc, rows)
		if err != nil {
			var missing *MissingInputError
			if errors.As(err, &missing) {
				missing.Filename = o.filePath
			}
			return nil, err
		}
		o.apply(&r.Metadata)
		return r, nil

	case model.SoleProprietor:
		r := BuildSoleProprietor(doc)
		o.apply(&r.Metadata)
		return r, nil

	default:
		r := BuildIndividual(doc)
		o.apply(&r.Metadata)
		return r, nil
	}
}

func (o *options) apply(m *model.Metadata) {
	m.FilePath = o.filePath
	m.FilingMethod = o.filingMethod
}

// BuildSoleProprietor builds a blue-return filing from VCA, ABA and ABB.
func BuildSoleProprietor(doc *parser.DecodedDocument) *model.SoleProprietorReturn {
	vca := doc.Fields(model.FormVCA)

	return &model.SoleProprietorReturn{
		FiscalYear:           model.DefaultFiscalYear(),
		BalanceSheet:         buildBalanceSheet(vca),
		IncomeStatement:      buildIncomeStatement(vca),
		DepreciationSchedule: model.DepreciationSchedule{},
		TaxFormA:             buildTaxFormA(doc.Fields(model.FormABA)),
		TaxFormB:             buildTaxFormB(doc.Fields(model.FormABB)),
		Metadata:             metadata(doc),
	}
}

// BuildIndividual builds a wage earner's filing from ABA and ABB.
func BuildIndividual(doc *parser.DecodedDocument) *model.IndividualReturn {
	return &model.IndividualReturn{
		FiscalYear: model.DefaultFiscalYear(),
		TaxFormA:   buildTaxFormA(doc.Fields(model.FormABA)),
		TaxFormB:   buildTaxFormB(doc.Fields(model.FormABB)),
		Metadata:   metadata(doc),
	}
}

func metadata(doc *parser.DecodedDocument) model.Metadata {
	return model.Metadata{FormTypes: parser.DetectFormTags(doc)}
}

func yen(fields map[string]string, code string) model.Yen {
	return model.ParseYen(fields[code])
}

func balance(fields map[string]string, p mapping.Pair) model.AccountBalance {
	return model.NewAccountBalance(yen(fields, p.Opening), yen(fields, p.Closing))
}

func buildIncomeStatement(vca map[string]string) model.IncomeStatement {
	return model.IncomeStatement{
		Revenue: yen(vca, mapping.VCARevenue),
		COGS: model.CostOfGoodsSold{
			OpeningInventory: yen(vca, mapping.VCAOpeningInventory),
			Purchases:        yen(vca, mapping.VCAPurchases),
			ClosingInventory: yen(vca, mapping.VCAClosingInventory),
			Total:            yen(vca, mapping.VCACOGSTotal),
		},
		GrossProfit: yen(vca, mapping.VCAGrossProfit),
		Expenses: model.ExpenseBreakdown{
			Taxes:         yen(vca, mapping.VCATaxes),
			Insurance:     yen(vca, mapping.VCAInsurance),
			Repairs:       yen(vca, mapping.VCARepairs),
			Depreciation:  yen(vca, mapping.VCADepreciation),
			Welfare:       yen(vca, mapping.VCAWelfare),
			Salaries:      yen(vca, mapping.VCASalaries),
			Outsourcing:   yen(vca, mapping.VCAOutsourcing),
			Interest:      yen(vca, mapping.VCAInterest),
			Rent:          yen(vca, mapping.VCARent),
			Retirement:    yen(vca, mapping.VCARetirement),
			Utilities:     yen(vca, mapping.VCAUtilities),
			Travel:        yen(vca, mapping.VCATravel),
			Communication: yen(vca, mapping.VCACommunication),
			Advertising:   yen(vca, mapping.VCAAdvertising),
			Entertainment: yen(vca, mapping.VCAEntertainment),
			Consumables:   yen(vca, mapping.VCAConsumables),
			Miscellaneous: yen(vca, mapping.VCAMiscellaneous),
			OtherExpenses: yen(vca, mapping.VCAOther),
		},
		TotalExpenses:   yen(vca, mapping.VCATotalExpenses),
		OperatingIncome: yen(vca, mapping.VCAOperatingIncome),
	}
}

func buildBalanceSheet(vca map[string]string) model.BalanceSheet {
	return model.BalanceSheet{
		Cash:                    balance(vca, mapping.VCACash),
		Deposits:                balance(vca, mapping.VCADeposits),
		AccountsReceivable:      balance(vca, mapping.VCAAccountsReceivable),
		Inventory:               balance(vca, mapping.VCAInventory),
		OtherCurrentAssets:      balance(vca, mapping.VCAOtherCurrentAssets),
		Buildings:               balance(vca, mapping.VCABuildings),
		BuildingImprovements:    balance(vca, mapping.VCABuildingImprovements),
		Machinery:               balance(vca, mapping.VCAMachinery),
		Vehicles:                balance(vca, mapping.VCAVehicles),
		Tools:                   balance(vca, mapping.VCATools),
		Land:                    balance(vca, mapping.VCALand),
		OtherFixedAssets:        balance(vca, mapping.VCAOtherFixedAssets),
		AccumulatedDepreciation: balance(vca, mapping.VCAAccumulatedDepr),
		AssetsTotal:             balance(vca, mapping.VCAAssetsTotal),

		AccountsPayable:         balance(vca, mapping.VCAAccountsPayable),
		Borrowings:              balance(vca, mapping.VCABorrowings),
		OtherCurrentLiabilities: balance(vca, mapping.VCAOtherCurrentLiabilities),
		LiabilitiesTotal:        balance(vca, mapping.VCALiabilitiesTotal),

		OwnerEquity:        balance(vca, mapping.VCAOwnerEquity),
		OwnerDrawings:      balance(vca, mapping.VCAOwnerDrawings),
		OwnerContributions: balance(vca, mapping.VCAOwnerContributions),
		RetainedEarnings:   yen(vca, mapping.VCARetainedEarnings),
		EquityTotal:        balance(vca, mapping.VCAEquityTotal),
	}
}

func buildTaxFormA(aba map[string]string) model.TaxFormA {
	return model.TaxFormA{
		BusinessIncome:      yen(aba, mapping.ABABusinessIncome),
		RealEstateIncome:    yen(aba, mapping.ABARealEstateIncome),
		OtherIncome:         yen(aba, mapping.ABAOtherIncome),
		BusinessProfit:      yen(aba, mapping.ABABusinessProfit),
		RealEstateProfit:    yen(aba, mapping.ABARealEstateProfit),
		TotalIncome:         yen(aba, mapping.ABATotalIncome),
		TotalDeductions:     yen(aba, mapping.ABATotalDeductions),
		BlueReturnDeduction: yen(aba, mapping.ABABlueReturnDeduction),
		TaxableIncome:       yen(aba, mapping.ABATaxableIncome),
		IncomeTax:           yen(aba, mapping.ABAIncomeTax),
		TaxDue:              yen(aba, mapping.ABATaxDue),
	}
}

// buildTaxFormB reads the single income row the form carries. The row is
// left out when none of its fields are present.
func buildTaxFormB(abb map[string]string) model.TaxFormB {
	details := []model.IncomeDetail{}
	if hasAny(abb, mapping.ABBIncomeType, mapping.ABBPayer, mapping.ABBIncomeAmount, mapping.ABBWithheld) {
		details = append(details, model.IncomeDetail{
			Type:     abb[mapping.ABBIncomeType],
			Payer:    abb[mapping.ABBPayer],
			Amount:   yen(abb, mapping.ABBIncomeAmount),
			Withheld: yen(abb, mapping.ABBWithheld),
		})
	}

	return model.TaxFormB{
		IncomeDetails:          details,
		SocialInsurance:        yen(abb, mapping.ABBSocialInsurance),
		SmallBusinessMutualAid: yen(abb, mapping.ABBSmallBusinessMutualAid),
		LifeInsurance:          yen(abb, mapping.ABBLifeInsurance),
		EarthquakeInsurance:    yen(abb, mapping.ABBEarthquakeInsurance),
		SpouseDeduction:        yen(abb, mapping.ABBSpouseDeduction),
		DependentDeduction:     yen(abb, mapping.ABBDependentDeduction),
		BasicDeduction:         yen(abb, mapping.ABBBasicDeduction),
	}
}

func hasAny(fields map[string]string, codes ...string) bool {
	for _, code := range codes {
		if fields[code] != "" {
			return true
		}
	}
	return false
}
