package normalizer

import (
	"log/slog"

	"github.com/robinvdvleuten/zeicheck/mapping"
	"github.com/robinvdvleuten/zeicheck/model"
	"github.com/robinvdvleuten/zeicheck/parser"
)

// BuildCorporate builds a corporate filing. The balance sheet and income
// statement come from the ledger rows; the tax forms come from the
// document, preferring HOA110/HOA410 over the provisional HOA/HOD codes.
func BuildCorporate(doc *parser.DecodedDocument, rows []parser.LedgerRow) (*model.CorporateReturn, error) {
	if rows == nil {
		return nil, &MissingInputError{Input: "HOT010 CSV (--csv)"}
	}

	l := accumulate(rows)
	bs := l.balanceSheet()

	return &model.CorporateReturn{
		FiscalYear:           model.DefaultFiscalYear(),
		BalanceSheet:         bs,
		IncomeStatement:      l.incomeStatement(),
		DepreciationSchedule: model.DepreciationSchedule{},
		CorporateTaxForm:     buildCorporateTaxForm(doc),
		IncomeAdjustment:     buildIncomeAdjustment(doc),
		CorporateInfo:        buildCorporateInfo(doc, bs.CapitalStock.Closing),
		Metadata:             metadata(doc),
	}, nil
}

// ledger holds the per-target totals of a HOT010 export. Balance-sheet
// targets keep both columns; income-statement targets only the closing
// column, which carries the period amount.
type ledger struct {
	opening map[mapping.Target]model.Yen
	closing map[mapping.Target]model.Yen
	amounts map[mapping.Target]model.Yen
}

func accumulate(rows []parser.LedgerRow) *ledger {
	l := &ledger{
		opening: map[mapping.Target]model.Yen{},
		closing: map[mapping.Target]model.Yen{},
		amounts: map[mapping.Target]model.Yen{},
	}

	for _, row := range rows {
		target, ok := mapping.LookupAccount(row.Code)
		if !ok {
			slog.Debug("skipping unknown account code", "line", row.Line, "code", row.Code, "name", row.Name)
			continue
		}

		switch target.Statement {
		case mapping.BalanceSheet:
			l.opening[target.Target] += row.Opening
			l.closing[target.Target] += row.Closing
		case mapping.IncomeStatement:
			l.amounts[target.Target] += row.Closing
		}
	}
	return l
}

func (l *ledger) balance(t mapping.Target) model.AccountBalance {
	return model.NewAccountBalance(l.opening[t], l.closing[t])
}

func (l *ledger) amount(t mapping.Target) model.Yen {
	return l.amounts[t]
}

func (l *ledger) balanceSheet() model.CorporateBalanceSheet {
	return model.CorporateBalanceSheet{
		Cash:                    l.balance(mapping.Cash),
		Deposits:                l.balance(mapping.Deposits),
		AccountsReceivable:      l.balance(mapping.AccountsReceivable),
		Inventory:               l.balance(mapping.Inventory),
		OtherCurrentAssets:      l.balance(mapping.OtherCurrentAssets),
		Buildings:               l.balance(mapping.Buildings),
		BuildingImprovements:    l.balance(mapping.BuildingImprovements),
		Machinery:               l.balance(mapping.Machinery),
		Vehicles:                l.balance(mapping.Vehicles),
		Tools:                   l.balance(mapping.Tools),
		Land:                    l.balance(mapping.Land),
		OtherFixedAssets:        l.balance(mapping.OtherFixedAssets),
		AccumulatedDepreciation: l.balance(mapping.AccumulatedDepreciation),
		AssetsTotal:             l.balance(mapping.AssetsTotal),

		AccountsPayable:         l.balance(mapping.AccountsPayable),
		Borrowings:              l.balance(mapping.Borrowings),
		AccruedExpenses:         l.balance(mapping.AccruedExpenses),
		CorporateTaxPayable:     l.balance(mapping.CorporateTaxPayable),
		OtherCurrentLiabilities: l.balance(mapping.OtherCurrentLiabilities),
		LiabilitiesTotal:        l.balance(mapping.LiabilitiesTotal),

		CapitalStock:     l.balance(mapping.CapitalStock),
		CapitalSurplus:   l.balance(mapping.CapitalSurplus),
		RetainedEarnings: l.balance(mapping.RetainedEarnings),
		NetIncome:        l.amount(mapping.NetIncome),
		EquityTotal:      l.balance(mapping.EquityTotal),
	}
}

func (l *ledger) incomeStatement() model.CorporateIncomeStatement {
	return model.CorporateIncomeStatement{
		Revenue: l.amount(mapping.Revenue),
		COGS: model.CostOfGoodsSold{
			OpeningInventory: l.amount(mapping.COGSOpeningInventory),
			Purchases:        l.amount(mapping.COGSPurchases),
			ClosingInventory: l.amount(mapping.COGSClosingInventory),
			Total:            l.amount(mapping.COGSTotal),
		},
		GrossProfit: l.amount(mapping.GrossProfit),
		Expenses: model.ExpenseBreakdown{
			Taxes:         l.amount(mapping.ExpTaxes),
			Insurance:     l.amount(mapping.ExpInsurance),
			Repairs:       l.amount(mapping.ExpRepairs),
			Depreciation:  l.amount(mapping.ExpDepreciation),
			Welfare:       l.amount(mapping.ExpWelfare),
			Salaries:      l.amount(mapping.ExpSalaries),
			Outsourcing:   l.amount(mapping.ExpOutsourcing),
			Interest:      l.amount(mapping.ExpInterest),
			Rent:          l.amount(mapping.ExpRent),
			Retirement:    l.amount(mapping.ExpRetirement),
			Utilities:     l.amount(mapping.ExpUtilities),
			Travel:        l.amount(mapping.ExpTravel),
			Communication: l.amount(mapping.ExpCommunication),
			Advertising:   l.amount(mapping.ExpAdvertising),
			Entertainment: l.amount(mapping.ExpEntertainment),
			Consumables:   l.amount(mapping.ExpConsumables),
			Miscellaneous: l.amount(mapping.ExpMiscellaneous),
			OtherExpenses: l.amount(mapping.ExpOther),
		},
		TotalExpenses:        l.amount(mapping.TotalExpenses),
		OperatingIncome:      l.amount(mapping.OperatingIncome),
		NonOperatingIncome:   l.amount(mapping.NonOperatingIncome),
		NonOperatingExpenses: l.amount(mapping.NonOperatingExpenses),
		OrdinaryIncome:       l.amount(mapping.OrdinaryIncome),
		ExtraordinaryGain:    l.amount(mapping.ExtraordinaryGain),
		ExtraordinaryLoss:    l.amount(mapping.ExtraordinaryLoss),
		PreTaxIncome:         l.amount(mapping.PreTaxIncome),
		CorporateTax:         l.amount(mapping.CorporateTax),
		NetIncome:            l.amount(mapping.NetIncome),
	}
}

func buildCorporateTaxForm(doc *parser.DecodedDocument) model.CorporateTaxForm {
	if f, ok := doc.Form(model.FormHOA110); ok {
		return model.CorporateTaxForm{
			TaxableIncome:      yen(f.Fields, mapping.HOA110TaxableIncome),
			CorporateTaxAmount: yen(f.Fields, mapping.HOA110CorporateTaxAmount),
			TaxCredits:         yen(f.Fields, mapping.HOA110TaxCredits),
			TaxDue:             yen(f.Fields, mapping.HOA110TaxDue),
		}
	}

	hoa := doc.Fields(model.FormHOA)
	return model.CorporateTaxForm{
		TaxableIncome:      yen(hoa, mapping.HOATaxableIncome),
		CorporateTaxAmount: yen(hoa, mapping.HOACorporateTax),
		TaxCredits:         yen(hoa, mapping.HOATaxCredits),
		TaxDue:             yen(hoa, mapping.HOATaxDue),
	}
}

func buildIncomeAdjustment(doc *parser.DecodedDocument) model.IncomeAdjustment {
	if f, ok := doc.Form(model.FormHOA410); ok {
		return model.IncomeAdjustment{
			AccountingProfit: yen(f.Fields, mapping.HOA410AccountingProfit),
			AddBackTotal:     yen(f.Fields, mapping.HOA410AddBackTotal),
			DeductionTotal:   yen(f.Fields, mapping.HOA410DeductionTotal),
			TaxableIncome:    yen(f.Fields, mapping.HOA410TaxableIncome),
		}
	}

	hod := doc.Fields(model.FormHOD)
	return model.IncomeAdjustment{
		AccountingProfit: yen(hod, mapping.HODAccountingProfit),
		AddBackTotal:     yen(hod, mapping.HODAddBackTotal),
		DeductionTotal:   yen(hod, mapping.HODDeductionTotal),
		TaxableIncome:    yen(hod, mapping.HODTaxableIncome),
	}
}

// buildCorporateInfo reads the business-year length and officer count from
// the 法人決算書. Absent or out-of-range values keep the 12-month, single
// officer defaults.
func buildCorporateInfo(doc *parser.DecodedDocument, capital model.Yen) model.CorporateInfo {
	info := model.NewCorporateInfo(capital)
	hok := doc.Fields(model.FormHOK)

	if months := yen(hok, mapping.HOKFiscalYearMonths); months >= 1 && months <= 12 {
		info.FiscalYearMonths = int(months)
	}
	if officers := yen(hok, mapping.HOKOfficerCount); officers >= 1 {
		info.OfficerCount = int(officers)
	}
	return info
}
