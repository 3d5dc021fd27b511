package rules

import (
	"github.com/robinvdvleuten/zeicheck/model"
)

// validSoleProprietor is a blue return on which no error-severity rule
// fires.
func validSoleProprietor() *model.SoleProprietorReturn {
	return &model.SoleProprietorReturn{
		FiscalYear: model.DefaultFiscalYear(),
		BalanceSheet: model.BalanceSheet{
			Cash:               model.NewAccountBalance(300_000, 400_000),
			Deposits:           model.NewAccountBalance(4_000_000, 6_000_000),
			AccountsReceivable: model.NewAccountBalance(1_200_000, 1_500_000),
			Inventory:          model.NewAccountBalance(500_000, 600_000),
			Tools:              model.NewAccountBalance(500_000, 900_000),
			Vehicles:           model.NewAccountBalance(500_000, 1_000_000),
			AssetsTotal:        model.NewAccountBalance(7_000_000, 10_400_000),

			AccountsPayable:  model.NewAccountBalance(1_000_000, 900_000),
			Borrowings:       model.NewAccountBalance(2_000_000, 1_500_000),
			LiabilitiesTotal: model.NewAccountBalance(3_000_000, 2_400_000),

			OwnerEquity:        model.NewAccountBalance(4_000_000, 4_000_000),
			OwnerContributions: model.NewAccountBalance(0, 600_000),
			RetainedEarnings:   3_400_000,
			EquityTotal:        model.NewAccountBalance(4_000_000, 8_000_000),
		},
		IncomeStatement: model.IncomeStatement{
			Revenue: 10_000_000,
			COGS: model.CostOfGoodsSold{
				OpeningInventory: 500_000,
				Purchases:        3_000_000,
				ClosingInventory: 600_000,
				Total:            2_900_000,
			},
			GrossProfit: 7_100_000,
			Expenses: model.ExpenseBreakdown{
				Taxes:         150_000,
				Insurance:     50_000,
				Repairs:       100_000,
				Depreciation:  300_000,
				Salaries:      1_200_000,
				Outsourcing:   400_000,
				Rent:          600_000,
				Utilities:     120_000,
				Travel:        180_000,
				Communication: 150_000,
				Advertising:   200_000,
				Entertainment: 100_000,
				Consumables:   100_000,
				Miscellaneous: 50_000,
			},
			TotalExpenses:   3_700_000,
			OperatingIncome: 3_400_000,
		},
		TaxFormA: model.TaxFormA{
			BusinessIncome:      10_000_000,
			BusinessProfit:      2_750_000,
			TotalIncome:         2_750_000,
			BlueReturnDeduction: 650_000,
		},
		TaxFormB: model.TaxFormB{IncomeDetails: []model.IncomeDetail{}},
	}
}

// validCorporate is a corporate return on which no rule fires.
func validCorporate() *model.CorporateReturn {
	return &model.CorporateReturn{
		FiscalYear: model.DefaultFiscalYear(),
		BalanceSheet: model.CorporateBalanceSheet{
			Cash:        model.NewAccountBalance(200_000, 500_000),
			Deposits:    model.NewAccountBalance(5_300_000, 9_500_000),
			AssetsTotal: model.NewAccountBalance(5_500_000, 10_000_000),

			AccruedExpenses:     model.NewAccountBalance(1_000_000, 500_000),
			CorporateTaxPayable: model.NewAccountBalance(0, 1_000_000),
			LiabilitiesTotal:    model.NewAccountBalance(1_000_000, 1_500_000),

			CapitalStock:     model.NewAccountBalance(3_000_000, 3_000_000),
			RetainedEarnings: model.NewAccountBalance(1_500_000, 5_500_000),
			NetIncome:        4_000_000,
			EquityTotal:      model.NewAccountBalance(4_500_000, 8_500_000),
		},
		IncomeStatement: model.CorporateIncomeStatement{
			Revenue:     12_000_000,
			GrossProfit: 12_000_000,
			Expenses: model.ExpenseBreakdown{
				Salaries:      4_800_000,
				Rent:          1_200_000,
				Entertainment: 300_000,
				Communication: 200_000,
				Depreciation:  500_000,
			},
			TotalExpenses:        7_000_000,
			OperatingIncome:      5_000_000,
			NonOperatingIncome:   10_000,
			NonOperatingExpenses: 10_000,
			OrdinaryIncome:       5_000_000,
			PreTaxIncome:         5_000_000,
			CorporateTax:         1_000_000,
			NetIncome:            4_000_000,
		},
		CorporateTaxForm: model.CorporateTaxForm{
			TaxableIncome:      5_300_000,
			CorporateTaxAmount: 795_000,
			TaxDue:             795_000,
		},
		IncomeAdjustment: model.IncomeAdjustment{
			AccountingProfit: 5_000_000,
			AddBackTotal:     300_000,
			TaxableIncome:    5_300_000,
		},
		CorporateInfo: model.NewCorporateInfo(3_000_000),
	}
}

func validIndividual() *model.IndividualReturn {
	return &model.IndividualReturn{
		FiscalYear: model.DefaultFiscalYear(),
		TaxFormA: model.TaxFormA{
			TotalIncome:     4_360_000,
			TotalDeductions: 1_280_000,
			TaxableIncome:   3_080_000,
		},
		TaxFormB: model.TaxFormB{
			IncomeDetails: []model.IncomeDetail{
				{Type: "給与", Payer: "株式会社テスト", Amount: 6_000_000, Withheld: 150_000},
			},
			SocialInsurance: 800_000,
			BasicDeduction:  480_000,
		},
	}
}

// check runs a single rule through a registry holding only that rule.
func check(rule Rule, r model.TaxReturn, prior model.TaxReturn) []Diagnostic {
	return NewRunner(NewRegistry(rule)).Run(testContext(), &Context{TaxReturn: r, PriorYear: prior, Config: NewConfig()})
}

func messages(diags []Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.Message
	}
	return out
}
