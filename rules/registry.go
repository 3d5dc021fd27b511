package rules

import "fmt"

// Registry is an ordered set of rules. It is read-only once built and safe
// to share.
type Registry struct {
	rules []Rule
	index map[string]int
}

// NewRegistry registers rules in order. It panics on a duplicate ID.
func NewRegistry(rules ...Rule) *Registry {
	r := &Registry{
		rules: make([]Rule, 0, len(rules)),
		index: make(map[string]int, len(rules)),
	}
	for _, rule := range rules {
		if _, ok := r.index[rule.ID]; ok {
			panic(fmt.Sprintf("rules: duplicate rule %q", rule.ID))
		}
		r.index[rule.ID] = len(r.rules)
		r.rules = append(r.rules, rule)
	}
	return r
}

// Default returns a fresh registry holding every built-in rule.
func Default() *Registry {
	return NewRegistry(builtin()...)
}

// All returns the rules in registration order.
func (r *Registry) All() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Get looks a rule up by ID.
func (r *Registry) Get(id string) (Rule, bool) {
	i, ok := r.index[id]
	if !ok {
		return Rule{}, false
	}
	return r.rules[i], true
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}

func builtin() []Rule {
	return []Rule{
		BalanceSheetEquation,
		OpeningOwnerEquity,
		MotoireKinFormula,
		NonNegativeCash,
		PLChain,
		COGSCalculation,
		ExpenseTotal,
		BSPLBridge,
		DecisionToReturn,
		DepreciationSum,
		BlueDeductionCap,
		BlueDeductionEligibility,
		UsefulLifeRates,
		SmallAssetThreshold,
		OpeningClosingMatch,
		YearOverYearChange,
		ReasonableRatio,

		BasicDeduction,
		DeductionTotal,
		TaxableIncome,
		WithholdingTotal,

		CorporateBSEquation,
		CorporatePLChain,
		CorporateExpenseTotal,
		CorporateBSPLBridge,
		Betsu4AccountingProfit,
		Betsu4TaxableIncome,
		Betsu1Match,
		CorporateTaxDue,
		CapitalUnder10M,
		OfficerCompensation,
		EntertainmentLimit,
		SmallCorpTaxRate,
		RetainedEarningsContinuity,
	}
}
