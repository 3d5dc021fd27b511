package rules

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/zeicheck/model"
)

var yenType = reflect.TypeOf(model.Yen(0))

// randomizeAmounts sets every Yen field reachable through nested structs
// of v to a random amount. Slices and non-amount fields are left alone.
func randomizeAmounts(v reflect.Value, rng *rand.Rand) {
	switch v.Kind() {
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				randomizeAmounts(v.Field(i), rng)
			}
		}
	case reflect.Int64:
		if v.Type() == yenType && v.CanSet() {
			v.SetInt(rng.Int63n(20_000_000) - 5_000_000)
		}
	}
}

func randomSoleProprietor(rng *rand.Rand) *model.SoleProprietorReturn {
	r := validSoleProprietor()
	randomizeAmounts(reflect.ValueOf(r).Elem(), rng)
	return r
}

func randomCorporate(rng *rand.Rand) *model.CorporateReturn {
	r := validCorporate()
	randomizeAmounts(reflect.ValueOf(r).Elem(), rng)
	return r
}

func randomIndividual(rng *rand.Rand) *model.IndividualReturn {
	r := validIndividual()
	randomizeAmounts(reflect.ValueOf(r).Elem(), rng)
	return r
}

func TestBalanceSheetEquationFiresIffUnbalanced(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		r := randomSoleProprietor(rng)
		bs := &r.BalanceSheet

		// Balance each side about half the time so both outcomes are covered.
		if rng.Intn(2) == 0 {
			bs.AssetsTotal.Closing = bs.LiabilitiesTotal.Closing + bs.EquityTotal.Closing
		}
		if rng.Intn(2) == 0 {
			bs.AssetsTotal.Opening = bs.LiabilitiesTotal.Opening + bs.EquityTotal.Opening
		}

		var want []string
		if bs.AssetsTotal.Closing != bs.LiabilitiesTotal.Closing+bs.EquityTotal.Closing {
			want = append(want, "期末残高")
		}
		if bs.AssetsTotal.Opening != bs.LiabilitiesTotal.Opening+bs.EquityTotal.Opening {
			want = append(want, "期首残高")
		}

		got := check(BalanceSheetEquation, r, nil)
		assert.Equal(t, len(want), len(got), "iteration %d: %+v", i, bs)
		for j, label := range want {
			assert.True(t, strings.HasPrefix(got[j].Message, label+":"), "iteration %d: %s", i, got[j].Message)
		}
	}
}

func TestContinuityRulesWithoutPriorYear(t *testing.T) {
	var continuity []Rule
	for _, rule := range Default().All() {
		if strings.HasPrefix(rule.ID, "continuity/") {
			continuity = append(continuity, rule)
		}
	}
	assert.True(t, len(continuity) > 0)
	runner := NewRunner(NewRegistry(continuity...))

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 300; i++ {
		for _, r := range []model.TaxReturn{randomSoleProprietor(rng), randomCorporate(rng), randomIndividual(rng)} {
			got := runner.Run(testContext(), &Context{TaxReturn: r, Config: NewConfig()})
			assert.Equal(t, 0, len(got), "iteration %d (%s): %v", i, r.ReturnType(), got)
		}
	}
}
