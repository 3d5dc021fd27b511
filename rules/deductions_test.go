package rules

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/zeicheck/model"
)

func TestBlueDeductionCap(t *testing.T) {
	r := validSoleProprietor()
	assert.Equal(t, 0, len(check(BlueDeductionCap, r, nil)))

	r.IncomeStatement.OperatingIncome = 400_000
	assert.Equal(t, []string{"青色申告特別控除額(650,000) > 控除前所得(400,000)"}, messages(check(BlueDeductionCap, r, nil)))
}

func TestBlueDeductionEligibility(t *testing.T) {
	tests := []struct {
		deduction model.Yen
		fires     bool
	}{
		{0, false},
		{100_000, false},
		{550_000, false},
		{550_001, true},
		{650_000, true},
		{650_001, false},
	}

	for _, tt := range tests {
		t.Run(tt.deduction.String(), func(t *testing.T) {
			r := validSoleProprietor()
			r.TaxFormA.BlueReturnDeduction = tt.deduction

			got := check(BlueDeductionEligibility, r, nil)
			assert.Equal(t, tt.fires, len(got) == 1)
			if tt.fires {
				assert.Equal(t, Info, got[0].Severity)
				assert.Equal(t, "青色申告特別控除額が650,000です。e-Tax申告または電子帳簿保存の要件を確認してください。", got[0].Message)
			}
		})
	}
}
