package model

import "github.com/shopspring/decimal"

// DepreciationMethod is the 償却方法 of an asset.
type DepreciationMethod string

const (
	StraightLine     DepreciationMethod = "定額法"
	DecliningBalance DepreciationMethod = "定率法"
	LumpSum          DepreciationMethod = "一括償却"
)

// DepreciationAsset is one row of the 減価償却費の計算 detail.
type DepreciationAsset struct {
	Name                    string
	AcquisitionDate         string
	AcquisitionCost         Yen
	UsefulLife              int // years
	DepreciationMethod      DepreciationMethod
	DepreciationRate        decimal.Decimal
	DepreciationAmount      Yen
	AccumulatedDepreciation Yen
	BookValue               Yen
	BusinessUseRatio        decimal.Decimal // 0..1
	BusinessDepreciation    Yen
}

// DepreciationSchedule lists depreciable assets with their totals.
type DepreciationSchedule struct {
	Assets                    []DepreciationAsset
	TotalDepreciation         Yen
	TotalBusinessDepreciation Yen
}

// IsEmpty reports whether the schedule carries no asset-level data.
func (s DepreciationSchedule) IsEmpty() bool {
	return len(s.Assets) == 0 && s.TotalDepreciation == 0 && s.TotalBusinessDepreciation == 0
}

// AssetOption configures a DepreciationAsset built with NewDepreciationAsset.
type AssetOption func(*DepreciationAsset)

// NewDepreciationAsset creates an asset used entirely for business, with a
// straight-line method and a one-year useful life unless configured
// otherwise.
//
// Example:
//
//	pc := model.NewDepreciationAsset("ノートパソコン", 250_000,
//		model.WithUsefulLife(4),
//		model.WithBusinessUseRatio(decimal.RequireFromString("0.8")),
//	)
func NewDepreciationAsset(name string, cost Yen, opts ...AssetOption) DepreciationAsset {
	a := DepreciationAsset{
		Name:               name,
		AcquisitionCost:    cost,
		UsefulLife:         1,
		DepreciationMethod: StraightLine,
		DepreciationRate:   decimal.Zero,
		BusinessUseRatio:   decimal.NewFromInt(1),
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// WithUsefulLife sets the useful life in years.
func WithUsefulLife(years int) AssetOption {
	return func(a *DepreciationAsset) {
		a.UsefulLife = years
	}
}

// WithMethod sets the depreciation method.
func WithMethod(m DepreciationMethod) AssetOption {
	return func(a *DepreciationAsset) {
		a.DepreciationMethod = m
	}
}

// WithBusinessUseRatio sets the 事業専用割合.
func WithBusinessUseRatio(r decimal.Decimal) AssetOption {
	return func(a *DepreciationAsset) {
		a.BusinessUseRatio = r
	}
}

// WithDepreciation sets the period's depreciation amount and derives the
// business portion from the business-use ratio.
func WithDepreciation(amount Yen) AssetOption {
	return func(a *DepreciationAsset) {
		a.DepreciationAmount = amount
		a.BusinessDepreciation = NewYen(amount.Decimal().Mul(a.BusinessUseRatio))
	}
}

// NewDepreciationSchedule totals the given assets into a schedule.
func NewDepreciationSchedule(assets ...DepreciationAsset) DepreciationSchedule {
	s := DepreciationSchedule{Assets: assets}
	for _, a := range assets {
		s.TotalDepreciation += a.DepreciationAmount
		s.TotalBusinessDepreciation += a.BusinessDepreciation
	}
	return s
}
