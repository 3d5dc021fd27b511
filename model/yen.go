// Package model defines the typed data model of an e-Tax filing: whole-yen
// currency values, financial statements, tax forms and the three filing
// archetypes a document can normalize into.
//
// Every type is a plain value container. Consistency between figures (the
// balance-sheet equation, the P/L chain, continuity with a prior period) is
// never enforced here; malformed filings still produce a value so that the
// rules package can report what is wrong with it.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Yen is a whole-yen monetary amount. All arithmetic on Yen is exact integer
// arithmetic.
type Yen int64

// MaxYen is the largest amount an e-Tax amount field can hold (15 digits).
// Sums of thousands of such amounts still fit in an int64.
const MaxYen Yen = 999_999_999_999_999

var (
	maxYenDecimal = decimal.NewFromInt(int64(MaxYen))
	minYenDecimal = decimal.NewFromInt(-int64(MaxYen))
)

// NewYen converts a decimal amount to Yen, truncating toward zero. Amounts
// beyond ±MaxYen are clamped to it.
func NewYen(d decimal.Decimal) Yen {
	switch {
	case d.GreaterThan(maxYenDecimal):
		return MaxYen
	case d.LessThan(minYenDecimal):
		return -MaxYen
	}
	return Yen(d.IntPart())
}

// ParseYen parses a raw field value such as "1234567" or " -500 ".
// Fractions are truncated toward zero and out-of-range amounts clamp to
// ±MaxYen. Empty or non-numeric input yields 0.
func ParseYen(raw string) Yen {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return NewYen(d)
}

// Sum adds the given amounts.
func Sum(amounts ...Yen) Yen {
	var total Yen
	for _, a := range amounts {
		total += a
	}
	return total
}

// Decimal returns the amount as a decimal for ratio calculations.
func (y Yen) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(y))
}

// String formats the amount with Japanese digit grouping, e.g. "1,234,567".
func (y Yen) String() string {
	return message.NewPrinter(language.Japanese).Sprintf("%d", int64(y))
}

// AccountBalance holds a balance-sheet line's amount at period start and end.
type AccountBalance struct {
	Opening Yen
	Closing Yen
}

// NewAccountBalance creates an AccountBalance.
func NewAccountBalance(opening, closing Yen) AccountBalance {
	return AccountBalance{Opening: opening, Closing: closing}
}
