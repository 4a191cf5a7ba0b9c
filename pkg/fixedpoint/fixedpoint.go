// Package fixedpoint converts between user-facing decimal amounts and the
// scaled integers the backend and blockchain require. Rounding is always
// directional: amounts the user must pay round up, amounts the user will
// receive round down. The platform never rounds in its own favor on the
// receive side, and never in the user's favor on the pay side.
package fixedpoint

import (
	"strings"

	"github.com/shopspring/decimal"

	"goldengate/pkg/apperror"
)

// Wire scales per asset class. Crypto amounts and crypto-denominated fees
// travel as integers scaled by 10^6, fiat prices and fiat values by 10^2.
const (
	CryptoScale int32 = 6
	FiatScale   int32 = 2
)

// Rounding selects the direction a scaled value is rounded in.
type Rounding int

const (
	// RoundCeil rounds away from zero at the target scale. Used for
	// amounts the user owes.
	RoundCeil Rounding = iota
	// RoundFloor rounds toward zero at the target scale. Used for amounts
	// the user receives.
	RoundFloor
)

var maxInt64 = decimal.NewFromInt(1<<63 - 1)

// Normalize rewrites s so that its decimal separator is ".". Both "," and
// the supplied locale separator are accepted as alternates; surrounding
// whitespace is dropped.
func Normalize(s, localeSeparator string) string {
	out := strings.TrimSpace(s)
	if localeSeparator != "" && localeSeparator != "." {
		out = strings.ReplaceAll(out, localeSeparator, ".")
	}
	return strings.ReplaceAll(out, ",", ".")
}

// Parse parses a non-negative decimal numeral, accepting "," as an
// alternate separator.
func Parse(s string) (decimal.Decimal, error) {
	return ParseWithSeparator(s, "")
}

// ParseWithSeparator parses a non-negative decimal numeral written with
// ".", "," or the given locale separator.
func ParseWithSeparator(s, localeSeparator string) (decimal.Decimal, error) {
	cleaned := Normalize(s, localeSeparator)
	if cleaned == "" {
		return decimal.Zero, apperror.ErrInvalidNumber(s)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, apperror.ErrInvalidNumber(s)
	}
	if d.IsNegative() {
		return decimal.Zero, apperror.ErrNegativeAmount()
	}
	return d, nil
}

// ToScaled multiplies d by 10^scale and rounds to an integer in the
// requested direction. A fractional part beyond the scale is never
// silently truncated: it rounds per r, explicitly.
func ToScaled(d decimal.Decimal, scale int32, r Rounding) (int64, error) {
	if d.IsNegative() {
		return 0, apperror.ErrNegativeAmount()
	}
	shifted := d.Shift(scale)
	var rounded decimal.Decimal
	switch r {
	case RoundFloor:
		rounded = shifted.RoundFloor(0)
	default:
		rounded = shifted.RoundCeil(0)
	}
	if rounded.GreaterThan(maxInt64) {
		return 0, apperror.ErrScaleOverflow()
	}
	return rounded.IntPart(), nil
}

// FromScaled converts a scaled integer back to its decimal value.
func FromScaled(v int64, scale int32) decimal.Decimal {
	return decimal.New(v, -scale)
}

// FormatScaled renders a scaled integer as a minimal decimal string, so
// FormatScaled(ToScaled(s, n, r), n) reproduces s up to n fractional
// digits for any s already exact at that scale.
func FormatScaled(v int64, scale int32) string {
	return FromScaled(v, scale).String()
}
