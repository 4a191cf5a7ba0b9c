package domain

import (
	"github.com/shopspring/decimal"

	"goldengate/pkg/fixedpoint"
)

// AssetClass distinguishes how an Amount scales on the wire.
type AssetClass string

const (
	AssetCrypto AssetClass = "crypto" // 6 decimal places
	AssetFiat   AssetClass = "fiat"   // 2 decimal places
	AssetRate   AssetClass = "rate"   // free-form percentage, never wired
)

// Scale returns the wire scale of the asset class. Rates have no wire
// scale; they only parameterize fee computation.
func (c AssetClass) Scale() int32 {
	switch c {
	case AssetFiat:
		return fixedpoint.FiatScale
	default:
		return fixedpoint.CryptoScale
	}
}

// Amount is a decimal quantity tied to an asset class. It is parsed once
// at the input boundary and never re-stringified for computation.
type Amount struct {
	Class AssetClass
	Value decimal.Decimal
}

// NewAmount parses a raw decimal string into an Amount of the given class.
func NewAmount(class AssetClass, raw string) (Amount, error) {
	d, err := fixedpoint.Parse(raw)
	if err != nil {
		return Amount{}, err
	}
	return Amount{Class: class, Value: d}, nil
}

// Scaled converts the amount to its wire integer using the class scale and
// the given rounding direction.
func (a Amount) Scaled(r fixedpoint.Rounding) (int64, error) {
	return fixedpoint.ToScaled(a.Value, a.Class.Scale(), r)
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.Value.IsZero()
}

// String renders the minimal decimal form.
func (a Amount) String() string {
	return a.Value.String()
}
