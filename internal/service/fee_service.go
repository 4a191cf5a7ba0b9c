package service

import (
	"github.com/shopspring/decimal"

	"goldengate/pkg/apperror"
	"goldengate/pkg/fixedpoint"
)

var (
	oneHundred = decimal.NewFromInt(100)
	one        = decimal.NewFromInt(1)
)

// FeeService computes maker and taker fees over already-parsed decimal
// amounts. All rounding is directional and happens exactly once, at the
// asset's scale: fees the user owes round up (ceiling), amounts shown as
// "you will pay" round down (floor). The ceil/floor asymmetry between
// TakerFee and ValueOwed is deliberate policy observed in production and
// must not be "fixed" without product confirmation.
type FeeService struct{}

// NewFeeService creates a new FeeService.
func NewFeeService() *FeeService {
	return &FeeService{}
}

// MakerFee is the fee a maker accrues on an offer of the given amount:
// ceil6(amount * rate/100).
func (s *FeeService) MakerFee(amount, ratePct decimal.Decimal) decimal.Decimal {
	return amount.Mul(ratePct.Div(oneHundred)).RoundCeil(fixedpoint.CryptoScale)
}

// GrossAmount is the total crypto the maker pays for an offer, fee
// included: ceil6(amount * (1 + rate/100)).
func (s *FeeService) GrossAmount(amount, ratePct decimal.Decimal) decimal.Decimal {
	return amount.Mul(one.Add(ratePct.Div(oneHundred))).RoundCeil(fixedpoint.CryptoScale)
}

// TakerFee is the fee a taker owes on a fill:
// ceil6(amount / (1 - rate/100) - amount). A rate of 0 yields 0.
func (s *FeeService) TakerFee(amount, ratePct decimal.Decimal) (decimal.Decimal, error) {
	divisor, err := feeDivisor(ratePct)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Div(divisor).Sub(amount).RoundCeil(fixedpoint.CryptoScale), nil
}

// ValueOwed is the fiat the taker pays for a fill:
// floor2(amount * price / (1 - rate/100)). Floor means the displayed
// "you will pay" never overstates; the platform absorbs the sub-unit
// remainder on this side.
func (s *FeeService) ValueOwed(amount, pricePerUnit, ratePct decimal.Decimal) (decimal.Decimal, error) {
	divisor, err := feeDivisor(ratePct)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Mul(pricePerUnit).Div(divisor).RoundFloor(fixedpoint.FiatScale), nil
}

// ProratedMakerFee splits the offer's remaining maker fee proportionally to
// the partial fill: ceil6((partial / remainingAmount) * remainingFee).
// remainingAmount must be positive and at least the partial amount — the
// caller rejects oversized fills before any network call.
func (s *FeeService) ProratedMakerFee(partial, remainingFee, remainingAmount decimal.Decimal) (decimal.Decimal, error) {
	if remainingAmount.Sign() <= 0 {
		return decimal.Zero, apperror.Precondition("offer remaining amount must be positive")
	}
	if partial.GreaterThan(remainingAmount) {
		return decimal.Zero, apperror.ErrFillExceedsRemaining()
	}
	if remainingFee.IsNegative() {
		return decimal.Zero, apperror.Precondition("offer remaining fee must not be negative")
	}
	return partial.Div(remainingAmount).Mul(remainingFee).RoundCeil(fixedpoint.CryptoScale), nil
}

// AvailableToFill returns the largest fill a taker can request against an
// offer's remaining amount: floor6(remaining * (1 - rate/100)). Anything
// above that leaves no room for the taker fee inside the remainder.
func (s *FeeService) AvailableToFill(remaining, ratePct decimal.Decimal) (decimal.Decimal, error) {
	divisor, err := feeDivisor(ratePct)
	if err != nil {
		return decimal.Zero, err
	}
	return remaining.Mul(divisor).RoundFloor(fixedpoint.CryptoScale), nil
}

// feeDivisor returns 1 - rate/100, rejecting rates that would zero or
// flip the divisor.
func feeDivisor(ratePct decimal.Decimal) (decimal.Decimal, error) {
	if ratePct.IsNegative() {
		return decimal.Zero, apperror.Precondition("fee rate must not be negative")
	}
	divisor := one.Sub(ratePct.Div(oneHundred))
	if divisor.Sign() <= 0 {
		return decimal.Zero, apperror.Precondition("fee rate must be below 100%")
	}
	return divisor, nil
}
