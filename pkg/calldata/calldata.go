// Package calldata builds ABI-encoded call data for ERC-20 token
// transfers. Values are arbitrary-precision: an 18-decimal token amount
// never passes through a machine word.
package calldata

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"goldengate/pkg/apperror"
)

// transferSelector is the fixed 4-byte selector for transfer(address,uint256).
const transferSelector = "a9059cbb"

// DefaultTokenDecimals is the ERC-20 default used when a token does not
// declare its own precision.
const DefaultTokenDecimals int32 = 18

// EncodeERC20Transfer returns "0x" + selector + 32-byte recipient word +
// 32-byte big-endian value word, where the value is amount * 10^decimals.
// The address and amount are validated before any encoding: a malformed
// address, a negative amount, or an amount that is not integral at the
// token's decimals is a caller error.
func EncodeERC20Transfer(to string, amount decimal.Decimal, tokenDecimals int32) (string, error) {
	if !common.IsHexAddress(to) {
		return "", apperror.ErrInvalidAddress(to)
	}
	if amount.IsNegative() {
		return "", apperror.ErrNegativeAmount()
	}

	scaled := amount.Shift(tokenDecimals)
	if !scaled.IsInteger() {
		return "", apperror.ErrNonIntegralTokenAmount()
	}

	addr := common.HexToAddress(to)
	addrWord := fmt.Sprintf("%064x", addr.Big())
	valueWord := fmt.Sprintf("%064x", scaled.BigInt())

	var b strings.Builder
	b.WriteString("0x")
	b.WriteString(transferSelector)
	b.WriteString(addrWord)
	b.WriteString(valueWord)
	return b.String(), nil
}
