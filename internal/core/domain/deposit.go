package domain

import "github.com/shopspring/decimal"

// DepositIntent is built per deposit attempt and discarded once the signer
// returns a transaction hash or an error.
type DepositIntent struct {
	ContractAddress string          // ERC-20 token contract
	ToAddress       string          // exchange deposit address
	RawAmount       decimal.Decimal // user-entered token amount
	ScaledAmount    int64           // wire amount, x10^6
	CallData        string          // ABI-encoded transfer(address,uint256)
}

// PendingConfirmation is the backend's acknowledgement of a submitted
// deposit, produced after the signer returns a transaction hash.
type PendingConfirmation struct {
	ID      string `json:"id"`
	Balance int64  `json:"balance"` // x10^6
}
