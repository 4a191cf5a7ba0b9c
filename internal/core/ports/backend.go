package ports

import (
	"context"

	"goldengate/internal/core/domain"
)

// AuthSubmission is the signed challenge posted back to the backend.
type AuthSubmission struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Address   string `json:"address"`
}

// ExchangeBackend is the backend-of-record HTTP collaborator. Every call
// is a single request/response round trip; implementations must impose a
// timeout and map failures to the apperror kinds (network, decode).
type ExchangeBackend interface {
	// GetNonce fetches a fresh sign-in nonce. GET /auth.
	GetNonce(ctx context.Context) (string, error)
	// SubmitAuth posts the signed challenge and returns the access token.
	// POST /auth.
	SubmitAuth(ctx context.Context, sub AuthSubmission) (string, error)
	// ListOffers returns the public offer book. GET /public/offers.
	ListOffers(ctx context.Context) ([]domain.Offer, error)
	// CreateOffer submits a maker offer. POST /private/offers.
	CreateOffer(ctx context.Context, req domain.OfferRequest) error
	// AggregatedFee returns the maker fee already consumed by prior fills
	// of the offer, as a x10^6 scaled integer. POST /private/fee.
	AggregatedFee(ctx context.Context, offerID string) (int64, error)
	// CreateTransaction submits a taker fill. POST /private/transactions.
	CreateTransaction(ctx context.Context, req domain.TransactionRequest) error
	// DepositAddress returns the exchange's on-chain deposit address.
	// GET /public/address.
	DepositAddress(ctx context.Context) (string, error)
	// ConfirmDeposit reports a sent deposit transaction.
	// POST /private/deposit.
	ConfirmDeposit(ctx context.Context, txHash string, amount int64) (*domain.PendingConfirmation, error)
	// Withdraw requests an on-chain withdrawal. POST /private/withdraw.
	Withdraw(ctx context.Context, amount int64, address string) error
	// CloseOffer cancels one of the maker's offers.
	// DELETE /private/user/offers/{id}, 204 on success.
	CloseOffer(ctx context.Context, offerID string) error
}

// TokenSource provides the bearer token for private backend routes.
// *domain.AuthSession implements it.
type TokenSource interface {
	SessionToken() (string, bool)
}
