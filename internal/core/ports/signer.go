package ports

import "context"

// TransactionParams are the fields of an eth_sendTransaction request the
// core cares about. Value is a hex-encoded wei amount ("0x0" for token
// transfers, where the amount lives in Data).
type TransactionParams struct {
	From  string
	To    string
	Value string
	Data  string
}

// WalletSigner is the external wallet collaborator. The core treats it as
// an opaque capability: request a signature, get a signature or an error.
// Session transport (sockets, deep links) is the implementation's problem.
type WalletSigner interface {
	// Connect establishes a wallet session and returns the account address.
	Connect(ctx context.Context) (string, error)
	// PersonalSign signs an EIP-191 personal message with the account.
	PersonalSign(ctx context.Context, message, address string) (string, error)
	// SendTransaction asks the wallet to sign and broadcast a transaction,
	// returning its hash.
	SendTransaction(ctx context.Context, tx TransactionParams) (string, error)
	// Disconnect tears the wallet session down.
	Disconnect(ctx context.Context) error
}
