package service

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"goldengate/pkg/apperror"
)

// SIWEService builds and verifies EIP-4361 sign-in challenges. The message
// layout is part of the wire contract: the server reconstructs the exact
// byte sequence to verify the signature, so field order and literal
// wording must never drift.
type SIWEService struct{}

// NewSIWEService creates a new SIWEService.
func NewSIWEService() *SIWEService {
	return &SIWEService{}
}

// ChallengeParams are the fields embedded in a sign-in message.
type ChallengeParams struct {
	Domain    string
	Address   string
	Statement string
	URI       string
	ChainID   int64
	Nonce     string
	IssuedAt  string // ISO-8601 / RFC 3339
}

// FormatMessage renders the deterministic challenge message.
func (s *SIWEService) FormatMessage(p ChallengeParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s wants you to sign in with your Ethereum account:\n", p.Domain)
	fmt.Fprintf(&b, "%s\n\n", p.Address)
	if p.Statement != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Statement)
	}
	fmt.Fprintf(&b, "URI: %s\n", p.URI)
	b.WriteString("Version: 1\n")
	fmt.Fprintf(&b, "Chain ID: %d\n", p.ChainID)
	fmt.Fprintf(&b, "Nonce: %s\n", p.Nonce)
	fmt.Fprintf(&b, "Issued At: %s", p.IssuedAt)
	return b.String()
}

// ExtractNonce pulls the nonce field back out of a challenge message. The
// mock exchange uses it to match a submission against an issued nonce.
func (s *SIWEService) ExtractNonce(message string) (string, error) {
	for _, line := range strings.Split(message, "\n") {
		if nonce, ok := strings.CutPrefix(line, "Nonce: "); ok {
			return nonce, nil
		}
	}
	return "", apperror.ErrNonceUnknown()
}

// PersonalHash computes the EIP-191 digest wallets sign for
// personal_sign requests.
func (s *SIWEService) PersonalHash(message string) []byte {
	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(message), message)
	return crypto.Keccak256([]byte(prefixed))
}

// RecoverAddress returns the checksummed address that produced the given
// personal_sign signature over message.
func (s *SIWEService) RecoverAddress(message, signature string) (string, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return "", apperror.ErrInvalidSignature()
	}
	if len(sig) != crypto.SignatureLength {
		return "", apperror.ErrInvalidSignature()
	}
	// Wallets emit V as 27/28; secp256k1 recovery wants 0/1.
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig = append([]byte(nil), sig...)
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(s.PersonalHash(message), sig)
	if err != nil {
		return "", apperror.ErrInvalidSignature()
	}
	return crypto.PubkeyToAddress(*pub).Hex(), nil
}

// Verify checks that signature over message was produced by address.
func (s *SIWEService) Verify(message, signature, address string) error {
	recovered, err := s.RecoverAddress(message, signature)
	if err != nil {
		return err
	}
	if !strings.EqualFold(recovered, address) {
		return apperror.ErrInvalidSignature()
	}
	return nil
}
