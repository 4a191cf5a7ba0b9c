// Package local provides a development WalletSigner backed by an
// in-process secp256k1 key. It is tooling for tests and the mock exchange
// flow, not custody: keys are throwaway and never persisted.
package local

import (
	"context"
	"crypto/ecdsa"
	"encoding/binary"
	"sync"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"goldengate/internal/core/ports"
	"goldengate/pkg/apperror"
)

// Signer signs with a locally held key. It mimics a wallet's session
// semantics: operations other than Connect fail while disconnected.
type Signer struct {
	mu        sync.Mutex
	key       *ecdsa.PrivateKey
	address   string
	connected bool
	txCount   uint64
}

var _ ports.WalletSigner = (*Signer)(nil)

// NewSigner generates a fresh throwaway key.
func NewSigner() (*Signer, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, apperror.ErrSigner(err)
	}
	return NewSignerFromKey(key), nil
}

// NewSignerFromKey wraps an existing key.
func NewSignerFromKey(key *ecdsa.PrivateKey) *Signer {
	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey).Hex(),
	}
}

// Address returns the signer's account address.
func (s *Signer) Address() string {
	return s.address
}

func (s *Signer) Connect(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = true
	return s.address, nil
}

// PersonalSign signs message per EIP-191 and returns the 65-byte
// signature hex-encoded, with V in the 27/28 convention wallets use.
func (s *Signer) PersonalSign(_ context.Context, message, address string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return "", apperror.ErrSignerDisconnected()
	}
	if address != s.address {
		return "", apperror.Precondition("unknown signing account")
	}

	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), s.key)
	if err != nil {
		return "", apperror.ErrSigner(err)
	}
	sig[64] += 27
	return hexutil.Encode(sig), nil
}

// SendTransaction does not broadcast anywhere; it derives a deterministic
// pseudo transaction hash from the request so the deposit flow has a
// receipt to hand to the backend.
func (s *Signer) SendTransaction(_ context.Context, tx ports.TransactionParams) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return "", apperror.ErrSignerDisconnected()
	}

	s.txCount++
	var nonce [8]byte
	binary.BigEndian.PutUint64(nonce[:], s.txCount)
	hash := crypto.Keccak256(
		[]byte(tx.From),
		[]byte(tx.To),
		[]byte(tx.Value),
		[]byte(tx.Data),
		nonce[:],
	)
	return hexutil.Encode(hash), nil
}

func (s *Signer) Disconnect(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = false
	return nil
}
