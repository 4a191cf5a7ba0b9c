// Package memstore holds the mock exchange's state: issued nonces, the
// offer book with fill bookkeeping, and a token balance ledger. Everything
// lives in process memory; the mock is dev scaffolding, not a backend of
// record.
package memstore

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"

	"goldengate/internal/core/domain"
	"goldengate/pkg/apperror"
)

// --- Nonce store ---

// NonceStore issues single-use challenge nonces with a TTL.
type NonceStore struct {
	mu     sync.Mutex
	nonces map[string]time.Time
	ttl    time.Duration
	now    func() time.Time
}

func NewNonceStore(ttl time.Duration) *NonceStore {
	return &NonceStore{
		nonces: make(map[string]time.Time),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue mints a fresh 8-digit nonce and records its expiry.
func (s *NonceStore) Issue() string {
	n, err := rand.Int(rand.Reader, big.NewInt(100_000_000))
	if err != nil {
		// crypto/rand failing means the process is in serious trouble.
		panic(err)
	}
	nonce := fmt.Sprintf("%08d", n.Int64())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nonces[nonce] = s.now().Add(s.ttl)
	return nonce
}

// Consume validates and removes a nonce. A nonce is good exactly once.
func (s *NonceStore) Consume(nonce string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.nonces[nonce]
	if !ok {
		return apperror.ErrNonceUnknown()
	}
	delete(s.nonces, nonce)
	if s.now().After(expiry) {
		return apperror.ErrNonceUnknown()
	}
	return nil
}

// --- Offer book ---

// OfferRecord is a stored offer plus its fill bookkeeping. Amounts are
// wire-scaled integers, same as the HTTP payloads.
type OfferRecord struct {
	ID            string
	Owner         string // wallet address of the maker
	OfferType     string
	PricePerUnit  int64
	Currency      string
	Amount        int64 // remaining, decremented by fills
	CryptoType    string
	Fee           int64 // total maker fee at creation
	Status        string
	Value         int64
	RevTag        string
	AggregatedFee int64 // maker fee consumed by fills so far
}

// OfferBook is the mock exchange's offer store.
type OfferBook struct {
	mu     sync.RWMutex
	offers map[string]*OfferRecord
}

func NewOfferBook() *OfferBook {
	return &OfferBook{offers: make(map[string]*OfferRecord)}
}

// Create stores a new offer for the given maker and returns its record.
func (b *OfferBook) Create(owner string, req domain.OfferRequest) *OfferRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	rec := &OfferRecord{
		ID:           uuid.NewString(),
		Owner:        owner,
		OfferType:    req.OfferType,
		PricePerUnit: req.PricePerUnit,
		Currency:     req.Currency,
		Amount:       req.Amount,
		CryptoType:   req.CryptoType,
		Fee:          req.Fee,
		Status:       string(domain.OfferStatusActive),
		Value:        req.Value,
		RevTag:       req.RevTag,
	}
	b.offers[rec.ID] = rec
	return rec
}

// List returns all active offers.
func (b *OfferBook) List() []OfferRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]OfferRecord, 0, len(b.offers))
	for _, rec := range b.offers {
		if rec.Status == string(domain.OfferStatusActive) {
			out = append(out, *rec)
		}
	}
	return out
}

// Get returns a copy of the offer.
func (b *OfferBook) Get(id string) (OfferRecord, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	rec, ok := b.offers[id]
	if !ok {
		return OfferRecord{}, apperror.ErrNotFound("offer")
	}
	return *rec, nil
}

// ApplyFill records a taker fill: the remaining amount shrinks and the
// maker-fee share moves into the aggregated figure. A fully consumed offer
// is closed.
func (b *OfferBook) ApplyFill(id string, amount, makerFee int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	rec, ok := b.offers[id]
	if !ok {
		return apperror.ErrNotFound("offer")
	}
	if rec.Status != string(domain.OfferStatusActive) {
		return apperror.Precondition("offer is not active")
	}
	if amount <= 0 {
		return apperror.Precondition("fill amount must be positive")
	}
	if amount > rec.Amount {
		return apperror.ErrFillExceedsRemaining()
	}
	rec.Amount -= amount
	rec.AggregatedFee += makerFee
	if rec.Amount == 0 {
		rec.Status = string(domain.OfferStatusClosed)
	}
	return nil
}

// Close withdraws a maker's own offer.
func (b *OfferBook) Close(id, owner string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	rec, ok := b.offers[id]
	if !ok || rec.Owner != owner {
		return apperror.ErrNotFound("offer")
	}
	rec.Status = string(domain.OfferStatusClosed)
	return nil
}

// --- Balance ledger ---

// Ledger tracks wire-scaled token balances per wallet address, plus the
// deposit transaction hashes it has already seen.
type Ledger struct {
	mu       sync.Mutex
	balances map[string]int64
	deposits map[string]string // txHash -> deposit id
}

func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[string]int64),
		deposits: make(map[string]string),
	}
}

// Credit records a confirmed deposit and returns the deposit id and the
// new balance. A replayed transaction hash keeps its original id and does
// not credit twice.
func (l *Ledger) Credit(address, txHash string, amount int64) (string, int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if id, ok := l.deposits[txHash]; ok {
		return id, l.balances[address]
	}
	id := uuid.NewString()
	l.deposits[txHash] = id
	l.balances[address] += amount
	return id, l.balances[address]
}

// Debit withdraws from a balance, rejecting overdrafts.
func (l *Ledger) Debit(address string, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.balances[address] < amount {
		return apperror.Precondition("insufficient balance")
	}
	l.balances[address] -= amount
	return nil
}

// Balance returns the current balance for an address.
func (l *Ledger) Balance(address string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[address]
}
