package memstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldengate/internal/core/domain"
)

func TestNonceStore_IssueAndConsume(t *testing.T) {
	s := NewNonceStore(time.Minute)

	nonce := s.Issue()
	require.Len(t, nonce, 8)

	require.NoError(t, s.Consume(nonce))
	// Single use.
	require.Error(t, s.Consume(nonce))
}

func TestNonceStore_Expiry(t *testing.T) {
	s := NewNonceStore(time.Minute)
	current := time.Now()
	s.now = func() time.Time { return current }

	nonce := s.Issue()
	current = current.Add(2 * time.Minute)

	require.Error(t, s.Consume(nonce))
}

func TestNonceStore_UnknownNonce(t *testing.T) {
	s := NewNonceStore(time.Minute)
	require.Error(t, s.Consume("00000000"))
}

func newOfferRequest() domain.OfferRequest {
	return domain.OfferRequest{
		OfferType:    "Sell",
		Amount:       100_000_000,
		Fee:          500_000,
		CryptoType:   "ETH",
		Currency:     "EUR",
		PricePerUnit: 200_050,
		Value:        100_500_000,
		RevTag:       "@maker",
	}
}

func TestOfferBook_CreateAndList(t *testing.T) {
	b := NewOfferBook()

	rec := b.Create("0xmaker", newOfferRequest())
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "0xmaker", rec.Owner)
	assert.Equal(t, "Active", rec.Status)
	assert.Zero(t, rec.AggregatedFee)

	offers := b.List()
	require.Len(t, offers, 1)
	assert.Equal(t, rec.ID, offers[0].ID)
}

func TestOfferBook_ApplyFill(t *testing.T) {
	b := NewOfferBook()
	rec := b.Create("0xmaker", newOfferRequest())

	require.NoError(t, b.ApplyFill(rec.ID, 10_000_000, 40_202))

	got, err := b.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(90_000_000), got.Amount)
	assert.Equal(t, int64(40_202), got.AggregatedFee)
	assert.Equal(t, "Active", got.Status)
}

func TestOfferBook_ApplyFill_ConsumingOfferClosesIt(t *testing.T) {
	b := NewOfferBook()
	rec := b.Create("0xmaker", newOfferRequest())

	require.NoError(t, b.ApplyFill(rec.ID, 100_000_000, 500_000))

	got, err := b.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Closed", got.Status)
	assert.Empty(t, b.List())

	// A closed offer takes no more fills.
	require.Error(t, b.ApplyFill(rec.ID, 1, 0))
}

func TestOfferBook_ApplyFill_Oversized(t *testing.T) {
	b := NewOfferBook()
	rec := b.Create("0xmaker", newOfferRequest())

	require.Error(t, b.ApplyFill(rec.ID, 100_000_001, 0))
}

func TestOfferBook_Close_OwnerOnly(t *testing.T) {
	b := NewOfferBook()
	rec := b.Create("0xmaker", newOfferRequest())

	require.Error(t, b.Close(rec.ID, "0xsomeoneelse"))
	require.NoError(t, b.Close(rec.ID, "0xmaker"))
	assert.Empty(t, b.List())
}

func TestLedger_CreditAndDebit(t *testing.T) {
	l := NewLedger()

	id, balance := l.Credit("0xwallet", "0xtxhash", 1_500_000)
	assert.NotEmpty(t, id)
	assert.Equal(t, int64(1_500_000), balance)

	require.NoError(t, l.Debit("0xwallet", 500_000))
	assert.Equal(t, int64(1_000_000), l.Balance("0xwallet"))
}

func TestLedger_ReplayedTxHashCreditsOnce(t *testing.T) {
	l := NewLedger()

	id1, _ := l.Credit("0xwallet", "0xtxhash", 1_500_000)
	id2, balance := l.Credit("0xwallet", "0xtxhash", 1_500_000)

	assert.Equal(t, id1, id2)
	assert.Equal(t, int64(1_500_000), balance)
}

func TestLedger_Overdraft(t *testing.T) {
	l := NewLedger()
	require.Error(t, l.Debit("0xwallet", 1))
}
