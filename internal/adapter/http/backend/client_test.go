package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldengate/internal/core/domain"
	"goldengate/internal/core/ports"
	"goldengate/pkg/apperror"
)

type staticTokens struct {
	token string
	ok    bool
}

func (s staticTokens) SessionToken() (string, bool) { return s.token, s.ok }

func newTestClient(t *testing.T, handler http.Handler, tokens ports.TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, tokens, zerolog.Nop())
}

func TestClient_GetNonce(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "32891756"})
	}), staticTokens{})

	nonce, err := c.GetNonce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "32891756", nonce)
}

func TestClient_GetNonce_EmptyBodyIsDecodeError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}), staticTokens{})

	_, err := c.GetNonce(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperror.KindDecode, apperror.KindOf(err))
}

func TestClient_SubmitAuth(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "challenge text", body["message"])
		assert.Equal(t, "0xsig", body["signature"])
		assert.Equal(t, "0xabc", body["address"])

		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "jwt-token"})
	}), staticTokens{})

	token, err := c.SubmitAuth(context.Background(), ports.AuthSubmission{
		Message:   "challenge text",
		Signature: "0xsig",
		Address:   "0xabc",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
}

func TestClient_SubmitAuth_Non200(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}), staticTokens{})

	_, err := c.SubmitAuth(context.Background(), ports.AuthSubmission{})
	require.Error(t, err)
	assert.Equal(t, apperror.KindNetwork, apperror.KindOf(err))
}

func TestClient_ListOffers_ScalesToDomain(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/public/offers", r.URL.Path)
		_, _ = w.Write([]byte(`[{
			"id": "offer-1",
			"offerType": "Sell",
			"pricePerUnit": 200050,
			"currency": "EUR",
			"amount": 100000000,
			"cryptoType": "ETH",
			"fee": 500000,
			"status": "Active",
			"value": 100500000,
			"revTag": "@maker"
		}]`))
	}), staticTokens{})

	offers, err := c.ListOffers(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 1)

	o := offers[0]
	assert.Equal(t, "offer-1", o.ID)
	assert.Equal(t, domain.DirectionSell, o.Direction)
	assert.Equal(t, "2000.5", o.PricePerUnit.String())
	assert.Equal(t, "100", o.Amount.String())
	assert.Equal(t, "0.5", o.MakerFee.String())
	assert.Equal(t, "100.5", o.Value.String())
	assert.True(t, o.Active())
}

func TestClient_PrivateRoutes_AttachBearer(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/private/offers", r.URL.Path)
	}), staticTokens{token: "jwt-token", ok: true})

	err := c.CreateOffer(context.Background(), domain.OfferRequest{OfferType: "Sell", Amount: 1_000_000})
	require.NoError(t, err)
}

func TestClient_PrivateRoutes_RequireToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("request must not reach the backend without a token")
	}), staticTokens{})

	err := c.CreateOffer(context.Background(), domain.OfferRequest{})
	require.Error(t, err)
	assert.Equal(t, apperror.KindPrecondition, apperror.KindOf(err))
}

func TestClient_AggregatedFee(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/private/fee", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "offer-1", body["offerId"])
		_ = json.NewEncoder(w).Encode(map[string]int64{"aggregatedFee": 100000})
	}), staticTokens{token: "jwt-token", ok: true})

	fee, err := c.AggregatedFee(context.Background(), "offer-1")
	require.NoError(t, err)
	assert.Equal(t, int64(100_000), fee)
}

func TestClient_ConfirmDeposit(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/private/deposit", r.URL.Path)
		var body struct {
			TxHash string `json:"txHash"`
			Amount int64  `json:"amount"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "0xtxhash", body.TxHash)
		assert.Equal(t, int64(1_500_000), body.Amount)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": "dep-1", "balance": 1_500_000})
	}), staticTokens{token: "jwt-token", ok: true})

	pending, err := c.ConfirmDeposit(context.Background(), "0xtxhash", 1_500_000)
	require.NoError(t, err)
	assert.Equal(t, "dep-1", pending.ID)
	assert.Equal(t, int64(1_500_000), pending.Balance)
}

func TestClient_CloseOffer_Wants204(t *testing.T) {
	t.Run("204 succeeds", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/private/user/offers/offer-1", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}), staticTokens{token: "jwt-token", ok: true})

		require.NoError(t, c.CloseOffer(context.Background(), "offer-1"))
	})

	t.Run("200 is unexpected", func(t *testing.T) {
		c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}), staticTokens{token: "jwt-token", ok: true})

		err := c.CloseOffer(context.Background(), "offer-1")
		require.Error(t, err)
		assert.Equal(t, apperror.KindNetwork, apperror.KindOf(err))
	})
}

func TestClient_TransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on
	c := NewClient(srv.URL, time.Second, staticTokens{}, zerolog.Nop())

	_, err := c.GetNonce(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperror.KindNetwork, apperror.KindOf(err))
}

func TestClient_Timeout(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}), staticTokens{})
	c.http.Timeout = 50 * time.Millisecond

	_, err := c.GetNonce(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperror.KindNetwork, apperror.KindOf(err))
}

func TestClient_MalformedBodyIsDecodeError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}), staticTokens{})

	_, err := c.GetNonce(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperror.KindDecode, apperror.KindOf(err))
}
