// Package backend implements the exchange HTTP collaborator: a thin JSON
// client that maps wire payloads to domain types and transport failures to
// typed errors. Scaled-integer conversion happens here and nowhere else.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"goldengate/internal/core/domain"
	"goldengate/internal/core/ports"
	"goldengate/pkg/apperror"
	"goldengate/pkg/fixedpoint"
)

// DefaultTimeout bounds each round trip; the backend's latency is
// unbounded from our side, expiry surfaces as a network error.
const DefaultTimeout = 30 * time.Second

// Client talks JSON over HTTP to the exchange backend. Private routes
// carry a bearer token from the TokenSource; public routes do not.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  ports.TokenSource
	log     zerolog.Logger
}

var _ ports.ExchangeBackend = (*Client)(nil)

// NewClient creates a Client for the given base URL. A zero timeout
// falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, tokens ports.TokenSource, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// ---- wire DTOs ----

type nonceResponse struct {
	Message string `json:"message"`
}

type authRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Address   string `json:"address"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
}

type responseOffer struct {
	ID           string `json:"id"`
	OfferType    string `json:"offerType"`
	PricePerUnit int64  `json:"pricePerUnit"`
	Currency     string `json:"currency"`
	Amount       int64  `json:"amount"`
	CryptoType   string `json:"cryptoType"`
	Fee          int64  `json:"fee"`
	Status       string `json:"status"`
	Value        int64  `json:"value"`
	RevTag       string `json:"revTag"`
}

type feeRequest struct {
	OfferID string `json:"offerId"`
}

type feeResponse struct {
	AggregatedFee int64 `json:"aggregatedFee"`
}

type addressResponse struct {
	Address string `json:"address"`
}

type depositRequest struct {
	TxHash string `json:"txHash"`
	Amount int64  `json:"amount"`
}

type withdrawRequest struct {
	Amount  int64  `json:"amount"`
	Address string `json:"address"`
}

func (o responseOffer) toDomain() domain.Offer {
	return domain.Offer{
		ID:            o.ID,
		Direction:     domain.Direction(o.OfferType),
		CryptoAsset:   o.CryptoType,
		FiatCurrency:  o.Currency,
		PricePerUnit:  fixedpoint.FromScaled(o.PricePerUnit, fixedpoint.FiatScale),
		Amount:        fixedpoint.FromScaled(o.Amount, fixedpoint.CryptoScale),
		MakerFee:      fixedpoint.FromScaled(o.Fee, fixedpoint.CryptoScale),
		Status:        domain.OfferStatus(o.Status),
		Value:         fixedpoint.FromScaled(o.Value, fixedpoint.CryptoScale),
		SettlementTag: o.RevTag,
	}
}

// ---- ExchangeBackend ----

func (c *Client) GetNonce(ctx context.Context) (string, error) {
	var out nonceResponse
	if err := c.do(ctx, http.MethodGet, "/auth", nil, &out, false, http.StatusOK); err != nil {
		return "", err
	}
	if out.Message == "" {
		return "", apperror.ErrDecode(errors.New("empty nonce in auth response"))
	}
	return out.Message, nil
}

func (c *Client) SubmitAuth(ctx context.Context, sub ports.AuthSubmission) (string, error) {
	in := authRequest{Message: sub.Message, Signature: sub.Signature, Address: sub.Address}
	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/auth", in, &out, false, http.StatusOK); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", apperror.ErrDecode(errors.New("empty access_token in auth response"))
	}
	return out.AccessToken, nil
}

func (c *Client) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	var out []responseOffer
	if err := c.do(ctx, http.MethodGet, "/public/offers", nil, &out, false, http.StatusOK); err != nil {
		return nil, err
	}
	offers := make([]domain.Offer, 0, len(out))
	for _, o := range out {
		offers = append(offers, o.toDomain())
	}
	return offers, nil
}

func (c *Client) CreateOffer(ctx context.Context, req domain.OfferRequest) error {
	return c.do(ctx, http.MethodPost, "/private/offers", req, nil, true, http.StatusOK)
}

func (c *Client) AggregatedFee(ctx context.Context, offerID string) (int64, error) {
	var out feeResponse
	if err := c.do(ctx, http.MethodPost, "/private/fee", feeRequest{OfferID: offerID}, &out, true, http.StatusOK); err != nil {
		return 0, err
	}
	return out.AggregatedFee, nil
}

func (c *Client) CreateTransaction(ctx context.Context, req domain.TransactionRequest) error {
	return c.do(ctx, http.MethodPost, "/private/transactions", req, nil, true, http.StatusOK)
}

func (c *Client) DepositAddress(ctx context.Context) (string, error) {
	var out addressResponse
	if err := c.do(ctx, http.MethodGet, "/public/address", nil, &out, false, http.StatusOK); err != nil {
		return "", err
	}
	if out.Address == "" {
		return "", apperror.ErrDecode(errors.New("empty address in deposit-address response"))
	}
	return out.Address, nil
}

func (c *Client) ConfirmDeposit(ctx context.Context, txHash string, amount int64) (*domain.PendingConfirmation, error) {
	in := depositRequest{TxHash: txHash, Amount: amount}
	var out domain.PendingConfirmation
	if err := c.do(ctx, http.MethodPost, "/private/deposit", in, &out, true, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Withdraw(ctx context.Context, amount int64, address string) error {
	in := withdrawRequest{Amount: amount, Address: address}
	return c.do(ctx, http.MethodPost, "/private/withdraw", in, nil, true, http.StatusOK)
}

func (c *Client) CloseOffer(ctx context.Context, offerID string) error {
	return c.do(ctx, http.MethodDelete, "/private/user/offers/"+offerID, nil, nil, true, http.StatusNoContent)
}

// do runs one round trip: marshal the body, attach the bearer token for
// private routes, check the status, decode into out. All transport and
// decode failures come back as typed errors.
func (c *Client) do(ctx context.Context, method, path string, in, out any, private bool, wantStatus int) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("marshal %s %s: %w", method, path, err))
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperror.InternalError(err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if private {
		token, ok := c.tokens.SessionToken()
		if !ok {
			return apperror.ErrNotSignedIn()
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		c.log.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Msg("backend returned unexpected status")
		return apperror.ErrUnexpectedStatus(resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperror.ErrDecode(err)
	}
	return nil
}

func transportErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.ErrTimeout(err)
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apperror.ErrTimeout(err)
	}
	return apperror.ErrRequestFailed(err)
}
