package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"goldengate/internal/core/domain"
	"goldengate/internal/core/ports"
	"goldengate/internal/core/ports/mocks"
	"goldengate/pkg/apperror"
)

const testTokenContract = "0x6B175474E89094C44Da98b954EedeAC495271d0F"

type settlementTestDeps struct {
	svc     *SettlementService
	backend *mocks.MockExchangeBackend
	signer  *mocks.MockWalletSigner
	session *domain.AuthSession
	ctrl    *gomock.Controller
}

func setupSettlementService(t *testing.T) *settlementTestDeps {
	ctrl := gomock.NewController(t)
	d := &settlementTestDeps{
		backend: mocks.NewMockExchangeBackend(ctrl),
		signer:  mocks.NewMockWalletSigner(ctrl),
		session: domain.NewAuthSession(),
		ctrl:    ctrl,
	}
	d.svc = NewSettlementService(d.backend, d.signer, NewFeeService(), d.session, SettlementConfig{
		MakerFeeRate:  decimal.RequireFromString("0.5"),
		TakerFeeRate:  decimal.RequireFromString("0.5"),
		TokenContract: testTokenContract,
		TokenDecimals: 18,
	}, zerolog.Nop())
	d.svc.newTitle = func() string { return "title-1" }
	return d
}

func (d *settlementTestDeps) signIn() {
	d.session.SetConnected(testAddress)
	d.session.SetSigned("token", time.Now().Add(time.Hour))
}

func TestSettlementService_BuildOfferRequest(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	req, err := d.svc.BuildOfferRequest(OfferInput{
		Direction:     domain.DirectionSell,
		Amount:        "100",
		PricePerUnit:  "2000.50",
		CryptoAsset:   "ETH",
		FiatCurrency:  "EUR",
		SettlementTag: "@maker",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.OfferRequest{
		OfferType:    "Sell",
		Amount:       100_000_000,
		Fee:          500_000, // ceil6(100 * 0.5%)
		CryptoType:   "ETH",
		Currency:     "EUR",
		PricePerUnit: 200_050,
		Value:        100_500_000, // ceil6(100 * 1.005)
		RevTag:       "@maker",
	}, req)
}

func TestSettlementService_BuildOfferRequest_LocaleSeparator(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	req, err := d.svc.BuildOfferRequest(OfferInput{
		Direction:       domain.DirectionBuy,
		Amount:          "0,25",
		PricePerUnit:    "1999,99",
		CryptoAsset:     "ETH",
		FiatCurrency:    "EUR",
		LocaleSeparator: ",",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(250_000), req.Amount)
	assert.Equal(t, int64(199_999), req.PricePerUnit)
}

func TestSettlementService_BuildOfferRequest_Rejects(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	cases := []struct {
		name   string
		amount string
		price  string
	}{
		{"garbage amount", "12..5", "2000"},
		{"zero amount", "0", "2000"},
		{"zero price", "1", "0"},
		{"empty price", "1", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := d.svc.BuildOfferRequest(OfferInput{
				Direction:    domain.DirectionSell,
				Amount:       tc.amount,
				PricePerUnit: tc.price,
				CryptoAsset:  "ETH",
				FiatCurrency: "EUR",
			})
			require.Error(t, err)
		})
	}
}

func TestSettlementService_CreateOffer_RequiresSignedSession(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	err := d.svc.CreateOffer(context.Background(), OfferInput{
		Direction:    domain.DirectionSell,
		Amount:       "1",
		PricePerUnit: "2000",
	})
	require.Error(t, err)
	assert.Equal(t, apperror.KindPrecondition, apperror.KindOf(err))
}

func TestSettlementService_CreateOffer_Submits(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()
	d.signIn()

	d.backend.EXPECT().
		CreateOffer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.OfferRequest) error {
			assert.Equal(t, int64(1_000_000), req.Amount)
			assert.Equal(t, int64(5_000), req.Fee)
			return nil
		})

	err := d.svc.CreateOffer(context.Background(), OfferInput{
		Direction:     domain.DirectionSell,
		Amount:        "1",
		PricePerUnit:  "2000",
		CryptoAsset:   "ETH",
		FiatCurrency:  "EUR",
		SettlementTag: "@maker",
	})
	require.NoError(t, err)
}

func activeOffer() domain.Offer {
	return domain.Offer{
		ID:           "offer-1",
		Direction:    domain.DirectionSell,
		CryptoAsset:  "ETH",
		FiatCurrency: "EUR",
		PricePerUnit: decimal.RequireFromString("2000.50"),
		Amount:       decimal.RequireFromString("100"),
		MakerFee:     decimal.RequireFromString("0.5"),
		Status:       domain.OfferStatusActive,
	}
}

func TestSettlementService_TakeOffer_Prorates(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()
	d.signIn()

	// 0.1 of the 0.5 maker fee was already consumed by earlier fills.
	d.backend.EXPECT().AggregatedFee(gomock.Any(), "offer-1").Return(int64(100_000), nil)
	d.backend.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.TransactionRequest) error {
			assert.Equal(t, domain.TransactionRequest{
				OfferID:      "offer-1",
				Amount:       10_000_000,
				CryptoType:   "ETH",
				PricePerUnit: 200_050,
				Currency:     "EUR",
				TakerFee:     50_252,    // ceil6(10/0.995 - 10)
				MakerFee:     40_202,    // ceil6(10.050252/100 * 0.4)
				Value:        2_010_552, // floor2(10*2000.50/0.995)
				RandomTitle:  "title-1",
			}, req)
			return nil
		})

	err := d.svc.TakeOffer(context.Background(), activeOffer(), "10", "")
	require.NoError(t, err)
}

func TestSettlementService_TakeOffer_FullRemainingFill_RejectedBeforeBackendCall(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()
	d.signIn()

	// Filling the entire remaining amount leaves no room for the taker
	// fee. No backend expectations: any round trip fails the test.
	err := d.svc.TakeOffer(context.Background(), activeOffer(), "100", "")
	require.Error(t, err)
	assert.Equal(t, apperror.KindPrecondition, apperror.KindOf(err))
	assert.Contains(t, err.Error(), "99.5")
}

func TestSettlementService_TakeOffer_FullCapacityFill(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()
	d.signIn()

	d.backend.EXPECT().AggregatedFee(gomock.Any(), "offer-1").Return(int64(100_000), nil)
	d.backend.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.TransactionRequest) error {
			assert.Equal(t, int64(99_500_000), req.Amount)
			assert.Equal(t, int64(500_000), req.TakerFee) // ceil6(99.5/0.995 - 99.5)
			assert.Equal(t, int64(400_000), req.MakerFee) // all of the remaining fee
			assert.Equal(t, int64(20_005_000), req.Value) // floor2(99.5*2000.50/0.995)
			return nil
		})

	// 99.5 = floor6(100 * 0.995) is the largest admissible fill.
	err := d.svc.TakeOffer(context.Background(), activeOffer(), "99.5", "")
	require.NoError(t, err)
}

func TestSettlementService_TakeOffer_FillExceedsRemaining(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()
	d.signIn()

	err := d.svc.TakeOffer(context.Background(), activeOffer(), "100.000001", "")
	require.Error(t, err)
	assert.Equal(t, apperror.KindPrecondition, apperror.KindOf(err))
}

func TestSettlementService_TakeOffer_ClosedOffer(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()
	d.signIn()

	offer := activeOffer()
	offer.Status = domain.OfferStatusClosed

	err := d.svc.TakeOffer(context.Background(), offer, "10", "")
	require.Error(t, err)
	assert.Equal(t, apperror.KindPrecondition, apperror.KindOf(err))
}

func TestSettlementService_TakeOffer_FeeFetchFails_NoTransaction(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()
	d.signIn()

	d.backend.EXPECT().AggregatedFee(gomock.Any(), "offer-1").Return(int64(0), apperror.ErrUnexpectedStatus(500))

	err := d.svc.TakeOffer(context.Background(), activeOffer(), "10", "")
	require.Error(t, err)
	assert.Equal(t, apperror.KindNetwork, apperror.KindOf(err))
}

func TestSettlementService_Deposit(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()
	d.signIn()

	depositAddr := "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	d.backend.EXPECT().DepositAddress(gomock.Any()).Return(depositAddr, nil)
	d.signer.EXPECT().
		SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx ports.TransactionParams) (string, error) {
			assert.Equal(t, testAddress, tx.From)
			assert.Equal(t, testTokenContract, tx.To)
			assert.Equal(t, "0x0", tx.Value)
			assert.Equal(t,
				"0x"+"a9059cbb"+
					"0000000000000000000000005aaeb6053f3e94c9b9a09f33669435e7ef1beaed"+
					"00000000000000000000000000000000000000000000000014d1120d7b160000",
				tx.Data) // transfer(depositAddr, 1.5e18)
			return "0xtxhash", nil
		})
	d.backend.EXPECT().
		ConfirmDeposit(gomock.Any(), "0xtxhash", int64(1_500_000)).
		Return(&domain.PendingConfirmation{ID: "dep-1", Balance: 1_500_000}, nil)

	pending, err := d.svc.Deposit(context.Background(), "1.5", "")
	require.NoError(t, err)
	assert.Equal(t, "dep-1", pending.ID)
	assert.Equal(t, int64(1_500_000), pending.Balance)
}

func TestSettlementService_Deposit_SignerRejects(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()
	d.signIn()

	d.backend.EXPECT().DepositAddress(gomock.Any()).Return("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", nil)
	d.signer.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return("", errors.New("rejected in wallet"))

	_, err := d.svc.Deposit(context.Background(), "1.5", "")
	require.Error(t, err)
	assert.Equal(t, apperror.KindSigner, apperror.KindOf(err))
}

func TestSettlementService_Withdraw(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()
	d.signIn()

	d.backend.EXPECT().Withdraw(gomock.Any(), int64(2_500_000), "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed").Return(nil)

	err := d.svc.Withdraw(context.Background(), "2.5", "", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	require.NoError(t, err)
}

func TestSettlementService_Withdraw_BadAddress(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()
	d.signIn()

	err := d.svc.Withdraw(context.Background(), "2.5", "", "not-an-address")
	require.Error(t, err)
	assert.Equal(t, apperror.KindPrecondition, apperror.KindOf(err))
}

func TestSettlementService_CloseOffer(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()
	d.signIn()

	d.backend.EXPECT().CloseOffer(gomock.Any(), "offer-1").Return(nil)
	require.NoError(t, d.svc.CloseOffer(context.Background(), "offer-1"))
}

func TestSettlementService_ListOffers_NoAuthRequired(t *testing.T) {
	d := setupSettlementService(t)
	defer d.ctrl.Finish()

	d.backend.EXPECT().ListOffers(gomock.Any()).Return([]domain.Offer{activeOffer()}, nil)

	offers, err := d.svc.ListOffers(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "offer-1", offers[0].ID)
}
