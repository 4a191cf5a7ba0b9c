package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"goldengate/internal/core/domain"
	"goldengate/internal/core/ports"
	"goldengate/pkg/apperror"
	"goldengate/pkg/calldata"
	"goldengate/pkg/fixedpoint"
)

// SettlementConfig carries the platform fee rates and the token the
// deposit path moves. Rates are percentages.
type SettlementConfig struct {
	MakerFeeRate  decimal.Decimal
	TakerFeeRate  decimal.Decimal
	TokenContract string
	TokenDecimals int32
}

// OfferInput is the maker's raw form input for a new offer. Amounts are
// strings because they arrive from UI text fields; parsing and scaling
// happen here, once, at the boundary.
type OfferInput struct {
	Direction       domain.Direction
	Amount          string
	PricePerUnit    string
	CryptoAsset     string
	FiatCurrency    string
	SettlementTag   string
	LocaleSeparator string
}

// SettlementService orchestrates the maker and taker settlement paths:
// offer creation, taker fills with fee proration, token deposits and
// withdrawals. It is stateless apart from the session it reads the bearer
// requirement from; every operation either completes its backend call or
// returns the first error with no partial effects on the client side.
type SettlementService struct {
	backend ports.ExchangeBackend
	signer  ports.WalletSigner
	fees    *FeeService
	session *domain.AuthSession
	cfg     SettlementConfig
	log     zerolog.Logger

	newTitle func() string
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(
	backend ports.ExchangeBackend,
	signer ports.WalletSigner,
	fees *FeeService,
	session *domain.AuthSession,
	cfg SettlementConfig,
	log zerolog.Logger,
) *SettlementService {
	return &SettlementService{
		backend:  backend,
		signer:   signer,
		fees:     fees,
		session:  session,
		cfg:      cfg,
		log:      log,
		newTitle: func() string { return uuid.NewString() },
	}
}

// BuildOfferRequest parses and prices a maker offer: maker fee on the
// offered amount, gross value the maker will pay, everything scaled to
// wire integers. Pure; no network calls.
func (s *SettlementService) BuildOfferRequest(input OfferInput) (domain.OfferRequest, error) {
	amount, err := fixedpoint.ParseWithSeparator(input.Amount, input.LocaleSeparator)
	if err != nil {
		return domain.OfferRequest{}, err
	}
	if amount.Sign() <= 0 {
		return domain.OfferRequest{}, apperror.Precondition("offer amount must be positive")
	}
	price, err := fixedpoint.ParseWithSeparator(input.PricePerUnit, input.LocaleSeparator)
	if err != nil {
		return domain.OfferRequest{}, err
	}
	if price.Sign() <= 0 {
		return domain.OfferRequest{}, apperror.Precondition("price per unit must be positive")
	}

	fee := s.fees.MakerFee(amount, s.cfg.MakerFeeRate)
	value := s.fees.GrossAmount(amount, s.cfg.MakerFeeRate)

	scaledAmount, err := fixedpoint.ToScaled(amount, fixedpoint.CryptoScale, fixedpoint.RoundFloor)
	if err != nil {
		return domain.OfferRequest{}, err
	}
	scaledPrice, err := fixedpoint.ToScaled(price, fixedpoint.FiatScale, fixedpoint.RoundFloor)
	if err != nil {
		return domain.OfferRequest{}, err
	}
	scaledFee, err := fixedpoint.ToScaled(fee, fixedpoint.CryptoScale, fixedpoint.RoundCeil)
	if err != nil {
		return domain.OfferRequest{}, err
	}
	scaledValue, err := fixedpoint.ToScaled(value, fixedpoint.CryptoScale, fixedpoint.RoundCeil)
	if err != nil {
		return domain.OfferRequest{}, err
	}

	return domain.OfferRequest{
		OfferType:    string(input.Direction),
		Amount:       scaledAmount,
		Fee:          scaledFee,
		CryptoType:   input.CryptoAsset,
		Currency:     input.FiatCurrency,
		PricePerUnit: scaledPrice,
		Value:        scaledValue,
		RevTag:       input.SettlementTag,
	}, nil
}

// CreateOffer builds and submits a maker offer.
func (s *SettlementService) CreateOffer(ctx context.Context, input OfferInput) error {
	if err := s.requireSigned(); err != nil {
		return err
	}
	req, err := s.BuildOfferRequest(input)
	if err != nil {
		return err
	}
	if err := s.backend.CreateOffer(ctx, req); err != nil {
		return err
	}
	s.log.Info().
		Str("offer_type", req.OfferType).
		Int64("amount", req.Amount).
		Int64("fee", req.Fee).
		Msg("offer created")
	return nil
}

// TakeOffer fills an active offer partially or fully. The taker fee and
// value owed are computed locally; the maker-fee share is prorated over
// the offer's remaining fee, which requires one backend round trip for the
// already-aggregated portion. The first failing step aborts the fill, and
// nothing before the final create-transaction call has side effects.
func (s *SettlementService) TakeOffer(ctx context.Context, offer domain.Offer, fillAmount, localeSeparator string) error {
	if err := s.requireSigned(); err != nil {
		return err
	}
	if !offer.Active() {
		return apperror.Precondition("offer is not active")
	}

	fill, err := fixedpoint.ParseWithSeparator(fillAmount, localeSeparator)
	if err != nil {
		return err
	}
	if fill.Sign() <= 0 {
		return apperror.Precondition("fill amount must be positive")
	}
	takerFee, err := s.fees.TakerFee(fill, s.cfg.TakerFeeRate)
	if err != nil {
		return err
	}
	// The taker fee rides on top of the fill, so the fee-inclusive total
	// must fit inside the offer's remaining amount. Checked here, before
	// the aggregated-fee round trip.
	if fill.Add(takerFee).GreaterThan(offer.Amount) {
		available, err := s.fees.AvailableToFill(offer.Amount, s.cfg.TakerFeeRate)
		if err != nil {
			return err
		}
		return apperror.ErrFillExceedsAvailable(available.String())
	}
	value, err := s.fees.ValueOwed(fill, offer.PricePerUnit, s.cfg.TakerFeeRate)
	if err != nil {
		return err
	}

	aggregated, err := s.backend.AggregatedFee(ctx, offer.ID)
	if err != nil {
		return err
	}
	remainingFee := offer.MakerFee.Sub(fixedpoint.FromScaled(aggregated, fixedpoint.CryptoScale))

	partial := fill.Add(takerFee)
	makerShare, err := s.fees.ProratedMakerFee(partial, remainingFee, offer.Amount)
	if err != nil {
		return err
	}

	scaledFill, err := fixedpoint.ToScaled(fill, fixedpoint.CryptoScale, fixedpoint.RoundFloor)
	if err != nil {
		return err
	}
	scaledPrice, err := fixedpoint.ToScaled(offer.PricePerUnit, fixedpoint.FiatScale, fixedpoint.RoundFloor)
	if err != nil {
		return err
	}
	scaledTakerFee, err := fixedpoint.ToScaled(takerFee, fixedpoint.CryptoScale, fixedpoint.RoundCeil)
	if err != nil {
		return err
	}
	scaledMakerShare, err := fixedpoint.ToScaled(makerShare, fixedpoint.CryptoScale, fixedpoint.RoundCeil)
	if err != nil {
		return err
	}
	scaledValue, err := fixedpoint.ToScaled(value, fixedpoint.FiatScale, fixedpoint.RoundFloor)
	if err != nil {
		return err
	}

	req := domain.TransactionRequest{
		OfferID:      offer.ID,
		Amount:       scaledFill,
		CryptoType:   offer.CryptoAsset,
		PricePerUnit: scaledPrice,
		Currency:     offer.FiatCurrency,
		TakerFee:     scaledTakerFee,
		MakerFee:     scaledMakerShare,
		Value:        scaledValue,
		RandomTitle:  s.newTitle(),
	}
	if err := s.backend.CreateTransaction(ctx, req); err != nil {
		return err
	}
	s.log.Info().
		Str("offer_id", offer.ID).
		Int64("amount", req.Amount).
		Int64("taker_fee", req.TakerFee).
		Int64("maker_fee", req.MakerFee).
		Msg("transaction created")
	return nil
}

// Deposit moves tokens to the exchange deposit address: fetch the address,
// encode the ERC-20 transfer, hand it to the wallet, then register the
// resulting transaction hash with the backend.
func (s *SettlementService) Deposit(ctx context.Context, rawAmount, localeSeparator string) (*domain.PendingConfirmation, error) {
	if err := s.requireSigned(); err != nil {
		return nil, err
	}
	amount, err := fixedpoint.ParseWithSeparator(rawAmount, localeSeparator)
	if err != nil {
		return nil, err
	}
	if amount.Sign() <= 0 {
		return nil, apperror.Precondition("deposit amount must be positive")
	}

	toAddress, err := s.backend.DepositAddress(ctx)
	if err != nil {
		return nil, err
	}

	data, err := calldata.EncodeERC20Transfer(toAddress, amount, s.cfg.TokenDecimals)
	if err != nil {
		return nil, err
	}
	scaled, err := fixedpoint.ToScaled(amount, fixedpoint.CryptoScale, fixedpoint.RoundFloor)
	if err != nil {
		return nil, err
	}
	intent := domain.DepositIntent{
		ContractAddress: s.cfg.TokenContract,
		ToAddress:       toAddress,
		RawAmount:       amount,
		ScaledAmount:    scaled,
		CallData:        data,
	}

	txHash, err := s.signer.SendTransaction(ctx, ports.TransactionParams{
		From:  s.session.Address(),
		To:    intent.ContractAddress,
		Value: "0x0",
		Data:  intent.CallData,
	})
	if err != nil {
		return nil, signerErr(err)
	}

	pending, err := s.backend.ConfirmDeposit(ctx, txHash, intent.ScaledAmount)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("tx_hash", txHash).
		Int64("amount", intent.ScaledAmount).
		Int64("balance", pending.Balance).
		Msg("deposit submitted")
	return pending, nil
}

// Withdraw requests a payout of the given token amount to an external
// address. The backend executes the on-chain transfer; the client only
// validates and scales.
func (s *SettlementService) Withdraw(ctx context.Context, rawAmount, localeSeparator, address string) error {
	if err := s.requireSigned(); err != nil {
		return err
	}
	if !common.IsHexAddress(address) {
		return apperror.ErrInvalidAddress(address)
	}
	amount, err := fixedpoint.ParseWithSeparator(rawAmount, localeSeparator)
	if err != nil {
		return err
	}
	if amount.Sign() <= 0 {
		return apperror.Precondition("withdrawal amount must be positive")
	}
	scaled, err := fixedpoint.ToScaled(amount, fixedpoint.CryptoScale, fixedpoint.RoundFloor)
	if err != nil {
		return err
	}
	if err := s.backend.Withdraw(ctx, scaled, address); err != nil {
		return err
	}
	s.log.Info().Int64("amount", scaled).Str("address", address).Msg("withdrawal requested")
	return nil
}

// ListOffers returns the public offer book.
func (s *SettlementService) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	return s.backend.ListOffers(ctx)
}

// CloseOffer withdraws one of the maker's own offers from the book.
func (s *SettlementService) CloseOffer(ctx context.Context, offerID string) error {
	if err := s.requireSigned(); err != nil {
		return err
	}
	if err := s.backend.CloseOffer(ctx, offerID); err != nil {
		return err
	}
	s.log.Info().Str("offer_id", offerID).Msg("offer closed")
	return nil
}

func (s *SettlementService) requireSigned() error {
	if !s.session.Signed() {
		return apperror.ErrNotSignedIn()
	}
	return nil
}
