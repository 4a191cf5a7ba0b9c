// Command goldengate runs the settlement engine end to end against a
// backend: connect a throwaway dev wallet, complete the challenge flow,
// then drive a full maker/taker/deposit round through the public and
// private endpoints. It is a smoke binary for a running exchange (e.g.
// the bundled mockexchange); everything it creates it also closes.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"goldengate/config"
	"goldengate/internal/adapter/http/backend"
	"goldengate/internal/adapter/signer/local"
	"goldengate/internal/core/domain"
	"goldengate/internal/service"
	"goldengate/pkg/fixedpoint"
	"goldengate/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	session := domain.NewAuthSession()
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, session, logger.WithComponent(log, "backend_client"))

	walletSigner, err := local.NewSigner()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create dev signer")
	}

	authSvc := service.NewAuthService(client, walletSigner, service.NewSIWEService(), session, service.AuthConfig{
		Domain:    cfg.Auth.Domain,
		URI:       cfg.Auth.URI,
		Statement: cfg.Auth.Statement,
		ChainID:   cfg.Auth.ChainID,
	}, logger.WithComponent(log, "auth_flow"))

	makerRate, err := decimal.NewFromString(cfg.Fees.MakerRatePct)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid maker fee rate")
	}
	takerRate, err := decimal.NewFromString(cfg.Fees.TakerRatePct)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid taker fee rate")
	}

	settlementSvc := service.NewSettlementService(client, walletSigner, service.NewFeeService(), session, service.SettlementConfig{
		MakerFeeRate:  makerRate,
		TakerFeeRate:  takerRate,
		TokenContract: cfg.Token.Contract,
		TokenDecimals: cfg.Token.Decimals,
	}, logger.WithComponent(log, "settlement"))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	address, err := authSvc.Connect(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Wallet connect failed")
	}
	log.Info().Str("address", address).Msg("wallet connected")

	if err := authSvc.SignIn(ctx); err != nil {
		log.Fatal().Err(err).Msg("Sign-in failed")
	}
	log.Info().Time("expires_at", session.ExpiresAt()).Msg("signed in")

	// Maker side: list a small offer.
	if err := settlementSvc.CreateOffer(ctx, service.OfferInput{
		Direction:     domain.DirectionSell,
		Amount:        "1",
		PricePerUnit:  "2000.50",
		CryptoAsset:   "ETH",
		FiatCurrency:  "EUR",
		SettlementTag: "@goldengate-smoke",
	}); err != nil {
		log.Fatal().Err(err).Msg("Offer creation failed")
	}

	offers, err := settlementSvc.ListOffers(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Listing offers failed")
	}
	for _, offer := range offers {
		fmt.Printf("%s  %-4s %s %s @ %s %s  (maker fee %s, tag %s)\n",
			offer.ID,
			offer.Direction,
			offer.Amount.String(),
			offer.CryptoAsset,
			offer.PricePerUnit.StringFixed(fixedpoint.FiatScale),
			offer.FiatCurrency,
			offer.MakerFee.String(),
			offer.SettlementTag,
		)
	}

	// Taker side: fill part of our own offer, then clean it up.
	var smoke *domain.Offer
	for i := range offers {
		if offers[i].SettlementTag == "@goldengate-smoke" {
			smoke = &offers[i]
			break
		}
	}
	if smoke != nil {
		if err := settlementSvc.TakeOffer(ctx, *smoke, "0.1", ""); err != nil {
			log.Fatal().Err(err).Msg("Taker fill failed")
		}
		log.Info().Str("offer_id", smoke.ID).Msg("partial fill accepted")

		if err := settlementSvc.CloseOffer(ctx, smoke.ID); err != nil {
			log.Fatal().Err(err).Msg("Closing offer failed")
		}
	}

	// Deposit round trip through the dev signer.
	pending, err := settlementSvc.Deposit(ctx, "1.5", "")
	if err != nil {
		log.Fatal().Err(err).Msg("Deposit failed")
	}
	log.Info().Str("deposit_id", pending.ID).Int64("balance", pending.Balance).Msg("deposit confirmed")

	if err := settlementSvc.Withdraw(ctx, "0.5", "", address); err != nil {
		log.Fatal().Err(err).Msg("Withdrawal failed")
	}

	fmt.Println("smoke flow completed")
}
