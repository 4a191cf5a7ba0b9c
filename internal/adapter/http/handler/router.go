package handler

import (
	"goldengate/internal/adapter/http/middleware"
	"goldengate/internal/adapter/memstore"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Nonces         *memstore.NonceStore
	Book           *memstore.OfferBook
	Ledger         *memstore.Ledger
	SIWE           ChallengeVerifier
	Tokens         TokenMinter
	TokenValidator middleware.TokenValidator
	DepositAddress string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	authHandler := NewAuthHandler(deps.Nonces, deps.SIWE, deps.Tokens, deps.Logger)
	offerHandler := NewOfferHandler(deps.Book, deps.Logger)
	accountHandler := NewAccountHandler(deps.Ledger, deps.DepositAddress, deps.Logger)

	// --- Public routes (no auth) ---
	r.GET("/auth", authHandler.GetNonce)
	r.POST("/auth", authHandler.SubmitAuth)

	public := r.Group("/public")
	{
		public.GET("/offers", offerHandler.ListOffers)
		public.GET("/address", accountHandler.DepositAddress)
	}

	// --- Session-authenticated routes ---
	sessionAuth := middleware.SessionAuth(deps.TokenValidator, deps.Logger)
	private := r.Group("/private", sessionAuth)
	{
		private.POST("/offers", offerHandler.CreateOffer)
		private.POST("/fee", offerHandler.AggregatedFee)
		private.POST("/transactions", offerHandler.CreateTransaction)
		private.POST("/deposit", accountHandler.ConfirmDeposit)
		private.POST("/withdraw", accountHandler.Withdraw)
		private.DELETE("/user/offers/:id", offerHandler.CloseOffer)
	}

	return r
}
