// Package handler implements the mock exchange's HTTP surface: the same
// paths, bodies and status codes the client adapter speaks, backed by
// in-memory state. It exists for development and integration tests.
package handler

import (
	"net/http"
	"time"

	"goldengate/internal/adapter/memstore"
	"goldengate/pkg/apperror"
	"goldengate/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TokenMinter mints session tokens for verified wallet addresses.
type TokenMinter interface {
	Generate(address string) (string, time.Time, error)
}

// ChallengeVerifier checks a signed challenge message against the claimed
// address and extracts the nonce it carries.
type ChallengeVerifier interface {
	ExtractNonce(message string) (string, error)
	Verify(message, signature, address string) error
}

// AuthHandler issues nonces and verifies signed challenges.
type AuthHandler struct {
	nonces *memstore.NonceStore
	siwe   ChallengeVerifier
	tokens TokenMinter
	log    zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(nonces *memstore.NonceStore, siwe ChallengeVerifier, tokens TokenMinter, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{nonces: nonces, siwe: siwe, tokens: tokens, log: log}
}

// GetNonce handles GET /auth.
func (h *AuthHandler) GetNonce(c *gin.Context) {
	nonce := h.nonces.Issue()
	c.JSON(http.StatusOK, gin.H{"message": nonce})
}

type submitAuthRequest struct {
	Message   string `json:"message" binding:"required"`
	Signature string `json:"signature" binding:"required"`
	Address   string `json:"address" binding:"required"`
}

// SubmitAuth handles POST /auth. The nonce inside the message must be one
// this server issued and not yet consumed; the signature must recover to
// the claimed address.
func (h *AuthHandler) SubmitAuth(c *gin.Context) {
	var req submitAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	nonce, err := h.siwe.ExtractNonce(req.Message)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.nonces.Consume(nonce); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.siwe.Verify(req.Message, req.Signature, req.Address); err != nil {
		h.log.Warn().Str("address", req.Address).Err(err).Msg("challenge verification failed")
		response.Error(c, apperror.ErrInvalidSignature())
		return
	}

	token, _, err := h.tokens.Generate(req.Address)
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	h.log.Info().Str("address", req.Address).Msg("session signed in")
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
