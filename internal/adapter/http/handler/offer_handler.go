package handler

import (
	"net/http"

	"goldengate/internal/adapter/http/middleware"
	"goldengate/internal/adapter/memstore"
	"goldengate/internal/core/domain"
	"goldengate/pkg/apperror"
	"goldengate/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// offerJSON is the wire shape of one offer in the public book.
type offerJSON struct {
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

func toOfferJSON(rec memstore.OfferRecord) offerJSON {
	return offerJSON{
		ID:           rec.ID,
		OfferType:    rec.OfferType,
		PricePerUnit: rec.PricePerUnit,
		Currency:     rec.Currency,
		Amount:       rec.Amount,
		CryptoType:   rec.CryptoType,
		Fee:          rec.Fee,
		Status:       rec.Status,
		Value:        rec.Value,
		RevTag:       rec.RevTag,
	}
}

// OfferHandler serves the offer book and the maker/taker settlement calls.
type OfferHandler struct {
	book *memstore.OfferBook
	log  zerolog.Logger
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(book *memstore.OfferBook, log zerolog.Logger) *OfferHandler {
	return &OfferHandler{book: book, log: log}
}

// ListOffers handles GET /public/offers.
func (h *OfferHandler) ListOffers(c *gin.Context) {
	recs := h.book.List()
	out := make([]offerJSON, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toOfferJSON(rec))
	}
	c.JSON(http.StatusOK, out)
}

// CreateOffer handles POST /private/offers.
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req domain.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.Amount <= 0 || req.PricePerUnit <= 0 {
		response.Error(c, apperror.Validation("amount and price must be positive"))
		return
	}
	if req.Fee < 0 {
		response.Error(c, apperror.Validation("fee must not be negative"))
		return
	}

	rec := h.book.Create(c.GetString(middleware.CtxAddress), req)
	h.log.Info().Str("offer_id", rec.ID).Str("maker", rec.Owner).Msg("offer created")
	c.Status(http.StatusOK)
}

type aggregatedFeeRequest struct {
	OfferID string `json:"offerId" binding:"required"`
}

// AggregatedFee handles POST /private/fee.
func (h *OfferHandler) AggregatedFee(c *gin.Context) {
	var req aggregatedFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	rec, err := h.book.Get(req.OfferID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"aggregatedFee": rec.AggregatedFee})
}

// CreateTransaction handles POST /private/transactions: a taker fill that
// decrements the offer's remaining amount and accumulates the maker-fee
// share.
func (h *OfferHandler) CreateTransaction(c *gin.Context) {
	var req domain.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.OfferID == "" || req.RandomTitle == "" {
		response.Error(c, apperror.Validation("offerId and randomTitle are required"))
		return
	}

	if err := h.book.ApplyFill(req.OfferID, req.Amount, req.MakerFee); err != nil {
		response.Error(c, err)
		return
	}
	h.log.Info().
		Str("offer_id", req.OfferID).
		Str("taker", c.GetString(middleware.CtxAddress)).
		Int64("amount", req.Amount).
		Int64("maker_fee", req.MakerFee).
		Msg("transaction created")
	c.Status(http.StatusOK)
}

// CloseOffer handles DELETE /private/user/offers/:id.
func (h *OfferHandler) CloseOffer(c *gin.Context) {
	if err := h.book.Close(c.Param("id"), c.GetString(middleware.CtxAddress)); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
