package domain

import "github.com/shopspring/decimal"

// Direction is the side of an offer from the maker's point of view.
type Direction string

const (
	DirectionBuy  Direction = "Buy"
	DirectionSell Direction = "Sell"
)

// OfferStatus is the lifecycle state of an offer.
type OfferStatus string

const (
	OfferStatusActive OfferStatus = "Active"
	OfferStatusClosed OfferStatus = "Closed"
)

// Offer is the client's read-only projection of a backend offer. The
// backend of record mutates it as fills occur; the client never writes to
// it directly. Decimal fields are unscaled — the HTTP adapter converts
// wire integers at the boundary.
type Offer struct {
	ID            string
	Direction     Direction
	CryptoAsset   string
	FiatCurrency  string
	PricePerUnit  decimal.Decimal // fiat per crypto unit
	Amount        decimal.Decimal // remaining crypto amount
	MakerFee      decimal.Decimal // accumulated maker fee, crypto-denominated
	Status        OfferStatus
	Value         decimal.Decimal // gross crypto value including maker fee
	SettlementTag string          // off-chain payment identifier
}

// Active reports whether the offer can still be filled.
func (o Offer) Active() bool {
	return o.Status == OfferStatusActive
}

// OfferRequest is the wire payload for offer creation. All amounts are
// pre-scaled integers: crypto x10^6, fiat price x10^2.
type OfferRequest struct {
	OfferType    string `json:"offerType"`
	Amount       int64  `json:"amount"`
	Fee          int64  `json:"fee"`
	CryptoType   string `json:"cryptoType"`
	Currency     string `json:"currency"`
	PricePerUnit int64  `json:"pricePerUnit"`
	Value        int64  `json:"value"`
	RevTag       string `json:"revTag"`
}
