package domain

// TransactionRequest is the wire payload for a taker fill. It exists only
// for the duration of the create-transaction call; the backend is
// authoritative for acceptance. All amounts are pre-scaled integers:
// crypto x10^6, fiat price and value x10^2, fees x10^6.
type TransactionRequest struct {
	OfferID      string `json:"offerId"`
	Amount       int64  `json:"amount"`
	CryptoType   string `json:"cryptoType"`
	PricePerUnit int64  `json:"pricePerUnit"`
	Currency     string `json:"currency"`
	TakerFee     int64  `json:"takerFee"`
	MakerFee     int64  `json:"makerFee"` // prorated share of the offer's remaining maker fee
	Value        int64  `json:"value"`    // fiat owed by the taker
	RandomTitle  string `json:"randomTitle"`
}
