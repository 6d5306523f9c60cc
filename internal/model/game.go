package model

import "github.com/shopspring/decimal"

func init() {
	// The backend speaks plain JSON numbers for every amount.
	decimal.MarshalJSONWithoutQuotes = true
}

// Game status values. The intended lifecycle is
// stock → rayon → vendu → payé, or stock/rayon → retiré.
const (
	StatusStock     = "stock"
	StatusRayon     = "rayon"
	StatusVendu     = "vendu"
	StatusPaye      = "payé"
	StatusWithdrawn = "retiré"
)

// Game is a deposited game as returned by the backend.
// ID is the human readable sequential identifier used in URLs; DocID is the
// backend document identifier.
type Game struct {
	DocID      string          `json:"_id"`
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Editor     string          `json:"editor"`
	Price      decimal.Decimal `json:"price"`
	SellerID   string          `json:"sellerId"`
	SellerName string          `json:"sellerName"`
	Status     string          `json:"status"`
	DepositFee decimal.Decimal `json:"depositFee"`
	Commission decimal.Decimal `json:"commission"`
	SessionID  string          `json:"sessionId"`
}
