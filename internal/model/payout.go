package model

import "github.com/shopspring/decimal"

// SellerSummary is the settlement view of one seller: the sold but unpaid
// games and what the shop owes for them. It is derived from the games list
// on every fetch and never persisted.
type SellerSummary struct {
	SellerID        string          `json:"sellerId"`
	SellerName      string          `json:"sellerName"`
	Games           []Game          `json:"games"`
	TotalSales      decimal.Decimal `json:"totalSales"`
	TotalCommission decimal.Decimal `json:"totalCommission"`
	TotalToRefund   decimal.Decimal `json:"totalToRefund"`
}
