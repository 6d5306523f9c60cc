package dto

import "github.com/shopspring/decimal"

// ─── Backend request bodies ──────────────────────────────────────────────────

// StatusUpdate is the status-only body of PUT games/{id}.
type StatusUpdate struct {
	Status string `json:"status"`
}

// SaleUpdate marks a game sold and records who bought it.
type SaleUpdate struct {
	Status    string `json:"status"`
	BuyerID   string `json:"buyerId"`
	BuyerName string `json:"buyerName"`
}

// CreateGameRequest is the body of POST games.
type CreateGameRequest struct {
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

// CreateTransactionRequest is the body of POST transactions.
type CreateTransactionRequest struct {
	GameID     string          `json:"gameId"`
	GameName   string          `json:"gameName"`
	BuyerID    string          `json:"buyerId"`
	BuyerName  string          `json:"buyerName"`
	SellerID   string          `json:"sellerId"`
	SellerName string          `json:"sellerName"`
	Date       string          `json:"date"`
	Price      decimal.Decimal `json:"price"`
	DepositFee decimal.Decimal `json:"depositFee"`
	Commission decimal.Decimal `json:"commission"`
	SessionID  string          `json:"sessionId"`
}

// ─── Console request DTOs ────────────────────────────────────────────────────

// DepositGameRequest is what the operator types on the deposit screen.
// SellerID selects the seller first when set; otherwise the seller already
// selected on the screen is used.
type DepositGameRequest struct {
	SellerID string          `json:"seller_id"`
	Name     string          `json:"name"   validate:"required"`
	Editor   string          `json:"editor" validate:"required"`
	Price    decimal.Decimal `json:"price"  validate:"gt=0"`
}

// BuyRequest optionally names the buyer; an empty body sells without invoice.
type BuyRequest struct {
	BuyerID   string `json:"buyer_id"`
	BuyerName string `json:"buyer_name" validate:"required_with=BuyerID"`
}
