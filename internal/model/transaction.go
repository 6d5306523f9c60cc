package model

import "github.com/shopspring/decimal"

// Transaction is the immutable record of one completed sale.
// Created once per sale and never modified.
type Transaction struct {
	ID         string          `json:"_id"`
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

// BilanReport is a server-computed snapshot of shop-wide totals, either
// all-time or for the current session.
type BilanReport struct {
	TotalSales          decimal.Decimal `json:"totalSales"`
	AmountToReimburse   decimal.Decimal `json:"amountToReimburse"`
	AmountReimbursed    decimal.Decimal `json:"amountReimbursed"`
	GamesSoldNumber     int             `json:"gamesSoldNumber"`
	GamesInStockNumber  int             `json:"gamesInStockNumber"`
	PotentialSales      int             `json:"potentialSales"`
	CommissionsEarnings decimal.Decimal `json:"commissionsEarnings"`
	DepositEarnings     decimal.Decimal `json:"depositEarnings"`
	TotalBuyers         int             `json:"totalBuyers"`
	TotalSellers        int             `json:"totalSellers"`
}
