package model

import "github.com/shopspring/decimal"

// Seller deposits games. Stocks and Sales are denormalized game references
// maintained by the backend.
type Seller struct {
	DocID       string          `json:"_id,omitempty"`
	ID          string          `json:"id"`
	FirstName   string          `json:"firstName"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phoneNumber"`
	Stocks      []string        `json:"stocks"`
	Sales       []string        `json:"sales"`
	Turnover    decimal.Decimal `json:"turnover"`
}

func (s Seller) FullName() string { return s.FirstName + " " + s.Name }

// Buyer purchases games. ID stays nil until the record exists on the backend.
type Buyer struct {
	ID          *string `json:"id,omitempty"`
	FirstName   string  `json:"firstName"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Address     string  `json:"address"`
}

func (b Buyer) FullName() string { return b.FirstName + " " + b.Name }

// BuyerID returns the identifier or "" when the backend has not assigned one.
func (b Buyer) BuyerID() string {
	if b.ID == nil {
		return ""
	}
	return *b.ID
}
