package model

import (
	"github.com/shopspring/decimal"
)

// Type classifies a marketplace transaction.
type Type string

const (
	TypePurchase Type = "purchase"
	TypeCredit   Type = "credit" // item sold by the account holder
	TypeWithdraw Type = "withdraw"
)

// Known reports whether t is one of the types the reports act on.
func (t Type) Known() bool {
	switch t {
	case TypePurchase, TypeCredit, TypeWithdraw:
		return true
	default:
		return false
	}
}

// StatusComplete is the only status whose amounts count toward totals.
const StatusComplete = "complete"

// Transaction is one entry of the account transaction history as returned by
// the marketplace API.
type Transaction struct {
	ID        int64               `json:"id"`
	Type      Type                `json:"type"`
	Status    string              `json:"status"`
	UpdatedAt string              `json:"updated_at"`
	Amount    decimal.Decimal     `json:"amount"`
	Fee       decimal.NullDecimal `json:"fee"` // credit transactions only
	Currency  string              `json:"currency,omitempty"`
	Items     []LineItem          `json:"items,omitempty"`
}

// IsComplete reports whether the transaction settled.
func (t Transaction) IsComplete() bool {
	return t.Status == StatusComplete
}

// HasItems reports whether the API delivered an items list.
// Withdrawals never carry one.
func (t Transaction) HasItems() bool {
	return t.Items != nil
}

// LineItem is a single item inside a transaction.
type LineItem struct {
	SaleID         int64               `json:"sale_id"`
	MarketHashName string              `json:"market_hash_name"`
	Name           string              `json:"name"`
	Amount         decimal.Decimal     `json:"amount"`
	Fee            decimal.NullDecimal `json:"fee"`
	BuyerCountry   string              `json:"buyer_country"`
}

// DisplayName returns market_hash_name, falling back to name.
func (li LineItem) DisplayName() string {
	if li.MarketHashName != "" {
		return li.MarketHashName
	}
	return li.Name
}

// Order is the sort order requested from the transactions endpoint.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// Valid reports whether o is asc or desc.
func (o Order) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

// Page is one response of the paginated transactions endpoint.
type Page struct {
	Data       []Transaction `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// HasData reports whether the response carried a data field at all.
func (p Page) HasData() bool {
	return p.Data != nil
}

// Pagination describes where a Page sits in the full result.
type Pagination struct {
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Limit int   `json:"limit"`
	Order Order `json:"order"`
}
