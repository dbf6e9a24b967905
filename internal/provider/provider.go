// Package provider defines the interface to the bank scraping backend
// and the HTTP bridge client that talks to it.
package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Credentials identify one bank connection at the scraping backend.
type Credentials struct {
	Bank     string `json:"bank"`
	Login    string `json:"login"`
	Password string `json:"password"`
	Website  string `json:"website,omitempty"`
}

// Account is a bank account as reported by the scraping backend.
type Account struct {
	Bank    string          `json:"bank"`
	Title   string          `json:"title"`
	Number  string          `json:"number"`
	IBAN    string          `json:"iban,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}

// Operation is one transaction as reported by the scraping backend.
// The backend has no stable identifier for a transaction and may
// re-report rows it has reported before.
type Operation struct {
	Title  string          `json:"title"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Raw    string          `json:"raw"`
	TypeID uint            `json:"typeId,omitempty"`
}

// Result is everything the scraping backend currently sees for one set
// of credentials. Operations are keyed by account number.
type Result struct {
	Accounts   []Account              `json:"accounts"`
	Operations map[string][]Operation `json:"operations"`
}

// A Provider fetches the current state of a bank connection.
type Provider interface {
	Fetch(ctx context.Context, credentials Credentials) (Result, error)
}

// FetchError wraps a failure to fetch one access. The synchronizer
// logs it and continues with the next access.
type FetchError struct {
	Bank  string
	Login string
	Err   error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s for %s failed: %v", e.Bank, e.Login, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
