package api

import (
	"fmt"
	"net/http"

	"github.com/heelin/finfolio/internal/domain"
)

// Endpoint describes one request against the backend: method, path
// relative to the base URL, optional JSON body, and whether the
// expected result is empty. The set of endpoints is closed.
type Endpoint struct {
	Method      string
	Path        string
	Body        any
	ExpectEmpty bool
}

type namePayload struct {
	Name string `json:"name"`
}

type createAccountPayload struct {
	Name string             `json:"name"`
	Type domain.AccountType `json:"type"`
}

type updateHistoryPayload struct {
	AccountID      int      `json:"accountId"`
	MonthKey       string   `json:"monthKey"`
	OpeningBalance float64  `json:"openingBalance"`
	Contribution   float64  `json:"contribution"`
	ClosingBalance float64  `json:"closingBalance"`
	ExchangeRate   float64  `json:"exchangeRate"`
	InterestRate   *float64 `json:"interestRate,omitempty"`
	TermsLeft      *int     `json:"termsLeft,omitempty"`
}

func loginEndpoint(name string) Endpoint {
	return Endpoint{Method: http.MethodPost, Path: "users/login", Body: namePayload{Name: name}}
}

func registerEndpoint(name string) Endpoint {
	return Endpoint{Method: http.MethodPost, Path: "users/register", Body: namePayload{Name: name}}
}

func listAccountsEndpoint() Endpoint {
	return Endpoint{Method: http.MethodGet, Path: "accounts"}
}

func createAccountEndpoint(name string, typ domain.AccountType) Endpoint {
	return Endpoint{Method: http.MethodPost, Path: "accounts/create", Body: createAccountPayload{Name: name, Type: typ}}
}

func deleteAccountEndpoint(id int) Endpoint {
	return Endpoint{Method: http.MethodDelete, Path: fmt.Sprintf("accounts/%d", id), ExpectEmpty: true}
}

func updateHistoryEndpoint(accountID int, h domain.MonthlyHistory) Endpoint {
	return Endpoint{
		Method: http.MethodPut,
		Path:   "accounts/history",
		Body: updateHistoryPayload{
			AccountID:      accountID,
			MonthKey:       h.MonthKey,
			OpeningBalance: h.OpeningBalance,
			Contribution:   h.Contribution,
			ClosingBalance: h.ClosingBalance,
			ExchangeRate:   h.ExchangeRate,
			InterestRate:   h.InterestRate,
			TermsLeft:      h.TermsLeft,
		},
	}
}
