package domain

import "fmt"

// AccountType distinguishes savings accounts from loans. Loan accounts
// carry two extra per-month fields (interest rate, terms left).
type AccountType string

const (
	AccountSaving AccountType = "SAVING"
	AccountLoan   AccountType = "LOAN"
)

func (t AccountType) Valid() bool {
	return t == AccountSaving || t == AccountLoan
}

func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(s)
	if !t.Valid() {
		return "", fmt.Errorf("unknown account type %q", s)
	}
	return t, nil
}

// Account is one savings or loan account with its ordered month-by-month
// history, as returned by the accounts endpoint.
type Account struct {
	ID             int              `json:"id"`
	OwnerID        int              `json:"ownerId"`
	Name           string           `json:"name"`
	Type           AccountType      `json:"type"`
	MonthlyHistory []MonthlyHistory `json:"monthlyHistory"`
}

// MonthlyHistory is one month's entry in an account's history, keyed by
// MonthKey. InterestRate and TermsLeft are only present for LOAN
// accounts. Currency fields are stored rounded to 2 decimal places, the
// exchange rate to 4.
type MonthlyHistory struct {
	MonthKey       string   `json:"monthKey"`
	OpeningBalance float64  `json:"openingBalance"`
	Contribution   float64  `json:"contribution"`
	ClosingBalance float64  `json:"closingBalance"`
	ExchangeRate   float64  `json:"exchangeRate"`
	InterestRate   *float64 `json:"interestRate,omitempty"`
	TermsLeft      *int     `json:"termsLeft,omitempty"`
}

// Latest returns the most recent history entry, if any.
func (a Account) Latest() (MonthlyHistory, bool) {
	if len(a.MonthlyHistory) == 0 {
		return MonthlyHistory{}, false
	}
	return a.MonthlyHistory[len(a.MonthlyHistory)-1], true
}

// LatestClosing returns the most recent closing balance, zero when the
// account has no history yet.
func (a Account) LatestClosing() float64 {
	h, ok := a.Latest()
	if !ok {
		return 0
	}
	return h.ClosingBalance
}

// LatestConverted returns the most recent closing balance converted
// through that month's exchange rate.
func (a Account) LatestConverted() float64 {
	h, ok := a.Latest()
	if !ok {
		return 0
	}
	return h.ClosingBalance * h.ExchangeRate
}

// HistoryFor looks up the entry for a month key.
func (a Account) HistoryFor(monthKey string) (MonthlyHistory, bool) {
	for _, h := range a.MonthlyHistory {
		if h.MonthKey == monthKey {
			return h, true
		}
	}
	return MonthlyHistory{}, false
}
