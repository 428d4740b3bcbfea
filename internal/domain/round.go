package domain

import "math"

// Currency fields are kept at 2 decimal places, exchange rates at 4.
const (
	CurrencyPlaces = 2
	RatePlaces     = 4
)

// RoundTo rounds x to the given number of decimal places, half away
// from zero. Idempotent: RoundTo(RoundTo(x, p), p) == RoundTo(x, p).
func RoundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}

// RoundCurrency rounds a currency amount to 2 decimal places.
func RoundCurrency(x float64) float64 { return RoundTo(x, CurrencyPlaces) }

// RoundRate rounds an exchange rate to 4 decimal places.
func RoundRate(x float64) float64 { return RoundTo(x, RatePlaces) }

// Rounded returns a copy of h with every numeric field at its stored
// precision, matching what the server persists.
func (h MonthlyHistory) Rounded() MonthlyHistory {
	h.OpeningBalance = RoundCurrency(h.OpeningBalance)
	h.Contribution = RoundCurrency(h.Contribution)
	h.ClosingBalance = RoundCurrency(h.ClosingBalance)
	h.ExchangeRate = RoundRate(h.ExchangeRate)
	if h.InterestRate != nil {
		r := RoundCurrency(*h.InterestRate)
		h.InterestRate = &r
	}
	return h
}
