package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRoundToIdempotent(t *testing.T) {
	t.Parallel()

	values := []float64{0, 1.005, -2.675, 1234.56789, 0.00004999, 99999.994999}
	for _, v := range values {
		r2 := RoundTo(v, 2)
		require.Equal(t, r2, RoundTo(r2, 2), "2dp idempotence for %v", v)
		r4 := RoundTo(v, 4)
		require.Equal(t, r4, RoundTo(r4, 4), "4dp idempotence for %v", v)
	}

	require.Equal(t, 1.01, RoundTo(1.006, 2))
	require.Equal(t, -2.68, RoundTo(-2.676, 2))
	require.Equal(t, 0.1235, RoundTo(0.12346, 4))
}

func TestRoundedHistory(t *testing.T) {
	t.Parallel()

	ir := 7.12534
	h := MonthlyHistory{
		MonthKey:       "2026-07",
		OpeningBalance: 100.129,
		Contribution:   10.996,
		ClosingBalance: 111.124,
		ExchangeRate:   18.12346,
		InterestRate:   &ir,
	}
	r := h.Rounded()
	require.Equal(t, 100.13, r.OpeningBalance)
	require.Equal(t, 11.0, r.Contribution)
	require.Equal(t, 111.12, r.ClosingBalance)
	require.Equal(t, 18.1235, r.ExchangeRate)
	require.NotNil(t, r.InterestRate)
	require.Equal(t, 7.13, *r.InterestRate)
	// source untouched
	require.Equal(t, 7.12534, *h.InterestRate)
}

func TestMonthKeyRoundTrip(t *testing.T) {
	t.Parallel()

	d := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	key := FormatMonthKey(d)
	require.Equal(t, "2026-03", key)
	back, err := ParseMonthKey(key)
	require.NoError(t, err)
	require.Equal(t, d, back)

	_, err = ParseMonthKey("03-2026")
	require.Error(t, err)
}

func TestRecentMonthsExcludesCurrent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 31, 14, 0, 0, 0, time.UTC)
	months := RecentMonths(now, 18)
	require.Len(t, months, 18)
	require.Equal(t, "2026-07", months[0].MonthKey)
	require.Equal(t, "Jul 2026", months[0].DisplayName)
	require.Equal(t, "2025-01", months[17].MonthKey)
	for _, m := range months {
		require.NotEqual(t, "2026-08", m.MonthKey)
	}
}

func TestAccountLatestHelpers(t *testing.T) {
	t.Parallel()

	empty := Account{ID: 1, Name: "Empty", Type: AccountSaving}
	require.Equal(t, 0.0, empty.LatestClosing())
	require.Equal(t, 0.0, empty.LatestConverted())

	acct := Account{
		ID:   2,
		Name: "Offshore",
		Type: AccountSaving,
		MonthlyHistory: []MonthlyHistory{
			{MonthKey: "2026-06", ClosingBalance: 100, ExchangeRate: 1},
			{MonthKey: "2026-07", ClosingBalance: 250.50, ExchangeRate: 18.5},
		},
	}
	require.Equal(t, 250.50, acct.LatestClosing())
	require.Equal(t, 250.50*18.5, acct.LatestConverted())

	h, ok := acct.HistoryFor("2026-06")
	require.True(t, ok)
	require.Equal(t, 100.0, h.ClosingBalance)
	_, ok = acct.HistoryFor("2026-01")
	require.False(t, ok)
}

func TestParseAccountType(t *testing.T) {
	t.Parallel()

	typ, err := ParseAccountType("SAVING")
	require.NoError(t, err)
	require.Equal(t, AccountSaving, typ)

	typ, err = ParseAccountType("LOAN")
	require.NoError(t, err)
	require.Equal(t, AccountLoan, typ)

	_, err = ParseAccountType("saving")
	require.Error(t, err)
}
